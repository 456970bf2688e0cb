// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User roles. Role gates admin-only routes and admin overrides on delete.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account on the platform.
// Deleting a user cascades to their posts, comments, and likes at the
// schema level.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	FullName  string    `json:"full_name"`
	Avatar    string    `json:"avatar"`
	Role      string    `gorm:"not null;default:user" json:"role"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Posts []Post `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"posts,omitempty"`

	// PostsCount is not persisted; computed at query time
	PostsCount int `gorm:"->;-:migration" json:"posts_count,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
