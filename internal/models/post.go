package models

import (
	"time"
)

// Post statuses. Only published posts accept comments or appear in
// public listings.
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

// Post represents a blog post. Views and Likes are persisted counters:
// Views increments on every single-post fetch, Likes mirrors the rows
// in the likes table.
type Post struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Title         string `gorm:"not null" json:"title"`
	Content       string `gorm:"type:text;not null" json:"content"`
	Excerpt       string `json:"excerpt"`
	FeaturedImage string `json:"featured_image"`
	UserID        uint   `gorm:"not null;index" json:"user_id"`
	User          User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"author"`
	Status        string `gorm:"not null;default:draft;index" json:"status"`
	Views         int64  `gorm:"not null;default:0" json:"views"`
	Likes         int64  `gorm:"not null;default:0" json:"likes"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int       `gorm:"->;-:migration" json:"comments_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
