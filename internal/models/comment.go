package models

import (
	"time"
)

// Comment represents a comment on a post. ParentID forms a shallow
// tree: nil for top-level comments, set for replies. The listing
// queries only ever materialize one level of depth; a comment's parent,
// when present, must belong to the same post.
type Comment struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Content  string `gorm:"type:text;not null" json:"content"`
	PostID   uint   `gorm:"not null;index" json:"post_id"`
	Post     Post   `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"post,omitempty"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	User     User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"author"`
	ParentID *uint  `gorm:"index" json:"parent_id"`
	// RepliesCount is not persisted; computed at query time for
	// top-level listings.
	RepliesCount int `gorm:"->;-:migration" json:"replies_count"`
	// PostTitle is not persisted; joined in for user-comment listings.
	PostTitle string    `gorm:"->;-:migration" json:"post_title,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
