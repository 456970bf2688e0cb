// Package seed populates a development database with realistic fake
// data.
package seed

import (
	"fmt"
	"strings"

	"inkwell/internal/models"

	"github.com/brianvoe/gofakeit/v6"
)

// NewUser builds a user with a unique username/email pair. The password
// hash is supplied by the caller so bcrypt runs once per seeding pass.
func NewUser(i int, passwordHash string) *models.User {
	username := fmt.Sprintf("%s%d", strings.ToLower(gofakeit.Username()), i)
	return &models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@%s", username, gofakeit.DomainName()),
		Password: passwordHash,
		FullName: gofakeit.Name(),
		Bio:      gofakeit.Sentence(12),
		Role:     models.RoleUser,
	}
}

// NewPost builds a post for the given author. Roughly one in five posts
// stays a draft.
func NewPost(userID uint) *models.Post {
	status := models.PostStatusPublished
	if gofakeit.Number(1, 5) == 1 {
		status = models.PostStatusDraft
	}
	content := gofakeit.Paragraph(3, 5, 12, "\n\n")
	return &models.Post{
		Title:   gofakeit.Sentence(6),
		Content: content,
		Excerpt: gofakeit.Sentence(15),
		Status:  status,
		UserID:  userID,
		Views:   int64(gofakeit.Number(0, 5000)),
	}
}

// NewComment builds a comment; pass a non-nil parentID for a reply.
func NewComment(postID, userID uint, parentID *uint) *models.Comment {
	return &models.Comment{
		Content:  gofakeit.Sentence(gofakeit.Number(5, 25)),
		PostID:   postID,
		UserID:   userID,
		ParentID: parentID,
	}
}
