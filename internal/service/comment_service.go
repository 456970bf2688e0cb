// Package service contains the business logic between the HTTP handlers
// and the repositories.
package service

import (
	"context"
	"errors"
	"strings"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/pagination"
	"inkwell/internal/repository"

	"gorm.io/gorm"
)

const maxCommentLen = 10000

// CommentService handles comment business logic: listing, creation with
// threading rules, and ownership-gated mutation.
type CommentService interface {
	ListPostComments(ctx context.Context, postID uint, page pagination.Params) ([]*models.Comment, pagination.Meta, error)
	ListReplies(ctx context.Context, commentID uint) ([]*models.Comment, error)
	CreateComment(ctx context.Context, userID, postID uint, parentID *uint, content string) (*models.Comment, error)
	UpdateComment(ctx context.Context, userID, commentID uint, content string) (*models.Comment, error)
	DeleteComment(ctx context.Context, userID uint, isAdmin bool, commentID uint) error
	ListUserComments(ctx context.Context, userID uint, page pagination.Params) ([]*models.Comment, pagination.Meta, error)
}

type commentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository) CommentService {
	return &commentService{comments: comments, posts: posts}
}

// ListPostComments returns a page of the post's top-level comments. The
// post's existence is deliberately not checked: an unknown post yields
// an empty page with total 0, the same shape as a post with no comments.
func (s *commentService) ListPostComments(ctx context.Context, postID uint, page pagination.Params) ([]*models.Comment, pagination.Meta, error) {
	comments, total, err := s.comments.ListTopLevelByPost(ctx, postID, page.Limit, page.Offset())
	if err != nil {
		return nil, pagination.Meta{}, models.NewInternalError(err)
	}
	return comments, page.Meta(total), nil
}

func (s *commentService) ListReplies(ctx context.Context, commentID uint) ([]*models.Comment, error) {
	if _, err := s.comments.GetByID(ctx, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment")
		}
		return nil, models.NewInternalError(err)
	}
	replies, err := s.comments.ListReplies(ctx, commentID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return replies, nil
}

// CreateComment creates a top-level comment or a reply. The target post
// must exist and be published; a reply's parent must exist and belong to
// the same post. All of those failures surface as NOT_FOUND.
func (s *commentService) CreateComment(ctx context.Context, userID, postID uint, parentID *uint, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Comment content is required")
	}
	if len(content) > maxCommentLen {
		return nil, models.NewValidationError("Comment content is too long")
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post")
		}
		return nil, models.NewInternalError(err)
	}
	if post.Status != models.PostStatusPublished {
		return nil, models.NewNotFoundError("Post")
	}

	kind := "top_level"
	if parentID != nil {
		parent, err := s.comments.GetByID(ctx, *parentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.NewNotFoundError("Comment")
			}
			return nil, models.NewInternalError(err)
		}
		if parent.PostID != postID {
			return nil, models.NewNotFoundError("Comment")
		}
		kind = "reply"
	}

	comment := &models.Comment{
		Content:  content,
		PostID:   postID,
		UserID:   userID,
		ParentID: parentID,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}
	middleware.CommentsCreated.WithLabelValues(kind).Inc()

	created, err := s.comments.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return created, nil
}

// UpdateComment edits a comment's content. Only the author may edit;
// anyone else gets NOT_FOUND, indistinguishable from an absent comment.
func (s *commentService) UpdateComment(ctx context.Context, userID, commentID uint, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Comment content is required")
	}
	if len(content) > maxCommentLen {
		return nil, models.NewValidationError("Comment content is too long")
	}

	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment")
		}
		return nil, models.NewInternalError(err)
	}
	if comment.UserID != userID {
		return nil, models.NewNotFoundError("Comment")
	}

	comment.Content = content
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}
	return comment, nil
}

// DeleteComment removes a comment and its direct replies. Authors may
// delete their own comments; admins may delete any. Everyone else gets
// NOT_FOUND.
func (s *commentService) DeleteComment(ctx context.Context, userID uint, isAdmin bool, commentID uint) error {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Comment")
		}
		return models.NewInternalError(err)
	}
	if comment.UserID != userID && !isAdmin {
		return models.NewNotFoundError("Comment")
	}

	if err := s.comments.DeleteWithReplies(ctx, commentID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ListUserComments returns a page of the user's top-level comments,
// each carrying the owning post's title.
func (s *commentService) ListUserComments(ctx context.Context, userID uint, page pagination.Params) ([]*models.Comment, pagination.Meta, error) {
	comments, total, err := s.comments.ListTopLevelByUser(ctx, userID, page.Limit, page.Offset())
	if err != nil {
		return nil, pagination.Meta{}, models.NewInternalError(err)
	}
	return comments, page.Meta(total), nil
}
