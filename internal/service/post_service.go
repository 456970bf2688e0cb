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

const (
	maxPostTitleLen   = 200
	maxPostExcerptLen = 500
)

// CreatePostInput carries the fields for creating a post.
type CreatePostInput struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Excerpt       string `json:"excerpt"`
	FeaturedImage string `json:"featured_image"`
	Status        string `json:"status"`
}

// UpdatePostInput carries the fields for updating a post. Nil pointers
// leave the field unchanged.
type UpdatePostInput struct {
	Title         *string `json:"title"`
	Content       *string `json:"content"`
	Excerpt       *string `json:"excerpt"`
	FeaturedImage *string `json:"featured_image"`
	Status        *string `json:"status"`
}

// PostService handles post business logic: publication, visibility,
// views, and like toggling.
type PostService interface {
	CreatePost(ctx context.Context, userID uint, input CreatePostInput) (*models.Post, error)
	GetPost(ctx context.Context, id, viewerID uint, viewerIsAdmin bool) (*models.Post, error)
	ListPosts(ctx context.Context, search string, page pagination.Params) ([]*models.Post, pagination.Meta, error)
	GetUserPosts(ctx context.Context, userID uint, page pagination.Params) ([]*models.Post, pagination.Meta, error)
	UpdatePost(ctx context.Context, userID uint, isAdmin bool, id uint, input UpdatePostInput) (*models.Post, error)
	DeletePost(ctx context.Context, userID uint, isAdmin bool, id uint) error
	ToggleLike(ctx context.Context, userID, postID uint) (bool, error)
	IsLiked(ctx context.Context, userID, postID uint) (bool, error)
}

type postService struct {
	posts repository.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(posts repository.PostRepository) PostService {
	return &postService{posts: posts}
}

func validPostStatus(status string) bool {
	return status == models.PostStatusDraft || status == models.PostStatusPublished
}

func (s *postService) CreatePost(ctx context.Context, userID uint, input CreatePostInput) (*models.Post, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)

	var fields []models.FieldError
	if title == "" {
		fields = append(fields, models.FieldError{Field: "title", Message: "title is required"})
	} else if len(title) > maxPostTitleLen {
		fields = append(fields, models.FieldError{Field: "title", Message: "title is too long"})
	}
	if content == "" {
		fields = append(fields, models.FieldError{Field: "content", Message: "content is required"})
	}
	if len(input.Excerpt) > maxPostExcerptLen {
		fields = append(fields, models.FieldError{Field: "excerpt", Message: "excerpt is too long"})
	}
	status := input.Status
	if status == "" {
		status = models.PostStatusDraft
	}
	if !validPostStatus(status) {
		fields = append(fields, models.FieldError{Field: "status", Message: "status must be draft or published"})
	}
	if len(fields) > 0 {
		return nil, models.NewFieldValidationError("Invalid post", fields)
	}

	post := &models.Post{
		Title:         title,
		Content:       content,
		Excerpt:       strings.TrimSpace(input.Excerpt),
		FeaturedImage: input.FeaturedImage,
		Status:        status,
		UserID:        userID,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}

	created, err := s.posts.GetByID(ctx, post.ID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return created, nil
}

// GetPost fetches a single post and bumps its view counter. Drafts are
// visible only to their author and admins; everyone else gets NOT_FOUND.
// The counter increments on every successful fetch, owner included.
func (s *postService) GetPost(ctx context.Context, id, viewerID uint, viewerIsAdmin bool) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post")
		}
		return nil, models.NewInternalError(err)
	}
	if post.Status != models.PostStatusPublished && post.UserID != viewerID && !viewerIsAdmin {
		return nil, models.NewNotFoundError("Post")
	}

	if err := s.posts.IncrementViews(ctx, id); err != nil {
		return nil, models.NewInternalError(err)
	}
	post.Views++
	middleware.PostViews.Inc()
	return post, nil
}

// ListPosts returns a page of published posts, newest first, optionally
// filtered by a title/content search.
func (s *postService) ListPosts(ctx context.Context, search string, page pagination.Params) ([]*models.Post, pagination.Meta, error) {
	posts, total, err := s.posts.List(ctx, models.PostStatusPublished, search, page.Limit, page.Offset())
	if err != nil {
		return nil, pagination.Meta{}, models.NewInternalError(err)
	}
	return posts, page.Meta(total), nil
}

// GetUserPosts returns a page of a user's published posts. Drafts never
// appear here, even for the owner; authors manage drafts through the
// single-post endpoints.
func (s *postService) GetUserPosts(ctx context.Context, userID uint, page pagination.Params) ([]*models.Post, pagination.Meta, error) {
	posts, total, err := s.posts.GetByUserID(ctx, userID, models.PostStatusPublished, page.Limit, page.Offset())
	if err != nil {
		return nil, pagination.Meta{}, models.NewInternalError(err)
	}
	return posts, page.Meta(total), nil
}

// UpdatePost applies a partial update. Only the author or an admin may
// update; others get NOT_FOUND.
func (s *postService) UpdatePost(ctx context.Context, userID uint, isAdmin bool, id uint, input UpdatePostInput) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post")
		}
		return nil, models.NewInternalError(err)
	}
	if post.UserID != userID && !isAdmin {
		return nil, models.NewNotFoundError("Post")
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" || len(title) > maxPostTitleLen {
			return nil, models.NewValidationError("Invalid title")
		}
		post.Title = title
	}
	if input.Content != nil {
		content := strings.TrimSpace(*input.Content)
		if content == "" {
			return nil, models.NewValidationError("Invalid content")
		}
		post.Content = content
	}
	if input.Excerpt != nil {
		if len(*input.Excerpt) > maxPostExcerptLen {
			return nil, models.NewValidationError("Invalid excerpt")
		}
		post.Excerpt = strings.TrimSpace(*input.Excerpt)
	}
	if input.FeaturedImage != nil {
		post.FeaturedImage = *input.FeaturedImage
	}
	if input.Status != nil {
		if !validPostStatus(*input.Status) {
			return nil, models.NewValidationError("status must be draft or published")
		}
		post.Status = *input.Status
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}
	return post, nil
}

// DeletePost removes a post and, via the schema cascade, its comments
// and likes. Author or admin only; others get NOT_FOUND.
func (s *postService) DeletePost(ctx context.Context, userID uint, isAdmin bool, id uint) error {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post")
		}
		return models.NewInternalError(err)
	}
	if post.UserID != userID && !isAdmin {
		return models.NewNotFoundError("Post")
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ToggleLike flips the caller's like on a published post and returns
// the resulting state. The read-then-write pair is not atomic, but the
// unique index on (user_id, post_id) keeps concurrent toggles from ever
// double-counting: the losing insert affects no rows.
func (s *postService) ToggleLike(ctx context.Context, userID, postID uint) (bool, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, models.NewNotFoundError("Post")
		}
		return false, models.NewInternalError(err)
	}
	if post.Status != models.PostStatusPublished {
		return false, models.NewNotFoundError("Post")
	}

	liked, err := s.posts.IsLiked(ctx, userID, postID)
	if err != nil {
		return false, models.NewInternalError(err)
	}

	if liked {
		if _, err := s.posts.Unlike(ctx, userID, postID); err != nil {
			return false, models.NewInternalError(err)
		}
		middleware.LikesToggled.WithLabelValues("unliked").Inc()
		return false, nil
	}

	if _, err := s.posts.Like(ctx, userID, postID); err != nil {
		return false, models.NewInternalError(err)
	}
	middleware.LikesToggled.WithLabelValues("liked").Inc()
	return true, nil
}

func (s *postService) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	liked, err := s.posts.IsLiked(ctx, userID, postID)
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return liked, nil
}
