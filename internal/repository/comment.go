package repository

import (
	"context"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListTopLevelByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, int64, error)
	ListReplies(ctx context.Context, parentID uint) ([]*models.Comment, error)
	ListTopLevelByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Comment, int64, error)
	ListAll(ctx context.Context, search string, limit, offset int) ([]*models.Comment, int64, error)
	Update(ctx context.Context, comment *models.Comment) error
	DeleteWithReplies(ctx context.Context, id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

const repliesCountSelect = "comments.*, (SELECT COUNT(*) FROM comments AS replies WHERE replies.parent_id = comments.id) AS replies_count"

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).Preload("User").First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListTopLevelByPost returns a page of a post's top-level comments,
// newest first, each annotated with its reply count, plus the total
// number of top-level comments on the post.
func (r *commentRepository) ListTopLevelByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("post_id = ? AND parent_id IS NULL", postID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var comments []*models.Comment
	err = r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Select(repliesCountSelect).
		Where("comments.post_id = ? AND comments.parent_id IS NULL", postID).
		Order("comments.created_at DESC").
		Limit(limit).
		Offset(offset).
		Preload("User").
		Find(&comments).Error
	return comments, total, err
}

// ListReplies returns all direct replies to a comment, oldest first.
// Replies are a single flat level, so no pagination is applied.
func (r *commentRepository) ListReplies(ctx context.Context, parentID uint) ([]*models.Comment, error) {
	var replies []*models.Comment
	err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("created_at ASC").
		Preload("User").
		Find(&replies).Error
	return replies, err
}

// ListTopLevelByUser returns a page of a user's top-level comments,
// newest first, each carrying the owning post's title.
func (r *commentRepository) ListTopLevelByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Comment, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("user_id = ? AND parent_id IS NULL", userID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var comments []*models.Comment
	err = r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Select("comments.*, posts.title AS post_title").
		Joins("JOIN posts ON posts.id = comments.post_id").
		Where("comments.user_id = ? AND comments.parent_id IS NULL", userID).
		Order("comments.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	return comments, total, err
}

// ListAll returns a page over every comment for the admin listing.
// Search matches comment content.
func (r *commentRepository) ListAll(ctx context.Context, search string, limit, offset int) ([]*models.Comment, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.Comment{})
	if search != "" {
		base = base.Where("comments.content ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []*models.Comment
	err := base.
		Select("comments.*, posts.title AS post_title").
		Joins("JOIN posts ON posts.id = comments.post_id").
		Order("comments.created_at DESC").
		Limit(limit).
		Offset(offset).
		Preload("User").
		Find(&comments).Error
	return comments, total, err
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

// DeleteWithReplies removes a comment and its direct replies in one
// statement, so a concurrent reply cannot survive its parent.
func (r *commentRepository) DeleteWithReplies(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Exec("DELETE FROM comments WHERE id = ? OR parent_id = ?", id, id).Error
}
