package service

import (
	"context"
	"errors"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/pagination"
	"inkwell/internal/repository"

	"gorm.io/gorm"
)

const topPostsLimit = 10

// Analytics is the admin analytics payload: twelve trailing monthly
// buckets for posts and signups, plus the top posts by views and likes.
type Analytics struct {
	PostsByMonth []repository.MonthCount `json:"posts_by_month"`
	UsersByMonth []repository.MonthCount `json:"users_by_month"`
	TopByViews   []*models.Post          `json:"top_by_views"`
	TopByLikes   []*models.Post          `json:"top_by_likes"`
}

// AdminService backs the admin dashboard: totals, moderation listings,
// analytics, and user administration.
type AdminService interface {
	Dashboard(ctx context.Context) (*repository.DashboardTotals, error)
	ListUsers(ctx context.Context, search string, page pagination.Params) ([]*models.User, pagination.Meta, error)
	ListPosts(ctx context.Context, search string, page pagination.Params) ([]*models.Post, pagination.Meta, error)
	ListComments(ctx context.Context, search string, page pagination.Params) ([]*models.Comment, pagination.Meta, error)
	Analytics(ctx context.Context) (*Analytics, error)
	SetUserRole(ctx context.Context, userID uint, role string) error
	DeleteUser(ctx context.Context, userID uint) error
}

type adminService struct {
	users    repository.UserRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
	stats    repository.StatsRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(
	users repository.UserRepository,
	posts repository.PostRepository,
	comments repository.CommentRepository,
	stats repository.StatsRepository,
) AdminService {
	return &adminService{users: users, posts: posts, comments: comments, stats: stats}
}

func (s *adminService) Dashboard(ctx context.Context) (*repository.DashboardTotals, error) {
	totals, err := s.stats.DashboardTotals(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return totals, nil
}

func (s *adminService) ListUsers(ctx context.Context, search string, page pagination.Params) ([]*models.User, pagination.Meta, error) {
	users, total, err := s.users.List(ctx, search, page.Limit, page.Offset())
	if err != nil {
		return nil, pagination.Meta{}, models.NewInternalError(err)
	}
	return users, page.Meta(total), nil
}

// ListPosts lists posts of every status, drafts included, for the
// moderation view.
func (s *adminService) ListPosts(ctx context.Context, search string, page pagination.Params) ([]*models.Post, pagination.Meta, error) {
	posts, total, err := s.posts.List(ctx, "", search, page.Limit, page.Offset())
	if err != nil {
		return nil, pagination.Meta{}, models.NewInternalError(err)
	}
	return posts, page.Meta(total), nil
}

func (s *adminService) ListComments(ctx context.Context, search string, page pagination.Params) ([]*models.Comment, pagination.Meta, error) {
	comments, total, err := s.comments.ListAll(ctx, search, page.Limit, page.Offset())
	if err != nil {
		return nil, pagination.Meta{}, models.NewInternalError(err)
	}
	return comments, page.Meta(total), nil
}

func (s *adminService) Analytics(ctx context.Context) (*Analytics, error) {
	postCounts, err := s.stats.MonthlyPostCounts(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	userCounts, err := s.stats.MonthlyUserCounts(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	topViews, err := s.stats.TopPostsByViews(ctx, topPostsLimit)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	topLikes, err := s.stats.TopPostsByLikes(ctx, topPostsLimit)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	now := time.Now().UTC()
	return &Analytics{
		PostsByMonth: fillMonths(postCounts, now),
		UsersByMonth: fillMonths(userCounts, now),
		TopByViews:   topViews,
		TopByLikes:   topLikes,
	}, nil
}

// fillMonths expands a sparse month series into exactly twelve buckets
// ending at the current month, inserting zero counts for missing months.
func fillMonths(counts []repository.MonthCount, now time.Time) []repository.MonthCount {
	byMonth := make(map[string]int64, len(counts))
	for _, c := range counts {
		byMonth[c.Month] = c.Count
	}

	filled := make([]repository.MonthCount, 0, 12)
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -11, 0)
	for i := 0; i < 12; i++ {
		month := start.AddDate(0, i, 0).Format("2006-01")
		filled = append(filled, repository.MonthCount{Month: month, Count: byMonth[month]})
	}
	return filled
}

func (s *adminService) SetUserRole(ctx context.Context, userID uint, role string) error {
	if role != models.RoleUser && role != models.RoleAdmin {
		return models.NewValidationError("role must be user or admin")
	}
	if err := s.users.SetRole(ctx, userID, role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("User")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// DeleteUser removes the account; posts, comments, and likes follow via
// the schema cascade.
func (s *adminService) DeleteUser(ctx context.Context, userID uint) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("User")
		}
		return models.NewInternalError(err)
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
