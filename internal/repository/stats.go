package repository

import (
	"context"
	"fmt"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// DashboardTotals holds the site-wide counters shown on the admin
// dashboard.
type DashboardTotals struct {
	Users      int64 `json:"users"`
	Posts      int64 `json:"posts"`
	Comments   int64 `json:"comments"`
	TotalViews int64 `json:"total_views"`
	TotalLikes int64 `json:"total_likes"`
}

// MonthCount is one month's bucket in an activity series. Month is
// formatted YYYY-MM.
type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// StatsRepository defines aggregate queries backing the admin surface.
type StatsRepository interface {
	DashboardTotals(ctx context.Context) (*DashboardTotals, error)
	MonthlyPostCounts(ctx context.Context) ([]MonthCount, error)
	MonthlyUserCounts(ctx context.Context) ([]MonthCount, error)
	TopPostsByViews(ctx context.Context, n int) ([]*models.Post, error)
	TopPostsByLikes(ctx context.Context, n int) ([]*models.Post, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new StatsRepository.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) DashboardTotals(ctx context.Context) (*DashboardTotals, error) {
	var totals DashboardTotals
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.User{}).Count(&totals.Users).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Post{}).Count(&totals.Posts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Comment{}).Count(&totals.Comments).Error; err != nil {
		return nil, err
	}
	err := db.Model(&models.Post{}).
		Select("COALESCE(SUM(views), 0) AS total_views, COALESCE(SUM(likes), 0) AS total_likes").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

// monthlyCountsSQL buckets a table's rows by creation month over the
// trailing 12 months, including the current one. Months with no rows are
// absent from the result; the service layer fills the gaps. The table
// name is a compile-time constant, never user input.
const monthlyCountsSQL = `
SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS month, COUNT(*) AS count
FROM %s
WHERE created_at >= date_trunc('month', NOW()) - INTERVAL '11 months'
GROUP BY 1
ORDER BY 1`

func (r *statsRepository) monthlyCounts(ctx context.Context, table string) ([]MonthCount, error) {
	var counts []MonthCount
	err := r.db.WithContext(ctx).
		Raw(fmt.Sprintf(monthlyCountsSQL, table)).
		Scan(&counts).Error
	return counts, err
}

func (r *statsRepository) MonthlyPostCounts(ctx context.Context) ([]MonthCount, error) {
	return r.monthlyCounts(ctx, "posts")
}

func (r *statsRepository) MonthlyUserCounts(ctx context.Context) ([]MonthCount, error) {
	return r.monthlyCounts(ctx, "users")
}

func (r *statsRepository) topPosts(ctx context.Context, orderBy string, n int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Preload("User").
		Order(orderBy).
		Limit(n).
		Find(&posts).Error
	return posts, err
}

func (r *statsRepository) TopPostsByViews(ctx context.Context, n int) ([]*models.Post, error) {
	return r.topPosts(ctx, "views DESC", n)
}

func (r *statsRepository) TopPostsByLikes(ctx context.Context, n int) ([]*models.Post, error) {
	return r.topPosts(ctx, "likes DESC", n)
}
