package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"

	"gorm.io/gorm"
)

// Function-field stubs: tests set only the methods a case exercises.

type stubCommentRepo struct {
	create             func(ctx context.Context, c *models.Comment) error
	getByID            func(ctx context.Context, id uint) (*models.Comment, error)
	listTopLevelByPost func(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, int64, error)
	listReplies        func(ctx context.Context, parentID uint) ([]*models.Comment, error)
	listTopLevelByUser func(ctx context.Context, userID uint, limit, offset int) ([]*models.Comment, int64, error)
	listAll            func(ctx context.Context, search string, limit, offset int) ([]*models.Comment, int64, error)
	update             func(ctx context.Context, c *models.Comment) error
	deleteWithReplies  func(ctx context.Context, id uint) error
}

func (s *stubCommentRepo) Create(ctx context.Context, c *models.Comment) error {
	return s.create(ctx, c)
}

func (s *stubCommentRepo) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByID(ctx, id)
}

func (s *stubCommentRepo) ListTopLevelByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, int64, error) {
	return s.listTopLevelByPost(ctx, postID, limit, offset)
}

func (s *stubCommentRepo) ListReplies(ctx context.Context, parentID uint) ([]*models.Comment, error) {
	return s.listReplies(ctx, parentID)
}

func (s *stubCommentRepo) ListTopLevelByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Comment, int64, error) {
	return s.listTopLevelByUser(ctx, userID, limit, offset)
}

func (s *stubCommentRepo) ListAll(ctx context.Context, search string, limit, offset int) ([]*models.Comment, int64, error) {
	return s.listAll(ctx, search, limit, offset)
}

func (s *stubCommentRepo) Update(ctx context.Context, c *models.Comment) error {
	return s.update(ctx, c)
}

func (s *stubCommentRepo) DeleteWithReplies(ctx context.Context, id uint) error {
	return s.deleteWithReplies(ctx, id)
}

type stubPostRepo struct {
	create         func(ctx context.Context, p *models.Post) error
	getByID        func(ctx context.Context, id uint) (*models.Post, error)
	list           func(ctx context.Context, status, search string, limit, offset int) ([]*models.Post, int64, error)
	getByUserID    func(ctx context.Context, userID uint, status string, limit, offset int) ([]*models.Post, int64, error)
	update         func(ctx context.Context, p *models.Post) error
	deleteFn       func(ctx context.Context, id uint) error
	incrementViews func(ctx context.Context, id uint) error
	isLiked        func(ctx context.Context, userID, postID uint) (bool, error)
	like           func(ctx context.Context, userID, postID uint) (bool, error)
	unlike         func(ctx context.Context, userID, postID uint) (bool, error)
}

func (s *stubPostRepo) Create(ctx context.Context, p *models.Post) error {
	return s.create(ctx, p)
}

func (s *stubPostRepo) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByID(ctx, id)
}

func (s *stubPostRepo) List(ctx context.Context, status, search string, limit, offset int) ([]*models.Post, int64, error) {
	return s.list(ctx, status, search, limit, offset)
}

func (s *stubPostRepo) GetByUserID(ctx context.Context, userID uint, status string, limit, offset int) ([]*models.Post, int64, error) {
	return s.getByUserID(ctx, userID, status, limit, offset)
}

func (s *stubPostRepo) Update(ctx context.Context, p *models.Post) error {
	return s.update(ctx, p)
}

func (s *stubPostRepo) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func (s *stubPostRepo) IncrementViews(ctx context.Context, id uint) error {
	return s.incrementViews(ctx, id)
}

func (s *stubPostRepo) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.isLiked(ctx, userID, postID)
}

func (s *stubPostRepo) Like(ctx context.Context, userID, postID uint) (bool, error) {
	return s.like(ctx, userID, postID)
}

func (s *stubPostRepo) Unlike(ctx context.Context, userID, postID uint) (bool, error) {
	return s.unlike(ctx, userID, postID)
}

type stubUserRepo struct {
	create        func(ctx context.Context, u *models.User) error
	getByID       func(ctx context.Context, id uint) (*models.User, error)
	getByEmail    func(ctx context.Context, email string) (*models.User, error)
	getByUsername func(ctx context.Context, username string) (*models.User, error)
	list          func(ctx context.Context, search string, limit, offset int) ([]*models.User, int64, error)
	update        func(ctx context.Context, u *models.User) error
	setRole       func(ctx context.Context, id uint, role string) error
	deleteFn      func(ctx context.Context, id uint) error
}

func (s *stubUserRepo) Create(ctx context.Context, u *models.User) error {
	return s.create(ctx, u)
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByID(ctx, id)
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmail(ctx, email)
}

func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsername(ctx, username)
}

func (s *stubUserRepo) List(ctx context.Context, search string, limit, offset int) ([]*models.User, int64, error) {
	return s.list(ctx, search, limit, offset)
}

func (s *stubUserRepo) Update(ctx context.Context, u *models.User) error {
	return s.update(ctx, u)
}

func (s *stubUserRepo) SetRole(ctx context.Context, id uint, role string) error {
	return s.setRole(ctx, id, role)
}

func (s *stubUserRepo) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

type stubStatsRepo struct {
	dashboardTotals   func(ctx context.Context) (*repository.DashboardTotals, error)
	monthlyPostCounts func(ctx context.Context) ([]repository.MonthCount, error)
	monthlyUserCounts func(ctx context.Context) ([]repository.MonthCount, error)
	topPostsByViews   func(ctx context.Context, n int) ([]*models.Post, error)
	topPostsByLikes   func(ctx context.Context, n int) ([]*models.Post, error)
}

func (s *stubStatsRepo) DashboardTotals(ctx context.Context) (*repository.DashboardTotals, error) {
	return s.dashboardTotals(ctx)
}

func (s *stubStatsRepo) MonthlyPostCounts(ctx context.Context) ([]repository.MonthCount, error) {
	return s.monthlyPostCounts(ctx)
}

func (s *stubStatsRepo) MonthlyUserCounts(ctx context.Context) ([]repository.MonthCount, error) {
	return s.monthlyUserCounts(ctx)
}

func (s *stubStatsRepo) TopPostsByViews(ctx context.Context, n int) ([]*models.Post, error) {
	return s.topPostsByViews(ctx, n)
}

func (s *stubStatsRepo) TopPostsByLikes(ctx context.Context, n int) ([]*models.Post, error) {
	return s.topPostsByLikes(ctx, n)
}

func notFound(ctx context.Context, id uint) (*models.Comment, error) {
	return nil, gorm.ErrRecordNotFound
}
