package service

import (
	"context"
	"testing"

	"inkwell/internal/models"
	"inkwell/internal/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// likeState backs a stateful stub so toggle tests exercise the real
// check-then-act sequence.
type likeState struct {
	liked bool
	post  *models.Post
}

func (ls *likeState) repo() *stubPostRepo {
	return &stubPostRepo{
		getByID: func(ctx context.Context, id uint) (*models.Post, error) {
			return ls.post, nil
		},
		isLiked: func(ctx context.Context, userID, postID uint) (bool, error) {
			return ls.liked, nil
		},
		like: func(ctx context.Context, userID, postID uint) (bool, error) {
			if ls.liked {
				return false, nil
			}
			ls.liked = true
			ls.post.Likes++
			return true, nil
		},
		unlike: func(ctx context.Context, userID, postID uint) (bool, error) {
			if !ls.liked {
				return false, nil
			}
			ls.liked = false
			ls.post.Likes--
			return true, nil
		},
	}
}

func TestToggleLike(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("round trip flips state and counter", func(t *testing.T) {
		t.Parallel()
		state := &likeState{post: publishedPost(1, 7)}
		svc := NewPostService(state.repo())

		liked, err := svc.ToggleLike(ctx, 3, 1)
		require.NoError(t, err)
		assert.True(t, liked)
		assert.Equal(t, int64(1), state.post.Likes)

		liked, err = svc.ToggleLike(ctx, 3, 1)
		require.NoError(t, err)
		assert.False(t, liked)
		assert.Equal(t, int64(0), state.post.Likes)
	})

	t.Run("unknown post is not found", func(t *testing.T) {
		t.Parallel()
		posts := &stubPostRepo{
			getByID: func(ctx context.Context, id uint) (*models.Post, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := NewPostService(posts)

		_, err := svc.ToggleLike(ctx, 3, 99)
		assert.Equal(t, "NOT_FOUND", appErrCode(t, err))
	})

	t.Run("draft post is not found", func(t *testing.T) {
		t.Parallel()
		posts := &stubPostRepo{
			getByID: func(ctx context.Context, id uint) (*models.Post, error) {
				return &models.Post{ID: id, Status: models.PostStatusDraft}, nil
			},
		}
		svc := NewPostService(posts)

		_, err := svc.ToggleLike(ctx, 3, 1)
		assert.Equal(t, "NOT_FOUND", appErrCode(t, err))
	})
}

func TestGetPost(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("increments views on every fetch", func(t *testing.T) {
		t.Parallel()
		incremented := 0
		posts := &stubPostRepo{
			getByID: func(ctx context.Context, id uint) (*models.Post, error) {
				return &models.Post{ID: id, UserID: 7, Status: models.PostStatusPublished, Views: 5}, nil
			},
			incrementViews: func(ctx context.Context, id uint) error {
				incremented++
				return nil
			},
		}
		svc := NewPostService(posts)

		post, err := svc.GetPost(ctx, 1, 0, false)
		require.NoError(t, err)
		assert.Equal(t, 1, incremented)
		assert.Equal(t, int64(6), post.Views)
	})

	t.Run("draft hidden from strangers", func(t *testing.T) {
		t.Parallel()
		posts := &stubPostRepo{
			getByID: func(ctx context.Context, id uint) (*models.Post, error) {
				return &models.Post{ID: id, UserID: 7, Status: models.PostStatusDraft}, nil
			},
		}
		svc := NewPostService(posts)

		_, err := svc.GetPost(ctx, 1, 3, false)
		assert.Equal(t, "NOT_FOUND", appErrCode(t, err))
	})

	t.Run("draft visible to owner and admin", func(t *testing.T) {
		t.Parallel()
		posts := &stubPostRepo{
			getByID: func(ctx context.Context, id uint) (*models.Post, error) {
				return &models.Post{ID: id, UserID: 7, Status: models.PostStatusDraft}, nil
			},
			incrementViews: func(ctx context.Context, id uint) error { return nil },
		}
		svc := NewPostService(posts)

		_, err := svc.GetPost(ctx, 1, 7, false)
		assert.NoError(t, err)

		_, err = svc.GetPost(ctx, 1, 3, true)
		assert.NoError(t, err)
	})
}

func TestCreatePost(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("missing title and content surface field errors", func(t *testing.T) {
		t.Parallel()
		svc := NewPostService(&stubPostRepo{})

		_, err := svc.CreatePost(ctx, 1, CreatePostInput{})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		assert.Len(t, appErr.Fields, 2)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewPostService(&stubPostRepo{})

		_, err := svc.CreatePost(ctx, 1, CreatePostInput{Title: "t", Content: "c", Status: "archived"})
		assert.Equal(t, "VALIDATION_ERROR", appErrCode(t, err))
	})

	t.Run("defaults to draft", func(t *testing.T) {
		t.Parallel()
		var created *models.Post
		posts := &stubPostRepo{
			create: func(ctx context.Context, p *models.Post) error {
				p.ID = 10
				created = p
				return nil
			},
			getByID: func(ctx context.Context, id uint) (*models.Post, error) {
				return created, nil
			},
		}
		svc := NewPostService(posts)

		post, err := svc.CreatePost(ctx, 1, CreatePostInput{Title: "My Post", Content: "body"})
		require.NoError(t, err)
		assert.Equal(t, models.PostStatusDraft, post.Status)
		assert.Equal(t, uint(1), post.UserID)
	})
}

func TestUpdateAndDeletePostOwnership(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ownedBy := func(userID uint) *stubPostRepo {
		return &stubPostRepo{
			getByID: func(ctx context.Context, id uint) (*models.Post, error) {
				return &models.Post{ID: id, UserID: userID, Title: "t", Content: "c", Status: models.PostStatusPublished}, nil
			},
		}
	}

	t.Run("non-author update is not found", func(t *testing.T) {
		t.Parallel()
		svc := NewPostService(ownedBy(7))

		title := "changed"
		_, err := svc.UpdatePost(ctx, 3, false, 1, UpdatePostInput{Title: &title})
		assert.Equal(t, "NOT_FOUND", appErrCode(t, err))
	})

	t.Run("admin updates any post", func(t *testing.T) {
		t.Parallel()
		posts := ownedBy(7)
		posts.update = func(ctx context.Context, p *models.Post) error { return nil }
		svc := NewPostService(posts)

		title := "changed"
		post, err := svc.UpdatePost(ctx, 3, true, 1, UpdatePostInput{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "changed", post.Title)
	})

	t.Run("non-author delete is not found", func(t *testing.T) {
		t.Parallel()
		svc := NewPostService(ownedBy(7))

		err := svc.DeletePost(ctx, 3, false, 1)
		assert.Equal(t, "NOT_FOUND", appErrCode(t, err))
	})

	t.Run("author deletes own post", func(t *testing.T) {
		t.Parallel()
		posts := ownedBy(7)
		var deleted uint
		posts.deleteFn = func(ctx context.Context, id uint) error {
			deleted = id
			return nil
		}
		svc := NewPostService(posts)

		require.NoError(t, svc.DeletePost(ctx, 7, false, 1))
		assert.Equal(t, uint(1), deleted)
	})
}

func TestListPosts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("only published posts are requested", func(t *testing.T) {
		t.Parallel()
		var gotStatus string
		posts := &stubPostRepo{
			list: func(ctx context.Context, status, search string, limit, offset int) ([]*models.Post, int64, error) {
				gotStatus = status
				return []*models.Post{{ID: 1}}, 1, nil
			},
		}
		svc := NewPostService(posts)

		_, _, err := svc.ListPosts(ctx, "", pagination.Params{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, models.PostStatusPublished, gotStatus)
	})
}
