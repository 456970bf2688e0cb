package repository

import (
	"context"
	"testing"
	"time"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepositoryListTopLevelByPost(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCommentRepository(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	post := createPost(t, db, alice.ID, models.PostStatusPublished)

	base := time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC)
	older := &models.Comment{Content: "first", PostID: post.ID, UserID: alice.ID, CreatedAt: base}
	require.NoError(t, repo.Create(ctx, older))
	newer := &models.Comment{Content: "second", PostID: post.ID, UserID: bob.ID, CreatedAt: base.Add(time.Hour)}
	require.NoError(t, repo.Create(ctx, newer))

	// Two replies to the older comment; replies never appear in the
	// top-level listing.
	for i := 0; i < 2; i++ {
		require.NoError(t, repo.Create(ctx, &models.Comment{
			Content:  "reply",
			PostID:   post.ID,
			UserID:   bob.ID,
			ParentID: &older.ID,
		}))
	}

	comments, total, err := repo.ListTopLevelByPost(ctx, post.ID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, comments, 2)

	assert.Equal(t, "second", comments[0].Content)
	assert.Equal(t, 0, comments[0].RepliesCount)
	assert.Equal(t, "first", comments[1].Content)
	assert.Equal(t, 2, comments[1].RepliesCount)
	assert.Equal(t, "bob", comments[0].User.Username)
}

func TestCommentRepositoryListReplies(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCommentRepository(db)

	alice := createUser(t, db, "alice")
	post := createPost(t, db, alice.ID, models.PostStatusPublished)

	parent := &models.Comment{Content: "parent", PostID: post.ID, UserID: alice.ID}
	require.NoError(t, repo.Create(ctx, parent))

	base := time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC)
	late := &models.Comment{Content: "late", PostID: post.ID, UserID: alice.ID, ParentID: &parent.ID, CreatedAt: base.Add(time.Hour)}
	require.NoError(t, repo.Create(ctx, late))
	early := &models.Comment{Content: "early", PostID: post.ID, UserID: alice.ID, ParentID: &parent.ID, CreatedAt: base}
	require.NoError(t, repo.Create(ctx, early))

	replies, err := repo.ListReplies(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, replies, 2)
	assert.Equal(t, "early", replies[0].Content)
	assert.Equal(t, "late", replies[1].Content)
}

func TestCommentRepositoryDeleteWithReplies(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCommentRepository(db)

	alice := createUser(t, db, "alice")
	post := createPost(t, db, alice.ID, models.PostStatusPublished)

	parent := &models.Comment{Content: "parent", PostID: post.ID, UserID: alice.ID}
	require.NoError(t, repo.Create(ctx, parent))
	reply := &models.Comment{Content: "reply", PostID: post.ID, UserID: alice.ID, ParentID: &parent.ID}
	require.NoError(t, repo.Create(ctx, reply))
	bystander := &models.Comment{Content: "bystander", PostID: post.ID, UserID: alice.ID}
	require.NoError(t, repo.Create(ctx, bystander))

	require.NoError(t, repo.DeleteWithReplies(ctx, parent.ID))

	var remaining []models.Comment
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "bystander", remaining[0].Content)
}

func TestCommentRepositoryListTopLevelByUser(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCommentRepository(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	post := createPost(t, db, alice.ID, models.PostStatusPublished)

	mine := &models.Comment{Content: "mine", PostID: post.ID, UserID: bob.ID}
	require.NoError(t, repo.Create(ctx, mine))
	// A reply by the same user must not appear in the listing.
	require.NoError(t, repo.Create(ctx, &models.Comment{
		Content: "my reply", PostID: post.ID, UserID: bob.ID, ParentID: &mine.ID,
	}))
	require.NoError(t, repo.Create(ctx, &models.Comment{
		Content: "not mine", PostID: post.ID, UserID: alice.ID,
	}))

	comments, total, err := repo.ListTopLevelByUser(ctx, bob.ID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, comments, 1)
	assert.Equal(t, "mine", comments[0].Content)
	assert.Equal(t, "A post", comments[0].PostTitle)
}
