package seed

import (
	"context"
	"fmt"

	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls how much data a seeding pass creates.
type Options struct {
	Users           int
	PostsPerUser    int
	CommentsPerPost int
	Password        string
}

// DefaultOptions is a medium-sized development dataset. Every seeded
// account shares the same password.
var DefaultOptions = Options{
	Users:           20,
	PostsPerUser:    5,
	CommentsPerPost: 4,
	Password:        "password1",
}

// Run populates the database: users, an admin account, posts, top-level
// comments with a few replies, and likes.
func Run(ctx context.Context, db *gorm.DB, opts Options) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(opts.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing seed password: %w", err)
	}

	users := repository.NewUserRepository(db)
	posts := repository.NewPostRepository(db)
	comments := repository.NewCommentRepository(db)

	admin := &models.User{
		Username: "admin",
		Email:    "admin@inkwell.dev",
		Password: string(hash),
		FullName: "Site Admin",
		Role:     models.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return fmt.Errorf("creating admin: %w", err)
	}

	seeded := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		u := NewUser(i, string(hash))
		if err := users.Create(ctx, u); err != nil {
			return fmt.Errorf("creating user %d: %w", i, err)
		}
		seeded = append(seeded, u)
	}

	for _, u := range seeded {
		for p := 0; p < opts.PostsPerUser; p++ {
			post := NewPost(u.ID)
			if err := posts.Create(ctx, post); err != nil {
				return fmt.Errorf("creating post for user %d: %w", u.ID, err)
			}
			if post.Status != models.PostStatusPublished {
				continue
			}

			for c := 0; c < opts.CommentsPerPost; c++ {
				author := seeded[gofakeit.Number(0, len(seeded)-1)]
				comment := NewComment(post.ID, author.ID, nil)
				if err := comments.Create(ctx, comment); err != nil {
					return fmt.Errorf("creating comment: %w", err)
				}
				if gofakeit.Number(1, 3) == 1 {
					replier := seeded[gofakeit.Number(0, len(seeded)-1)]
					if err := comments.Create(ctx, NewComment(post.ID, replier.ID, &comment.ID)); err != nil {
						return fmt.Errorf("creating reply: %w", err)
					}
				}
			}

			likers := gofakeit.Number(0, len(seeded)/2)
			for l := 0; l < likers; l++ {
				liker := seeded[gofakeit.Number(0, len(seeded)-1)]
				if _, err := posts.Like(ctx, liker.ID, post.ID); err != nil {
					return fmt.Errorf("creating like: %w", err)
				}
			}
		}
	}

	return nil
}
