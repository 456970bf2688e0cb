// Package server wires the HTTP layer: Fiber app, middleware, routes,
// and JWT auth.
package server

import (
	"os"
	"time"

	"inkwell/internal/cache"
	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/middleware"
	"inkwell/internal/repository"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds the Fiber app and all injected dependencies.
type Server struct {
	app   *fiber.App
	cfg   *config.Config
	db    *gorm.DB
	redis *redis.Client

	userRepo repository.UserRepository

	users    service.UserService
	posts    service.PostService
	comments service.CommentService
	admin    service.AdminService
}

// NewServer connects the database and Redis from config and builds a
// fully wired server.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	cache.InitRedis(cfg.RedisURL, middleware.Logger)
	return NewServerWithDeps(cfg, db, cache.GetClient()), nil
}

// NewServerWithDeps builds the server around explicit dependencies.
// Tests use it to inject an in-memory database and a nil or fake Redis
// client.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "inkwell",
		ErrorHandler: errorHandler,
	})

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	s := &Server{
		app:      app,
		cfg:      cfg,
		db:       db,
		redis:    rdb,
		userRepo: userRepo,
		users:    service.NewUserService(userRepo),
		posts:    service.NewPostService(postRepo),
		comments: service.NewCommentService(commentRepo, postRepo),
		admin:    service.NewAdminService(userRepo, postRepo, commentRepo, statsRepo),
	}

	s.SetupMiddleware()
	s.SetupRoutes()
	return s
}

// App exposes the underlying Fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{"message": message})
}

// SetupMiddleware installs the global middleware chain. Order matters:
// recover first, then request identity, then observability, then the
// protective layers.
func (s *Server) SetupMiddleware() {
	s.app.Use(recover.New())
	s.app.Use(requestid.New())
	s.app.Use(middleware.ContextMiddleware())

	// The Prometheus middleware registers collectors in the default
	// registry, which panics on re-registration when tests build
	// multiple servers.
	if os.Getenv("APP_ENV") != "test" {
		prom := middleware.InitMetrics("inkwell")
		prom.RegisterAt(s.app, "/metrics")
		s.app.Use(middleware.MetricsMiddleware(prom))
	}

	s.app.Use(helmet.New())
	s.app.Use(middleware.StructuredLogger())

	allowOrigins := s.cfg.AllowedOrigins
	if allowOrigins == "" {
		allowOrigins = "*"
	}
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	s.app.Use(limiter.New(limiter.Config{
		Max:        300,
		Expiration: time.Minute,
	}))
}

// SetupRoutes registers the HTTP surface under /api, plus health and
// metrics endpoints at the root.
func (s *Server) SetupRoutes() {
	s.app.Get("/health/live", s.handleHealthLive)
	s.app.Get("/health/ready", s.handleHealthReady)

	api := s.app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", middleware.RateLimit(s.redis, 5, time.Minute, "register"), s.handleRegister)
	auth.Post("/login", middleware.RateLimit(s.redis, 10, time.Minute, "login"), s.handleLogin)

	users := api.Group("/users")
	users.Get("/me", s.AuthRequired(), s.handleGetMe)
	users.Put("/me", s.AuthRequired(), s.handleUpdateMe)
	users.Get("/:id", s.handleGetUser)

	posts := api.Group("/posts")
	posts.Get("/", s.handleListPosts)
	posts.Post("/", s.AuthRequired(), middleware.RateLimit(s.redis, 20, time.Minute, "create-post"), s.handleCreatePost)
	posts.Get("/user/:userId", s.handleListUserPosts)
	posts.Get("/:id", s.handleGetPost)
	posts.Put("/:id", s.AuthRequired(), s.handleUpdatePost)
	posts.Delete("/:id", s.AuthRequired(), s.handleDeletePost)
	posts.Post("/:id/like", s.AuthRequired(), s.handleToggleLike)
	posts.Get("/:id/like", s.AuthRequired(), s.handleGetLikeStatus)

	comments := api.Group("/comments")
	comments.Get("/post/:postId", s.handleListPostComments)
	comments.Get("/comment/:commentId/replies", s.handleListReplies)
	comments.Get("/user/:userId", s.handleListUserComments)
	comments.Post("/", s.AuthRequired(), middleware.RateLimit(s.redis, 30, time.Minute, "create-comment"), s.handleCreateComment)
	comments.Put("/:id", s.AuthRequired(), s.handleUpdateComment)
	comments.Delete("/:id", s.AuthRequired(), s.handleDeleteComment)

	admin := api.Group("/admin", s.AuthRequired(), s.AdminRequired())
	admin.Get("/dashboard", s.handleAdminDashboard)
	admin.Get("/users", s.handleAdminListUsers)
	admin.Get("/posts", s.handleAdminListPosts)
	admin.Get("/comments", s.handleAdminListComments)
	admin.Get("/analytics", s.handleAdminAnalytics)
	admin.Put("/users/:id/role", s.handleAdminSetRole)
	admin.Delete("/users/:id", s.handleAdminDeleteUser)
}

func (s *Server) handleHealthLive(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// handleHealthReady checks the database; Redis is optional and does not
// gate readiness.
func (s *Server) handleHealthReady(c *fiber.Ctx) error {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.UserContext())
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	return s.app.Listen(":" + s.cfg.Port)
}

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
