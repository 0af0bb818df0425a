package server

import (
	"backend-focusflow/internal/archive"
	"backend-focusflow/internal/auth"
	"backend-focusflow/internal/config"
	"backend-focusflow/internal/settings"
	"backend-focusflow/internal/stats"
	"backend-focusflow/internal/stream"
	"backend-focusflow/internal/timer"
	"backend-focusflow/internal/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App    *fiber.App
	Cfg    config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Stream *stream.Hub
	Timer  *timer.Service
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:    app,
		Cfg:    cfg,
		DB:     db,
		Redis:  redisClient,
		Stream: stream.NewHub(redisClient),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)

	userSvc := user.NewService(s.DB)
	archiveSvc := archive.NewService(s.DB)
	s.Timer = timer.NewService(s.DB, s.Stream)

	auth.RegisterRoutes(s.App.Group("/auth"), auth.NewService(s.Cfg.JWTSecret, s.DB))
	user.RegisterRoutes(s.App.Group("/users"), userSvc, jwtMiddleware)
	timer.RegisterRoutes(s.App.Group("/active-timer-session"), s.Timer, jwtMiddleware)
	archive.RegisterRoutes(s.App.Group("/work-sessions"), archiveSvc, userSvc, jwtMiddleware)
	stats.RegisterRoutes(s.App.Group("/stats"), stats.NewService(archiveSvc), userSvc, jwtMiddleware)
	settings.RegisterRoutes(s.App.Group("/timer-settings"), settings.NewService(s.DB), jwtMiddleware)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)
}
