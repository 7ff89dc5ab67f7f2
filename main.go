package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	webconfig "github.com/farmquest-india/farmquest/backend/config"
	"github.com/farmquest-india/farmquest/backend/handlers"
	"github.com/farmquest-india/farmquest/backend/middleware"
	webservices "github.com/farmquest-india/farmquest/backend/services"
	"github.com/farmquest-india/farmquest/farmquest"
	"github.com/farmquest-india/farmquest/farmquest/localstore"
	"github.com/farmquest-india/farmquest/farmquest/logger"
	"github.com/farmquest-india/farmquest/farmquest/seed"
	"github.com/farmquest-india/farmquest/farmquest/services"
	"github.com/farmquest-india/farmquest/farmquest/session"
	"github.com/farmquest-india/farmquest/farmquest/store"
)

var (
	version = "dev"
	commit  = "unknown"

	shouldDebug    = flag.Bool("debug", false, "enable debug logging and development cookie flags")
	configPathFlag = flag.String("config", "config.toml", "path to config file")
)

func main() {
	flag.Parse()

	logLevel := slog.LevelInfo
	if *shouldDebug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(logger.NewHandler(logLevel)))

	slog.Info("Starting FarmQuest API",
		slog.String("version", version),
		slog.String("commit", commit))

	cfg, err := farmquest.LoadConfig(*configPathFlag)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	webCfg := webconfig.NewWebAppConfig(cfg, *shouldDebug)

	// Core state: seeded collections behind the single-writer store.
	st := store.New(store.State{
		Users:        seed.Users(),
		Quests:       seed.Quests(),
		Achievements: seed.Achievements(),
		Articles:     seed.Articles(),
	})

	local, err := localstore.New(cfg.Storage.DataDir)
	if err != nil {
		slog.Error("Failed to open data dir", slog.String("error", err.Error()))
		os.Exit(1)
	}

	engine := services.NewAchievementEngine(st)

	sessionOpts := []session.Option{session.WithEvaluator(engine)}
	if cfg.Session.LoginDelayMS > 0 || cfg.Session.RegisterDelayMS > 0 {
		sessionOpts = append(sessionOpts, session.WithAuthDelays(
			time.Duration(cfg.Session.LoginDelayMS)*time.Millisecond,
			time.Duration(cfg.Session.RegisterDelayMS)*time.Millisecond,
		))
	}
	manager := session.NewManager(st, local, sessionOpts...)

	if err := manager.Restore(); err != nil {
		slog.Warn("Session restore failed", slog.String("error", err.Error()))
	}

	photos, err := services.NewPhotoService(cfg.Spaces)
	if err != nil {
		slog.Error("Failed to init photo storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if photos == nil {
		slog.Info("Photo storage disabled, no spaces key configured")
	}

	webApp := &handlers.WebApp{
		Config:         webCfg,
		Store:          st,
		Session:        manager,
		SessionService: webservices.NewSessionService(webCfg),
		Leaderboard:    services.NewLeaderboardService(st),
		Search:         services.NewSearchService(st),
		Photos:         photos,
		Stats:          services.NewStatsService(st),
		Version:        version,
		Commit:         commit,
	}

	app := fiber.New(fiber.Config{
		AppName:      "FarmQuest API",
		ServerHeader: "FarmQuest",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.SecurityHeaders())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Web.AllowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization,X-Requested-With,Cookie",
		AllowCredentials: true,
	}))
	app.Use(middleware.LoggingMiddleware())

	setupRoutes(app, webApp)

	address := fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port)
	slog.Info("Starting server", slog.String("address", address))

	go func() {
		if err := app.Listen(address); err != nil {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	slog.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		slog.Error("Server shutdown error", slog.String("error", err.Error()))
	}
	slog.Info("Shutdown complete")
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, webApp *handlers.WebApp) {
	app.Get("/health", handlers.HealthCheck(webApp))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "FarmQuest API",
			"version": webApp.Version,
			"status":  "running",
		})
	})

	// Authentication routes
	auth := app.Group("/auth")
	auth.Post("/login", middleware.AuthRateLimit(), handlers.Login(webApp))
	auth.Post("/register", middleware.AuthRateLimit(), handlers.Register(webApp))
	auth.Post("/logout", handlers.Logout(webApp))
	auth.Get("/me", handlers.ValidateSession(webApp))
	app.Get("/api/auth/validate", handlers.ValidateSession(webApp))

	// API routes for the web client
	api := app.Group("/api")
	api.Use(middleware.APIRateLimit())

	// Registration form metadata
	api.Get("/meta", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"districts": seed.Districts,
			"crops":     seed.Crops,
		})
	})

	// Public reads
	api.Get("/quests", handlers.QuestsList(webApp))
	api.Get("/quests/:id", handlers.QuestsDetail(webApp))
	api.Get("/achievements", handlers.AchievementsList(webApp))
	api.Get("/achievements/:id", handlers.AchievementsDetail(webApp))
	api.Get("/articles", handlers.ArticlesList(webApp))
	api.Get("/leaderboard", handlers.LeaderboardTop(webApp))
	api.Get("/leaderboard/:id/rank", handlers.LeaderboardRank(webApp))
	api.Get("/search", handlers.SearchAll(webApp))

	// Authenticated actions
	me := api.Group("", middleware.AuthRequired(webApp))
	me.Get("/profile", handlers.Profile(webApp))
	me.Post("/quests/:id/start", handlers.QuestsStart(webApp))
	me.Post("/quests/:id/complete", handlers.QuestsComplete(webApp))
	me.Patch("/quests/:id/progress", handlers.QuestsProgress(webApp))
	me.Post("/quests/:id/photos", middleware.UploadRateLimit(), handlers.QuestsUploadPhotos(webApp))
	me.Post("/achievements/:id/unlock", handlers.AchievementsUnlock(webApp))
	me.Get("/articles/bookmarked", handlers.ArticlesBookmarked(webApp))
	me.Post("/articles/:id/bookmark", handlers.ArticlesBookmark(webApp))
	me.Get("/notifications", handlers.NotificationsList(webApp))
	me.Post("/notifications", handlers.NotificationsCreate(webApp))
	me.Post("/notifications/:id/read", handlers.NotificationsMarkRead(webApp))

	// Article detail goes after the bookmarked route so the static segment
	// is matched first.
	api.Get("/articles/:id", handlers.ArticlesDetail(webApp))

	// Protected admin routes
	admin := app.Group("/admin")
	admin.Use(middleware.AuthRequired(webApp))
	admin.Use(middleware.AdminRequired(webApp))
	admin.Get("/stats", middleware.AuditLogMiddleware("view_stats"), handlers.AdminStats(webApp))
	admin.Get("/users", handlers.AdminUsersList(webApp))
	admin.Get("/users/:id", handlers.AdminUsersDetail(webApp))

	app.Use(func(c *fiber.Ctx) error {
		slog.Warn("No route matched for request",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("ip", c.IP()),
		)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error": fiber.Map{
				"code":    fiber.StatusNotFound,
				"message": "Route not found",
			},
		})
	})
}
