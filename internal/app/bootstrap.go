package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"work-wizard/internal/config"
	"work-wizard/internal/database"
	"work-wizard/internal/database/migration"
	"work-wizard/internal/database/postgres"
	"work-wizard/internal/delivery/http/middleware"
	"work-wizard/internal/delivery/http/routes"
	"work-wizard/internal/infrastructure/cache"
	"work-wizard/internal/infrastructure/queue"
	"work-wizard/internal/notify"
	"work-wizard/internal/pkg/logger"
	"work-wizard/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber  *fiber.App
	Logger *slog.Logger
	DB     database.DB
	Hub    *ws.Hub
}

// Bootstrap assembles the server process: logger, database (with
// migrations), cache, event bus, websocket hub, and the fiber app with its
// route graph. The returned cleanup closes what was opened.
func Bootstrap(ctx context.Context, cfg config.Config) (*App, func() error, error) {
	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})

	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	if err := (migration.Runner{Dir: cfg.Database.MigrationsDir}).Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	redisCache := cache.NewRedis(cfg.Redis, log)

	// The event bus is optional; without a broker the API still serves, it
	// just stops emitting notifications.
	var queueClient *queue.Client
	if cfg.RabbitMQ.URL != "" {
		queueClient, err = queue.NewClient(cfg.RabbitMQ, log)
		if err != nil {
			log.Warn("rabbitmq unavailable, events disabled", "error", err)
			queueClient = nil
		}
	}

	hub := ws.NewHub(log)
	go hub.Run()

	sinks := notify.Fanout{ws.NewFeed(hub, log)}
	if queueClient != nil {
		sinks = append(sinks, notify.NewQueuePublisher(queueClient, log))
	}

	f := fiber.New(fiber.Config{
		AppName:     cfg.App.AppName,
		ReadTimeout: 30 * time.Second,
	})

	f.Use(middleware.NewErrorMiddleware(log).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(log).Middleware())

	routes.Register(f, routes.Deps{
		Config: cfg,
		DB:     db,
		Cache:  redisCache,
		Events: sinks,
		Hub:    hub,
		Logger: log,
	})

	cleanup := func() error {
		if queueClient != nil {
			_ = queueClient.Close()
		}
		if redisCache != nil {
			_ = redisCache.Close()
		}
		return db.Close()
	}

	return &App{Fiber: f, Logger: log, DB: db, Hub: hub}, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
