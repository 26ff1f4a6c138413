package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"work-wizard/internal/config"
	"work-wizard/internal/infrastructure/queue"
	"work-wizard/internal/notify"
	"work-wizard/internal/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.RabbitMQ.URL == "" {
		log.Fatal("RABBITMQ_URL is required for the notifier")
	}

	logg := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})

	queueClient, err := queue.NewClient(cfg.RabbitMQ, logg)
	if err != nil {
		logg.Error("connect rabbitmq", "error", err)
		os.Exit(1)
	}
	defer queueClient.Close()

	mailer := notify.NewSMTPMailer(cfg.SMTP)
	notifier := notify.NewNotifier(queueClient, mailer, cfg.App.DashboardURL, logg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := notifier.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logg.Error("notifier stopped", "error", err)
		os.Exit(1)
	}
	logg.Info("notifier stopped")
}
