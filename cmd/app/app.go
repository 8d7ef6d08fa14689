package app

import (
	"context"
	"os"
	"strings"

	"blogAPI/internal/config"
	"blogAPI/internal/database"
	"blogAPI/internal/repository"
	"blogAPI/internal/service"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the process logger from LOG_LEVEL and LOG_FORMAT.
// An unknown level falls back to info.
func NewLogger(cfg config.Log) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if strings.EqualFold(cfg.Format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logger.Warnf("unknown log level %q, using info", cfg.Level)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}

func App(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(ctx, cfg, log)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg)

	return db, repo, services
}
