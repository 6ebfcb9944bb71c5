// Package bootstrap loads configuration and opens the shared resources of the binaries.
package bootstrap

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	appConfig "github.com/Mouadistaa/project-pulse-ai/internal/config"
	"github.com/Mouadistaa/project-pulse-ai/internal/database/database"
	"github.com/Mouadistaa/project-pulse-ai/internal/database/migrate"
	"github.com/Mouadistaa/project-pulse-ai/internal/lock"
	"github.com/Mouadistaa/project-pulse-ai/pkg/logger"
)

// Env holds what every binary needs after startup.
type Env struct {
	Config appConfig.Config
	Logger *zap.SugaredLogger
	DB     *gorm.DB
	Locker lock.Locker

	closeLocker func() error
}

// Open loads and validates configuration from the environment, builds the
// logger, connects to the database, applies migrations and creates the locker.
func Open() (*Env, error) {
	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.New(log)
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrate.Migrate(db, log); err != nil {
		_ = database.Close(db)
		_ = log.Sync()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	locker, closeLocker, err := lock.New(cfg.Sync.RedisURL, log)
	if err != nil {
		_ = database.Close(db)
		_ = log.Sync()
		return nil, fmt.Errorf("failed to create locker: %w", err)
	}
	log.Infow("locker ready", "redis", cfg.Sync.RedisURL != "")

	return &Env{
		Config:      cfg,
		Logger:      log,
		DB:          db,
		Locker:      locker,
		closeLocker: closeLocker,
	}, nil
}

// Close releases the locker and database connection and flushes the logger.
func (e *Env) Close() error {
	var errs []error
	if err := e.closeLocker(); err != nil {
		errs = append(errs, fmt.Errorf("close locker: %w", err))
	}
	if err := database.Close(e.DB); err != nil {
		errs = append(errs, fmt.Errorf("close database: %w", err))
	}
	_ = e.Logger.Sync()
	return errors.Join(errs...)
}
