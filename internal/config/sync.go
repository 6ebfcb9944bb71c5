package config

import (
	"fmt"
	"time"

	"github.com/Mouadistaa/project-pulse-ai/pkg/retry"
)

// SyncConfig holds sync orchestrator configuration.
type SyncConfig struct {
	// MockMode replaces real adapters with the demo data generator.
	MockMode bool
	// Interval is the period between scheduled passes of the worker.
	Interval time.Duration
	// Concurrency bounds how many workspaces are synced at once.
	Concurrency int
	// LockTTL is the lifetime of a per-workspace pass lock.
	LockTTL time.Duration
	// RedisURL enables the Redis locker when set; empty means in-process locking.
	RedisURL string
	// RetryMaxAttempts is the number of adapter attempts including the first one.
	RetryMaxAttempts int
	// RetryInitialDelay is the delay before the first adapter retry.
	RetryInitialDelay time.Duration
	// RetryMaxDelay caps the adapter retry delay.
	RetryMaxDelay time.Duration
	// RetryJitter is the random fraction applied to each delay.
	RetryJitter float64
}

// LoadSyncConfigFromEnv loads sync configuration from environment variables.
func LoadSyncConfigFromEnv() SyncConfig {
	return SyncConfig{
		MockMode:          GetEnvBool("MOCK_MODE", true),
		Interval:          GetEnvDuration("SYNC_INTERVAL", time.Hour),
		Concurrency:       GetEnvInt("SYNC_CONCURRENCY", 4),
		LockTTL:           GetEnvDuration("SYNC_LOCK_TTL", 10*time.Minute),
		RedisURL:          GetEnv("REDIS_URL", ""),
		RetryMaxAttempts:  GetEnvInt("SYNC_RETRY_MAX_ATTEMPTS", 5),
		RetryInitialDelay: GetEnvDuration("SYNC_RETRY_INITIAL_DELAY", time.Second),
		RetryMaxDelay:     GetEnvDuration("SYNC_RETRY_MAX_DELAY", 20*time.Second),
		RetryJitter:       GetEnvFloat("SYNC_RETRY_JITTER", 0.2),
	}
}

// Validate validates sync configuration.
func (c SyncConfig) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("Interval must be greater than 0")
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("Concurrency must be greater than 0")
	}
	if c.LockTTL <= 0 {
		return fmt.Errorf("LockTTL must be greater than 0")
	}
	if c.RetryMaxAttempts <= 0 {
		return fmt.Errorf("RetryMaxAttempts must be greater than 0")
	}
	if c.RetryInitialDelay < 0 || c.RetryMaxDelay < 0 {
		return fmt.Errorf("retry delays must not be negative")
	}
	if c.RetryJitter < 0 || c.RetryJitter >= 1 {
		return fmt.Errorf("RetryJitter must be in [0, 1), got %v", c.RetryJitter)
	}
	return nil
}

// RetryPolicy returns the adapter retry policy described by this configuration.
func (c SyncConfig) RetryPolicy() retry.Config {
	cfg := retry.DefaultConfig()
	cfg.MaxAttempts = c.RetryMaxAttempts
	cfg.InitialDelay = c.RetryInitialDelay
	cfg.MaxDelay = c.RetryMaxDelay
	cfg.Jitter = c.RetryJitter
	return cfg
}
