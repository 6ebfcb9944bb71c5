package config

import "fmt"

// Config holds application configuration.
type Config struct {
	// Server holds HTTP server configuration.
	Server ServerConfig
	// Logger holds logger configuration.
	Logger LoggerConfig
	// Engine holds analytics engine configuration.
	Engine EngineConfig
	// Sync holds sync orchestrator configuration.
	Sync SyncConfig
	// GinMode is the Gin framework mode (debug, release, test).
	GinMode string
}

// LoadFromEnv loads all configuration from environment variables.
func LoadFromEnv() Config {
	return Config{
		Server:  LoadServerConfigFromEnv(),
		Logger:  LoadLoggerConfigFromEnv(),
		Engine:  LoadEngineConfigFromEnv(),
		Sync:    LoadSyncConfigFromEnv(),
		GinMode: GetEnv("GIN_MODE", "release"),
	}
}

// Validate validates every section and the Gin mode.
func (c Config) Validate() error {
	sections := []struct {
		name     string
		validate func() error
	}{
		{"server", c.Server.Validate},
		{"logger", c.Logger.Validate},
		{"engine", c.Engine.Validate},
		{"sync", c.Sync.Validate},
	}
	for _, section := range sections {
		if err := section.validate(); err != nil {
			return fmt.Errorf("%s config validation failed: %w", section.name, err)
		}
	}

	switch c.GinMode {
	case "debug", "release", "test":
		return nil
	default:
		return fmt.Errorf("invalid GIN_MODE: %s (must be: debug, release, test)", c.GinMode)
	}
}
