package config

import "fmt"

// EngineConfig holds analytics engine configuration.
type EngineConfig struct {
	// WindowDays is the trailing aggregation window in days.
	WindowDays int
	// ForecastSimulations is the number of Monte Carlo trials per forecast.
	ForecastSimulations int
	// ForecastHistoryDays is how many daily throughput values feed a forecast.
	ForecastHistoryDays int
	// MetricsHistoryLimit is the number of snapshots returned by the metrics listing.
	MetricsHistoryLimit int
	// RisksHistoryLimit is the number of signals returned by the risks listing.
	RisksHistoryLimit int
}

// LoadEngineConfigFromEnv loads engine configuration from environment variables.
func LoadEngineConfigFromEnv() EngineConfig {
	return EngineConfig{
		WindowDays:          GetEnvInt("WINDOW_DAYS", 7),
		ForecastSimulations: GetEnvInt("FORECAST_SIMULATIONS", 1000),
		ForecastHistoryDays: GetEnvInt("FORECAST_HISTORY_DAYS", 30),
		MetricsHistoryLimit: GetEnvInt("METRICS_HISTORY_LIMIT", 30),
		RisksHistoryLimit:   GetEnvInt("RISKS_HISTORY_LIMIT", 10),
	}
}

// Validate validates engine configuration.
func (c EngineConfig) Validate() error {
	if c.WindowDays <= 0 {
		return fmt.Errorf("WindowDays must be greater than 0")
	}
	if c.ForecastSimulations <= 0 {
		return fmt.Errorf("ForecastSimulations must be greater than 0")
	}
	if c.ForecastHistoryDays <= 0 {
		return fmt.Errorf("ForecastHistoryDays must be greater than 0")
	}
	if c.MetricsHistoryLimit <= 0 {
		return fmt.Errorf("MetricsHistoryLimit must be greater than 0")
	}
	if c.RisksHistoryLimit <= 0 {
		return fmt.Errorf("RisksHistoryLimit must be greater than 0")
	}
	return nil
}
