package model

import (
	"fmt"
	"time"
)

// DateLayout is the wire format of forecast dates.
const DateLayout = "2006-01-02"

// ParseTargetDate parses a YYYY-MM-DD date as midnight UTC.
func ParseTargetDate(raw string) (time.Time, error) {
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTargetDate, raw)
	}
	return t, nil
}

// ForecastResponse is the completion probability for a backlog by a target date.
type ForecastResponse struct {
	TargetDate  string  `json:"target_date"`
	BacklogSize int     `json:"backlog_size"`
	Probability float64 `json:"probability"`
	// HistoryDays is the number of throughput samples the simulation drew from.
	HistoryDays int `json:"history_days"`
	Simulations int `json:"simulations"`
}
