package model

import "time"

// AlertResponse represents an alert in API responses.
type AlertResponse struct {
	ID        string    `json:"id"`
	SignalID  string    `json:"signal_id"`
	Severity  string    `json:"severity"`
	Title     string    `json:"title"`
	History   string    `json:"history"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToResponse converts an alert to its API representation.
func ToResponse(a *Alert) AlertResponse {
	return AlertResponse{
		ID:        a.ID,
		SignalID:  a.SignalID,
		Severity:  string(a.Severity),
		Title:     a.Title,
		History:   a.History,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
