package model

import "time"

// SignalResponse represents a risk signal in API responses.
type SignalResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Score       float64   `json:"score"`
	Explanation string    `json:"explanation"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToResponse converts a signal to its API representation.
func ToResponse(s *Signal) SignalResponse {
	return SignalResponse{
		ID:          s.ID,
		Type:        string(s.Type),
		Score:       s.Score,
		Explanation: s.Explanation,
		CreatedAt:   s.CreatedAt,
	}
}
