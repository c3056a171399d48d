package entities

import (
	"time"
)

// SearchEvent represents a single search interaction. Events are fire-and-forget:
// they feed the recent-searches history and are not retained as a log.
type SearchEvent struct {
	ID            string    `json:"id"`
	Query         string    `json:"query"`
	ResultCount   int       `json:"result_count"`
	ClickedResult string    `json:"clicked_result,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
