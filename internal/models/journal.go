package models

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry records one facade call: what was asked and how it ended.
// Response bodies are never stored.
type JournalEntry struct {
	ID          uuid.UUID `json:"id"`
	Operation   string    `json:"operation"`
	LookupKey   string    `json:"lookupKey"`
	Outcome     string    `json:"outcome"`
	ResultCount int       `json:"resultCount"`
	DurationMs  int64     `json:"durationMs"`
	CreatedAt   time.Time `json:"createdAt"`
}
