package models

import (
	"encoding/json"
	"time"
)

// SavedSchedule is a flat schedule document persisted under a unique slug.
type SavedSchedule struct {
	ID         int64           `json:"id"`
	Slug       string          `json:"slug"`
	Name       string          `json:"name"`
	Document   json.RawMessage `json:"document"`
	StorageKey *string         `json:"storage_key,omitempty"`
	PublicURL  *string         `json:"public_url,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
