package models

import (
	"time"

	"github.com/google/uuid"
)

// DownloadEventDB is an append-only analytics record. Events are never
// mutated or read back by the API; they feed the Kafka analytics topic.
type DownloadEventDB struct {
	EventID   uuid.UUID `json:"id" db:"event_id"`
	Document  string    `json:"document" db:"document"`   // e.g. "resume"
	Source    string    `json:"source" db:"source"`       // UI surface that triggered the download
	Referrer  string    `json:"referrer" db:"referrer"`   // HTTP referrer, if any
	IPAddress string    `json:"-" db:"ip_address"`
	UserAgent string    `json:"-" db:"user_agent"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
