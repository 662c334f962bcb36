package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact message statuses. Transitions are unconstrained: any status
// may follow any other, including re-opening an archived message.
const (
	ContactStatusUnread   = "unread"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusArchived = "archived"
	ContactStatusSpam     = "spam"
)

// ContactStatuses lists every valid contact message status.
var ContactStatuses = []string{
	ContactStatusUnread,
	ContactStatusRead,
	ContactStatusReplied,
	ContactStatusArchived,
	ContactStatusSpam,
}

// IsValidContactStatus reports whether s is a known contact status.
func IsValidContactStatus(s string) bool {
	for _, v := range ContactStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ContactMessageDB represents a contact form submission in the database
type ContactMessageDB struct {
	MessageID uuid.UUID `json:"id" db:"message_id"`         // Primary key
	Name      string    `json:"name" db:"name"`             // Sender name
	Email     string    `json:"email" db:"email"`           // Sender email
	Subject   string    `json:"subject" db:"subject"`       // Optional subject
	Message   string    `json:"message" db:"message"`       // Message body
	Status    string    `json:"status" db:"status"`         // One of ContactStatuses
	Notes     string    `json:"notes" db:"notes"`           // Admin notes
	IPAddress string    `json:"-" db:"ip_address"`          // Captured client IP
	UserAgent string    `json:"-" db:"user_agent"`          // Captured user agent
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ContactFilter carries list filters and pagination for contact messages.
type ContactFilter struct {
	Status *string
	Page   int
	Limit  int
}
