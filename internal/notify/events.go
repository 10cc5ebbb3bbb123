package notify

import "time"

type EventType string

const (
	EventBookCreated EventType = "book_created"
	EventBookUpdated EventType = "book_updated"
	EventBookDeleted EventType = "book_deleted"
	EventLogCreated  EventType = "log_created"
)

// Event is what connected clients receive for every successful mutation.
// Payload carries the same public projection the HTTP response used.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}
