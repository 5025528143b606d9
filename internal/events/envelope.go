package events

import (
	"time"

	"chatterbox/internal/domain/message"
)

type Envelope struct {
	EventType  string          `json:"type"`
	Message    message.Message `json:"message"`
	Count      int             `json:"count"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewMessageCreated describes m having become the count-th stored message.
func NewMessageCreated(m message.Message, count int, at time.Time) Envelope {
	return Envelope{
		EventType:  EventTypeMessageCreated,
		Message:    m,
		Count:      count,
		OccurredAt: at.UTC(),
	}
}
