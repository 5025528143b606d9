package repository

import (
	"context"

	"chatterbox/internal/domain/message"
)

// MessageRepository is an append-only, ordered message log.
type MessageRepository interface {
	// Append adds m to the end of the log and returns the log as it stood right after.
	Append(ctx context.Context, m message.Message) ([]message.Message, error)
	// All returns every message in insertion order.
	All(ctx context.Context) ([]message.Message, error)
	Len() int
}
