package repository

import (
	"context"
	"sync"

	"chatterbox/internal/domain/message"
)

type MemoryMessageRepository struct {
	mu       sync.RWMutex
	messages []message.Message
}

func NewMessageRepository() *MemoryMessageRepository {
	return &MemoryMessageRepository{messages: []message.Message{}}
}

func (r *MemoryMessageRepository) Append(ctx context.Context, m message.Message) ([]message.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, append(message.Message(nil), m...))
	return message.Clone(r.messages), nil
}

func (r *MemoryMessageRepository) All(ctx context.Context) ([]message.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return message.Clone(r.messages), nil
}

func (r *MemoryMessageRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.messages)
}
