package services

import (
	"context"
	"fmt"
	"time"

	"chatterbox/internal/domain/message"
	"chatterbox/internal/events"
	"chatterbox/internal/repository"
	chatterbox_errors "chatterbox/pkg/errors"
	"chatterbox/pkg/logger"
)

// MaxArrayLen is the largest JSON array accepted as a single message.
const MaxArrayLen = 1

type MessageService struct {
	messageRepo repository.MessageRepository
	publisher   events.Publisher
	logger      *logger.Logger
	now         func() time.Time
}

func NewMessageService(messageRepo repository.MessageRepository, publisher events.Publisher, l *logger.Logger) *MessageService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	if l == nil {
		l = logger.NewNop()
	}
	return &MessageService{
		messageRepo: messageRepo,
		publisher:   publisher,
		logger:      l,
		now:         time.Now,
	}
}

func (s *MessageService) List(ctx context.Context) ([]message.Message, error) {
	return s.messageRepo.All(ctx)
}

// Post validates body and appends it. On a validation error it still
// returns the current messages so callers can answer with them.
func (s *MessageService) Post(ctx context.Context, body []byte) ([]message.Message, error) {
	m, err := message.Parse(body)
	if err != nil {
		return s.current(ctx, err)
	}

	if n, ok := m.ArrayLen(); ok && n > MaxArrayLen {
		return s.current(ctx, fmt.Errorf("array of %d elements: %w", n, chatterbox_errors.ErrRejectedPayload))
	}

	messages, err := s.messageRepo.Append(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("append message: %w", err)
	}

	event := events.NewMessageCreated(m, len(messages), s.now())
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithContext(ctx).Warnf("message stored but event not published: %s", err)
	}
	return messages, nil
}

func (s *MessageService) current(ctx context.Context, cause error) ([]message.Message, error) {
	messages, err := s.messageRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, cause
}
