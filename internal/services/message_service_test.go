package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"chatterbox/internal/events"
	"chatterbox/internal/repository"
	chatterbox_errors "chatterbox/pkg/errors"

	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	events []events.Envelope
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Envelope) error {
	p.events = append(p.events, e)
	return p.err
}

func newService(p events.Publisher) (*MessageService, *repository.MemoryMessageRepository) {
	repo := repository.NewMessageRepository()
	svc := NewMessageService(repo, p, nil)
	svc.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return svc, repo
}

func TestPost_AppendsAndPublishes(t *testing.T) {
	req := require.New(t)
	publisher := &recordingPublisher{}
	svc, repo := newService(publisher)

	messages, err := svc.Post(context.Background(), []byte(`{"username":"Jono","text":"Do my bidding!"}`))
	req.NoError(err)
	req.Len(messages, 1)
	req.JSONEq(`{"username":"Jono","text":"Do my bidding!"}`, string(messages[0]))
	req.Equal(1, repo.Len())

	req.Len(publisher.events, 1)
	req.Equal(events.EventTypeMessageCreated, publisher.events[0].EventType)
	req.Equal(1, publisher.events[0].Count)
}

func TestPost_SingleElementArrayIsAccepted(t *testing.T) {
	svc, repo := newService(nil)

	messages, err := svc.Post(context.Background(), []byte(`[{"text":"hi"}]`))
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Equal(t, `[{"text":"hi"}]`, string(messages[0]))
	require.Equal(t, 1, repo.Len())
}

func TestPost_RejectsMultiElementArray(t *testing.T) {
	req := require.New(t)
	publisher := &recordingPublisher{}
	svc, repo := newService(publisher)
	_, err := svc.Post(context.Background(), []byte(`{"text":"first"}`))
	req.NoError(err)

	messages, err := svc.Post(context.Background(), []byte(`[1,2]`))
	req.ErrorIs(err, chatterbox_errors.ErrRejectedPayload)
	req.Len(messages, 1)
	req.Equal(1, repo.Len())
	req.Len(publisher.events, 1)
}

func TestPost_MalformedBodyReturnsCurrentMessages(t *testing.T) {
	req := require.New(t)
	svc, repo := newService(nil)

	messages, err := svc.Post(context.Background(), []byte(`{"text":`))
	req.ErrorIs(err, chatterbox_errors.ErrMalformedBody)
	req.NotNil(messages)
	req.Empty(messages)
	req.Equal(0, repo.Len())
}

func TestPost_PublishFailureDoesNotFailRequest(t *testing.T) {
	svc, repo := newService(&recordingPublisher{err: errors.New("redis down")})

	messages, err := svc.Post(context.Background(), []byte(`"hello"`))
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Equal(t, 1, repo.Len())
}

func TestList_ReturnsInsertionOrder(t *testing.T) {
	req := require.New(t)
	svc, _ := newService(nil)
	for _, body := range []string{`{"n":1}`, `{"n":2}`, `{"n":3}`} {
		_, err := svc.Post(context.Background(), []byte(body))
		req.NoError(err)
	}

	messages, err := svc.List(context.Background())
	req.NoError(err)
	req.Len(messages, 3)
	req.Equal(`{"n":1}`, string(messages[0]))
	req.Equal(`{"n":3}`, string(messages[2]))
}
