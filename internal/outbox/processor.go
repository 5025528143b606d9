package outbox

import (
	"context"
	"fmt"
	"time"

	"chatterbox/internal/events"
	chatterbox_errors "chatterbox/pkg/errors"
	"chatterbox/pkg/logger"
)

// Processor queues events in memory and hands them to a downstream
// publisher from a single goroutine, so slow brokers never hold up a request.
type Processor struct {
	queue      chan events.Envelope
	publisher  events.Publisher
	logger     *logger.Logger
	interval   time.Duration
	maxRetries int

	drainTimeout time.Duration
}

const defaultDrainTimeout = 2 * time.Second

func NewProcessor(publisher events.Publisher, l *logger.Logger, bufferSize int, interval time.Duration, maxRetries int) *Processor {
	if l == nil {
		l = logger.NewNop()
	}
	return &Processor{
		queue:      make(chan events.Envelope, bufferSize),
		publisher:  publisher,
		logger:     l,
		interval:   interval,
		maxRetries: maxRetries,

		drainTimeout: defaultDrainTimeout,
	}
}

// WithDrainTimeout bounds how long Run keeps delivering queued events after
// its context is cancelled.
func (p *Processor) WithDrainTimeout(d time.Duration) *Processor {
	p.drainTimeout = d
	return p
}

// Publish enqueues event without blocking.
func (p *Processor) Publish(ctx context.Context, event events.Envelope) error {
	select {
	case p.queue <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return fmt.Errorf("outbox: %w", chatterbox_errors.ErrQueueFull)
	}
}

func (p *Processor) Pending() int {
	return len(p.queue)
}

func (p *Processor) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			p.drain()
			return
		}
		select {
		case <-ctx.Done():
			p.drain()
			return
		case e := <-p.queue:
			p.deliver(ctx, e)
		}
	}
}

// drain delivers what is already queued until the queue is empty or the
// drain timeout expires, then logs anything left behind.
func (p *Processor) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), p.drainTimeout)
	defer cancel()

	for ctx.Err() == nil {
		select {
		case e := <-p.queue:
			p.deliver(ctx, e)
		default:
			return
		}
	}
	if pending := p.Pending(); pending > 0 {
		p.logger.Warnf("outbox stopped with %d undelivered events", pending)
	}
}

func (p *Processor) deliver(ctx context.Context, e events.Envelope) {
	var err error
	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				p.logger.Errorf("outbox abandoned %s after %d attempts: %s", e.EventType, attempt, err)
				return
			case <-time.After(p.interval * time.Duration(attempt)):
			}
		}
		if err = p.publisher.Publish(ctx, e); err == nil {
			return
		}
		p.logger.Debugf("outbox attempt %d for %s failed: %s", attempt+1, e.EventType, err)
	}
	p.logger.Errorf("outbox dropped %s after %d attempts: %s", e.EventType, p.maxRetries+1, err)
}
