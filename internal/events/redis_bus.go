package events

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ChannelPublisher is the transport RedisEventBus writes to.
type ChannelPublisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// ChannelSubscriber is the transport Tail reads from.
type ChannelSubscriber interface {
	Subscribe(ctx context.Context, channels []string, handler func(channel string, payload []byte)) error
}

// RedisEventBus publishes events as JSON on a single Redis Pub/Sub channel.
type RedisEventBus struct {
	publisher ChannelPublisher
	channel   string
}

func NewRedisEventBus(publisher ChannelPublisher, channel string) *RedisEventBus {
	return &RedisEventBus{publisher: publisher, channel: channel}
}

func (b *RedisEventBus) Channel() string {
	return b.channel
}

func (b *RedisEventBus) Publish(ctx context.Context, event Envelope) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := b.publisher.Publish(ctx, b.channel, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", b.channel, err)
	}
	return nil
}

// Tail decodes every event arriving on channel and hands it to handle.
// Payloads that are not events are passed to onError and skipped.
func Tail(ctx context.Context, sub ChannelSubscriber, channel string, handle func(Envelope), onError func(error)) error {
	return sub.Subscribe(ctx, []string{channel}, func(_ string, payload []byte) {
		var event Envelope
		if err := json.Unmarshal(payload, &event); err != nil {
			if onError != nil {
				onError(fmt.Errorf("failed to decode event: %w", err))
			}
			return
		}
		handle(event)
	})
}
