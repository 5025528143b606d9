package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Port 1 is reserved and refuses connections on loopback.
func unreachable() Config {
	return Config{Host: "127.0.0.1", Port: "1"}
}

func TestNewClient_UsesConfiguredAddress(t *testing.T) {
	client := NewClient(Config{Host: "cache", Port: "6380", DB: 2})
	defer client.Close()

	require.Equal(t, "cache:6380", client.Options().Addr)
	require.Equal(t, 2, client.Options().DB)
}

func TestPing_ReportsUnreachableServer(t *testing.T) {
	client := NewClient(unreachable())
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := Ping(ctx, client)
	require.Error(t, err)
	require.Contains(t, err.Error(), "127.0.0.1:1")
}

func TestPublisher_ReturnsConnectionError(t *testing.T) {
	client := NewClient(unreachable())
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.Error(t, NewPublisher(client).Publish(ctx, "chatterbox:messages", []byte(`{}`)))
}
