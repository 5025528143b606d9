// Command tail prints every message event published by the api server.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"chatterbox/config"
	"chatterbox/internal/events"
	"chatterbox/internal/redis"
	"chatterbox/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	l := logger.New(cfg.AppMode)
	defer l.Sync()

	client := redis.NewClient(redis.Config{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := redis.Ping(ctx, client); err != nil {
		l.Errorf("Cannot tail events: %s", err)
		return
	}

	l.Infof("Tailing %s", cfg.EventsChannel)
	err := events.Tail(ctx, redis.NewSubscriber(client), cfg.EventsChannel,
		func(e events.Envelope) {
			l.Infof("%s #%d at %s: %s", e.EventType, e.Count, e.OccurredAt.Format("15:04:05"), string(e.Message))
		},
		func(err error) {
			l.Warnf("%s", err)
		})
	if err != nil {
		l.Errorf("Tail stopped: %s", err)
	}
}
