package main

import (
	"context"
	"log"
	"time"

	"chatterbox/config"
	"chatterbox/internal/events"
	"chatterbox/internal/handler"
	"chatterbox/internal/outbox"
	"chatterbox/internal/redis"
	"chatterbox/internal/repository"
	"chatterbox/internal/server"
	"chatterbox/internal/services"
	"chatterbox/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	l := logger.New(cfg.AppMode)
	logger.SetGlobalLogger(l)
	defer l.Sync()

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.EventsEnabled {
		client := redis.NewClient(redis.Config{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer client.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redis.Ping(ctx, client); err != nil {
			l.Warnf("Events enabled but Redis is unreachable, continuing: %s", err)
		}
		cancel()

		bus := events.NewRedisEventBus(redis.NewPublisher(client), cfg.EventsChannel)
		processor := outbox.NewProcessor(bus, l, cfg.OutboxBuffer, cfg.OutboxRetryInterval, cfg.OutboxMaxRetries).
			WithDrainTimeout(cfg.ShutdownTimeout)

		outboxCtx, stopOutbox := context.WithCancel(context.Background())
		runner := outbox.NewRunner(processor)
		runner.Start(outboxCtx)
		defer runner.Wait()
		defer stopOutbox()

		publisher = processor
		l.Infof("Publishing message events on %s", bus.Channel())
	}

	messageService := services.NewMessageService(repository.NewMessageRepository(), publisher, l)

	srv := server.New(cfg, l)
	srv.SetupRoutes(&server.Handlers{
		Messages: handler.NewMessageHandler(messageService, l, cfg.MaxBodyBytes),
	})

	if err := srv.Start(); err != nil {
		l.Errorf("Server exited with error: %s", err)
	}
}
