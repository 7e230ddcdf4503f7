package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/spacesedan/sentiment-detector/config"
	"github.com/spacesedan/sentiment-detector/internal/clients"
	"github.com/spacesedan/sentiment-detector/internal/events"
	"github.com/spacesedan/sentiment-detector/internal/logging"
	"github.com/spacesedan/sentiment-detector/internal/sentiment"
	"github.com/spacesedan/sentiment-detector/internal/session"
	"github.com/spacesedan/sentiment-detector/internal/storage"
	"github.com/spacesedan/sentiment-detector/internal/ui"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	settings, err := config.Load()
	if err != nil {
		logging.InitLogger("info")
		slog.Error("[Main] Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logging.InitLogger(settings.LogLevel)

	if err := run(settings); err != nil {
		slog.Error("[Main] Sentiment detector failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(settings config.Settings) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Without the lexicon there is nothing to score with.
	scorer, err := sentiment.NewScorer()
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(ctx, settings)
	if err != nil {
		return err
	}
	defer closeStore()

	opts := []session.Option{}
	if settings.EmojiSeed != 0 {
		opts = append(opts, session.WithRand(rand.New(rand.NewSource(settings.EmojiSeed))))
	}

	if settings.FeedEnabled() {
		producer, err := clients.NewKafkaProducer(settings.KafkaBroker)
		if err != nil {
			return err
		}
		defer clients.CloseKafkaProducer(producer)
		opts = append(opts, session.WithSink(events.NewKafkaFeed(producer, settings.KafkaAnalysisTopic)))
	}

	s := session.New(scorer, store, opts...)
	slog.Info("[Main] Session ready",
		slog.String("session_id", s.ID()),
		slog.String("storage", settings.StorageBackend))

	return ui.NewTerminal(s, os.Stdin, os.Stdout).Run(ctx)
}

func openStore(ctx context.Context, settings config.Settings) (storage.TextStore, func(), error) {
	switch settings.StorageBackend {
	case config.BACKEND_VALKEY:
		client, err := clients.NewValkeyClient(ctx, clients.ValkeyOptions{
			Address:  settings.ValkeyAddress,
			Password: settings.ValkeyPassword,
			UseTLS:   settings.ValkeyTLS,
		})
		if err != nil {
			return nil, nil, err
		}
		return storage.NewValkeyStore(client, settings.ValkeyPromptPrefix), client.Close, nil

	case config.BACKEND_DYNAMODB:
		client, err := clients.NewDynamoDBClient(ctx, clients.AWSOptions{
			Region:   settings.AWSRegion,
			Endpoint: settings.AWSEndpoint,
		})
		if err != nil {
			return nil, nil, err
		}
		return storage.NewDynamoStore(client, settings.PromptsTable), func() {}, nil

	case config.BACKEND_FILE:
		return storage.NewFileStore(settings.StorageDir), func() {}, nil
	}

	return nil, nil, fmt.Errorf("[Main] unknown storage backend %q", settings.StorageBackend)
}
