package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"asset-tracker/internal/api"
	"asset-tracker/internal/cache"
	"asset-tracker/internal/config"
	"asset-tracker/internal/db"
	"asset-tracker/internal/mqttbridge"
	"asset-tracker/internal/processors/notifier"
	"asset-tracker/internal/processors/recorder"
	"asset-tracker/internal/push"

	"github.com/google/uuid"
)

func main() {
	configPath := flag.String("config", "", "path to the server config file")
	flag.Parse()

	cfg, err := config.LoadServer(*configPath)
	if err != nil {
		panic(err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()})))

	location, err := time.LoadLocation(cfg.API.Timezone)
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	slog.InfoContext(ctx, "Starting service...")

	store, err := db.Init(ctx, db.Config{
		ConnString:     cfg.DB.ConnString,
		MigrationsPath: cfg.DB.MigrationsPath,
	})
	if err != nil {
		panic(err)
	}
	defer store.Close()

	cache := cache.New(cache.Config{
		Brokers:       cfg.Kafka.Brokers,
		ConsumerTopic: cfg.Kafka.UpdateTopic,
	})
	cache.Hydrate(ctx)
	slog.InfoContext(ctx, "Cache hydrated with initial data", "devices", cache.Len())

	hub := push.NewHub()

	wRecorder := recorder.New(recorder.Config{
		Brokers:         cfg.Kafka.Brokers,
		ConsumerGroupID: cfg.Kafka.RecorderGroup,
		ConsumerTopic:   cfg.Kafka.StatusTopic,
		PublisherTopic:  cfg.Kafka.UpdateTopic,
		Cache:           cache,
		DB:              store,
	})
	// Every instance has its own group so each hub sees every update.
	wNotifier := notifier.New(notifier.Config{
		Brokers:         cfg.Kafka.Brokers,
		ConsumerGroupID: cfg.Kafka.NotifierGroupPrefix + "-" + uuid.NewString(),
		ConsumerTopic:   cfg.Kafka.UpdateTopic,
		Hub:             hub,
	})

	wg := sync.WaitGroup{}
	wg.Go(func() {
		hub.Run(ctx)
	})
	wg.Go(func() {
		wRecorder.Run(ctx)
	})
	wg.Go(func() {
		wNotifier.Run(ctx)
	})

	var bridge *mqttbridge.Bridge
	if cfg.MQTT.Enabled {
		bridge = mqttbridge.New(mqttbridge.Config{
			BrokerURL:      cfg.MQTT.BrokerURL,
			ClientID:       cfg.MQTT.ClientID,
			Topic:          cfg.MQTT.Topic,
			QoS:            cfg.MQTT.QoS,
			Brokers:        cfg.Kafka.Brokers,
			PublisherTopic: cfg.Kafka.StatusTopic,
		})
		wg.Go(func() {
			if err := bridge.Run(ctx); err != nil {
				slog.ErrorContext(ctx, "MQTT bridge failed", "error", err)
			}
		})
	}

	handlers := api.New(api.Config{
		DB:        store,
		Sockets:   hub,
		CSRFToken: cfg.API.CSRFToken,
		Debug:     cfg.API.Debug,
		Location:  location,
	})
	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: handlers.Router(),
	}
	go func() {
		slog.InfoContext(ctx, "HTTP server listening", "addr", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "HTTP server error", "error", err)
			cancel()
		}
	}()

	go func() {
		<-sigs
		cancel()
	}()

	<-ctx.Done()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "HTTP server shutdown failed", "error", err)
	}

	wg.Wait()

	wRecorder.Close(shutdownCtx)
	wNotifier.Close(shutdownCtx)
	if bridge != nil {
		bridge.Close(shutdownCtx)
	}
}
