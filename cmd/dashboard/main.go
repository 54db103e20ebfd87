package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync"

	"asset-tracker/internal/api"
	"asset-tracker/internal/client"
	"asset-tracker/internal/config"
	"asset-tracker/internal/dashboard"
	"asset-tracker/internal/push"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	configPath := flag.String("config", "", "path to the dashboard config file")
	flag.Parse()

	cfg, err := config.LoadDashboard(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, logs go to a file.
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "Starting dashboard...", "server", cfg.ServerURL, "user_id", cfg.UserID)

	backend := client.New(client.Config{
		BaseURL:       cfg.ServerURL,
		ExportBaseURL: cfg.ExportURL,
		UserID:        cfg.UserID,
		CSRFToken:     cfg.CSRFToken,
	})

	socketURL, err := push.UserURL(cfg.ServerURL, cfg.UserID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	header := http.Header{}
	header.Set(api.HeaderUserID, strconv.FormatInt(cfg.UserID, 10))
	subscriber := push.NewSubscriber(push.SubscriberConfig{
		URL:            socketURL,
		Header:         header,
		ReconnectDelay: cfg.ReconnectDelay,
	})

	wg := sync.WaitGroup{}
	wg.Go(func() {
		subscriber.Run(ctx)
	})

	model := dashboard.New(dashboard.Config{
		Backend:       backend,
		Notifications: subscriber.Notifications(),
		PageSize:      cfg.PageSize,
		ExportDir:     cfg.ExportDir,
	})
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		slog.ErrorContext(ctx, "Dashboard failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
	}

	cancel()
	wg.Wait()
	slog.InfoContext(ctx, "Dashboard stopped")
}
