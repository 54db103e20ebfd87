package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"asset-tracker/internal/worker"

	k "asset-tracker/internal/kafka"

	"github.com/segmentio/kafka-go"
)

var (
	ErrReadMessage = errors.New("error reading message")
	ErrJSONParse   = errors.New("error parsing JSON")
)

// broadcaster delivers device notifications to the push connections of
// users.
type broadcaster interface {
	Notify(users []int64, device string)
}

type Config struct {
	Brokers string
	// ConsumerGroupID should be unique per server instance so that every
	// instance sees every update.
	ConsumerGroupID string
	ConsumerTopic   string
	Hub             broadcaster
}

type Notifier struct {
	worker *worker.Worker
	reader k.Reader
	hub    broadcaster
}

func New(cfg Config) *Notifier {
	notifier := &Notifier{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:     []string{cfg.Brokers},
			GroupID:     cfg.ConsumerGroupID,
			Topic:       cfg.ConsumerTopic,
			StartOffset: kafka.LastOffset,
		}),
		hub: cfg.Hub,
	}

	notifier.worker = worker.New(worker.Config{
		Name:      "notifier-worker",
		Processor: notifier,
	})
	return notifier
}

func (n *Notifier) Run(ctx context.Context) {
	n.worker.Run(ctx)
}

func (n *Notifier) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing notifier resources...")
	n.reader.Close()
}

// Auto-commit active
func (n *Notifier) ProcessMessage(ctx context.Context) error {
	const fn = "Notifier:ProcessMessage"
	m, err := n.reader.ReadMessage(ctx)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrReadMessage, err)
	}
	var update k.StatusUpdate
	if err := json.Unmarshal(m.Value, &update); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrJSONParse, err)
	}
	if len(update.Users) == 0 {
		return nil
	}
	n.hub.Notify(update.Users, update.DeviceID)
	slog.InfoContext(ctx, "Notified users", "device_id", update.DeviceID, "users", len(update.Users))
	return nil
}
