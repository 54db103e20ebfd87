package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	k "asset-tracker/internal/kafka"

	"github.com/segmentio/kafka-go"
)

var (
	ErrReadMessage  = errors.New("error reading message")
	ErrParseMessage = errors.New("error parsing message")
)

// DeviceState is the newest status seen for a device.
type DeviceState struct {
	LastStatusID      int64
	LastTimestampSeen int64
}

type Config struct {
	Brokers       string
	ConsumerTopic string
}

type Cache interface {
	Get(deviceID string) (DeviceState, bool)
	Set(deviceID string, state DeviceState)
	Delete(deviceID string)
}

type StateCache struct {
	brokers string
	mu      sync.RWMutex
	store   map[string]DeviceState
	reader  k.Reader
}

func New(cfg Config) *StateCache {
	return &StateCache{
		store: make(map[string]DeviceState),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:     []string{cfg.Brokers},
			Topic:       cfg.ConsumerTopic,
			StartOffset: kafka.FirstOffset,
			// No consumer group for one-time read
		}),
		brokers: cfg.Brokers,
	}
}

func (c *StateCache) Get(deviceID string) (DeviceState, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	state, exists := c.store[deviceID]
	return state, exists
}

func (c *StateCache) Set(deviceID string, state DeviceState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[deviceID] = state
}

func (c *StateCache) Delete(deviceID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, deviceID)
}

func (c *StateCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

func (c *StateCache) waitForBroker(ctx context.Context, maxWait time.Duration, interval time.Duration) error {
	deadline := time.Now().Add(maxWait)
	for time.Now().Before(deadline) {
		dialCtx, cancel := context.WithTimeout(ctx, interval)
		conn, err := kafka.DialContext(dialCtx, "tcp", c.brokers)
		cancel()
		if err == nil {
			conn.Close()
			slog.InfoContext(ctx, "Broker is ready", "broker", c.brokers)
			return nil
		}
		slog.InfoContext(ctx, "Broker not ready", "broker", c.brokers, "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
	return fmt.Errorf("broker not reachable after %s", maxWait)
}

// Hydrate replays the update topic into the cache. Blocking operation.
func (c *StateCache) Hydrate(ctx context.Context) {
	defer c.reader.Close()

	slog.InfoContext(ctx, "Pinging broker to ensure connectivity...")
	if err := c.waitForBroker(ctx, time.Second*30, time.Second*5); err != nil {
		slog.ErrorContext(ctx, "Broker failed to respond", "error", err)
		return
	}

	slog.InfoContext(ctx, "Starting cache hydration...")
	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Cache hydrate stopped...")
			return
		default:
			done, err := c.ReadMessage(ctx)
			if errors.Is(err, ErrParseMessage) {
				slog.ErrorContext(ctx, "Skipping unparsable update", "error", err)
				continue
			}
			if err != nil {
				slog.ErrorContext(ctx, "Cache hydration aborted", "error", err)
				return
			}
			if done {
				slog.InfoContext(ctx, "Cache hydration complete", "devices", c.Len())
				return
			}
		}
	}
}

// ReadMessage applies one update from the topic. It reports done once the
// reader has caught up or no message arrived within the read timeout.
func (c *StateCache) ReadMessage(ctx context.Context) (bool, error) {
	const fn = "StateCache:ReadMessage"
	readCtx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()

	m, err := c.reader.ReadMessage(readCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return true, nil
		}
		return false, fmt.Errorf("%s:%w:%w", fn, ErrReadMessage, err)
	}

	var update k.StatusUpdate
	if err := json.Unmarshal(m.Value, &update); err != nil {
		return false, fmt.Errorf("%s:%w:%w", fn, ErrParseMessage, err)
	}

	if prev, ok := c.Get(update.DeviceID); !ok || update.Timestamp >= prev.LastTimestampSeen {
		c.Set(update.DeviceID, DeviceState{
			LastStatusID:      update.StatusID,
			LastTimestampSeen: update.Timestamp,
		})
	}

	return c.reader.Lag() == 0, nil
}
