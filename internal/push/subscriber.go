package push

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

type SubscriberConfig struct {
	// URL is the websocket endpoint, see UserURL.
	URL            string
	Header         http.Header
	ReconnectDelay time.Duration
	Dialer         *websocket.Dialer
}

// Subscriber listens on a user's push channel and hands each notification
// to Notifications. It reconnects until its context ends.
type Subscriber struct {
	url            string
	header         http.Header
	reconnectDelay time.Duration
	dialer         *websocket.Dialer
	out            chan Notification
}

func NewSubscriber(cfg SubscriberConfig) *Subscriber {
	s := &Subscriber{
		url:            cfg.URL,
		header:         cfg.Header,
		reconnectDelay: cfg.ReconnectDelay,
		dialer:         cfg.Dialer,
		out:            make(chan Notification, sendBuffer),
	}
	if s.reconnectDelay <= 0 {
		s.reconnectDelay = 5 * time.Second
	}
	if s.dialer == nil {
		s.dialer = websocket.DefaultDialer
	}
	return s
}

// UserURL turns the server base URL into the push endpoint of userID.
func UserURL(base string, userID int64) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + fmt.Sprintf("/ws/user/%d/", userID)
	return u.String(), nil
}

// Notifications is closed once Run returns.
func (s *Subscriber) Notifications() <-chan Notification {
	return s.out
}

func (s *Subscriber) Run(ctx context.Context) {
	defer close(s.out)
	for {
		err := s.listen(ctx)
		if ctx.Err() != nil {
			return
		}
		slog.ErrorContext(ctx, "Push connection lost, reconnecting", "url", s.url, "delay", s.reconnectDelay, "error", err)
		select {
		case <-ctx.Done():
			return
		case <-time.After(s.reconnectDelay):
		}
	}
}

func (s *Subscriber) listen(ctx context.Context) error {
	conn, _, err := s.dialer.DialContext(ctx, s.url, s.header)
	if err != nil {
		return err
	}
	defer conn.Close()
	slog.InfoContext(ctx, "Push connection established", "url", s.url)

	stop := context.AfterFunc(ctx, func() {
		conn.Close()
	})
	defer stop()

	for {
		var n Notification
		if err := conn.ReadJSON(&n); err != nil {
			return err
		}
		select {
		case s.out <- n:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
