package push

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub()
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.URL.Query().Get("user"), 10, 64)
		if err != nil {
			http.Error(w, "bad user", http.StatusBadRequest)
			return
		}
		hub.ServeWS(w, r, userID)
	}))
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return hub, srv
}

func dial(t *testing.T, hub *Hub, srv *httptest.Server, userID int64) *websocket.Conn {
	t.Helper()
	before := hub.ClientCount(userID)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?user=" + strconv.FormatInt(userID, 10)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.Eventually(t, func() bool { return hub.ClientCount(userID) == before+1 }, time.Second, 10*time.Millisecond)
	return conn
}

func Test_HubNotify(t *testing.T) {
	hub, srv := startHub(t)
	first := dial(t, hub, srv, 1)
	second := dial(t, hub, srv, 1)
	other := dial(t, hub, srv, 2)
	stranger := dial(t, hub, srv, 3)

	hub.Notify([]int64{1, 2}, "350000000000001")

	for _, conn := range []*websocket.Conn{first, second, other} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var n Notification
		require.NoError(t, conn.ReadJSON(&n))
		assert.Equal(t, Notification{Device: "350000000000001"}, n)
	}

	stranger.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	var n Notification
	assert.Error(t, stranger.ReadJSON(&n), "users not named receive nothing")
}

func Test_HubUnregister(t *testing.T) {
	hub, srv := startHub(t)
	conn := dial(t, hub, srv, 9)

	conn.Close()
	assert.Eventually(t, func() bool { return hub.ClientCount(9) == 0 }, time.Second, 10*time.Millisecond)
}

func Test_Subscriber(t *testing.T) {
	hub, srv := startHub(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := NewSubscriber(SubscriberConfig{
		URL:            "ws" + strings.TrimPrefix(srv.URL, "http") + "/?user=5",
		ReconnectDelay: 50 * time.Millisecond,
	})
	go sub.Run(ctx)
	require.Eventually(t, func() bool { return hub.ClientCount(5) == 1 }, time.Second, 10*time.Millisecond)

	hub.Notify([]int64{5}, "dev-1")
	select {
	case n := <-sub.Notifications():
		assert.Equal(t, "dev-1", n.Device)
	case <-time.After(2 * time.Second):
		t.Fatal("notification not delivered")
	}

	cancel()
	select {
	case _, ok := <-sub.Notifications():
		assert.False(t, ok, "channel closes when the subscriber stops")
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber did not stop")
	}
}

func Test_UserURL(t *testing.T) {
	cases := []struct {
		name        string
		base        string
		expected    string
		expectedErr bool
	}{
		{name: "http", base: "http://localhost:8080", expected: "ws://localhost:8080/ws/user/7/"},
		{name: "https with path", base: "https://tracker.example.com/app/", expected: "wss://tracker.example.com/app/ws/user/7/"},
		{name: "unsupported scheme", base: "ftp://host", expectedErr: true},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UserURL(tt.base, 7)
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
