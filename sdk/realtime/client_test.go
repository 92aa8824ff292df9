package realtime

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_BuildWSURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    string
	}{
		{"http to ws", "http://localhost:8080", "ws://localhost:8080/ws?token=tok"},
		{"https to wss", "https://api.example.com", "wss://api.example.com/ws?token=tok"},
		{"trailing slash", "https://api.example.com/", "wss://api.example.com/ws?token=tok"},
		{"path prefix preserved", "https://api.example.com/v1", "wss://api.example.com/v1/ws?token=tok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.baseURL, NewTokenGuard(tt.baseURL, "", ""))

			got, err := c.buildWSURL("tok")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_RunStopsOnMissingToken(t *testing.T) {
	c := NewClient("http://localhost:8080", NewTokenGuard("http://localhost:8080", "", ""))

	err := c.Run(context.Background(), nil)

	assert.ErrorIs(t, err, ErrNotAuthenticated, "an unauthenticated client must not reconnect forever")
}

func TestClient_RunRestartsDelayScheduleAfterConnection(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conn.Close()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var delays []time.Duration
	policy := NewReconnectPolicy(nil, WithSleepFunc(func(ctx context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}))

	var connections int
	c := NewClient(srv.URL, NewTokenGuard(srv.URL, "tok", ""), WithReconnectPolicy(policy))
	c.OnConnected = func() {
		connections++
		if connections == 4 {
			cancel()
		}
	}

	err := c.Run(ctx, nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 4, connections)
	// Every wait follows a successful connection, so each drop retries at once.
	assert.Equal(t, []time.Duration{0, 0, 0}, delays)
}

func TestClient_RunEscalatesDelaysWhileDialFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no websocket here", http.StatusNotFound)
	}))
	defer srv.Close()

	stop := fmt.Errorf("enough attempts")
	var delays []time.Duration
	policy := NewReconnectPolicy(nil, WithSleepFunc(func(ctx context.Context, d time.Duration) error {
		delays = append(delays, d)
		if len(delays) == 3 {
			return stop
		}
		return nil
	}))

	c := NewClient(srv.URL, NewTokenGuard(srv.URL, "tok", ""), WithReconnectPolicy(policy))

	err := c.Run(context.Background(), nil)

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []time.Duration{0, 2 * time.Second, 5 * time.Second}, delays)
}

func TestEnvelope_DecodeData(t *testing.T) {
	ev := &Envelope{
		Type: EventUpdateUnreadCounts,
		Data: []byte(`{"notifications": 3, "messages": 1}`),
	}

	var counts UnreadCountsEvent
	require.NoError(t, ev.DecodeData(&counts))
	assert.Equal(t, int64(3), counts.Notifications)
	assert.Equal(t, int64(1), counts.Messages)

	empty := &Envelope{Type: EventError}
	assert.Error(t, empty.DecodeData(&counts))
}
