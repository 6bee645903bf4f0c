package realtime

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) (*CartHub, *httptest.Server) {
	t.Helper()

	hub := NewCartHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.ServeWS(w, r)
	}))
	t.Cleanup(func() {
		hub.Close()
		server.Close()
	})

	return hub, server
}

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestCartHub_BroadcastsChanges(t *testing.T) {
	hub, server := newTestHub(t)
	first := dial(t, server)
	second := dial(t, server)

	require.Eventually(t, func() bool { return hub.Subscribers() == 2 }, time.Second, 10*time.Millisecond)

	lineID := uuid.Must(uuid.NewV7())
	hub.NotifyCartChanged(&entity.CartChange{
		Kind:       entity.CartChangeItemAdded,
		LineID:     &lineID,
		OccurredAt: time.Now(),
	})

	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)

		var change entity.CartChange
		require.NoError(t, json.Unmarshal(data, &change))
		assert.Equal(t, entity.CartChangeItemAdded, change.Kind)
		require.NotNil(t, change.LineID)
		assert.Equal(t, lineID, *change.LineID)
	}
}

func TestCartHub_RemovesDisconnectedClients(t *testing.T) {
	hub, server := newTestHub(t)
	conn := dial(t, server)

	require.Eventually(t, func() bool { return hub.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool { return hub.Subscribers() == 0 }, time.Second, 10*time.Millisecond)
}

func TestCartHub_NotifyWithoutClients(t *testing.T) {
	hub := NewCartHub(slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.NotPanics(t, func() {
		hub.NotifyCartChanged(&entity.CartChange{Kind: entity.CartChangeCleared})
		hub.NotifyCartChanged(nil)
	})
}
