package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealtimeHub_BroadcastReachesUserSockets(t *testing.T) {
	t.Parallel()

	hub := NewRealtimeHub()
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Register(&WSClient{UserID: 1, Conn: conn})
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// give the server handler time to register the client
	time.Sleep(50 * time.Millisecond)

	hub.BroadcastEvent(1, map[string]string{"type": "plan_ready"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(msg, &payload))
	assert.Equal(t, "plan_ready", payload["type"])
}

// Broadcasts from several goroutines and keepalive pings all hit the same
// socket; gorilla permits only one concurrent writer, so this must run clean
// under the race detector.
func TestRealtimeHub_ConcurrentBroadcastAndPing(t *testing.T) {
	t.Parallel()

	hub := NewRealtimeHub()
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

	clientCh := make(chan *WSClient, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		require.NoError(t, err)
		cl := &WSClient{UserID: 1, Conn: conn}
		hub.Register(cl)
		clientCh <- cl
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	cl := <-clientCh

	const (
		writers   = 4
		perWriter = 500
	)

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				hub.BroadcastEvent(1, map[string]string{"type": "plan_ready"})
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 200; j++ {
			_ = cl.WriteMessage(websocket.PingMessage, nil)
		}
	}()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(10*time.Second)))
	for received := 0; received < writers*perWriter; {
		mt, _, err := conn.ReadMessage()
		require.NoError(t, err)
		if mt == websocket.TextMessage {
			received++
		}
	}
	wg.Wait()
}

func TestRealtimeHub_BroadcastSkipsOtherUsers(t *testing.T) {
	t.Parallel()

	hub := NewRealtimeHub()
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Register(&WSClient{UserID: 2, Conn: conn})
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	time.Sleep(50 * time.Millisecond)

	// event for a different user must not arrive here
	hub.BroadcastEvent(1, map[string]string{"type": "plan_ready"})

	conn.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err)
}
