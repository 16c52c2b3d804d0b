package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func startHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	return hub, cancel
}

func newStreamServer(hub *Hub, origins []string) *httptest.Server {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	resolve := func(c *gin.Context) (string, bool) {
		id := c.Query("session")
		return id, id != ""
	}
	r.GET("/stream", NewHandler(hub, resolve, origins, zerolog.Nop()).HandleConnection)
	return httptest.NewServer(r)
}

func dial(t *testing.T, srv *httptest.Server, session string) *gorilla.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream?session=" + session
	conn, _, err := gorilla.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func TestHub_StreamsEventsToTheirSession(t *testing.T) {
	hub, cancel := startHub(t)
	srv := newStreamServer(hub, nil)
	defer func() {
		srv.Close()
		cancel()
		<-hub.Done()
	}()

	mine := dial(t, srv, "s1")
	defer mine.Close()
	other := dial(t, srv, "s2")
	defer other.Close()

	require.Eventually(t, func() bool {
		return hub.GetClientsCount("s1") == 1 && hub.GetClientsCount("s2") == 1
	}, time.Second, 5*time.Millisecond)

	require.True(t, hub.Publish(&Event{Type: EventStateChanged, SessionID: "s1", Intent: "toggleFollow", Outcome: "applied", Screen: "discovery"}))

	mine.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := mine.ReadMessage()
	require.NoError(t, err)

	var event Event
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, EventStateChanged, event.Type)
	assert.Equal(t, "toggleFollow", event.Intent)
	assert.Equal(t, "discovery", event.Screen)
	assert.False(t, event.Timestamp.IsZero())

	other.SetReadDeadline(time.Now().Add(50 * time.Millisecond))
	_, _, err = other.ReadMessage()
	assert.Error(t, err, "other sessions receive nothing")
}

func TestHub_DisconnectClosesStream(t *testing.T) {
	hub, cancel := startHub(t)
	srv := newStreamServer(hub, []string{"*"})
	defer func() {
		srv.Close()
		cancel()
		<-hub.Done()
	}()

	conn := dial(t, srv, "s1")
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.GetClientsCount("s1") == 1 }, time.Second, 5*time.Millisecond)

	hub.Disconnect("s1")
	assert.Zero(t, hub.GetClientsCount("s1"))

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, _, err := conn.ReadMessage()
	assert.True(t, gorilla.IsCloseError(err, gorilla.CloseNormalClosure), "got %v", err)
}

func TestHub_PublishAfterStop(t *testing.T) {
	hub, cancel := startHub(t)
	cancel()
	<-hub.Done()

	assert.False(t, hub.Publish(&Event{SessionID: "s1"}))
}

func TestHandler_RequiresSession(t *testing.T) {
	hub, cancel := startHub(t)
	srv := newStreamServer(hub, nil)
	defer func() {
		srv.Close()
		cancel()
		<-hub.Done()
	}()

	resp, err := http.Get(srv.URL + "/stream")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"http://localhost:5173"})

	req := httptest.NewRequest(http.MethodGet, "/stream", nil)
	assert.True(t, check(req), "no origin header")

	req.Header.Set("Origin", "http://localhost:5173")
	assert.True(t, check(req))

	req.Header.Set("Origin", "https://evil.example")
	assert.False(t, check(req))

	assert.True(t, originChecker(nil)(req))
	assert.True(t, originChecker([]string{"*"})(req))
}
