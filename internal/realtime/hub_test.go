package realtime

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"motionklub/internal/domain"
	"motionklub/internal/views"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, hub *Hub) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(hub, nil).RegisterRoutes(router.Group("/api/v1"))

	srv := httptest.NewServer(router)
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/ws/capacity"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) ServerMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg ServerMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestHub_PushesToSubscribers(t *testing.T) {
	hub := NewHub()
	conn := dial(t, newTestServer(t, hub))

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: TypeSubscribe, EventID: 1987}))
	ack := readMessage(t, conn)
	assert.Equal(t, TypeSubscribed, ack.Type)
	assert.Equal(t, int64(1987), ack.EventID)

	hub.CapacityChanged(1988, domain.Capacity{Max: 30, Confirmed: 19, Available: 11})
	hub.CapacityChanged(1987, domain.Capacity{Max: 30, Confirmed: 26, Available: 4})

	msg := readMessage(t, conn)
	assert.Equal(t, TypeCapacityChanged, msg.Type)
	assert.Equal(t, int64(1987), msg.EventID, "events without subscription are not delivered")
	require.NotNil(t, msg.Payload)
	assert.Equal(t, 26, msg.Payload.Capacity.Confirmed)
	assert.Equal(t, views.CapacityLimited, msg.Payload.Status)
	assert.True(t, msg.Payload.Bookable)
}

func TestHub_InitialSubscriptionAndUnsubscribe(t *testing.T) {
	hub := NewHub()
	conn := dial(t, newTestServer(t, hub)+"?event_id=1991,1992")

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: TypePing}))
	assert.Equal(t, TypePong, readMessage(t, conn).Type)
	assert.Equal(t, 1, hub.Subscribers(1991))
	assert.Equal(t, 1, hub.Subscribers(1992))

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: TypeUnsubscribe, EventID: 1991}))
	assert.Equal(t, TypeUnsubscribed, readMessage(t, conn).Type)
	assert.Zero(t, hub.Subscribers(1991))
}

func TestHub_UnknownMessage(t *testing.T) {
	hub := NewHub()
	conn := dial(t, newTestServer(t, hub))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	msg := readMessage(t, conn)
	assert.Equal(t, TypeError, msg.Type)
	assert.Equal(t, "INVALID_JSON", msg.ErrorCode)

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: "dance"}))
	assert.Equal(t, "UNKNOWN_TYPE", readMessage(t, conn).ErrorCode)
}

func TestHub_DisconnectUnregisters(t *testing.T) {
	hub := NewHub()
	conn := dial(t, newTestServer(t, hub))

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: TypePing}))
	readMessage(t, conn)
	assert.Equal(t, 1, hub.ConnectionCount())

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.ConnectionCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}
