package http

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/algoviz"
	"github.com/aretw0/algoviz/pkg/domain"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialWS(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func readMsg(t *testing.T, conn *websocket.Conn) WSMessage {
	t.Helper()
	var msg WSMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestWebSocket_Visualize(t *testing.T) {
	srv := httptest.NewServer(NewHandler(algoviz.New()))
	defer srv.Close()
	conn := dialWS(t, srv)

	hello := readMsg(t, conn)
	assert.Equal(t, MsgSessionCreated, hello.Type)
	assert.NotEmpty(t, hello.SessionID)

	require.NoError(t, conn.WriteJSON(WSRequest{Type: MsgVisualize, Algorithm: "stack"}))

	start := readMsg(t, conn)
	assert.Equal(t, MsgStart, start.Type)
	assert.Equal(t, "stack", start.Algorithm)

	all := readMsg(t, conn)
	assert.Equal(t, MsgAllSteps, all.Type)
	assert.Equal(t, 9, all.TotalSteps)
	require.Len(t, all.Steps, 9)
	assert.Equal(t, domain.ActionComplete, all.Steps[8].Action)

	ready := readMsg(t, conn)
	assert.Equal(t, MsgStepsReady, ready.Type)
	assert.Equal(t, 9, ready.TotalSteps)
}

func TestWebSocket_LinkedListSharesConnectionSession(t *testing.T) {
	eng := algoviz.New()
	srv := httptest.NewServer(NewHandler(eng))
	defer srv.Close()
	conn := dialWS(t, srv)
	hello := readMsg(t, conn)

	for _, v := range []int{1, 2} {
		require.NoError(t, conn.WriteJSON(WSRequest{
			Type:      MsgVisualize,
			Algorithm: "linkedList",
			Data:      map[string]any{"operation": "insertHead", "value": v},
		}))
		assert.Equal(t, MsgStart, readMsg(t, conn).Type)
		assert.Equal(t, MsgAllSteps, readMsg(t, conn).Type)
		assert.Equal(t, MsgStepsReady, readMsg(t, conn).Type)
	}

	state, err := eng.Session(context.Background(), hello.SessionID)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 6, 1, 7, 4, 8}, state.Values())
	assert.Equal(t, 2, state.Version)
}

func TestWebSocket_Errors(t *testing.T) {
	srv := httptest.NewServer(NewHandler(algoviz.New()))
	defer srv.Close()
	conn := dialWS(t, srv)
	readMsg(t, conn)

	require.NoError(t, conn.WriteJSON(WSRequest{Type: MsgVisualize, Algorithm: "foo"}))
	assert.Equal(t, MsgStart, readMsg(t, conn).Type)
	failed := readMsg(t, conn)
	assert.Equal(t, MsgError, failed.Type)
	assert.Contains(t, failed.Error, "unsupported algorithm")

	require.NoError(t, conn.WriteJSON(WSRequest{Type: MsgVisualize}))
	assert.Equal(t, MsgError, readMsg(t, conn).Type)

	require.NoError(t, conn.WriteJSON(WSRequest{Type: "dance"}))
	assert.Contains(t, readMsg(t, conn).Error, "unknown message type")

	require.NoError(t, conn.WriteJSON(map[string]any{"algorithm": "stack"}))
	assert.Contains(t, readMsg(t, conn).Error, "invalid message")

	require.NoError(t, conn.WriteJSON(WSRequest{Type: MsgPing}))
	assert.Equal(t, MsgPong, readMsg(t, conn).Type)
}

func TestWebSocket_RateLimit(t *testing.T) {
	srv := httptest.NewServer(NewHandler(algoviz.New(), WithWebSocketRateLimit(0.001, 1)))
	defer srv.Close()
	conn := dialWS(t, srv)
	readMsg(t, conn)

	require.NoError(t, conn.WriteJSON(WSRequest{Type: MsgVisualize, Algorithm: "stack"}))
	for range 3 {
		readMsg(t, conn)
	}

	require.NoError(t, conn.WriteJSON(WSRequest{Type: MsgVisualize, Algorithm: "stack"}))
	limited := readMsg(t, conn)
	assert.Equal(t, MsgError, limited.Type)
	assert.Equal(t, "rate limit exceeded", limited.Error)
}
