package bridge

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/tinyws2812/ws2812"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return c
}

func waitClients(h *Hub, n int) bool {
	for i := 0; i < 100; i++ {
		if h.Count() == n {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

func TestBroadcastReachesClient(t *testing.T) {
	h := NewHub()
	srv := httptest.NewServer(http.HandlerFunc(h.Handler))
	defer srv.Close()

	c := dial(t, srv)
	defer c.Close()
	require.True(t, waitClients(h, 1))

	h.Broadcast([]ws2812.RGB{{R: 255, G: 10, B: 20}, {B: 1}})

	var f Frame
	require.NoError(t, c.ReadJSON(&f))
	assert.Equal(t, uint64(1), f.Seq)
	assert.Equal(t, [][3]uint8{{255, 10, 20}, {0, 0, 1}}, f.Pixels)
}

func TestSequenceIncrements(t *testing.T) {
	h := NewHub()
	srv := httptest.NewServer(http.HandlerFunc(h.Handler))
	defer srv.Close()

	c := dial(t, srv)
	defer c.Close()
	require.True(t, waitClients(h, 1))

	h.Broadcast(nil)
	h.Broadcast(nil)

	var f Frame
	require.NoError(t, c.ReadJSON(&f))
	require.NoError(t, c.ReadJSON(&f))
	assert.Equal(t, uint64(2), f.Seq)
}

func TestClientDropOnClose(t *testing.T) {
	h := NewHub()
	srv := httptest.NewServer(http.HandlerFunc(h.Handler))
	defer srv.Close()

	c := dial(t, srv)
	require.True(t, waitClients(h, 1))
	c.Close()
	assert.True(t, waitClients(h, 0))
}

func TestFrameJSONShape(t *testing.T) {
	b, err := json.Marshal(Frame{Seq: 3, Pixels: [][3]uint8{{1, 2, 3}}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"seq":3,"pixels":[[1,2,3]]}`, string(b))
}
