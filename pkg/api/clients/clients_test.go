package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
)

func newTestServer(t *testing.T, cm *ClientManager) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		client := cm.ConnectClient(conn, r.RemoteAddr)
		defer cm.DisconnectClient(client.ID)
		for {
			if _, _, err := conn.Read(r.Context()); err != nil {
				return
			}
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(url, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func TestClientManager_connectAndDisconnect(t *testing.T) {
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: "clients"})
	cm := NewClientManager(gauge)

	a := cm.ConnectClient(nil, "10.0.0.1:1000")
	b := cm.ConnectClient(nil, "10.0.0.2:2000")
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, cm.Count())
	assert.Equal(t, 2.0, testutil.ToFloat64(gauge))

	clients := cm.GetClients()
	require.Len(t, clients, 2)
	addrs := []string{clients[0].RemoteAddr, clients[1].RemoteAddr}
	assert.ElementsMatch(t, []string{"10.0.0.1:1000", "10.0.0.2:2000"}, addrs)

	cm.DisconnectClient(a.ID)
	cm.DisconnectClient(a.ID)
	cm.DisconnectClient("unknown")
	assert.Equal(t, 1, cm.Count())
	assert.Equal(t, 1.0, testutil.ToFloat64(gauge))
}

func TestClientManager_CloseAll(t *testing.T) {
	cm := NewClientManager(nil)
	server := newTestServer(t, cm)

	conn := dial(t, server.URL)
	require.Eventually(t, func() bool { return cm.Count() == 1 }, 5*time.Second, 10*time.Millisecond)

	readErr := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, _, err := conn.Read(ctx)
		readErr <- err
	}()

	cm.CloseAll("server shutting down")
	assert.Equal(t, 0, cm.Count())

	err := <-readErr
	require.Error(t, err)
	assert.Equal(t, websocket.StatusGoingAway, websocket.CloseStatus(err))
}
