// Package clients tracks the WebSocket connections open against the service.
package clients

import (
	"sync"
	"time"

	"github.com/cbodonnell/connectfour/pkg/log"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"nhooyr.io/websocket"
)

// Client represents a connected WebSocket client
type Client struct {
	ID          string
	RemoteAddr  string
	ConnectedAt time.Time
	conn        *websocket.Conn
}

// ClientManager manages connected clients
type ClientManager struct {
	clients     map[string]*Client
	clientsLock sync.RWMutex
	// connected mirrors the number of clients, if set.
	connected prometheus.Gauge
}

// NewClientManager creates a new ClientManager. connected may be nil.
func NewClientManager(connected prometheus.Gauge) *ClientManager {
	return &ClientManager{
		clients:   make(map[string]*Client),
		connected: connected,
	}
}

// ConnectClient registers conn and returns the new client.
func (cm *ClientManager) ConnectClient(conn *websocket.Conn, remoteAddr string) *Client {
	cm.clientsLock.Lock()
	defer cm.clientsLock.Unlock()

	client := &Client{
		ID:          uuid.New().String(),
		RemoteAddr:  remoteAddr,
		ConnectedAt: time.Now(),
		conn:        conn,
	}
	cm.clients[client.ID] = client
	cm.updateGauge()
	log.Debug("Client %s connected from %s", client.ID, remoteAddr)
	return client
}

// DisconnectClient removes a client. Unknown IDs are ignored.
func (cm *ClientManager) DisconnectClient(id string) {
	cm.clientsLock.Lock()
	defer cm.clientsLock.Unlock()

	if _, ok := cm.clients[id]; !ok {
		return
	}
	delete(cm.clients, id)
	cm.updateGauge()
	log.Debug("Client %s disconnected", id)
}

// GetClients returns a slice with a copy of all connected clients.
func (cm *ClientManager) GetClients() []Client {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	clients := make([]Client, 0, len(cm.clients))
	for _, client := range cm.clients {
		clients = append(clients, Client{
			ID:          client.ID,
			RemoteAddr:  client.RemoteAddr,
			ConnectedAt: client.ConnectedAt,
		})
	}
	return clients
}

func (cm *ClientManager) Count() int {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	return len(cm.clients)
}

// CloseAll closes every connection with StatusGoingAway.
// http.Server.Shutdown does not wait for hijacked connections, so the server calls this when stopping.
func (cm *ClientManager) CloseAll(reason string) {
	cm.clientsLock.Lock()
	conns := make([]*websocket.Conn, 0, len(cm.clients))
	for id, client := range cm.clients {
		conns = append(conns, client.conn)
		delete(cm.clients, id)
	}
	cm.updateGauge()
	cm.clientsLock.Unlock()

	for _, conn := range conns {
		if err := conn.Close(websocket.StatusGoingAway, reason); err != nil {
			log.Trace("Failed to close WebSocket connection: %v", err)
		}
	}
}

// updateGauge must be called with clientsLock held.
func (cm *ClientManager) updateGauge() {
	if cm.connected != nil {
		cm.connected.Set(float64(len(cm.clients)))
	}
}
