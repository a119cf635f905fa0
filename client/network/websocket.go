package network

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cbodonnell/connectfour/pkg/game/types"
	"github.com/cbodonnell/connectfour/pkg/log"
	"github.com/cbodonnell/connectfour/pkg/messages"
	"github.com/google/uuid"
	"nhooyr.io/websocket"
)

// WSClient implements Service over a single WebSocket connection.
// Requests may overlap; a reader goroutine matches each response to its request by ID.
type WSClient struct {
	url     string
	timeout time.Duration
	logger  *log.Logger

	mu      sync.Mutex
	session *wsSession
}

// wsSession is one connection and the requests waiting on it.
type wsSession struct {
	conn    *websocket.Conn
	pending map[string]chan *messages.Message
	closed  bool
}

type NewWSClientOptions struct {
	// BaseURL is the service's HTTP base URL; the scheme is switched to ws(s).
	BaseURL string
	// Timeout bounds each request. Zero disables it.
	Timeout time.Duration
	Logger  *log.Logger
}

func NewWSClient(opts NewWSClientOptions) *WSClient {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultServerURL
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &WSClient{
		url:     wsURL(baseURL),
		timeout: opts.Timeout,
		logger:  logger.WithComponent("network"),
	}
}

func wsURL(baseURL string) string {
	u := strings.TrimRight(baseURL, "/")
	switch {
	case strings.HasPrefix(u, "https://"):
		u = "wss://" + strings.TrimPrefix(u, "https://")
	case strings.HasPrefix(u, "http://"):
		u = "ws://" + strings.TrimPrefix(u, "http://")
	}
	return u + WSPath
}

func (c *WSClient) State(ctx context.Context) (*types.Snapshot, error) {
	snapshot := &types.Snapshot{}
	if err := c.roundTrip(ctx, messages.MessageTypeClientState, nil, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (c *WSClient) Move(ctx context.Context, column int) (*types.MoveResult, error) {
	result := &types.MoveResult{}
	if err := c.roundTrip(ctx, messages.MessageTypeClientMove, &messages.MoveRequest{Column: &column}, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *WSClient) Reset(ctx context.Context) (*types.Snapshot, error) {
	snapshot := &types.Snapshot{}
	if err := c.roundTrip(ctx, messages.MessageTypeClientReset, nil, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Close closes the underlying connection, if any.
func (c *WSClient) Close() error {
	c.mu.Lock()
	session := c.session
	c.mu.Unlock()
	if session == nil || !c.detach(session) {
		return nil
	}
	return session.conn.Close(websocket.StatusNormalClosure, "")
}

func (c *WSClient) roundTrip(ctx context.Context, t messages.MessageType, payload interface{}, out interface{}) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	msg, err := messages.NewMessage(uuid.New().String(), t, payload)
	if err != nil {
		return err
	}

	session, reply, err := c.register(ctx, msg.ID)
	if err != nil {
		return err
	}
	defer c.unregister(session, msg.ID)

	if err := messages.WriteMessageToWS(ctx, session.conn, msg); err != nil {
		if c.detach(session) {
			session.conn.Close(websocket.StatusInternalError, "")
		}
		return &ErrTransport{Message: err.Error()}
	}
	c.logger.Trace("Sent %s request %s", t, msg.ID)

	var resp *messages.Message
	select {
	case <-ctx.Done():
		return &ErrTransport{Message: fmt.Sprintf("no response to %s request: %v", t, ctx.Err())}
	case m, ok := <-reply:
		if !ok {
			return &ErrTransport{Message: "connection closed before a response was received"}
		}
		resp = m
	}

	if resp.Type == messages.MessageTypeServerError {
		errResp := &messages.ErrorResponse{}
		if err := json.Unmarshal(resp.Payload, errResp); err != nil {
			return &ErrTransport{Message: fmt.Sprintf("failed to decode error response: %v", err)}
		}
		message := errResp.Error
		if message == "" {
			message = statusFallback(errResp.Status)
		}
		return &ErrTransport{Status: errResp.Status, Message: message}
	}

	if err := json.Unmarshal(resp.Payload, out); err != nil {
		return &ErrTransport{Message: fmt.Sprintf("failed to decode %s response: %v", resp.Type, err)}
	}
	return nil
}

// register connects if needed and returns the channel that will carry the response to id.
func (c *WSClient) register(ctx context.Context, id string) (*wsSession, chan *messages.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		c.logger.Debug("Connecting to WebSocket server at %s", c.url)
		conn, _, err := websocket.Dial(ctx, c.url, nil)
		if err != nil {
			return nil, nil, &ErrTransport{Message: fmt.Sprintf("failed to reach server: %v", err)}
		}
		c.session = &wsSession{
			conn:    conn,
			pending: make(map[string]chan *messages.Message),
		}
		go c.readResponses(c.session)
	}

	reply := make(chan *messages.Message, 1)
	c.session.pending[id] = reply
	return c.session, reply, nil
}

func (c *WSClient) unregister(session *wsSession, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(session.pending, id)
}

// readResponses delivers responses until the connection fails or is closed.
func (c *WSClient) readResponses(session *wsSession) {
	for {
		resp, err := messages.ReadMessageFromWS(context.Background(), session.conn)
		if err != nil {
			if c.detach(session) {
				c.logger.Debug("WebSocket connection lost: %v", err)
				session.conn.Close(websocket.StatusInternalError, "")
			}
			return
		}

		c.mu.Lock()
		reply, ok := session.pending[resp.ID]
		delete(session.pending, resp.ID)
		c.mu.Unlock()
		if !ok {
			c.logger.Warn("Discarding %s response for unknown request %s", resp.Type, resp.ID)
			continue
		}
		reply <- resp
	}
}

// detach forgets session and fails its waiting requests. It reports whether the
// session was still open.
func (c *WSClient) detach(session *wsSession) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if session.closed {
		return false
	}
	session.closed = true
	for id, reply := range session.pending {
		close(reply)
		delete(session.pending, id)
	}
	if c.session == session {
		c.session = nil
	}
	return true
}
