package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/cbodonnell/connectfour/pkg/api/clients"
	"github.com/cbodonnell/connectfour/pkg/log"
	"github.com/cbodonnell/connectfour/pkg/messages"
	"nhooyr.io/websocket"
)

// HandleWebSocket serves the request/response protocol over one WebSocket connection.
// Each connection is registered with cm for its lifetime.
func HandleWebSocket(c *Controller, cm *clients.ClientManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			log.Error("Failed to upgrade to WebSocket: %v", err)
			return
		}
		defer conn.Close(websocket.StatusInternalError, "")
		client := cm.ConnectClient(conn, r.RemoteAddr)
		defer cm.DisconnectClient(client.ID)

		var wg sync.WaitGroup
		defer wg.Wait()

		ctx := r.Context()
		for {
			msg, err := messages.ReadMessageFromWS(ctx, conn)
			if err != nil {
				status := websocket.CloseStatus(err)
				if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway {
					log.Debug("Error reading WebSocket message from %s: %v", r.RemoteAddr, err)
				}
				log.Trace("Connection closed for %s", r.RemoteAddr)
				return
			}

			// each request is answered on its own goroutine
			wg.Add(1)
			go func() {
				defer wg.Done()
				resp := c.handleMessage(ctx, msg)
				if err := messages.WriteMessageToWS(ctx, conn, resp); err != nil {
					log.Error("Failed to write WebSocket response to %s: %v", r.RemoteAddr, err)
				}
			}()
		}
	}
}

func (c *Controller) handleMessage(ctx context.Context, msg *messages.Message) *messages.Message {
	log.Trace("Received %s request %s", msg.Type, msg.ID)

	var (
		respType messages.MessageType
		payload  interface{}
		err      error
	)
	switch msg.Type {
	case messages.MessageTypeClientState:
		respType = messages.MessageTypeServerState
		payload, err = c.State(ctx)
	case messages.MessageTypeClientReset:
		respType = messages.MessageTypeServerState
		payload, err = c.Reset(ctx)
	case messages.MessageTypeClientMove:
		req := &messages.MoveRequest{}
		if len(msg.Payload) > 0 {
			if uerr := json.Unmarshal(msg.Payload, req); uerr != nil {
				log.Debug("failed to decode move request: %v", uerr)
				req = &messages.MoveRequest{}
			}
		}
		respType = messages.MessageTypeServerMove
		payload, err = c.Move(ctx, req)
	default:
		return errorMessage(msg.ID, http.StatusBadRequest, "Unknown message type")
	}

	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			log.Error("failed to handle %s request: %v", msg.Type, err)
		}
		return errorMessage(msg.ID, statusFor(err), messageFor(err))
	}
	resp, err := messages.NewMessage(msg.ID, respType, payload)
	if err != nil {
		log.Error("failed to build %s response: %v", respType, err)
		return errorMessage(msg.ID, http.StatusInternalServerError, "Internal server error")
	}
	return resp
}

func errorMessage(id string, status int, message string) *messages.Message {
	b, _ := json.Marshal(&messages.ErrorResponse{Error: message, Status: status})
	return &messages.Message{ID: id, Type: messages.MessageTypeServerError, Payload: b}
}
