package messages

import "encoding/json"

type MessageType string

// Message types exchanged over the WebSocket transport.
const (
	MessageTypeClientState MessageType = "state"
	MessageTypeClientMove  MessageType = "move"
	MessageTypeClientReset MessageType = "reset"
	MessageTypeServerState MessageType = "state_result"
	MessageTypeServerMove  MessageType = "move_result"
	MessageTypeServerError MessageType = "error"
)

func (t MessageType) String() string {
	return string(t)
}

// Message is the envelope for WebSocket frames. Responses carry the ID of their request.
type Message struct {
	ID      string          `json:"id"`
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MoveRequest is the body of a move request.
type MoveRequest struct {
	Column *int `json:"column" validate:"required,min=0"`
}

// ErrorResponse is the body of every rejected request.
type ErrorResponse struct {
	Error string `json:"error"`
	// Status mirrors the HTTP status code when the error travels over WebSocket.
	Status int `json:"status,omitempty"`
}
