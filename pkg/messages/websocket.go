package messages

import (
	"context"
	"fmt"

	"nhooyr.io/websocket"
)

// WriteMessageToWS writes a Message to a WebSocket connection as a binary frame.
func WriteMessageToWS(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	b, err := SerializeMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to serialize message: %v", err)
	}

	if err := conn.Write(ctx, websocket.MessageBinary, b); err != nil {
		return fmt.Errorf("failed to write message to WebSocket connection: %v", err)
	}

	return nil
}

// ReadMessageFromWS reads a Message from a WebSocket connection.
func ReadMessageFromWS(ctx context.Context, conn *websocket.Conn) (*Message, error) {
	_, b, err := conn.Read(ctx)
	if err != nil {
		return nil, err
	}

	msg, err := DeserializeMessage(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize message: %v", err)
	}

	return msg, nil
}
