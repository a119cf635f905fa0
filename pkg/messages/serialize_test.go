package messages

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeDeserializeMessage(t *testing.T) {
	column := 3
	tests := []struct {
		name    string
		msgType MessageType
		payload interface{}
	}{
		{name: "move request", msgType: MessageTypeClientMove, payload: &MoveRequest{Column: &column}},
		{name: "error", msgType: MessageTypeServerError, payload: &ErrorResponse{Error: "Column is full", Status: 400}},
		{name: "no payload", msgType: MessageTypeClientState},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMessage("req-1", tt.msgType, tt.payload)
			require.NoError(t, err)

			b, err := SerializeMessage(m)
			require.NoError(t, err)

			got, err := DeserializeMessage(b)
			require.NoError(t, err)
			assert.Equal(t, "req-1", got.ID)
			assert.Equal(t, tt.msgType, got.Type)
			if tt.payload == nil {
				assert.Empty(t, got.Payload)
				return
			}
			want, err := json.Marshal(tt.payload)
			require.NoError(t, err)
			assert.JSONEq(t, string(want), string(got.Payload))
		})
	}
}

func TestDeserializeMessage_invalid(t *testing.T) {
	_, err := DeserializeMessage([]byte("not zstd"))
	assert.Error(t, err)
}
