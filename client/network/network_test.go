package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	tests := []struct {
		name      string
		transport string
		want      Service
		wantErr   bool
	}{
		{name: "default", transport: "", want: &HTTPClient{}},
		{name: "http", transport: TransportHTTP, want: &HTTPClient{}},
		{name: "websocket", transport: TransportWebSocket, want: &WSClient{}},
		{name: "unknown", transport: "udp", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, err := NewService(NewServiceOptions{
				Transport: tt.transport,
				BaseURL:   DefaultServerURL,
				Logger:    testLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, service)
		})
	}
}
