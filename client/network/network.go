// Package network talks to the move-processing service.
package network

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/connectfour/pkg/game/types"
	"github.com/cbodonnell/connectfour/pkg/log"
)

const (
	DefaultServerURL = "http://localhost:5000"

	StatePath = "/api/state"
	MovePath  = "/api/move"
	ResetPath = "/api/reset"
	WSPath    = "/api/ws"
)

const (
	TransportHTTP      = "http"
	TransportWebSocket = "ws"
)

// Service is the remote authority for game state.
type Service interface {
	// State fetches the current snapshot.
	State(ctx context.Context) (*types.Snapshot, error)
	// Move submits a move in the given column.
	Move(ctx context.Context, column int) (*types.MoveResult, error)
	// Reset starts a new game.
	Reset(ctx context.Context) (*types.Snapshot, error)
}

type NewServiceOptions struct {
	// Transport is TransportHTTP or TransportWebSocket. Empty selects HTTP.
	Transport string
	BaseURL   string
	// Timeout bounds each request. Zero disables it.
	Timeout time.Duration
	Logger  *log.Logger
}

// NewService returns the Service for the configured transport.
// The WebSocket client holds a connection and should be closed when done.
func NewService(opts NewServiceOptions) (Service, error) {
	switch opts.Transport {
	case "", TransportHTTP:
		return NewHTTPClient(NewHTTPClientOptions{
			BaseURL: opts.BaseURL,
			Timeout: opts.Timeout,
			Logger:  opts.Logger,
		}), nil
	case TransportWebSocket:
		return NewWSClient(NewWSClientOptions{
			BaseURL: opts.BaseURL,
			Timeout: opts.Timeout,
			Logger:  opts.Logger,
		}), nil
	default:
		return nil, fmt.Errorf("unknown transport: %s", opts.Transport)
	}
}
