package state

import (
	"context"

	"github.com/cbodonnell/connectfour/pkg/game"
	"github.com/cbodonnell/connectfour/pkg/game/types"
)

// StateManager provides shared access to the game.
// Implementations must be thread-safe.
type StateManager interface {
	// Get returns a snapshot of the current game.
	Get(ctx context.Context) (*types.Snapshot, error)
	// Update runs fn with exclusive access to the game.
	Update(ctx context.Context, fn func(g *game.Game) error) error
}
