package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/cbodonnell/connectfour/pkg/game"
	"github.com/cbodonnell/connectfour/pkg/game/types"
)

type InMemoryStateManager struct {
	lock sync.RWMutex
	game *game.Game
}

func NewInMemoryStateManager(g *game.Game) *InMemoryStateManager {
	return &InMemoryStateManager{
		game: g,
	}
}

func (m *InMemoryStateManager) Get(ctx context.Context) (*types.Snapshot, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	if m.game == nil {
		return nil, fmt.Errorf("game is nil")
	}
	return m.game.Snapshot(), nil
}

func (m *InMemoryStateManager) Update(ctx context.Context, fn func(g *game.Game) error) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	if m.game == nil {
		return fmt.Errorf("game is nil")
	}
	return fn(m.game)
}
