package state

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/cbodonnell/connectfour/pkg/game"
	"github.com/cbodonnell/connectfour/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStateManager(t *testing.T) {
	m := NewInMemoryStateManager(game.New(game.NewGameOptions{Mode: types.ModeVsHuman}))
	ctx := context.Background()

	require.NoError(t, m.Update(ctx, func(g *game.Game) error {
		_, err := g.Drop(3)
		return err
	}))

	snapshot, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.CellPlayerA, snapshot.Board[5*7+3])

	// the snapshot is a copy
	snapshot.Board[5*7+3] = types.CellEmpty
	again, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.CellPlayerA, again.Board[5*7+3])

	wantErr := errors.New("boom")
	assert.Equal(t, wantErr, m.Update(ctx, func(g *game.Game) error { return wantErr }))
}

func TestInMemoryStateManager_concurrentUpdates(t *testing.T) {
	m := NewInMemoryStateManager(game.New(game.NewGameOptions{Mode: types.ModeVsHuman}))
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, m.Update(ctx, func(g *game.Game) error {
				_, err := g.Drop(0)
				return err
			}))
		}()
	}
	wg.Wait()

	snapshot, err := m.Get(ctx)
	require.NoError(t, err)
	for r := 0; r < 6; r++ {
		assert.NotEqual(t, types.CellEmpty, snapshot.Board[r*7])
	}
}

func TestInMemoryStateManager_nilGame(t *testing.T) {
	m := NewInMemoryStateManager(nil)
	_, err := m.Get(context.Background())
	assert.Error(t, err)
	assert.Error(t, m.Update(context.Background(), func(g *game.Game) error { return nil }))
}
