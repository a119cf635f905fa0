package game

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
)

// Opponent picks the automated counter-move.
type Opponent interface {
	ChooseColumn(ctx context.Context, g *Game) (int, error)
}

// RandomOpponent picks uniformly among the columns that are not full.
type RandomOpponent struct {
	mu   sync.Mutex
	rand *rand.Rand
}

func NewRandomOpponent(seed int64) *RandomOpponent {
	return &RandomOpponent{rand: rand.New(rand.NewSource(seed))}
}

func (o *RandomOpponent) ChooseColumn(ctx context.Context, g *Game) (int, error) {
	cols := g.ValidColumns()
	if len(cols) == 0 {
		return -1, fmt.Errorf("no valid columns")
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	return cols[o.rand.Intn(len(cols))], nil
}

// FirstAvailableOpponent always picks the leftmost column that is not full.
type FirstAvailableOpponent struct{}

func (FirstAvailableOpponent) ChooseColumn(ctx context.Context, g *Game) (int, error) {
	cols := g.ValidColumns()
	if len(cols) == 0 {
		return -1, fmt.Errorf("no valid columns")
	}
	return cols[0], nil
}

// ParseOpponent returns the opponent with the given name.
func ParseOpponent(name string, seed int64) (Opponent, error) {
	switch name {
	case "random":
		return NewRandomOpponent(seed), nil
	case "first":
		return FirstAvailableOpponent{}, nil
	default:
		return nil, fmt.Errorf("unknown opponent: %s", name)
	}
}
