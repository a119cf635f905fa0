package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cbodonnell/connectfour/pkg/api/metrics"
	"github.com/cbodonnell/connectfour/pkg/game"
	"github.com/cbodonnell/connectfour/pkg/game/types"
	"github.com/cbodonnell/connectfour/pkg/log"
	"github.com/cbodonnell/connectfour/pkg/messages"
	"github.com/cbodonnell/connectfour/pkg/state"
	"github.com/go-playground/validator/v10"
)

// Controller implements the service operations shared by the HTTP and WebSocket handlers.
type Controller struct {
	stateManager state.StateManager
	opponent     game.Opponent
	thinkTime    time.Duration
	metrics      *metrics.Metrics
	validate     *validator.Validate
}

type NewControllerOptions struct {
	StateManager state.StateManager
	Opponent     game.Opponent
	// ThinkTime delays the automated reply.
	ThinkTime time.Duration
	Metrics   *metrics.Metrics
}

func NewController(opts NewControllerOptions) *Controller {
	return &Controller{
		stateManager: opts.StateManager,
		opponent:     opts.Opponent,
		thinkTime:    opts.ThinkTime,
		metrics:      opts.Metrics,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (c *Controller) State(ctx context.Context) (*types.Snapshot, error) {
	snapshot, err := c.stateManager.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get game state: %v", err)
	}
	return snapshot, nil
}

// Move plays a turn. Rule violations are returned as the game package's error types.
func (c *Controller) Move(ctx context.Context, req *messages.MoveRequest) (*types.MoveResult, error) {
	var result *types.MoveResult
	err := c.stateManager.Update(ctx, func(g *game.Game) error {
		if g.GameOver() {
			return &game.ErrGameOver{}
		}
		if err := c.validate.Struct(req); err != nil {
			log.Debug("Invalid move request: %v", err)
			return &game.ErrInvalidColumn{}
		}
		r, err := g.PlayTurn(ctx, *req.Column, game.PlayTurnOptions{
			Opponent:  c.opponent,
			ThinkTime: c.thinkTime,
		})
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		if game.IsIllegalMove(err) {
			c.reject(err)
		}
		return nil, err
	}

	if c.metrics != nil {
		c.metrics.Moves.WithLabelValues("human").Inc()
		if result.AutomatedMove != nil {
			c.metrics.Moves.WithLabelValues("automated").Inc()
		}
		if result.GameOver {
			c.metrics.GamesFinished.WithLabelValues(result.Winner.String()).Inc()
		}
	}
	log.Debug("Move applied (human=%v automated=%v gameOver=%t)", result.HumanMove, result.AutomatedMove, result.GameOver)
	return result, nil
}

func (c *Controller) Reset(ctx context.Context) (*types.Snapshot, error) {
	var snapshot *types.Snapshot
	err := c.stateManager.Update(ctx, func(g *game.Game) error {
		g.Reset()
		snapshot = g.Snapshot()
		snapshot.Message = g.ResetMessage()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reset game: %v", err)
	}
	if c.metrics != nil {
		c.metrics.Resets.Inc()
	}
	log.Info("Game reset")
	return snapshot, nil
}

func (c *Controller) reject(err error) {
	if c.metrics == nil {
		return
	}
	switch {
	case game.IsGameOver(err):
		c.metrics.Rejected.WithLabelValues("game_over").Inc()
	case game.IsInvalidColumn(err):
		c.metrics.Rejected.WithLabelValues("invalid_column").Inc()
	case game.IsColumnFull(err):
		c.metrics.Rejected.WithLabelValues("column_full").Inc()
	}
}

// statusFor maps an operation error to its HTTP status.
func statusFor(err error) int {
	if game.IsIllegalMove(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// messageFor is the error text shown to clients. Internal failures are not exposed.
func messageFor(err error) string {
	if game.IsIllegalMove(err) {
		return err.Error()
	}
	return "Internal server error"
}
