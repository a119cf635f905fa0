package session

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/connectfour/client/network"
	"github.com/cbodonnell/connectfour/pkg/game/types"
)

const (
	StatusLoading         = "Loading..."
	StatusConnectionError = "Error connecting to server."
	StatusYourTurn        = "Your turn"
	StatusYouWin          = "You win!"
	StatusComputerWins    = "Computer wins!"
	StatusDraw            = "It's a draw!"
)

// statusText derives the status line. Failures replace the turn indicator until the next success.
func statusText(loaded, connectFailed bool, lastErr error, gameOver bool, winner types.Winner, mode types.Mode, cells []types.Cell) string {
	if connectFailed {
		return StatusConnectionError
	}
	if lastErr != nil {
		return "Error: " + errorMessage(lastErr)
	}
	if !loaded {
		return StatusLoading
	}
	if gameOver {
		switch {
		case winner == types.WinnerDraw:
			return StatusDraw
		case mode == types.ModeVsHuman:
			return fmt.Sprintf("Player %s wins!", winner)
		case winner == types.WinnerPlayerA:
			return StatusYouWin
		default:
			return StatusComputerWins
		}
	}
	if mode == types.ModeVsHuman {
		return fmt.Sprintf("Player %s's turn", currentPlayer(cells).Symbol())
	}
	return StatusYourTurn
}

// currentPlayer infers whose turn it is from piece counts. PlayerA always moves first.
func currentPlayer(cells []types.Cell) types.Cell {
	a, b := 0, 0
	for _, c := range cells {
		switch c {
		case types.CellPlayerA:
			a++
		case types.CellPlayerB:
			b++
		}
	}
	if a > b {
		return types.CellPlayerB
	}
	return types.CellPlayerA
}

func errorMessage(err error) string {
	var transportErr *network.ErrTransport
	if errors.As(err, &transportErr) {
		return transportErr.Message
	}
	return err.Error()
}
