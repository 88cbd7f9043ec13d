package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// State is a snapshot of the game handed to the presentation layer.
type State struct {
	Board    entity.Board
	Turn     entity.Player
	Winner   entity.Player
	Draw     bool
	Finished bool
}

type GameController struct {
	logger *slog.Logger
	game   *entity.Game
}

func NewGameController(logger *slog.Logger, game *entity.Game) *GameController {
	return &GameController{
		logger: logger.With("component", "game_controller"),
		game:   game,
	}
}

// MakeTurn - plays the current player's mark on the cell and advances the turn
// unless the move ended the game.
func (that *GameController) MakeTurn(row, col int) (State, error) {
	log := that.logger.With("method", "MakeTurn")

	if err := that.validateMove(row, col); err != nil {
		return that.State(), fmt.Errorf("invalid turn: %w", err)
	}

	player := that.game.CurrentPlayer
	if !that.game.PlayTurn(row, col) {
		return that.State(), fmt.Errorf("invalid turn: %w: row %d col %d", apperror.ErrCellOccupied, row, col)
	}

	log.Debug("turn played", "player", player, "row", row, "col", col)

	state := that.updateGameStatus()
	if state.Finished {
		log.Info("game finished", "winner", state.Winner, "draw", state.Draw, "board", state.Board.String())
	}

	return state, nil
}

func (that *GameController) Reset() State {
	that.game.Reset()
	that.logger.Info("game reset")

	return that.State()
}

func (that *GameController) State() State {
	winner, won := entity.Winner(that.game.Board)
	draw := !won && entity.IsDraw(that.game.Board)

	return State{
		Board:    that.game.Board,
		Turn:     that.game.CurrentPlayer,
		Winner:   winner,
		Draw:     draw,
		Finished: won || draw,
	}
}

// validateMove - checks the move against the board bounds and the game status.
func (that *GameController) validateMove(row, col int) error {
	if !entity.InBounds(row, col) {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, row, col)
	}

	if that.game.IsFinished() {
		return apperror.ErrGameFinished
	}

	return nil
}

// updateGameStatus - hands the turn over when the last move did not end the game.
func (that *GameController) updateGameStatus() State {
	state := that.State()
	if !state.Finished {
		that.game.NextPlayer()
		state.Turn = that.game.CurrentPlayer
	}

	return state
}
