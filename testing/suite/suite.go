package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Game       *entity.Game
	Controller *tictactoe.GameController
}

// New - prepares a fresh game and a controller driving it.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	game := entity.NewGame()

	return ctx, &Suite{
		T:          t,
		Logger:     logger,
		Game:       game,
		Controller: tictactoe.NewGameController(logger, game),
	}
}

// Play - makes the given moves in order and fails the test on the first rejected one.
func (that *Suite) Play(moves ...entity.Position) tictactoe.State {
	that.Helper()

	state := that.Controller.State()
	for _, move := range moves {
		var err error
		state, err = that.Controller.MakeTurn(move.Row, move.Col)
		if err != nil {
			that.Fatalf("move %+v rejected: %v", move, err)
		}
	}

	return state
}
