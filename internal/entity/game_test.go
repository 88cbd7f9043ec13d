package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseBoard builds a board from rows like "XO_/_X_/__O".
func parseBoard(t *testing.T, layout string) Board {
	t.Helper()

	var board Board
	rows := 0
	col := 0
	for _, r := range layout {
		switch r {
		case '/':
			require.Equal(t, BoardSize, col, "row %d of %q is incomplete", rows, layout)
			rows++
			col = 0
			continue
		case '_':
			board[rows][col] = EmptyCell
		case 'X':
			board[rows][col] = CellX
		case 'O':
			board[rows][col] = CellO
		default:
			t.Fatalf("unexpected rune %q in layout %q", r, layout)
		}
		col++
	}
	require.Equal(t, BoardSize-1, rows, "layout %q must have %d rows", layout, BoardSize)

	return board
}

func TestNewGame(t *testing.T) {
	// When: a new game is created
	game := NewGame()

	// Then: the board is empty and X moves first
	expectedGame := &Game{
		Board:         Board{},
		CurrentPlayer: PlayerX,
	}

	require.Equal(t, expectedGame, game)
	assert.Equal(t, BoardSize*BoardSize, game.Board.Count(EmptyCell))
}

func TestGame_PlayTurn(t *testing.T) {
	t.Run("Empty cell takes the current player's mark", func(t *testing.T) {
		// Given: a new game
		game := NewGame()

		// When: X plays the center
		ok := game.PlayTurn(1, 1)

		// Then: the move succeeds and the cell holds X
		require.True(t, ok)
		assert.Equal(t, "___/_X_/___", game.Board.String())
		assert.Equal(t, PlayerX, game.CurrentPlayer)
	})

	t.Run("Every empty cell accepts a move", func(t *testing.T) {
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				// Given: a new game with O to move
				game := NewGame()
				game.NextPlayer()

				// When: O plays the cell
				ok := game.PlayTurn(row, col)

				// Then: only that cell holds O
				require.True(t, ok)
				assert.Equal(t, CellO, game.Board[row][col])
				assert.Equal(t, 1, game.Board.Count(CellO))
			}
		}
	})

	t.Run("Occupied cell is rejected", func(t *testing.T) {
		// Given: a game where X holds the corner and O is to move
		game := NewGame()
		require.True(t, game.PlayTurn(0, 0))
		game.NextPlayer()
		before := game.Board

		// When: O tries the same cell
		ok := game.PlayTurn(0, 0)

		// Then: the move fails and nothing changes
		assert.False(t, ok)
		assert.Equal(t, before, game.Board)
		assert.Equal(t, PlayerO, game.CurrentPlayer)
	})

	t.Run("Out of range coordinates are rejected", func(t *testing.T) {
		// Given: a new game
		game := NewGame()

		// When: moves outside the board are attempted
		// Then: each one fails without touching the board
		for _, pos := range []Position{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {20, 20}} {
			assert.False(t, game.PlayTurn(pos.Row, pos.Col), "position %+v", pos)
		}
		assert.Equal(t, Board{}, game.Board)
	})

	t.Run("Finished game still accepts engine moves", func(t *testing.T) {
		// Given: X has already completed the top row
		game := NewGame()
		game.Board = parseBoard(t, "XXX/OO_/___")
		game.CurrentPlayer = PlayerO

		// When: O plays an empty cell
		ok := game.PlayTurn(1, 2)

		// Then: the engine applies it, terminal checks belong to the caller
		assert.True(t, ok)
		assert.Equal(t, "XXX/OOO/___", game.Board.String())
	})
}

func TestGame_NextPlayer(t *testing.T) {
	// Given: a new game
	game := NewGame()

	// When: the turn is advanced once
	game.NextPlayer()

	// Then: O is current
	assert.Equal(t, PlayerO, game.CurrentPlayer)

	// When: the turn is advanced again
	game.NextPlayer()

	// Then: X is current again
	assert.Equal(t, PlayerX, game.CurrentPlayer)
}

func TestGame_Reset(t *testing.T) {
	// Given: a game in progress with O to move
	game := NewGame()
	game.Board = parseBoard(t, "XO_/_X_/O_X")
	game.CurrentPlayer = PlayerO

	// When: the game is reset
	game.Reset()

	// Then: the game equals a fresh one
	assert.Equal(t, NewGame(), game)
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   Player
	}{
		{"top row", "XXX/___/___", PlayerX},
		{"middle row", "___/OOO/___", PlayerO},
		{"bottom row", "___/___/XXX", PlayerX},
		{"left column", "O__/O__/O__", PlayerO},
		{"middle column", "_X_/_X_/_X_", PlayerX},
		{"right column", "__O/__O/__O", PlayerO},
		{"main diagonal", "X__/_X_/__X", PlayerX},
		{"anti diagonal", "__X/_X_/X__", PlayerX},
		{"full board with a line", "XOX/OXO/OXX", PlayerX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a board with a complete line
			board := parseBoard(t, tt.layout)

			// When: the winner is computed
			winner, ok := Winner(board)

			// Then: the line's owner is returned
			require.True(t, ok)
			assert.Equal(t, tt.want, winner)
		})
	}

	t.Run("No winner", func(t *testing.T) {
		for _, layout := range []string{"___/___/___", "XO_/_X_/__O", "XOX/XOO/OXX"} {
			winner, ok := Winner(parseBoard(t, layout))
			assert.False(t, ok, layout)
			assert.Empty(t, winner, layout)
		}
	})

	t.Run("Scan order is fixed", func(t *testing.T) {
		// Given: an illegal board where both players own a row
		board := parseBoard(t, "OOO/XXX/___")

		// When: the winner is computed
		winner, ok := Winner(board)

		// Then: the first row in scan order wins
		require.True(t, ok)
		assert.Equal(t, PlayerO, winner)
	})
}

func TestWinningLine(t *testing.T) {
	// Given: O holds the anti-diagonal
	board := parseBoard(t, "X_O/XO_/O__")

	// When: the winning line is looked up
	line, ok := WinningLine(board)

	// Then: the anti-diagonal is returned
	require.True(t, ok)
	assert.Equal(t, [3]Position{{0, 2}, {1, 1}, {2, 0}}, line)

	_, ok = WinningLine(parseBoard(t, "XO_/_X_/__O"))
	assert.False(t, ok)
}

func TestIsDraw(t *testing.T) {
	t.Run("Full board without a line", func(t *testing.T) {
		board := parseBoard(t, "XOX/XOO/OXX")

		assert.True(t, IsDraw(board))
		_, won := Winner(board)
		assert.False(t, won)
	})

	t.Run("Full board with a line is a win", func(t *testing.T) {
		board := parseBoard(t, "XOX/OXO/OXX")

		assert.False(t, IsDraw(board))
	})

	t.Run("Board with empty cells", func(t *testing.T) {
		assert.False(t, IsDraw(Board{}))
		assert.False(t, IsDraw(parseBoard(t, "XOX/XOO/OX_")))
	})
}

func TestGame_IsFinished(t *testing.T) {
	game := NewGame()
	assert.False(t, game.IsFinished())

	game.Board = parseBoard(t, "O__/O__/O__")
	assert.True(t, game.IsFinished())

	game.Board = parseBoard(t, "XOX/XOO/OXX")
	assert.True(t, game.IsFinished())
}

func TestGame_FullScenario(t *testing.T) {
	// Given: a fresh game
	game := NewGame()

	moves := []Position{{0, 0}, {1, 1}, {0, 1}, {2, 2}}

	// When: X and O alternate without completing a line
	for _, move := range moves {
		require.True(t, game.PlayTurn(move.Row, move.Col))
		_, won := Winner(game.Board)
		require.False(t, won)
		require.False(t, IsDraw(game.Board))
		game.NextPlayer()
	}

	// When: X completes the top row
	require.True(t, game.PlayTurn(0, 2))

	// Then: X wins
	winner, ok := Winner(game.Board)
	require.True(t, ok)
	assert.Equal(t, PlayerX, winner)
	assert.Equal(t, "XXX/_O_/__O", game.Board.String())
}

func TestPlayer_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.Equal(t, CellX, PlayerX.Mark())
	assert.Equal(t, CellO, PlayerO.Mark())
}
