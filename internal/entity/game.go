package entity

import "strings"

const BoardSize = 3

const (
	EmptyCell Cell = ""
	CellX     Cell = "X"
	CellO     Cell = "O"

	PlayerX Player = "X"
	PlayerO Player = "O"
)

// Cell is one slot of the board.
type Cell string

// Player is one of the two participants.
type Player string

// Mark - returns the cell value this player leaves on the board.
func (that Player) Mark() Cell {
	return Cell(that)
}

func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// WinCombos holds the 8 winning lines in the order they are checked:
// rows, columns, main diagonal, anti-diagonal.
var WinCombos = [8][3]Position{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

type Board [BoardSize][BoardSize]Cell

func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

func (that Board) Cell(pos Position) Cell {
	return that[pos.Row][pos.Col]
}

func (that Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

// Count - returns how many cells hold the given value.
func (that Board) Count(value Cell) int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == value {
				count++
			}
		}
	}

	return count
}

// String renders the board row by row, "_" for empty cells, e.g. "XO_/_X_/__O".
func (that Board) String() string {
	var sb strings.Builder
	for r, row := range that {
		if r > 0 {
			sb.WriteByte('/')
		}
		for _, cell := range row {
			if cell == EmptyCell {
				sb.WriteByte('_')
				continue
			}
			sb.WriteString(string(cell))
		}
	}

	return sb.String()
}

type Game struct {
	Board         Board  `json:"board"`
	CurrentPlayer Player `json:"current_player"`
}

func NewGame() *Game {
	return &Game{
		Board:         Board{},
		CurrentPlayer: PlayerX,
	}
}

// PlayTurn - puts the current player's mark on an empty cell.
// It reports false and leaves the board untouched when the cell is occupied
// or out of range. It does not check whether the game is already over.
func (that *Game) PlayTurn(row, col int) bool {
	if !InBounds(row, col) {
		return false
	}

	if that.Board[row][col] != EmptyCell {
		return false
	}

	that.Board[row][col] = that.CurrentPlayer.Mark()

	return true
}

func (that *Game) NextPlayer() {
	that.CurrentPlayer = that.CurrentPlayer.Opponent()
}

func (that *Game) Reset() {
	that.Board = Board{}
	that.CurrentPlayer = PlayerX
}

func (that *Game) IsFinished() bool {
	if _, ok := Winner(that.Board); ok {
		return true
	}

	return IsDraw(that.Board)
}

// WinningLine - returns the first line in WinCombos held entirely by one mark.
func WinningLine(board Board) ([3]Position, bool) {
	for _, combo := range WinCombos {
		a, b, c := board.Cell(combo[0]), board.Cell(combo[1]), board.Cell(combo[2])
		if a != EmptyCell && a == b && b == c {
			return combo, true
		}
	}

	return [3]Position{}, false
}

// Winner - returns the mark of the first fully occupied winning line.
func Winner(board Board) (Player, bool) {
	line, ok := WinningLine(board)
	if !ok {
		return "", false
	}

	return Player(board.Cell(line[0])), true
}

// IsDraw reports a full board without a winning line.
func IsDraw(board Board) bool {
	if !board.IsFull() {
		return false
	}

	_, won := Winner(board)

	return !won
}
