package tui

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

type gameController interface {
	MakeTurn(row, col int) (tictactoe.State, error)
	Reset() tictactoe.State
	State() tictactoe.State
}

// Model is the bubbletea model rendering the board and forwarding presses
// to the game controller.
type Model struct {
	logger     *slog.Logger
	controller gameController

	state  tictactoe.State
	cursor entity.Position
	keys   keyMap
	help   help.Model
}

func New(logger *slog.Logger, controller gameController) Model {
	return Model{
		logger:     logger.With("component", "tui"),
		controller: controller,
		state:      controller.State(),
		cursor:     entity.Position{Row: 1, Col: 1},
		keys:       newKeyMap(),
		help:       help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Reset):
		m.state = m.controller.Reset()

	case key.Matches(msg, m.keys.Up):
		m.cursor.Row = max(m.cursor.Row-1, 0)

	case key.Matches(msg, m.keys.Down):
		m.cursor.Row = min(m.cursor.Row+1, entity.BoardSize-1)

	case key.Matches(msg, m.keys.Left):
		m.cursor.Col = max(m.cursor.Col-1, 0)

	case key.Matches(msg, m.keys.Right):
		m.cursor.Col = min(m.cursor.Col+1, entity.BoardSize-1)

	case key.Matches(msg, m.keys.Play):
		m.pressCell(m.cursor)

	case key.Matches(msg, m.keys.Cell):
		// digits count cells row by row from the top-left corner
		n, err := strconv.Atoi(msg.String())
		if err != nil {
			return m, nil
		}
		m.cursor = entity.Position{Row: (n - 1) / entity.BoardSize, Col: (n - 1) % entity.BoardSize}
		m.pressCell(m.cursor)
	}

	return m, nil
}

// pressCell - forwards a press to the controller, rejected presses leave the view as is.
func (m *Model) pressCell(pos entity.Position) {
	state, err := m.controller.MakeTurn(pos.Row, pos.Col)
	if err != nil {
		m.logger.Debug("press ignored", "row", pos.Row, "col", pos.Col, "error", err)
		return
	}

	m.state = state
}

func (m Model) View() string {
	sections := []string{
		titleStyle.Render("Tic-Tac-Toe"),
		m.renderBoard(),
		m.renderStatus(),
		helpStyle.Render(m.help.View(m.keys)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m Model) renderBoard() string {
	line, won := entity.WinningLine(m.state.Board)

	rows := make([]string, 0, entity.BoardSize)
	for r := 0; r < entity.BoardSize; r++ {
		cells := make([]string, 0, entity.BoardSize)
		for c := 0; c < entity.BoardSize; c++ {
			pos := entity.Position{Row: r, Col: c}

			style := cellStyle
			switch {
			case won && onLine(line, pos):
				style = winCellStyle
			case !m.state.Finished && pos == m.cursor:
				style = cursorCellStyle
			}

			cells = append(cells, style.Render(glyph(m.state.Board.Cell(pos))))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderStatus() string {
	text := StatusText(m.state)

	switch {
	case m.state.Winner != "":
		return winStyle.Render(text)
	case m.state.Draw:
		return drawStyle.Render(text)
	default:
		return statusStyle.Render(text)
	}
}

// StatusText - returns the message shown under the board.
func StatusText(state tictactoe.State) string {
	switch {
	case state.Winner != "":
		return fmt.Sprintf("Player %s wins! Press r to play again.", state.Winner)
	case state.Draw:
		return "It's a draw! Press r to play again."
	default:
		return fmt.Sprintf("Player %s's turn", state.Turn)
	}
}

func glyph(cell entity.Cell) string {
	switch cell {
	case entity.CellX:
		return markXStyle.Render(string(cell))
	case entity.CellO:
		return markOStyle.Render(string(cell))
	default:
		return " "
	}
}

func onLine(line [3]entity.Position, pos entity.Position) bool {
	for _, p := range line {
		if p == pos {
			return true
		}
	}

	return false
}

