package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/jcross/internal/model"
	"github.com/alexisbeaulieu97/jcross/internal/tui/components"
)

const cellWidth = 2

var gameActions = []string{"Undo", "Hint", "Check"}

// gameScreen lets the player mark cells on a puzzle's field. Nothing is
// checked against the clues.
type gameScreen struct {
	deps     screenDeps
	groupID  int
	folderID int
	puzzleID int
	puzzle   model.Puzzle
	found    bool
	field    model.GameField
	row      int
	col      int

	// Timer state
	timerID int
	elapsed time.Duration
}

func newGameScreen(groupID, folderID, puzzleID int, deps screenDeps) gameScreen {
	s := gameScreen{deps: deps, groupID: groupID, folderID: folderID, puzzleID: puzzleID}

	folders := deps.catalog.FoldersForGroup(groupID)
	if folderID < 0 || folderID >= len(folders) {
		deps.logger.Warn(deps.ctx, "folder not found", "group_id", groupID, "folder_id", folderID)
		return s
	}
	puzzles := deps.catalog.PuzzlesForFolder(folderID, folders[folderID].TotalPuzzles)
	if puzzleID < 0 || puzzleID >= len(puzzles) {
		deps.logger.Warn(deps.ctx, "puzzle not found", "folder_id", folderID, "puzzle_id", puzzleID)
		return s
	}

	s.puzzle = puzzles[puzzleID]
	s.found = true
	s.field = deps.catalog.GameField(s.puzzle)
	if deps.settings.ShowTimer {
		s.timerID = nextTimerID()
	}
	return s
}

func (s gameScreen) Init() tea.Cmd {
	if s.timerID == 0 {
		return nil
	}
	return timerTickCmd(s.timerID)
}

func (s gameScreen) Title() string {
	if !s.found {
		return ""
	}
	return s.puzzle.Name
}

func (s gameScreen) Bindings() []key.Binding {
	k := s.deps.keys
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Toggle, k.Mark, k.Reset}
}

// Field returns a copy of the current field.
func (s gameScreen) Field() model.GameField {
	return s.field.Clone()
}

func (s gameScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if msg.ID != s.timerID || s.timerID == 0 {
			return s, nil
		}
		s.elapsed += time.Second
		return s, timerTickCmd(s.timerID)

	case tea.KeyMsg:
		if !s.found {
			return s, nil
		}
		k := s.deps.keys
		switch {
		case key.Matches(msg, k.Up):
			s.moveCursor(-1, 0)
		case key.Matches(msg, k.Down):
			s.moveCursor(1, 0)
		case key.Matches(msg, k.Left):
			s.moveCursor(0, -1)
		case key.Matches(msg, k.Right):
			s.moveCursor(0, 1)
		case key.Matches(msg, k.Toggle):
			s.field = s.field.Clone()
			if state, ok := s.field.Toggle(s.row, s.col); ok {
				s.deps.logger.Debug(s.deps.ctx, "cell toggled", "row", s.row, "col", s.col, "state", state.String())
			}
		case key.Matches(msg, k.Mark):
			s.field = s.field.Clone()
			next := model.CellMarked
			if current, _ := s.field.Cell(s.row, s.col); current == model.CellMarked {
				next = model.CellEmpty
			}
			s.field.Set(s.row, s.col, next)
			s.deps.logger.Debug(s.deps.ctx, "cell marked", "row", s.row, "col", s.col, "state", next.String())
		case key.Matches(msg, k.Reset):
			s.field = s.field.Clone()
			s.field.Reset()
			s.deps.logger.Debug(s.deps.ctx, "field reset", "puzzle", s.puzzle.Name)
		}
	}
	return s, nil
}

func (s *gameScreen) moveCursor(dr, dc int) {
	s.row = clamp(s.row+dr, 0, s.field.Height-1)
	s.col = clamp(s.col+dc, 0, s.field.Width-1)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (s gameScreen) View(ctx ViewContext) string {
	if !s.found {
		return ""
	}

	styles := ctx.Styles
	var content strings.Builder

	content.WriteString(s.renderField(ctx))
	content.WriteString("\n\n")

	filled, marked := s.field.Counts()
	status := fmt.Sprintf("Filled %d  Marked %d", filled, marked)
	if s.timerID != 0 {
		status += "  " + glyph(ctx.Unicode, "⏱ ", "Time ") + formatElapsed(s.elapsed)
	}
	content.WriteString(styles.Body.Render(status))
	if s.puzzle.Solved {
		badge := components.NewBadge("SOLVED").WithVariant(components.BadgeVariantSecondary)
		content.WriteString("  " + badge.View(styles))
	}
	content.WriteString("\n")
	content.WriteString(styles.Muted.Render(glyph(ctx.Unicode,
		"space: fill • x: mark as empty",
		"space: fill - x: mark as empty")))
	content.WriteString("\n\n")

	buttons := make([]string, 0, len(gameActions))
	for _, label := range gameActions {
		buttons = append(buttons, components.NewButton(label).WithDisabled(true).View(styles))
	}
	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))

	return content.String()
}

func (s gameScreen) renderField(ctx ViewContext) string {
	styles := ctx.Styles
	field := s.field

	rowClueWidth := 0
	for _, clue := range field.RowClues {
		if w := len(formatClue(clue)); w > rowClueWidth {
			rowClueWidth = w
		}
	}
	headerRows := model.LongestClue(field.ColumnClues)
	indent := strings.Repeat(" ", rowClueWidth+1)

	lines := make([]string, 0, headerRows+field.Height)
	for h := 0; h < headerRows; h++ {
		var line strings.Builder
		line.WriteString(indent)
		for c := 0; c < field.Width; c++ {
			var clue []int
			if c < len(field.ColumnClues) {
				clue = field.ColumnClues[c]
			}
			pad := headerRows - len(clue)
			cell := ""
			if h >= pad {
				cell = strconv.Itoa(clue[h-pad])
			}
			line.WriteString(styles.Clue.Render(fmt.Sprintf("%*s", cellWidth, cell)))
		}
		lines = append(lines, line.String())
	}

	for r := 0; r < field.Height; r++ {
		var line strings.Builder
		var clue []int
		if r < len(field.RowClues) {
			clue = field.RowClues[r]
		}
		line.WriteString(styles.Clue.Render(fmt.Sprintf("%*s ", rowClueWidth, formatClue(clue))))
		for c := 0; c < field.Width; c++ {
			state, _ := field.Cell(r, c)
			text := styles.CellStyle(state).Render(cellGlyph(state, ctx.Unicode))
			if r == s.row && c == s.col {
				text = styles.Cursor.Reverse(true).Render(cellGlyph(state, ctx.Unicode))
			}
			line.WriteString(text)
		}
		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n")
}

func formatClue(clue []int) string {
	parts := make([]string, len(clue))
	for i, n := range clue {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}

func cellGlyph(state model.CellState, unicode bool) string {
	switch state {
	case model.CellFilled:
		return glyph(unicode, "██", "##")
	case model.CellMarked:
		return glyph(unicode, " ×", " x")
	default:
		return glyph(unicode, " ·", " .")
	}
}

func formatElapsed(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
