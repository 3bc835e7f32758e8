// Package preview renders the 53-week window as a terminal grid so a
// placement can be eyeballed before the script runs.
package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"graphshift/internal/pkg/align"
	"graphshift/internal/pkg/grid"
)

const (
	emptyCell  = "·"
	filledCell = "■"
	todayCell  = "□"
)

var (
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	filledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	todayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Cells lays out the window as 7 rows of 53 runes: filled where a
// shifted position lands, the today marker on the current day unless a
// position already occupies it.
func Cells(positions []grid.Position, todayCol, todayRow int) [][]string {
	rows := make([][]string, grid.DaysPerWeek)
	for row := range rows {
		rows[row] = make([]string, align.WindowWidth)
		for col := range rows[row] {
			rows[row][col] = emptyCell
		}
	}

	rows[todayRow][todayCol] = todayCell

	for _, pos := range positions {
		if pos.Col < 0 || pos.Col >= align.WindowWidth {
			continue
		}
		rows[pos.Row][pos.Col] = filledCell
	}

	return rows
}

// Window renders the cell grid with terminal styling.
func Window(positions []grid.Position, todayCol, todayRow int) string {
	var b strings.Builder

	for row, cells := range Cells(positions, todayCol, todayRow) {
		if row > 0 {
			b.WriteString("\n")
		}

		for col, cell := range cells {
			if col > 0 {
				b.WriteString(" ")
			}

			switch cell {
			case filledCell:
				b.WriteString(filledStyle.Render(cell))
			case todayCell:
				b.WriteString(todayStyle.Render(cell))
			default:
				b.WriteString(emptyStyle.Render(cell))
			}
		}
	}

	return frameStyle.Render(b.String())
}
