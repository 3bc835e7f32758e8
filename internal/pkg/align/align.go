// Package align chooses the single column shift that places a set of
// grid positions inside the trailing window ending at the current week.
package align

import (
	"errors"
	"fmt"

	"graphshift/internal/pkg/grid"
)

// WindowWidth is the number of week columns in the target window.
const WindowWidth = 53

// Mode selects where inside the window's free columns the drawing sits.
type Mode int

const (
	Left Mode = iota
	Center
	Right
)

var (
	// ErrDrawingTooWide means the positions span more columns than the
	// window has, so no shift can fit them.
	ErrDrawingTooWide = errors.New("drawing too wide for window")

	// ErrUnavoidableFutureDate means every shift that fits the window
	// places at least one point later in the current week than today.
	ErrUnavoidableFutureDate = errors.New("no alignment avoids a future date")
)

// ParseMode parses an alignment selector. Legal values are "left",
// "center" and "right".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "left":
		return Left, nil
	case "center":
		return Center, nil
	case "right":
		return Right, nil
	}

	return Left, fmt.Errorf("error unknown alignment mode %q", s)
}

func (m Mode) String() string {
	switch m {
	case Center:
		return "center"
	case Right:
		return "right"
	}

	return "left"
}

// Shift computes the uniform column shift that moves positions into the
// window [0, WindowWidth-1] under mode, such that no point whose shifted
// column is the rightmost column has a row past todayRow. Rows are never
// altered. Positions are in their source grid's coordinates.
func Shift(positions []grid.Position, todayRow int, mode Mode) (int, error) {
	if len(positions) == 0 {
		return 0, nil
	}

	minCol, maxCol := positions[0].Col, positions[0].Col
	for _, pos := range positions[1:] {
		if pos.Col < minCol {
			minCol = pos.Col
		}
		if pos.Col > maxCol {
			maxCol = pos.Col
		}
	}

	rightmost := WindowWidth - 1

	spread := maxCol - minCol + 1
	if spread > WindowWidth {
		return 0, fmt.Errorf("error fitting %d columns into %d week window %w", spread, WindowWidth, ErrDrawingTooWide)
	}

	var shift int
	switch mode {
	case Left:
		shift = -minCol
	case Right:
		shift = rightmost - maxCol
	case Center:
		shift = (WindowWidth-spread)/2 - minCol
	}

	// Clamp keeps every shifted column inside [0, rightmost].
	if shift < -minCol {
		shift = -minCol
	}
	if shift > rightmost-maxCol {
		shift = rightmost - maxCol
	}

	// Walk the window earlier one column at a time until nothing lands
	// past today in the current week. Equivalent to taking the largest
	// valid shift not exceeding the candidate.
	for ; shift >= -minCol; shift-- {
		if !futureViolation(positions, shift, rightmost, todayRow) {
			return shift, nil
		}
	}

	return 0, ErrUnavoidableFutureDate
}

// Apply shifts every position's column by shift, leaving rows untouched.
func Apply(positions []grid.Position, shift int) []grid.Position {
	shifted := make([]grid.Position, len(positions))
	for i, pos := range positions {
		shifted[i] = grid.Position{Col: pos.Col + shift, Row: pos.Row}
	}

	return shifted
}

func futureViolation(positions []grid.Position, shift, rightmost, todayRow int) bool {
	for _, pos := range positions {
		if pos.Col+shift == rightmost && pos.Row > todayRow {
			return true
		}
	}

	return false
}
