package align_test

import (
	"errors"
	"math/rand"
	"testing"

	"graphshift/internal/pkg/align"
	"graphshift/internal/pkg/grid"
)

func TestShift(t *testing.T) {
	tests := []struct {
		name      string
		positions []grid.Position
		todayRow  int
		mode      align.Mode
		want      int
		wantErr   error
	}{
		{
			name: "left lands earliest column at zero",
			positions: []grid.Position{
				{Col: 10, Row: 1}, {Col: 11, Row: 3}, {Col: 12, Row: 5},
			},
			todayRow: 4,
			mode:     align.Left,
			want:     -10,
		},
		{
			name: "center splits the free columns",
			positions: []grid.Position{
				{Col: 10, Row: 1}, {Col: 11, Row: 3}, {Col: 12, Row: 5},
			},
			todayRow: 4,
			mode:     align.Center,
			want:     15,
		},
		{
			name: "right walks back off a future day",
			positions: []grid.Position{
				{Col: 10, Row: 1}, {Col: 11, Row: 3}, {Col: 12, Row: 5},
			},
			todayRow: 4,
			mode:     align.Right,
			want:     39,
		},
		{
			name: "right stays when the last column is safe",
			positions: []grid.Position{
				{Col: 10, Row: 1}, {Col: 11, Row: 3}, {Col: 12, Row: 4},
			},
			todayRow: 4,
			mode:     align.Right,
			want:     40,
		},
		{
			name: "spread wider than the window",
			positions: []grid.Position{
				{Col: 0, Row: 0}, {Col: 53, Row: 0},
			},
			todayRow: 6,
			mode:     align.Left,
			wantErr:  align.ErrDrawingTooWide,
		},
		{
			name: "full width drawing ending past today",
			positions: []grid.Position{
				{Col: 0, Row: 6}, {Col: 52, Row: 6},
			},
			todayRow: 0,
			mode:     align.Left,
			wantErr:  align.ErrUnavoidableFutureDate,
		},
		{
			name:      "no positions",
			positions: nil,
			todayRow:  3,
			mode:      align.Right,
			want:      0,
		},
	}
	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			got, err := align.Shift(tt.positions, tt.todayRow, tt.mode)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Shift() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Shift() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("Shift() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestShiftInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 500; trial++ {
		positions := randomPositions(rng)
		todayRow := rng.Intn(7)
		mode := align.Mode(rng.Intn(3))

		shift, err := align.Shift(positions, todayRow, mode)
		if err != nil {
			if !errors.Is(err, align.ErrUnavoidableFutureDate) {
				t.Fatalf("trial %d: unexpected error %v", trial, err)
			}
			if best, ok := bruteForce(positions, todayRow, mode); ok {
				t.Fatalf("trial %d: Shift() failed but %d is valid", trial, best)
			}
			continue
		}

		best, ok := bruteForce(positions, todayRow, mode)
		if !ok {
			t.Fatalf("trial %d: Shift() = %d but brute force finds no valid shift", trial, shift)
		}
		if shift != best {
			t.Fatalf("trial %d: Shift() = %d, brute force = %d", trial, shift, best)
		}

		for i, pos := range align.Apply(positions, shift) {
			if pos.Row != positions[i].Row {
				t.Fatalf("trial %d: row changed from %d to %d", trial, positions[i].Row, pos.Row)
			}
			if pos.Col < 0 || pos.Col > align.WindowWidth-1 {
				t.Fatalf("trial %d: column %d outside window", trial, pos.Col)
			}
			if pos.Col == align.WindowWidth-1 && pos.Row > todayRow {
				t.Fatalf("trial %d: future placement at row %d, today %d", trial, pos.Row, todayRow)
			}
		}
	}
}

func TestShiftBoundaries(t *testing.T) {
	positions := []grid.Position{
		{Col: 3, Row: 0}, {Col: 7, Row: 2}, {Col: 5, Row: 1},
	}

	left, err := align.Shift(positions, 6, align.Left)
	if err != nil {
		t.Fatal(err)
	}
	if min := minShiftedCol(positions, left); min != 0 {
		t.Errorf("left: minimum shifted column = %d, want 0", min)
	}

	right, err := align.Shift(positions, 6, align.Right)
	if err != nil {
		t.Fatal(err)
	}
	if max := maxShiftedCol(positions, right); max != align.WindowWidth-1 {
		t.Errorf("right: maximum shifted column = %d, want %d", max, align.WindowWidth-1)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    align.Mode
		wantErr bool
	}{
		{in: "left", want: align.Left},
		{in: "center", want: align.Center},
		{in: "right", want: align.Right},
		{in: "middle", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt

		t.Run(tt.in, func(t *testing.T) {
			got, err := align.ParseMode(tt.in)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}

			if err == nil && got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func randomPositions(rng *rand.Rand) []grid.Position {
	positions := make([]grid.Position, 1+rng.Intn(12))

	base := rng.Intn(60)
	for i := range positions {
		positions[i] = grid.Position{
			Col: base + rng.Intn(align.WindowWidth),
			Row: rng.Intn(7),
		}
	}

	return positions
}

// bruteForce returns the largest in-window shift at or below the mode's
// clamped candidate that violates no constraint.
func bruteForce(positions []grid.Position, todayRow int, mode align.Mode) (int, bool) {
	minCol, maxCol := positions[0].Col, positions[0].Col
	for _, pos := range positions {
		if pos.Col < minCol {
			minCol = pos.Col
		}
		if pos.Col > maxCol {
			maxCol = pos.Col
		}
	}

	rightmost := align.WindowWidth - 1
	spread := maxCol - minCol + 1

	var candidate int
	switch mode {
	case align.Left:
		candidate = -minCol
	case align.Right:
		candidate = rightmost - maxCol
	case align.Center:
		candidate = (align.WindowWidth-spread)/2 - minCol
	}
	if candidate < -minCol {
		candidate = -minCol
	}
	if candidate > rightmost-maxCol {
		candidate = rightmost - maxCol
	}

	for shift := candidate; shift >= -minCol; shift-- {
		valid := true
		for _, pos := range positions {
			col := pos.Col + shift
			if col < 0 || col > rightmost || (col == rightmost && pos.Row > todayRow) {
				valid = false
				break
			}
		}
		if valid {
			return shift, true
		}
	}

	return 0, false
}

func minShiftedCol(positions []grid.Position, shift int) int {
	min := positions[0].Col + shift
	for _, pos := range positions {
		if pos.Col+shift < min {
			min = pos.Col + shift
		}
	}
	return min
}

func maxShiftedCol(positions []grid.Position, shift int) int {
	max := positions[0].Col + shift
	for _, pos := range positions {
		if pos.Col+shift > max {
			max = pos.Col + shift
		}
	}
	return max
}
