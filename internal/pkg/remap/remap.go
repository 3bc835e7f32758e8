// Package remap runs the full pipeline: extract dates from a commit
// script, shift their grid pattern into the trailing window ending at
// the current week, and write the remapped literals back.
package remap

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"graphshift/internal/pkg/align"
	"graphshift/internal/pkg/grid"
	"graphshift/internal/pkg/script"
)

type Config struct {
	SourceYear int
	Align      align.Mode
	StripSetup bool
}

// Client holds the pipeline's collaborators. The wall clock is not one
// of them: Run takes the current time from the caller so one captured
// "today" governs every decision in a run.
type Client struct {
	Log    *logrus.Entry
	Config Config
}

// Result carries the rewritten script plus the placement, for callers
// that want to preview it.
type Result struct {
	Text     string
	Shift    int
	Shifted  []grid.Position
	TodayCol int
	TodayRow int
}

// Run remaps every date literal in text against the window ending at
// now's week. A script with no literals passes through unchanged.
// Failure is all-or-nothing: a partially shifted set would corrupt the
// pattern's shape, so no partial output is ever produced.
func (client *Client) Run(text string, now time.Time) (Result, error) {
	if client.Config.StripSetup {
		text = script.StripSetup(text)
	}

	today := grid.DayOf(now)

	result := Result{
		Text:     text,
		TodayCol: align.WindowWidth - 1,
		TodayRow: today.Weekday(),
	}

	occurrences, err := script.Extract(text, client.Config.SourceYear)
	if err != nil {
		return Result{}, fmt.Errorf("error extracting date literals %w", err)
	}

	if len(occurrences) == 0 {
		client.Log.WithField("source_year", client.Config.SourceYear).Info("no date literals found, passing through")

		return result, nil
	}

	sourceOrigin := grid.Origin(client.Config.SourceYear)

	positions := make([]grid.Position, len(occurrences))
	for i, occ := range occurrences {
		positions[i] = grid.ToGrid(occ.Day, sourceOrigin)
	}

	shift, err := align.Shift(positions, result.TodayRow, client.Config.Align)
	if err != nil {
		return Result{}, fmt.Errorf("error aligning %d positions %w", len(positions), err)
	}

	result.Shift = shift
	result.Shifted = align.Apply(positions, shift)

	windowOrigin := grid.WindowOrigin(today, align.WindowWidth)

	days := make([]grid.Day, len(result.Shifted))
	for i, pos := range result.Shifted {
		days[i] = grid.FromGrid(pos, windowOrigin)
	}

	result.Text = script.Replace(text, occurrences, days)

	client.Log.WithFields(logrus.Fields{
		"literals": len(occurrences),
		"shift":    shift,
		"align":    client.Config.Align.String(),
	}).Info("remapped date literals")

	return result, nil
}
