// Package script scans commit-script text for date literals and writes
// remapped literals back, leaving every other byte alone.
//
// The literal grammar is the one commit generators embed in message
// arguments:
//
//	Wed Oct 30 2019 18:30:04 GMT+0100 (Central European Standard Time)
//
// weekday and month names are 3-letter English tokens, the day is
// zero-padded, and the zone name is free text in parentheses.
package script

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"graphshift/internal/pkg/grid"
)

// ErrMalformedLiteral reports a substring that matched the scan shape
// but failed detailed parsing.
var ErrMalformedLiteral = errors.New("malformed date literal")

// MalformedLiteralError carries the offending literal and the field
// that failed. Unwraps to ErrMalformedLiteral.
type MalformedLiteralError struct {
	Literal string
	Field   string
}

func (e *MalformedLiteralError) Error() string {
	return fmt.Sprintf("malformed date literal %q: bad %s", e.Literal, e.Field)
}

func (e *MalformedLiteralError) Unwrap() error { return ErrMalformedLiteral }

// Occurrence is one matched literal in source order, with the calendar
// day it states.
type Occurrence struct {
	Literal string
	Day     grid.Day
}

// The outer scan is loose on the name tokens so that an unknown month
// inside an otherwise literal-shaped message surfaces as a malformed
// literal instead of silently not matching. The literal must be the
// quoted message argument of a git commit line.
const literalShape = `([A-Z][a-z]{2}) ([A-Z][a-z]{2}) (\d{2}) %d \d{2}:\d{2}:\d{2} GMT[+-]\d{4} \([^)]+\)`

var stripPattern = regexp.MustCompile(`(?m)^[ \t]*git (?:remote|push|pull)\b.*\n?`)

var weekdayTokens = map[string]bool{
	"Sun": true, "Mon": true, "Tue": true, "Wed": true,
	"Thu": true, "Fri": true, "Sat": true,
}

var monthTokens = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

func messagePattern(year int) *regexp.Regexp {
	return regexp.MustCompile(`(?:-m|--message)[= ]"(` + fmt.Sprintf(literalShape, year) + `)"`)
}

// Extract returns the date literals appearing as commit message
// arguments for the given source year, in source order. No matches is
// not an error: the caller falls through to passthrough behavior.
func Extract(text string, year int) ([]Occurrence, error) {
	matches := messagePattern(year).FindAllStringSubmatch(text, -1)
	if matches == nil {
		return nil, nil
	}

	occurrences := make([]Occurrence, 0, len(matches))

	for _, match := range matches {
		literal, weekday, monthName, dayField := match[1], match[2], match[3], match[4]

		if !weekdayTokens[weekday] {
			return nil, &MalformedLiteralError{Literal: literal, Field: "weekday"}
		}

		month, ok := monthTokens[monthName]
		if !ok {
			return nil, &MalformedLiteralError{Literal: literal, Field: "month"}
		}

		dayOfMonth, err := strconv.Atoi(dayField)
		if err != nil {
			return nil, &MalformedLiteralError{Literal: literal, Field: "day"}
		}

		// time.Date normalizes out-of-range days into the next month.
		date := time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
		if dayOfMonth < 1 || date.Month() != month || date.Day() != dayOfMonth {
			return nil, &MalformedLiteralError{Literal: literal, Field: "day"}
		}

		occurrences = append(occurrences, Occurrence{
			Literal: literal,
			Day:     grid.DayOf(date),
		})
	}

	return occurrences, nil
}

// Render serializes a day back into the canonical literal form: midday
// UTC, zero offset, names and padding recomputed from the day itself.
func Render(day grid.Day) string {
	noon := day.Time().Add(12 * time.Hour)

	return noon.Format("Mon Jan 02 2006 15:04:05") + " GMT+0000 (Coordinated Universal Time)"
}

// Replace substitutes every occurrence of each source literal with its
// rendered day. Occurrences sharing a literal were shifted identically,
// so a plain global replacement preserves the pattern.
func Replace(text string, occurrences []Occurrence, shifted []grid.Day) string {
	replaced := make(map[string]bool, len(occurrences))

	for i, occ := range occurrences {
		if replaced[occ.Literal] {
			continue
		}
		replaced[occ.Literal] = true

		text = strings.ReplaceAll(text, occ.Literal, Render(shifted[i]))
	}

	return text
}

// StripSetup removes remote, push and pull lines from a script so only
// the commit construction remains.
func StripSetup(text string) string {
	return stripPattern.ReplaceAllString(text, "")
}
