// Package days is the registry of solvable puzzles.
//
// The set is closed: adding a puzzle means adding a Name constant, an entry in
// catalog and an arm in Solve.
package days

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"aocrunner/internal/aoc"
	"aocrunner/internal/days/day1"
	"aocrunner/internal/days/day2"
	"aocrunner/internal/days/day3"
	"aocrunner/internal/days/day4"
	"aocrunner/internal/grid"
)

// ErrUnknownDay is returned for a selector outside the registry.
var ErrUnknownDay = errors.New("unknown day")

// Name selects a puzzle.
type Name string

const (
	Day1 Name = "day1"
	Day2 Name = "day2"
	Day3 Name = "day3"
	Day4 Name = "day4"

	Default = Day1
)

type entry struct {
	name  Name
	title string
	id    aoc.YearDay
}

var catalog = []entry{
	{Day1, "Day 1: Historian Hysteria", day1.Day{}.ID()},
	{Day2, "Day 2: Red-Nosed Reports", day2.Day{}.ID()},
	{Day3, "Day 3: Mull It Over", day3.Day{}.ID()},
	{Day4, "Day 4: Ceres Search", day4.Day{}.ID()},
}

// Names lists every registered puzzle in order.
func Names() []Name {
	names := make([]Name, len(catalog))
	for i, e := range catalog {
		names[i] = e.name
	}
	return names
}

func lookup(n Name) (entry, bool) {
	for _, e := range catalog {
		if e.name == n {
			return e, true
		}
	}
	return entry{}, false
}

// Title returns the puzzle's display title, or "" for unknown names.
func (n Name) Title() string {
	e, _ := lookup(n)
	return e.title
}

// ID returns the puzzle identifier for n.
func (n Name) ID() (aoc.YearDay, bool) {
	e, ok := lookup(n)
	return e.id, ok
}

// Parse accepts "day3", "Day3" or a bare "3".
func Parse(s string) (Name, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		s = "day" + s
	}
	n := Name(s)
	if _, ok := lookup(n); !ok {
		return "", fmt.Errorf("%w %q (valid: %s)", ErrUnknownDay, s, strings.Join(nameStrings(), ", "))
	}
	return n, nil
}

func nameStrings() []string {
	out := make([]string, len(catalog))
	for i, e := range catalog {
		out[i] = string(e.name)
	}
	return out
}

// Solve runs the puzzle selected by name through r.
func Solve(ctx context.Context, r *aoc.Runner, name Name) (*aoc.Report, error) {
	switch name {
	case Day1:
		return aoc.Process[day1.Lists](ctx, r, day1.Day{})
	case Day2:
		return aoc.Process[day2.Reports](ctx, r, day2.Day{})
	case Day3:
		return aoc.Process[day3.Program](ctx, r, day3.Day{})
	case Day4:
		return aoc.Process[*grid.Grid](ctx, r, day4.Day{})
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownDay, name)
	}
}
