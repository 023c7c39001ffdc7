// Package day1 solves "Historian Hysteria": two columns of location IDs
// compared by sorted distance and by similarity score.
package day1

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"aocrunner/internal/aoc"
	"aocrunner/internal/mathx"
)

// Lists holds both columns. Counts maps each right-hand ID to how often it
// occurs so part 2 is a single pass over the left list.
type Lists struct {
	Left   []int
	Right  []int
	Counts map[int]int
}

func (l Lists) Clone() Lists {
	return Lists{
		Left:   slices.Clone(l.Left),
		Right:  slices.Clone(l.Right),
		Counts: maps.Clone(l.Counts),
	}
}

// Day implements aoc.Day for 2024 day 1.
type Day struct{}

func (Day) ID() aoc.YearDay { return aoc.YearDay{Year: 2024, Day: 1} }

func (Day) Parse(input string) (Lists, error) {
	lists := Lists{Counts: map[int]int{}}
	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return Lists{}, aoc.NewParseError(i+1, line, "expected 2 entries, got %d", len(fields))
		}
		left, err := strconv.Atoi(fields[0])
		if err != nil {
			return Lists{}, aoc.NewParseError(i+1, line, "left entry %q is not a number", fields[0])
		}
		right, err := strconv.Atoi(fields[1])
		if err != nil {
			return Lists{}, aoc.NewParseError(i+1, line, "right entry %q is not a number", fields[1])
		}
		lists.Left = append(lists.Left, left)
		lists.Right = append(lists.Right, right)
		lists.Counts[right]++
	}
	return lists, nil
}

// Part1 pairs the lists smallest-to-smallest and sums the distances.
func (Day) Part1(l Lists) (any, error) {
	slices.Sort(l.Left)
	slices.Sort(l.Right)

	distance := 0
	for i := range l.Left {
		distance += mathx.Dist(l.Left[i], l.Right[i])
	}
	return distance, nil
}

// Part2 weights each left ID by its number of occurrences on the right.
func (Day) Part2(l Lists) (any, error) {
	similarity := 0
	for _, id := range l.Left {
		similarity += id * l.Counts[id]
	}
	return similarity, nil
}
