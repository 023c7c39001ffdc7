// Package day4 solves "Ceres Search", a word search over a letter grid.
package day4

import (
	"aocrunner/internal/aoc"
	"aocrunner/internal/grid"
)

const word = "XMAS"

// Day implements aoc.Day for 2024 day 4.
type Day struct{}

func (Day) ID() aoc.YearDay { return aoc.YearDay{Year: 2024, Day: 4} }

func (Day) Parse(input string) (*grid.Grid, error) {
	return grid.Parse(input)
}

// Part1 counts XMAS in all eight directions, overlaps included.
func (Day) Part1(g *grid.Grid) (any, error) {
	count := 0
	for p, b := range g.All() {
		if b != word[0] {
			continue
		}
		for _, dir := range grid.Directions {
			if g.Spells(p, dir, word) {
				count++
			}
		}
	}
	return count, nil
}

// Part2 counts A cells whose two diagonals both read MAS in either direction.
func (Day) Part2(g *grid.Grid) (any, error) {
	count := 0
	for p, b := range g.All() {
		if b == 'A' && crossed(g, p) {
			count++
		}
	}
	return count, nil
}

func crossed(g *grid.Grid, center grid.Point) bool {
	return diagonalMAS(g, center.Add(grid.NorthWest), center.Add(grid.SouthEast)) &&
		diagonalMAS(g, center.Add(grid.NorthEast), center.Add(grid.SouthWest))
}

// diagonalMAS reports whether the two ends hold one M and one S.
// Out-of-grid ends read as 0 and never match.
func diagonalMAS(g *grid.Grid, a, b grid.Point) bool {
	x, y := g.At(a), g.At(b)
	return (x == 'M' && y == 'S') || (x == 'S' && y == 'M')
}
