// Package grid is a rectangular byte grid addressed by (row, column).
// Row 0 is the first input line; column 0 its first byte.
package grid

import (
	"fmt"
	"iter"
	"strings"

	"aocrunner/internal/aoc"
)

// Point is a (row, column) position or offset.
type Point struct {
	Row, Col int
}

func (p Point) Add(o Point) Point { return Point{p.Row + o.Row, p.Col + o.Col} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Unit offsets. North is towards row 0.
var (
	North     = Point{-1, 0}
	NorthEast = Point{-1, 1}
	East      = Point{0, 1}
	SouthEast = Point{1, 1}
	South     = Point{1, 0}
	SouthWest = Point{1, -1}
	West      = Point{0, -1}
	NorthWest = Point{-1, -1}
)

// Directions lists all eight neighbours clockwise from North.
var Directions = [8]Point{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// Grid is a rectangular block of bytes.
type Grid struct {
	cells [][]byte
	cols  int
}

// Parse reads one row per non-blank line. Surrounding whitespace on each line
// is ignored. Rows of differing width are rejected with an *aoc.ParseError.
func Parse(input string) (*Grid, error) {
	g := &Grid{}
	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if len(g.cells) == 0 {
			g.cols = len(line)
		} else if len(line) != g.cols {
			return nil, aoc.NewParseError(i+1, line, "row has %d columns, expected %d", len(line), g.cols)
		}
		g.cells = append(g.cells, []byte(line))
	}
	return g, nil
}

func (g *Grid) Rows() int { return len(g.cells) }

func (g *Grid) Cols() int { return g.cols }

// In reports whether p lies inside the grid.
func (g *Grid) In(p Point) bool {
	return p.Row >= 0 && p.Row < len(g.cells) && p.Col >= 0 && p.Col < g.cols
}

// At returns the byte at p, or 0 when p is outside the grid.
func (g *Grid) At(p Point) byte {
	if !g.In(p) {
		return 0
	}
	return g.cells[p.Row][p.Col]
}

// All yields every position in row-major order.
func (g *Grid) All() iter.Seq2[Point, byte] {
	return func(yield func(Point, byte) bool) {
		for r, row := range g.cells {
			for c, b := range row {
				if !yield(Point{r, c}, b) {
					return
				}
			}
		}
	}
}

// Spells reports whether word is read starting at start and stepping by dir.
func (g *Grid) Spells(start, dir Point, word string) bool {
	p := start
	for i := 0; i < len(word); i++ {
		if !g.In(p) || g.cells[p.Row][p.Col] != word[i] {
			return false
		}
		p = p.Add(dir)
	}
	return true
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{cells: make([][]byte, len(g.cells)), cols: g.cols}
	for i, row := range g.cells {
		out.cells[i] = append([]byte(nil), row...)
	}
	return out
}

func (g *Grid) String() string {
	var b strings.Builder
	for _, row := range g.cells {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}
