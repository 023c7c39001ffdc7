package day1

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aocrunner/internal/aoc"
)

const example = `
    3   4
    4   3
    2   5
    1   3
    3   9
    3   3
`

func TestParse(t *testing.T) {
	got, err := Day{}.Parse(example)
	require.NoError(t, err)

	want := Lists{
		Left:   []int{3, 4, 2, 1, 3, 3},
		Right:  []int{4, 3, 5, 3, 9, 3},
		Counts: map[int]int{3: 3, 4: 1, 5: 1, 9: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParts(t *testing.T) {
	lists, err := Day{}.Parse(example)
	require.NoError(t, err)

	part1, err := Day{}.Part1(lists.Clone())
	require.NoError(t, err)
	assert.Equal(t, 11, part1)

	part2, err := Day{}.Part2(lists.Clone())
	require.NoError(t, err)
	assert.Equal(t, 31, part2)
}

func TestPart1_DoesNotDisturbClone(t *testing.T) {
	lists, err := Day{}.Parse(example)
	require.NoError(t, err)

	_, err = Day{}.Part1(lists.Clone())
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 2, 1, 3, 3}, lists.Left)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		line    int
		content string
	}{
		{"too many entries", "1 2\n3 4 5\n", 2, "3 4 5"},
		{"too few entries", "7\n", 1, "7"},
		{"left not numeric", "1 2\nx 4\n", 2, "x 4"},
		{"right not numeric", "1 two\n", 1, "1 two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Day{}.Parse(tt.input)

			var pe *aoc.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.line, pe.Line)
			assert.Equal(t, tt.content, pe.Content)
			assert.Contains(t, err.Error(), tt.content)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	lists, err := Day{}.Parse("\n  \n")
	require.NoError(t, err)

	part1, err := Day{}.Part1(lists)
	require.NoError(t, err)
	assert.Equal(t, 0, part1)
}
