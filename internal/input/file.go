package input

import (
	"context"
	"os"

	"aocrunner/internal/aoc"
)

// FileSource serves one fixed file for any puzzle. Used for --input, e.g. to
// try a solver on the worked example from the puzzle text.
type FileSource string

func (f FileSource) Input(_ context.Context, _ aoc.YearDay) (string, error) {
	data, err := os.ReadFile(string(f))
	if err != nil {
		return "", &aoc.IOError{Op: "read", Path: string(f), Err: err}
	}
	return string(data), nil
}
