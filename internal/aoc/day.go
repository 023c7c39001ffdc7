// Package aoc defines the contract every puzzle solver implements and the
// runner that drives a solver from raw input to both answers.
package aoc

import (
	"context"
	"fmt"
)

// YearDay identifies one puzzle.
type YearDay struct {
	Year int
	Day  int
}

func (id YearDay) String() string {
	return fmt.Sprintf("%d/day/%d", id.Year, id.Day)
}

// Day is implemented by every puzzle solver. S is the parsed puzzle state.
//
// Part1 and Part2 each receive their own copy of the state (see Cloner),
// so neither may rely on what the other did.
type Day[S any] interface {
	ID() YearDay
	Parse(input string) (S, error)
	Part1(state S) (any, error)
	Part2(state S) (any, error)
}

// Cloner is implemented by states that hold reference types (slices, maps).
// The runner clones such a state before handing it to each part.
type Cloner[S any] interface {
	Clone() S
}

// Source resolves a puzzle identifier to its raw input text.
type Source interface {
	Input(ctx context.Context, id YearDay) (string, error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(ctx context.Context, id YearDay) (string, error)

func (f SourceFunc) Input(ctx context.Context, id YearDay) (string, error) {
	return f(ctx, id)
}
