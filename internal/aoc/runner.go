package aoc

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"aocrunner/internal/logging"
)

// maxQuoted bounds how much raw input is echoed back in a wrapped parse error.
const maxQuoted = 80

// PartReport is the outcome of one part.
type PartReport struct {
	Answer  string
	Elapsed time.Duration
	Err     error
}

// Report is the outcome of one run.
type Report struct {
	RunID     string
	ID        YearDay
	ParseTime time.Duration
	Part1     PartReport
	Part2     PartReport
}

// Runner sequences fetch, parse, part 1 and part 2 for a single puzzle.
type Runner struct {
	source Source
	logger *zap.Logger
}

// NewRunner creates a runner reading inputs from source.
func NewRunner(source Source, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{source: source, logger: logger}
}

// Process runs d end to end.
//
// A fetch or parse failure aborts the run. Part 2 is attempted even when part 1
// fails; the returned error then combines both part failures. The report is
// returned in every case and holds whatever stages completed.
func Process[S any](ctx context.Context, r *Runner, d Day[S]) (*Report, error) {
	id := d.ID()
	report := &Report{RunID: uuid.NewString(), ID: id}
	log := r.logger.With(zap.String("run_id", report.RunID), zap.Stringer("puzzle", id))

	text, err := r.source.Input(ctx, id)
	if err != nil {
		return report, fmt.Errorf("input for %s: %w", id, err)
	}

	start := time.Now()
	state, err := d.Parse(text)
	report.ParseTime = time.Since(start)
	if err != nil {
		return report, fmt.Errorf("parse %s: %w", id, asParseError(err, text))
	}
	logging.For(log, logging.CategoryParse).Debug("Parsing took",
		zap.Duration("elapsed", report.ParseTime),
		zap.Int("bytes", len(text)))

	solveLog := logging.For(log, logging.CategorySolve)
	report.Part1 = solvePart(solveLog, id, 1, d.Part1, cloneState(state))
	report.Part2 = solvePart(solveLog, id, 2, d.Part2, cloneState(state))

	return report, multierr.Combine(report.Part1.Err, report.Part2.Err)
}

func solvePart[S any](log *zap.Logger, id YearDay, part int, fn func(S) (any, error), state S) PartReport {
	start := time.Now()
	answer, err := fn(state)
	pr := PartReport{Elapsed: time.Since(start)}
	if err != nil {
		pr.Err = &ComputeError{ID: id, Part: part, Err: err}
		log.Error(fmt.Sprintf("Part %d failed", part), zap.Error(err))
		return pr
	}

	pr.Answer = fmt.Sprint(answer)
	log.Info(fmt.Sprintf("Part %d answer", part),
		zap.String("answer", pr.Answer),
		zap.Duration("elapsed", pr.Elapsed))
	return pr
}

func cloneState[S any](state S) S {
	if c, ok := any(state).(Cloner[S]); ok {
		return c.Clone()
	}
	return state
}

// asParseError makes sure parse failures always carry the offending content,
// even when a solver returned a bare error.
func asParseError(err error, text string) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		return err
	}
	quoted := text
	if len(quoted) > maxQuoted {
		cut := maxQuoted
		for cut > 0 && !utf8.RuneStart(quoted[cut]) {
			cut--
		}
		quoted = quoted[:cut] + "..."
	}
	return &ParseError{Content: quoted, Err: err}
}
