package aoc

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// numbers is a state with a shared backing array, so it must be cloned.
type numbers []int

func (n numbers) Clone() numbers {
	return append(numbers(nil), n...)
}

// sumDay parses one integer per line; part 1 sums, part 2 takes the max.
// Part 1 deliberately scribbles over its state.
type sumDay struct {
	part1Err error
	part2Err error
}

func (sumDay) ID() YearDay { return YearDay{Year: 2000, Day: 1} }

func (sumDay) Parse(input string) (numbers, error) {
	var out numbers
	for i, line := range strings.Split(strings.TrimSpace(input), "\n") {
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, NewParseError(i+1, line, "not a number")
		}
		out = append(out, v)
	}
	return out, nil
}

func (d sumDay) Part1(state numbers) (any, error) {
	if d.part1Err != nil {
		return nil, d.part1Err
	}
	total := 0
	for i, v := range state {
		total += v
		state[i] = 0
	}
	return total, nil
}

func (d sumDay) Part2(state numbers) (any, error) {
	if d.part2Err != nil {
		return nil, d.part2Err
	}
	best := 0
	for _, v := range state {
		best = max(best, v)
	}
	return best, nil
}

// bareErrorDay returns a plain error from Parse.
type bareErrorDay struct{ sumDay }

func (bareErrorDay) Parse(string) (numbers, error) { return nil, errors.New("boom") }

func staticSource(text string, calls *int) Source {
	return SourceFunc(func(ctx context.Context, id YearDay) (string, error) {
		*calls++
		return text, nil
	})
}

func observedRunner(src Source) (*Runner, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewRunner(src, zap.New(core)), logs
}

func TestProcess_Success(t *testing.T) {
	calls := 0
	r, logs := observedRunner(staticSource("3\n9\n4\n", &calls))

	report, err := Process[numbers](context.Background(), r, sumDay{})
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, YearDay{2000, 1}, report.ID)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, "16", report.Part1.Answer)
	// part 1 zeroed its copy; part 2 must still see the parsed values
	assert.Equal(t, "9", report.Part2.Answer)

	info := logs.FilterLevelExact(zapcore.InfoLevel).All()
	require.Len(t, info, 2)
	assert.Equal(t, "Part 1 answer", info[0].Message)
	assert.Equal(t, "16", info[0].ContextMap()["answer"])
	assert.Equal(t, "Part 2 answer", info[1].Message)
	assert.Equal(t, "solve", info[1].LoggerName)

	debug := logs.FilterMessage("Parsing took").All()
	require.Len(t, debug, 1)
	assert.Equal(t, zapcore.DebugLevel, debug[0].Level)
	assert.Equal(t, report.RunID, debug[0].ContextMap()["run_id"])
}

func TestProcess_Deterministic(t *testing.T) {
	calls := 0
	r, _ := observedRunner(staticSource("1\n2\n3\n", &calls))

	first, err := Process[numbers](context.Background(), r, sumDay{})
	require.NoError(t, err)
	second, err := Process[numbers](context.Background(), r, sumDay{})
	require.NoError(t, err)

	assert.Equal(t, first.Part1.Answer, second.Part1.Answer)
	assert.Equal(t, first.Part2.Answer, second.Part2.Answer)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestProcess_FetchErrorAborts(t *testing.T) {
	src := SourceFunc(func(context.Context, YearDay) (string, error) {
		return "", ErrMissingCredential
	})
	r, logs := observedRunner(src)

	report, err := Process[numbers](context.Background(), r, sumDay{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingCredential)
	assert.Empty(t, report.Part1.Answer)
	assert.Zero(t, logs.Len())
}

func TestProcess_ParseError(t *testing.T) {
	calls := 0
	r, _ := observedRunner(staticSource("1\nnope\n3\n", &calls))

	_, err := Process[numbers](context.Background(), r, sumDay{})
	require.Error(t, err)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, "nope", pe.Content)
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestProcess_BareParseErrorIsWrapped(t *testing.T) {
	calls := 0
	r, _ := observedRunner(staticSource("not a number", &calls))

	_, err := Process[numbers](context.Background(), r, bareErrorDay{})

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "not a number", pe.Content)
	assert.Contains(t, err.Error(), "can't parse \"not a number\": boom")
}

func TestProcess_LongBareParseErrorIsTruncatedOnRuneBoundary(t *testing.T) {
	// the two-byte rune straddles the cut
	text := strings.Repeat("a", maxQuoted-1) + "é" + "tail"
	calls := 0
	r, _ := observedRunner(staticSource(text, &calls))

	_, err := Process[numbers](context.Background(), r, bareErrorDay{})

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.True(t, utf8.ValidString(pe.Content), "content %q", pe.Content)
	assert.Equal(t, strings.Repeat("a", maxQuoted-1)+"...", pe.Content)
}

func TestProcess_LongBareParseErrorKeepsWholeRunes(t *testing.T) {
	text := strings.Repeat("é", maxQuoted)
	calls := 0
	r, _ := observedRunner(staticSource(text, &calls))

	_, err := Process[numbers](context.Background(), r, bareErrorDay{})

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, strings.Repeat("é", maxQuoted/2)+"...", pe.Content)
}

func TestProcess_PartFailureStillRunsOtherPart(t *testing.T) {
	calls := 0
	r, logs := observedRunner(staticSource("5\n7\n", &calls))
	bad := errors.New("unsolvable")

	report, err := Process[numbers](context.Background(), r, sumDay{part1Err: bad})
	require.Error(t, err)
	assert.ErrorIs(t, err, bad)

	var ce *ComputeError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 1, ce.Part)

	assert.Equal(t, "7", report.Part2.Answer)
	assert.NoError(t, report.Part2.Err)
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestProcess_BothPartsFail(t *testing.T) {
	calls := 0
	r, _ := observedRunner(staticSource("5\n", &calls))

	_, err := Process[numbers](context.Background(), r, sumDay{
		part1Err: errors.New("one"),
		part2Err: errors.New("two"),
	})
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
}

func TestNewRunner_NilLogger(t *testing.T) {
	calls := 0
	r := NewRunner(staticSource("1", &calls), nil)

	report, err := Process[numbers](context.Background(), r, sumDay{})
	require.NoError(t, err)
	assert.Equal(t, "1", report.Part1.Answer)
}
