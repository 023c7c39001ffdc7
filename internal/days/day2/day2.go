// Package day2 solves "Red-Nosed Reports": counting reports whose levels
// move steadily in one direction.
package day2

import (
	"slices"
	"strconv"
	"strings"

	"aocrunner/internal/aoc"
	"aocrunner/internal/mathx"
)

const (
	minStep = 1
	maxStep = 3
)

// Report is one line of levels.
type Report []int

// Reports is the parsed input.
type Reports []Report

func (r Reports) Clone() Reports {
	out := make(Reports, len(r))
	for i, rep := range r {
		out[i] = slices.Clone(rep)
	}
	return out
}

// Safe reports whether the levels are strictly increasing or strictly
// decreasing with every step between minStep and maxStep. Reports with fewer
// than two levels are safe.
func (r Report) Safe() bool {
	return r.firstBadStep() < 0
}

// SafeWithDampener reports whether the report is safe once at most one level
// is removed.
func (r Report) SafeWithDampener() bool {
	bad := r.firstBadStep()
	if bad < 0 {
		return true
	}
	// Any removal outside bad-2..bad leaves the steps bad-2 -> bad-1 -> bad
	// intact, and with them the violation.
	for _, skip := range []int{bad - 2, bad - 1, bad} {
		if skip >= 0 && r.without(skip).Safe() {
			return true
		}
	}
	return false
}

// firstBadStep returns the index i of the first level where the step from
// i-1 breaks the rule, or -1 when there is none.
func (r Report) firstBadStep() int {
	if len(r) < 2 {
		return -1
	}
	dir := mathx.Sign(r[1] - r[0])
	for i := 1; i < len(r); i++ {
		step := r[i] - r[i-1]
		if mathx.Sign(step) != dir {
			return i
		}
		if d := mathx.Abs(step); d < minStep || d > maxStep {
			return i
		}
	}
	return -1
}

func (r Report) without(i int) Report {
	out := make(Report, 0, len(r)-1)
	out = append(out, r[:i]...)
	return append(out, r[i+1:]...)
}

// Day implements aoc.Day for 2024 day 2.
type Day struct{}

func (Day) ID() aoc.YearDay { return aoc.YearDay{Year: 2024, Day: 2} }

func (Day) Parse(input string) (Reports, error) {
	var reports Reports
	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		report := make(Report, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, aoc.NewParseError(i+1, line, "level %q is not a number", f)
			}
			report = append(report, v)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (Day) Part1(reports Reports) (any, error) {
	return count(reports, Report.Safe), nil
}

func (Day) Part2(reports Reports) (any, error) {
	return count(reports, Report.SafeWithDampener), nil
}

func count(reports Reports, safe func(Report) bool) int {
	n := 0
	for _, r := range reports {
		if safe(r) {
			n++
		}
	}
	return n
}
