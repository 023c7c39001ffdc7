package aoc

import (
	"errors"
	"fmt"
)

// ErrMissingCredential is returned when an input is not cached and no session
// token was supplied to download it.
var ErrMissingCredential = errors.New("input not cached and no session id set (use --aoc-session-id or AOC_SESSION_ID)")

// ParseError reports puzzle input that does not have the expected shape.
// Content holds the offending line or token.
type ParseError struct {
	Line    int    // 1-based, 0 when the error is not tied to a line
	Content string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("can't parse line %d %q: %v", e.Line, e.Content, e.Err)
	}
	return fmt.Sprintf("can't parse %q: %v", e.Content, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NewParseError builds a ParseError from a format string.
func NewParseError(line int, content string, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Content: content, Err: fmt.Errorf(format, args...)}
}

// ComputeError wraps a failure returned by Part1 or Part2.
type ComputeError struct {
	ID   YearDay
	Part int
	Err  error
}

func (e *ComputeError) Error() string {
	return fmt.Sprintf("%s part %d: %v", e.ID, e.Part, e.Err)
}

func (e *ComputeError) Unwrap() error { return e.Err }

// FetchError reports a failed download of puzzle input.
// StatusCode is zero when no response was received.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// IOError reports a filesystem failure around the input cache.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
