// Package numbering issues gapless, per-year invoice number sequences.
package numbering

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrCounterExhausted is returned when the per-year counter reaches its
// maximum value (2^64-1) and cannot be incremented further.
var ErrCounterExhausted = errors.New("numbering: counter exhausted")

// ErrYearRegression is returned when Next is called with a time whose year
// is behind the sequence's current cursor year. The sequence never reuses
// or rewinds a number; a backward clock movement is a fatal condition for
// the caller to handle (typically: halt and investigate the clock).
var ErrYearRegression = errors.New("numbering: year moved backward")

// Sequencer issues invoice numbers of the form <prefix>-<YYYY>-<counter>,
// zero-padded to six digits. It is safe for concurrent use; Next holds an
// exclusive lock for the duration of the call so that no two calls ever
// return the same number.
type Sequencer struct {
	prefix string

	mu      sync.Mutex
	year    int
	counter uint64
}

// NewSequencer creates a Sequencer that formats numbers with the given
// prefix (e.g. "RE" yields "RE-2026-000001").
func NewSequencer(prefix string) *Sequencer {
	return &Sequencer{prefix: prefix}
}

// Next returns the next number in the sequence, evaluated against now. On
// the first call of a new year the counter resets to 1. now must not be
// earlier, by year, than the year of the previous call; doing so returns
// ErrYearRegression and leaves the cursor unchanged.
func (s *Sequencer) Next(now time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	year := now.Year()

	if s.year == 0 {
		s.year = year
	}

	if year < s.year {
		return "", fmt.Errorf("%w: cursor year %d, got %d", ErrYearRegression, s.year, year)
	}

	if year > s.year {
		s.year = year
		s.counter = 0
	}

	if s.counter == ^uint64(0) {
		return "", ErrCounterExhausted
	}

	s.counter++

	return fmt.Sprintf("%s-%d-%06d", s.prefix, s.year, s.counter), nil
}
