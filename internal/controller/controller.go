// Package controller holds the headless page controllers. Each controller
// owns one view-model, talks to the backend through a narrow interface,
// and renders through a view interface implemented by the terminal UI.
// Views are invoked from whichever goroutine runs the controller method;
// the UI layer marshals onto its draw loop.
package controller

import (
	"sync"
	"time"
)

// AfterFunc schedules fn after d. The default implementation wraps
// time.AfterFunc; tests substitute an immediate or recording scheduler.
type AfterFunc func(d time.Duration, fn func())

func defaultAfter(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// sequence issues request generations. A response is applied only while
// its generation is still current, so a newer request of the same kind
// supersedes anything still in flight.
type sequence struct {
	mu sync.Mutex
	n  uint64
}

func (s *sequence) next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return s.n
}

func (s *sequence) current(n uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.n == n
}

// Option letters map 1:1 to answer indices.
var OptionLetters = [4]string{"A", "B", "C", "D"}

// LetterIndex returns the option index for an answer letter, or -1.
func LetterIndex(letter string) int {
	for i, l := range OptionLetters {
		if l == letter {
			return i
		}
	}
	return -1
}
