package oracle

import (
	"context"
	"sync"
)

// Stub is a deterministic in-process Oracle for tests and offline runs.
// It records every envelope it receives so callers can assert on what
// was (or was not) submitted.
type Stub struct {
	// Response is returned verbatim on success.
	Response string
	// Err, when set, is returned instead of Response. Used to simulate
	// faults the remote adapter would not have normalized itself.
	Err error

	mu        sync.Mutex
	envelopes []string
}

var _ Oracle = (*Stub)(nil)

// Analyze records the envelope and returns the canned outcome.
func (s *Stub) Analyze(ctx context.Context, env string) (string, error) {
	s.mu.Lock()
	s.envelopes = append(s.envelopes, env)
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.Err != nil {
		return "", s.Err
	}
	return s.Response, nil
}

// Calls reports how many envelopes were submitted.
func (s *Stub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.envelopes)
}

// Envelopes returns a copy of every submitted envelope, in order.
func (s *Stub) Envelopes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.envelopes))
	copy(out, s.envelopes)
	return out
}
