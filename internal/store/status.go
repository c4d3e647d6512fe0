package store

import (
	"sync"
	"time"
)

// Status is a point-in-time snapshot of the shared status fields.
type Status struct {
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
	Success string `json:"success,omitempty"`
}

// StatusChannel tracks the single shared loading flag and the single current
// error/success message. At most one of each is held at a time; the auto-clear
// timer always clears both together.
type StatusChannel struct {
	mu         sync.Mutex
	inflight   int
	err        string
	success    string
	timer      *time.Timer
	clearAfter time.Duration
}

// NewStatusChannel builds a status channel whose messages expire after
// clearAfter. A non-positive clearAfter disables auto-clearing.
func NewStatusChannel(clearAfter time.Duration) *StatusChannel {
	return &StatusChannel{clearAfter: clearAfter}
}

// Begin marks an operation in flight and clears any previous error, matching
// the pending state of a fresh request.
func (s *StatusChannel) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight++
	s.err = ""
}

// End marks an operation terminal. The loading flag stays up while any
// operation is still in flight.
func (s *StatusChannel) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight > 0 {
		s.inflight--
	}
}

// Succeed records a success message and arms the auto-clear timer.
func (s *StatusChannel) Succeed(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.success = msg
	s.armLocked()
}

// Fail records an error message and arms the auto-clear timer.
func (s *StatusChannel) Fail(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = msg
	s.armLocked()
}

// Clear drops both messages immediately.
func (s *StatusChannel) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

// Snapshot returns the current status fields.
func (s *StatusChannel) Snapshot() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		Loading: s.inflight > 0,
		Error:   s.err,
		Success: s.success,
	}
}

func (s *StatusChannel) armLocked() {
	if s.clearAfter <= 0 {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.clearAfter, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.clearLocked()
	})
}

func (s *StatusChannel) clearLocked() {
	s.err = ""
	s.success = ""
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
