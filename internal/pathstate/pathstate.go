// Package pathstate tracks the directory being browsed and the segments
// popped by backward navigation so they can be replayed forward.
//
// None of the navigation operations fail: requests that cannot apply leave
// the state unchanged.
package pathstate

import (
	"os"

	"github.com/LFroesch/tiles/internal/logger"
)

// State owns the current directory and its forward history.
type State struct {
	current AbsolutePath
	history []string // most recently popped segment last
}

// New canonicalizes start and returns a State positioned there.
func New(start string) (*State, error) {
	p, err := NewAbsolutePath(start)
	if err != nil {
		return nil, err
	}
	return &State{current: p}, nil
}

// Current returns the directory being browsed.
func (s *State) Current() AbsolutePath {
	return s.current
}

// History returns a copy of the forward stack, most recent last.
func (s *State) History() []string {
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// CanForward reports whether Forward would move.
func (s *State) CanForward() bool {
	return len(s.history) > 0
}

// Back moves to the parent directory, remembering the segment left behind.
// No-op at a filesystem root.
func (s *State) Back() {
	if s.current.IsRoot() {
		return
	}
	s.history = append(s.history, s.current.Base())
	s.current = s.current.Parent()
}

// Forward re-enters the most recently left child. No-op on empty history.
func (s *State) Forward() {
	n := len(s.history)
	if n == 0 {
		return
	}
	seg := s.history[n-1]
	s.history = s.history[:n-1]
	s.current = s.current.Child(seg)
}

// Open enters the child directory name and drops the forward history.
// Existence is not checked here; a missing directory shows up when it is
// listed. Names that are not a single segment are ignored.
func (s *State) Open(name string) {
	if !ValidSegment(name) {
		logger.Warn("open ignored invalid segment %q", name)
		return
	}
	s.current = s.current.Child(name)
	s.history = nil
}

// SetPath jumps to raw if it canonicalizes to an existing directory and
// clears history. On failure nothing changes and false is returned so the
// caller can restore its last displayed path.
func (s *State) SetPath(raw string) bool {
	p, err := NewAbsolutePath(raw)
	if err != nil {
		logger.Debug("set path rejected: %v", err)
		return false
	}
	s.current = p
	s.history = nil
	return true
}

// Refresh moves up to the nearest ancestor that still exists when the
// current directory has disappeared. History is cleared if it moves, since
// its segments were relative to the vanished path.
func (s *State) Refresh() bool {
	p := s.current
	for !exists(p) {
		if p.IsRoot() {
			return false
		}
		p = p.Parent()
	}
	if p == s.current {
		return false
	}
	logger.Warn("directory %s vanished, moved to %s", s.current, p)
	s.current = p
	s.history = nil
	return true
}

func exists(p AbsolutePath) bool {
	info, err := os.Stat(string(p))
	return err == nil && info.IsDir()
}
