package fontdemo

import "sync"

// Key represents a keyboard key the demo distinguishes.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyQ
	KeyOther
	KeyCount
)

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	names := map[Key]string{
		KeyNone:   "--",
		KeyEscape: "Esc",
		KeySpace:  "Space",
		KeyEnter:  "Enter",
		KeyQ:      "Q",
		KeyOther:  "Other",
	}
	if name, ok := names[k]; ok {
		return name
	}
	return "?"
}

// ExitPolicy selects which key presses end the demo.
type ExitPolicy int

const (
	ExitOnEscape ExitPolicy = iota // Only Escape exits
	ExitOnAnyKey                   // Any key press exits
)

// Exits reports whether a press of k ends the demo under p.
func (p ExitPolicy) Exits(k Key) bool {
	if k == KeyNone {
		return false
	}
	if p == ExitOnAnyKey {
		return true
	}
	return k == KeyEscape
}

// ExitSignal records a user request to stop rendering.
// Window callbacks set it; tick sources read it before every tick.
type ExitSignal struct {
	policy ExitPolicy

	mu        sync.Mutex
	requested bool
	reason    string
}

// NewExitSignal creates a signal that reacts to key presses per policy.
func NewExitSignal(policy ExitPolicy) *ExitSignal {
	return &ExitSignal{policy: policy}
}

// KeyPressed feeds a key press. It reports whether the press requested exit.
func (s *ExitSignal) KeyPressed(k Key) bool {
	if !s.policy.Exits(k) {
		return false
	}
	s.request("key " + KeyName(k))
	return true
}

// RequestClose records a window-close request.
func (s *ExitSignal) RequestClose() {
	s.request("window close")
}

// Requested reports whether exit was requested.
func (s *ExitSignal) Requested() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requested
}

// Reason describes what requested the exit, or "" if nothing did.
// It is set whenever Requested reports true.
func (s *ExitSignal) Reason() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reason
}

// request records the first reason only.
func (s *ExitSignal) request(reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.requested {
		s.requested = true
		s.reason = reason
	}
}
