package parse

import (
	"github.com/ef-ds/deque"
)

// State represents the position of the parser in the argument list. Arguments are
// consumed front to back: Advance moves to the next argument and Take consumes the one
// after the current argument as a flag value.
type State interface {
	Advance() bool             // Advance moves to the next argument, returning false at the end
	CurrentArg() string        // CurrentArg returns the argument Advance moved to
	Pos() int                  // Pos returns the index of the current argument in the original list
	Peek() (string, bool)      // Peek returns the next argument without consuming it
	Take() (string, bool)      // Take consumes and returns the next argument
	Drain(fn func(arg string)) // Drain consumes every remaining argument in order
	Len() int                  // Len returns the number of arguments not yet consumed
}

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	pos     int
	current string
	pending *deque.Deque
}

// NewState creates a new State instance with the given argument list
func NewState(args []string) State {
	pending := deque.New()
	for _, arg := range args {
		pending.PushBack(arg)
	}

	return &DefaultState{
		pos:     -1,
		pending: pending,
	}
}

// Advance moves to the next argument
func (s *DefaultState) Advance() bool {
	arg, ok := s.pop()
	if !ok {
		return false
	}
	s.current = arg

	return true
}

// CurrentArg returns the current argument
func (s *DefaultState) CurrentArg() string {
	return s.current
}

// Pos returns the index of the last consumed argument
func (s *DefaultState) Pos() int {
	return s.pos
}

// Peek returns the next argument without consuming it
func (s *DefaultState) Peek() (string, bool) {
	v, ok := s.pending.Front()
	if !ok {
		return "", false
	}

	return v.(string), true
}

// Take consumes the next argument
func (s *DefaultState) Take() (string, bool) {
	return s.pop()
}

// Drain hands every remaining argument to fn in order
func (s *DefaultState) Drain(fn func(arg string)) {
	for {
		arg, ok := s.pop()
		if !ok {
			return
		}
		fn(arg)
	}
}

// Len returns the number of arguments left
func (s *DefaultState) Len() int {
	return s.pending.Len()
}

func (s *DefaultState) pop() (string, bool) {
	v, ok := s.pending.PopFront()
	if !ok {
		return "", false
	}
	s.pos++

	return v.(string), true
}
