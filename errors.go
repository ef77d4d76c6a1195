package fiber

import (
	"errors"
	"fmt"
)

// ErrStackInUse is returned by Start when a root fiber is already active
// on the callstack.
var ErrStackInUse = errors.New("fiber: stack already in use by a running fiber")

// ErrDestroyWhileRunning is returned by Close when the callstack still has
// a live activation record.
var ErrDestroyWhileRunning = errors.New("fiber: close called while fiber is running")

// StackOverflowError is returned by Start, or panics out of push, when an
// activation record does not fit in the remaining callstack capacity.
type StackOverflowError struct {
	// Needed is the total size, in bytes, the operation required.
	Needed uint32
	// Capacity is the callstack's total byte capacity.
	Capacity uint32
}

func (e *StackOverflowError) Error() string {
	return fmt.Sprintf("fiber: stack overflow by %d bytes (needed %d, capacity %d)",
		e.Needed-e.Capacity, e.Needed, e.Capacity)
}
