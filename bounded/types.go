package bounded

import "errors"

// Sentinel errors for bounded-container operations.
var (
	// ErrCapacity is returned by constructors when capacity is not positive.
	ErrCapacity = errors.New("bounded: capacity must be positive")

	// ErrStackOverflow is returned by Push when the stack is full.
	// It indicates a capacity-sizing bug in the caller, not a user error.
	ErrStackOverflow = errors.New("bounded: stack overflow")

	// ErrStackUnderflow is returned by Pop when the stack is empty.
	ErrStackUnderflow = errors.New("bounded: stack underflow")

	// ErrQueueOverflow is returned by Enqueue when the queue is full.
	ErrQueueOverflow = errors.New("bounded: queue overflow")

	// ErrQueueUnderflow is returned by Dequeue when the queue is empty.
	ErrQueueUnderflow = errors.New("bounded: queue underflow")
)
