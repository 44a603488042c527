package bounded

// Stack is an array-backed LIFO container of site identifiers with a
// capacity fixed at construction. It never grows: Push on a full stack
// returns ErrStackOverflow.
//
// The zero value is not usable; construct with NewStack.
type Stack struct {
	sites []uint64 // backing buffer, len == capacity
	top   int      // number of occupied slots; sites[top-1] is the next Pop
}

// NewStack returns a Stack able to hold up to capacity entries.
// Returns ErrCapacity if capacity < 1.
func NewStack(capacity int) (*Stack, error) {
	if capacity < 1 {
		return nil, ErrCapacity
	}

	return &Stack{sites: make([]uint64, capacity)}, nil
}

// Push places v on top of the stack.
// Returns ErrStackOverflow if the stack is already full.
func (s *Stack) Push(v uint64) error {
	if s.top == len(s.sites) {
		return ErrStackOverflow
	}
	s.sites[s.top] = v
	s.top++

	return nil
}

// Pop removes and returns the most recently pushed entry.
// Returns ErrStackUnderflow if the stack is empty.
func (s *Stack) Pop() (uint64, error) {
	if s.top == 0 {
		return 0, ErrStackUnderflow
	}
	s.top--

	return s.sites[s.top], nil
}

// Len reports the number of entries currently held.
func (s *Stack) Len() int { return s.top }

// Cap reports the fixed capacity.
func (s *Stack) Cap() int { return len(s.sites) }

// Empty reports whether the stack holds no entries.
func (s *Stack) Empty() bool { return s.top == 0 }

// Reset discards all entries without releasing the buffer, so one stack can
// serve many independent traversals.
func (s *Stack) Reset() { s.top = 0 }
