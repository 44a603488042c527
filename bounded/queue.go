package bounded

// Queue is an array-backed FIFO ring buffer of site identifiers with a
// capacity fixed at construction. Separate read and write cursors wrap
// around the buffer; a logical length distinguishes full from empty.
//
// The zero value is not usable; construct with NewQueue.
type Queue struct {
	sites  []uint64 // backing ring, len == capacity
	read   int      // index of the next Dequeue
	write  int      // index of the next Enqueue
	length int      // occupied slots; 0 ≤ length ≤ cap
}

// NewQueue returns a Queue able to hold up to capacity entries.
// Returns ErrCapacity if capacity < 1.
func NewQueue(capacity int) (*Queue, error) {
	if capacity < 1 {
		return nil, ErrCapacity
	}

	return &Queue{sites: make([]uint64, capacity)}, nil
}

// Enqueue appends v at the write cursor.
// Returns ErrQueueOverflow if the queue is already full.
func (q *Queue) Enqueue(v uint64) error {
	if q.length == len(q.sites) {
		return ErrQueueOverflow
	}
	q.sites[q.write] = v
	q.write++
	if q.write == len(q.sites) {
		q.write = 0
	}
	q.length++

	return nil
}

// Dequeue removes and returns the oldest entry.
// Returns ErrQueueUnderflow if the queue is empty.
func (q *Queue) Dequeue() (uint64, error) {
	if q.length == 0 {
		return 0, ErrQueueUnderflow
	}
	v := q.sites[q.read]
	q.read++
	if q.read == len(q.sites) {
		q.read = 0
	}
	q.length--

	return v, nil
}

// Len reports the number of entries currently held.
func (q *Queue) Len() int { return q.length }

// Cap reports the fixed capacity.
func (q *Queue) Cap() int { return len(q.sites) }

// Empty reports whether the queue holds no entries.
func (q *Queue) Empty() bool { return q.length == 0 }

// Reset discards all entries and rewinds both cursors without releasing the
// buffer.
func (q *Queue) Reset() {
	q.read = 0
	q.write = 0
	q.length = 0
}
