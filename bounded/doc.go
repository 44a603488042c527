// Package bounded provides fixed-capacity stack and queue primitives for
// graph traversals over dense integer site spaces.
//
// Both containers hold uint64 site identifiers in a buffer whose capacity is
// fixed at construction. Exceeding the capacity is a structural error
// (ErrStackOverflow / ErrQueueOverflow), never a silent reallocation: the
// traversal engines size their containers to the graph order and rely on
// that bound as a safety property, so growth would only mask a sizing bug.
//
// Entries are duplicate-tolerant by design: the same site may be inserted
// several times before it is consumed once. Deduplication is the consumer's
// responsibility (a visited check on Pop/Dequeue), which is why capacity
// sizing accounts for the graph order rather than the number of distinct
// outstanding sites.
//
// Complexity: all operations are O(1); memory is O(capacity), allocated once.
package bounded
