package ecs

// ReaderID identifies one consumer of an EventChannel.
type ReaderID int

// EventChannel is an append-only event buffer read through independent
// per-reader cursors. Events are kept until every registered reader has seen
// them, bounded by a backlog limit; a reader that falls further behind than
// the limit loses the oldest events.
type EventChannel[T any] struct {
	events  []T
	base    uint64 // absolute sequence number of events[0]
	cursors []uint64
	limit   int
	dropped uint64
}

const defaultEventBacklog = 4096

// NewEventChannel creates a channel with the given backlog limit (0 = default).
func NewEventChannel[T any](limit int) *EventChannel[T] {
	if limit <= 0 {
		limit = defaultEventBacklog
	}
	return &EventChannel[T]{limit: limit}
}

// Register adds a reader that will see every event published after this call.
func (c *EventChannel[T]) Register() ReaderID {
	c.cursors = append(c.cursors, c.base+uint64(len(c.events)))
	return ReaderID(len(c.cursors) - 1)
}

// Publish appends events in order.
func (c *EventChannel[T]) Publish(events ...T) {
	if len(events) == 0 {
		return
	}
	if len(c.cursors) == 0 {
		c.base += uint64(len(events))
		return
	}
	c.events = append(c.events, events...)
	if over := len(c.events) - c.limit; over > 0 {
		c.drop(over)
	}
}

// Read returns every event the reader has not seen yet and advances its cursor.
// The returned slice is only valid until the next Publish.
func (c *EventChannel[T]) Read(id ReaderID) []T {
	if int(id) < 0 || int(id) >= len(c.cursors) {
		return nil
	}
	cursor := c.cursors[id]
	if cursor < c.base {
		cursor = c.base
	}
	start := int(cursor - c.base)
	out := c.events[start:]
	c.cursors[id] = c.base + uint64(len(c.events))
	c.compact()
	return out
}

// Pending returns how many events the reader has not consumed.
func (c *EventChannel[T]) Pending(id ReaderID) int {
	if int(id) < 0 || int(id) >= len(c.cursors) {
		return 0
	}
	end := c.base + uint64(len(c.events))
	cursor := c.cursors[id]
	if cursor < c.base {
		cursor = c.base
	}
	return int(end - cursor)
}

// Dropped returns how many events were discarded by the backlog limit.
func (c *EventChannel[T]) Dropped() uint64 {
	return c.dropped
}

// compact discards the prefix every reader has already consumed. The backing
// array is not reused so slices handed out by Read stay intact.
func (c *EventChannel[T]) compact() {
	if len(c.cursors) == 0 || len(c.events) == 0 {
		return
	}
	minCursor := c.cursors[0]
	for _, cur := range c.cursors[1:] {
		if cur < minCursor {
			minCursor = cur
		}
	}
	if minCursor <= c.base {
		return
	}
	n := int(minCursor - c.base)
	if n >= len(c.events) {
		c.events = nil
	} else {
		c.events = append([]T(nil), c.events[n:]...)
	}
	c.base = minCursor
}

func (c *EventChannel[T]) drop(n int) {
	c.events = append([]T(nil), c.events[n:]...)
	c.base += uint64(n)
	c.dropped += uint64(n)
}
