package interact

import "sync/atomic"

// Clock is the monotonic logical clock that stamps journal entries.
//
// Every mutation gets a strictly increasing seq number, which gives the
// journal a deterministic order independent of wall-clock resolution and
// lets replay reproduce mutations exactly as they happened.
//
// Thread-safety: safe for concurrent use (atomic operations), though the
// Engine's mutex means only one mutation draws a number at a time.
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a clock starting at 0.
func NewClock() *Clock {
	return &Clock{}
}

// NewClockAt creates a clock resuming from a specific sequence number.
// Used after replaying a journal so new entries continue past it.
func NewClockAt(start int64) *Clock {
	c := &Clock{}
	c.seq.Store(start)
	return c
}

// Next returns the next sequence number and advances the clock.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without advancing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}
