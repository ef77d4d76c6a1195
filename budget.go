package fiber

import "time"

// Budget is the remaining time delta available within a single Tick. It is
// threaded by pointer down the nested-call chain: a callee sees at most the
// budget its caller currently holds, and an early-completing sleep returns
// its surplus so the caller's next site can consume it within the same
// tick.
type Budget struct {
	remaining time.Duration
}

// Remaining reports the time delta still available this tick.
func (b *Budget) Remaining() time.Duration {
	return b.remaining
}

// Take consumes up to d of the remaining budget and reports how much was
// actually available. A leaf fiber (Sleep is the built-in example) uses
// this to both spend the budget it needs and leave any surplus for the
// next site in the same tick, in one step: calling Take(d) where d is the
// amount still needed never removes more than that, so whatever is left
// in b.remaining afterward is automatically the surplus to hand upward.
func (b *Budget) Take(d time.Duration) time.Duration {
	if d > b.remaining {
		d = b.remaining
	}
	b.remaining -= d
	return d
}
