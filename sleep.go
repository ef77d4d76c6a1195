package fiber

import "time"

// Sleep is the built-in leaf fiber that suspends until a requested
// duration has elapsed. It is the sole primitive suspension point besides
// a nested fiber call.
type Sleep struct {
	remaining time.Duration
}

// NewSleep returns a Sleep fiber that suspends for d. Use it as the init
// function's target in Call, e.g.:
//
//	if fiber.Call[fiber.Sleep, *fiber.Sleep](cs, pos, budget, func(s *fiber.Sleep) {
//		*s = fiber.NewSleep(time.Second)
//	}) {
//		return true
//	}
func NewSleep(d time.Duration) Sleep {
	return Sleep{remaining: d}
}

// Remaining reports how much longer the sleep has left to run.
func (s *Sleep) Remaining() time.Duration {
	return s.remaining
}

// Tick implements Fiber[Sleep]. On the tick that finishes the sleep, the
// surplus handed back to budget equals dt_in minus remaining_in: exactly
// what this tick didn't need to spend, so the caller's next suspension
// site can use it within the same Tick call. Budget.Take makes that fall
// out with no extra bookkeeping here: it never removes more than
// s.remaining from the budget, so whatever is left over once the sleep
// completes is already that surplus.
func (s *Sleep) Tick(cs *Callstack, pos uint32, budget *Budget) bool {
	s.remaining -= budget.Take(s.remaining)
	if s.remaining <= 0 {
		return false
	}
	return !cs.IsAborting()
}
