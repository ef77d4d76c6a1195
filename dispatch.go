package fiber

import "unsafe"

// Fiber is satisfied by *T for any fiber function type T: T holds the
// fiber's persistent state (including its resume point), and *T knows how
// to advance it by one tick. This is the Go "pointer method constraint"
// idiom, used here so Start, Call, and the root trampoline can construct
// and dispatch T in place inside a Callstack's buffer without reflection
// and without a function pointer stored per frame: the compiler
// monomorphizes Tick for each concrete T, so dispatch costs one direct
// call, not an interface method lookup through a stored vtable pointer.
type Fiber[T any] interface {
	*T
	// Tick advances the fiber from its current resume point to the next
	// suspension site or to completion. pos is the byte offset just past
	// this activation record within cs's buffer (the record's own offset
	// plus sizeof(T)); a nested call site pushes its callee at pos itself.
	// Tick returns true if the fiber is still suspended, false if it
	// completed.
	Tick(cs *Callstack, pos uint32, budget *Budget) bool
}

// Closer is implemented by fiber function types that need to release
// resources when their activation record is popped. Close is called
// exactly once, after Tick returns false, from the innermost completed
// frame outward. It is never called by ForceAbort.
type Closer interface {
	Close()
}

// sizeOf returns the byte size of a T activation record: sizeof(T) rounded
// up to frameAlign, and never less than frameAlign, so that a field-less
// fiber type still occupies space and Size is nonzero while it is active.
func sizeOf[T any]() uint32 {
	var zero T
	n := alignUp(unsafe.Sizeof(zero))
	if n == 0 {
		n = frameAlign
	}
	return uint32(n)
}

// frameAt returns a pointer to the T located at byte offset pos within
// cs's buffer, computed with unsafe.SliceData and pointer arithmetic
// rather than slice indexing.
func frameAt[T any](cs *Callstack, pos uint32) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(cs.buf)), pos))
}

// Start constructs a root fiber of type T at the base of cs's buffer. init,
// if non-nil, is called with a pointer to the freshly zeroed T so the
// caller can set its initial fields; init must not retain the pointer past
// its own return. Start fails with ErrStackInUse if cs already hosts a
// running fiber, or with a *StackOverflowError if T does not fit in cs's
// capacity.
func Start[T any, PT Fiber[T]](cs *Callstack, init func(PT)) error {
	if cs.root != nil {
		assertf(false, "fiber: stack used by another fiber")
		return ErrStackInUse
	}
	size := sizeOf[T]()
	if size > cs.Capacity() {
		assertf(false, "fiber: stack overflow by %d bytes", size-cs.Capacity())
		return &StackOverflowError{Needed: size, Capacity: cs.Capacity()}
	}
	p := frameAt[T](cs, 0)
	var zero T
	*p = zero
	if init != nil {
		init(PT(p))
	}
	cs.size = size
	trackPeak(cs, size)
	cs.root = func(cs *Callstack, budget *Budget) bool {
		if dispatch[T, PT](cs, 0, budget) {
			return true
		}
		cs.root = nil
		return false
	}
	return nil
}

// push constructs a fresh T at byte offset pos and grows cs's size by
// sizeof(T). It does not check the idempotent-push guard; callers (Call)
// are responsible for only pushing once per site.
func push[T any, PT Fiber[T]](cs *Callstack, pos uint32) PT {
	size := sizeOf[T]()
	newSize := pos + size
	if newSize > cs.Capacity() || newSize < pos {
		assertf(false, "fiber: stack overflow by %d bytes", newSize-cs.Capacity())
		panic(&StackOverflowError{Needed: newSize, Capacity: cs.Capacity()})
	}
	p := frameAt[T](cs, pos)
	var zero T
	*p = zero
	cs.size = newSize
	trackPeak(cs, newSize)
	return PT(p)
}

// dispatch ticks the activation record of type T located at pos. If it is
// still suspended, dispatch propagates that unchanged. If it completed,
// dispatch closes it (if it implements Closer), pops it, and returns false.
func dispatch[T any, PT Fiber[T]](cs *Callstack, pos uint32, budget *Budget) bool {
	p := PT(frameAt[T](cs, pos))
	if p.Tick(cs, pos+sizeOf[T](), budget) {
		return true
	}
	if c, ok := any(p).(Closer); ok {
		c.Close()
	}
	cs.size -= sizeOf[T]()
	return false
}

// Call drives a nested-call suspension site: the first time it is reached
// for a given pos (cs.Size() == pos), it constructs a fresh T there,
// optionally initialized by init; on every later resumption at the same
// site the construction step is skipped and the existing activation record
// is ticked. Call returns true if the nested fiber is still suspended, in
// which case the enclosing fiber's Tick must return true immediately to
// propagate the suspension up the chain. When Call returns false, the
// caller must check cs.IsAborting() before proceeding to its next site: a
// callee can complete either because it finished normally or because it
// was forced to unwind, and only the caller knows which one just happened.
func Call[T any, PT Fiber[T]](cs *Callstack, pos uint32, budget *Budget, init func(PT)) bool {
	if cs.size == pos {
		p := push[T, PT](cs, pos)
		if init != nil {
			init(p)
		}
	}
	return dispatch[T, PT](cs, pos, budget)
}
