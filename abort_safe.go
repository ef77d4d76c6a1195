//go:build !fiberunsafeabort

package fiber

// unwind performs a safe-abort unwind: the callstack is marked aborting
// and driven through one more tick, which every live fiber body must
// resolve as completed, running destructors from the innermost frame
// outward.
func unwind(cs *Callstack) {
	if cs.root == nil {
		return
	}
	cs.aborting = true
	cs.Tick(0)
	cs.aborting = false
	cs.root = nil
	cs.size = 0
}
