//go:build fiberunsafeabort

package fiber

// unwind is equivalent to ForceAbort under the fiberunsafeabort build tag:
// no destructors run, no unwind tick is driven, the callstack is simply
// marked idle.
func unwind(cs *Callstack) {
	cs.root = nil
	cs.size = 0
	cs.aborting = false
}
