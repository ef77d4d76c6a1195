//go:build fibermemtrack

package fiber

// trackPeak updates the callstack's peak size watermark. Compiled in under
// the fibermemtrack build tag, for tuning a host's buffer capacity against
// the largest activation-record depth actually reached.
func trackPeak(cs *Callstack, size uint32) {
	if size > cs.peak {
		cs.peak = size
	}
}
