//go:build !fibermemtrack

package fiber

// trackPeak is a no-op without the fibermemtrack build tag; PeakSize
// always reports zero in that configuration.
func trackPeak(cs *Callstack, size uint32) {}
