//go:build !fiberasserts

package fiber

// assertf is compiled out entirely when fiberasserts is not set, so
// contract checks cost nothing in a release build.
func assertf(cond bool, format string, args ...any) {}
