//go:build fiberasserts

package fiber

// assertf is a contract check that is compiled in under the fiberasserts
// build tag. A failed assertion logs a diagnostic through the package's
// logger; it never changes control flow itself, so call sites are free to
// return a typed error or panic afterward as their own contract requires.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		logAssertFailure(format, args...)
	}
}
