//go:build fiberasserts

package fiber

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestOverflowLogsDiagnosticAndReturnsError checks that, with the
// assertion build enabled, a root activation record that does not fit
// still returns the ordinary *StackOverflowError (asserting never
// changes Start's own control flow), but also logs a diagnostic through
// the logging facility along the way. This test requires the
// fiberasserts build tag; without it, assertf is compiled out entirely
// and this file is excluded from the build.
func TestOverflowLogsDiagnosticAndReturnsError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := Logger()
	SetLogger(zap.New(core))
	defer SetLogger(prev)

	cs := New(4)
	err := Start[bigFiber, *bigFiber](cs, nil)
	if _, ok := err.(*StackOverflowError); !ok {
		t.Fatalf("Start error = %v, want *StackOverflowError", err)
	}

	if logs.Len() == 0 {
		t.Fatal("no diagnostic logged for overflow under fiberasserts")
	}
}

// TestNestedOverflowPanics exercises the push path directly, reached only
// once a fiber body is already running and attempts a nested call that
// does not fit in the remaining capacity. Unlike Start's pre-flight check,
// push has no error-return channel and panics.
func TestNestedOverflowPanics(t *testing.T) {
	capacity := int(sizeOf[outerFiber]())
	cs := New(capacity)
	if err := Start[outerFiber, *outerFiber](cs, nil); err != nil {
		t.Fatal(err)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("nested overflow did not panic")
		}
		if _, ok := r.(*StackOverflowError); !ok {
			t.Fatalf("panic value = %v, want *StackOverflowError", r)
		}
	}()
	cs.Tick(0)
}
