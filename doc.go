// Package fiber implements a cooperative, stackless fiber scheduler for
// constrained environments: microcontrollers, real-time frame loops, game
// ticks. A host allocates a fixed-size Callstack once and drives it with
// Tick, once per frame, passing the elapsed time since the previous call.
// Fiber bodies suspend at explicit nested-call or sleep sites and resume at
// the exact point of suspension on a later Tick, without goroutines, without
// a stack per fiber, and without heap allocation once a Callstack is
// running.
package fiber
