package fiber

// frameAlign is the byte alignment every activation record is rounded up
// to. It matches the widest scalar alignment in common use (an 8 byte
// field, e.g. float64, int64, or a pointer on a 64 bit platform), so a
// fiber type with such a field never ends up misaligned when placed at an
// arbitrary offset inside a Callstack's buffer.
const frameAlign = 8

// alignUp rounds n up to the next multiple of frameAlign.
func alignUp(n uintptr) uintptr {
	return (n + frameAlign - 1) &^ (frameAlign - 1)
}
