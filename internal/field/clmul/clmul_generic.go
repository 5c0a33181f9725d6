package clmul

// mul64Generic is the portable reference implementation: the textbook
// bit-serial shift-and-xor carry-less multiply. It is always compiled in,
// regardless of architecture, and used both as the fallback backend and
// as the reference the hardware backends are cross-checked against (see
// clmul_test.go, and spec property "clmul agreement").
func mul64Generic(a, b uint64) (lo, hi uint64) {
	for i := 0; i < 64; i++ {
		if (b>>uint(i))&1 == 0 {
			continue
		}
		// Go guarantees a shift count >= the operand width yields 0, so
		// the i==0 case (which would otherwise shift hi by 64) needs no
		// special-casing.
		lo ^= a << uint(i)
		hi ^= a >> uint(64-i)
	}
	return lo, hi
}
