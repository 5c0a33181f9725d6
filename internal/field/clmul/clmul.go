// Package clmul implements carry-less (polynomial) multiplication of two
// 64-bit lanes, producing the 128-bit XOR-convolution of their bits:
//
//	result_k = XOR over i+j=k of (a_i AND b_j)
//
// This is the word primitive the rest of internal/field builds field
// multiplication on. Three implementations exist: a portable bit-serial
// version, and hardware-accelerated versions for amd64 (PCLMULQDQ) and
// arm64 (PMULL). Which one backs Mul64 is decided once, in init, by
// probing CPU feature bits via golang.org/x/sys/cpu — not on every call,
// so hot loops never pay a dispatch cost per field operation. Backend
// selection happens per-architecture in clmul_amd64.go / clmul_arm64.go;
// this file only installs the portable fallback, so that architectures
// without a hardware backend (or without the required CPU feature) still
// get a correct Mul64.
//
// None of the three implementations make any timing-independence
// guarantee; constant-time execution is explicitly out of scope.
package clmul

// Mul64 computes the carry-less product of a and b, returning the low
// and high 64-bit halves of the 128-bit result.
var Mul64 func(a, b uint64) (lo, hi uint64)

func init() {
	Mul64 = mul64Generic
}
