package field

import (
	"math/bits"

	"github.com/gendx/horcrux/internal/field/clmul"
)

// This file holds the width-generic arithmetic core every GF(2^n)
// element type (gf8.go ... gf256.go) is built on: a wide carry-less
// multiply of two word arrays, producing up to 2N-1 significant bits,
// followed by reduction modulo R_n. Per-width code is limited to the
// element container types and the Params constants in reduction.go, as
// the design calls for (spec.md section 9: "capability-based
// abstraction").

// clmul128 computes the carry-less product of two 128-bit values, each
// given as (lo, hi) word pairs, as a 256-bit result (4 words, word[0]
// least significant). It decomposes the 128x128 multiply into three
// 64x64 CLMULs via Karatsuba, exactly as spec.md section 4.A describes
// for the x86_64 hardware path: H = hi*hi, L = lo*lo, M = (hi^lo)*(hi^lo)
// combined as M^H^L placed at the middle word offset.
func clmul128(aLo, aHi, bLo, bHi uint64) [4]uint64 {
	h0, h1 := clmul.Mul64(aHi, bHi)
	l0, l1 := clmul.Mul64(aLo, bLo)
	m0, m1 := clmul.Mul64(aHi^aLo, bHi^bLo)

	m0 ^= l0 ^ h0
	m1 ^= l1 ^ h1

	return [4]uint64{l0, l1 ^ m0, h0 ^ m1, h1}
}

// clmul256 computes the carry-less product of two 256-bit values, each
// given as 4-word arrays (word[0] least significant), as a 512-bit result
// (8 words). It applies the same Karatsuba decomposition as clmul128, one
// level up: the 256-bit operands are split into 128-bit halves, and the
// three sub-products are each a clmul128 call.
func clmul256(a, b [4]uint64) [8]uint64 {
	aLo, aHi := [2]uint64{a[0], a[1]}, [2]uint64{a[2], a[3]}
	bLo, bHi := [2]uint64{b[0], b[1]}, [2]uint64{b[2], b[3]}

	h := clmul128(aHi[0], aHi[1], bHi[0], bHi[1])
	l := clmul128(aLo[0], aLo[1], bLo[0], bLo[1])
	m := clmul128(aHi[0]^aLo[0], aHi[1]^aLo[1], bHi[0]^bLo[0], bHi[1]^bLo[1])

	for i := range m {
		m[i] ^= l[i] ^ h[i]
	}

	var out [8]uint64
	copy(out[0:4], l[:])
	copy(out[4:8], h[:])
	for i := 0; i < 4; i++ {
		out[2+i] ^= m[i]
	}
	return out
}

// wideMul computes the carry-less product of two n-bit values represented
// as little-endian word arrays of length wordsN(n), returning a word
// array of length 2*wordsN(n) holding the up-to-(2n-1)-bit product.
//
// wordsN is always 1, 2, or 4 in this module (for n in
// {8,16,32,64},{128},{256} respectively); wider cases use the Karatsuba
// helpers above, and the single-word case maps directly onto the Mul64
// hardware/portable primitive.
func wideMul(a, b []uint64, wordsN int) []uint64 {
	switch wordsN {
	case 1:
		lo, hi := clmul.Mul64(a[0], b[0])
		return []uint64{lo, hi}
	case 2:
		r := clmul128(a[0], a[1], b[0], b[1])
		return r[:]
	case 4:
		var aw, bw [4]uint64
		copy(aw[:], a)
		copy(bw[:], b)
		r := clmul256(aw, bw)
		return r[:]
	default:
		panic("field: unsupported word count")
	}
}

// reduceWide folds a wide product (length 2*wordsN(p)) down to p.N bits
// (wordsN(p) words), modulo the reduction polynomial p describes.
//
// This implements exactly the algorithm spec.md section 4.B describes:
// "for each set bit position p in the n...2n-2 range of the product, XOR
// in a shifted copy of R_n". Bits are folded from the highest surviving
// position down to N, which is safe because folding bit p only ever
// touches bits strictly below p (every fold-shift exponent is < N, so the
// highest position touched by folding bit p is p-N+(N-1) < p).
func reduceWide(wide []uint64, p Params) []uint64 {
	words := append([]uint64(nil), wide...)
	n := p.N
	for bit := 2*n - 2; bit >= n; bit-- {
		if getBit(words, bit) == 0 {
			continue
		}
		shift := bit - n
		xorBit(words, bit) // the shifted R_n's own x^N term cancels this bit
		for _, e := range p.FoldShifts {
			xorBit(words, shift+e)
		}
	}
	return words[:p.wordsN()]
}

// squareWide computes a*a for an n-bit value (as a word array of length
// wordsN(p)) without a general multiply: squaring a GF(2^n) element only
// ever produces bits at even positions (no cross terms survive in
// characteristic 2), so the wide product can be built directly by
// spreading each byte of a.
func squareWide(a []uint64, p Params) []uint64 {
	nBytes := (p.N + 7) / 8
	abytes := make([]byte, nBytes)
	wordsToBytes(abytes, a)

	wide := make([]uint64, 2*p.wordsN())
	spreadBytesToWords(wide, abytes)
	return reduceWide(wide, p)
}

// mulWide computes a*b mod R_n for two n-bit values given as word arrays
// of length wordsN(p).
func mulWide(a, b []uint64, p Params) []uint64 {
	return reduceWide(wideMul(a, b, p.wordsN()), p)
}

// powWide computes a^k mod R_n via right-to-left square-and-multiply.
func powWide(a []uint64, k uint64, p Params) []uint64 {
	result := make([]uint64, p.wordsN())
	result[0] = 1 // the multiplicative identity
	base := append([]uint64(nil), a...)
	for k > 0 {
		if k&1 == 1 {
			result = mulWide(result, base, p)
		}
		base = squareWide(base, p)
		k >>= 1
	}
	return result
}

// pow2m1Wide computes a^(2^m - 1) using the doubling addition chain over
// the bits of m, most significant first: a^(2^1-1)=a, and having
// a^(2^k-1), a squaring run of length k followed by one multiply yields
// a^(2^(2k)-1); for each set bit of m, one more squaring and a multiply
// by a then yields a^(2^(k+1)-1). This reaches a^(2^m-1) in at most
// 2*log2(m) multiplies and exactly m-1 squarings total — the classic
// Itoh-Tsujii trick.
func pow2m1Wide(a []uint64, m int, p Params) []uint64 {
	result := append([]uint64(nil), a...)
	k := 1
	for i := bits.Len(uint(m)) - 2; i >= 0; i-- {
		t := append([]uint64(nil), result...)
		for j := 0; j < k; j++ {
			t = squareWide(t, p)
		}
		result = mulWide(result, t, p)
		k *= 2
		if (m>>uint(i))&1 == 1 {
			result = mulWide(squareWide(result, p), a, p)
			k++
		}
	}
	return result
}

// invWide computes a^-1 = a^(2^N - 2) mod R_n for a != 0, via
// (a^(2^(N-1)-1))^2. Callers must reject a == 0 themselves: invWide(0, p)
// deterministically returns 0, which is the caller's job to turn into
// ErrZeroInverse.
func invWide(a []uint64, p Params) []uint64 {
	return squareWide(pow2m1Wide(a, p.N-1, p), p)
}

func isZeroWide(a []uint64) bool {
	for _, w := range a {
		if w != 0 {
			return false
		}
	}
	return true
}
