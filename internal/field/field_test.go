package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gendx/horcrux/internal/oracle"
)

// axiomCase bundles one width's operations so the axiom checks below run
// once, generically, across all six widths instead of being copy-pasted
// per type.
type axiomCase[T Elem[T]] struct {
	name   string
	random RandomFunc[T]
	zero   T
	one    T
}

func e8One() E8     { v, _ := ElementOfE8(1); return v }
func e16One() E16   { v, _ := ElementOfE16(1); return v }
func e32One() E32   { v, _ := ElementOfE32(1); return v }
func e64One() E64   { v, _ := ElementOfE64(1); return v }
func e128One() E128 { v, _ := ElementOfE128(1); return v }
func e256One() E256 { v, _ := ElementOfE256(1); return v }

func TestFieldAxioms(t *testing.T) {
	runAxioms(t, axiomCase[E8]{"GF(2^8)", RandomE8, E8(0), e8One()})
	runAxioms(t, axiomCase[E16]{"GF(2^16)", RandomE16, E16(0), e16One()})
	runAxioms(t, axiomCase[E32]{"GF(2^32)", RandomE32, E32(0), e32One()})
	runAxioms(t, axiomCase[E64]{"GF(2^64)", RandomE64, E64(0), e64One()})
	runAxioms(t, axiomCase[E128]{"GF(2^128)", RandomE128, E128{}, e128One()})
	runAxioms(t, axiomCase[E256]{"GF(2^256)", RandomE256, E256{}, e256One()})
}

func runAxioms[T Elem[T]](t *testing.T, tc axiomCase[T]) {
	t.Run(tc.name, func(t *testing.T) {
		o := oracle.CryptoRand{}

		draw := func() T {
			v, err := tc.random(o)
			require.NoError(t, err)
			return v
		}

		for i := 0; i < 64; i++ {
			a, b, c := draw(), draw(), draw()

			// Addition is commutative and its own inverse.
			assert.Equal(t, a.Add(b), b.Add(a))
			assert.Equal(t, tc.zero, a.Add(a))
			assert.Equal(t, a, a.Add(tc.zero))

			// Addition is associative.
			assert.Equal(t, a.Add(b).Add(c), a.Add(b.Add(c)))

			// Multiplication is commutative and has identity tc.one.
			assert.Equal(t, a.Mul(b), b.Mul(a))
			assert.Equal(t, a, a.Mul(tc.one))

			// Multiplication distributes over addition.
			assert.Equal(t, a.Mul(b.Add(c)), a.Mul(b).Add(a.Mul(c)))

			// Squaring agrees with self-multiplication.
			assert.Equal(t, a.Mul(a), a.Square())

			// Every nonzero element has a multiplicative inverse, and
			// a * a^-1 == one.
			if !a.IsZero() {
				inv, err := a.Inv()
				require.NoError(t, err)
				assert.Equal(t, tc.one, a.Mul(inv))
			}

			// Frobenius fixed point: every element of GF(2^n) satisfies
			// a^(2^n) == a (Fermat's little theorem for finite fields).
			assert.Equal(t, a, frobeniusFixedPoint(a))
		}

		// Zero has no inverse.
		_, err := tc.zero.Inv()
		assert.Error(t, err)

		// Bytes is deterministic (the FromBytes round trip is checked
		// per width in TestBytesRoundTrip).
		a := draw()
		assert.Equal(t, a.Bytes(), a.Bytes())
	})
}

// frobeniusFixedPoint repeatedly squares a exactly N times, using Bytes'
// length (in bits) to recover N without each width needing to expose it.
func frobeniusFixedPoint[T Elem[T]](a T) T {
	n := len(a.Bytes()) * 8
	v := a
	for i := 0; i < n; i++ {
		v = v.Square()
	}
	return v
}

// gfMulReference is a direct port of the teacher's own byte-at-a-time
// GF(256) reduction (internal/sss/sss.go's gfMul, reducing by 0x1b i.e.
// x^8+x^4+x^3+x+1 — the same polynomial as Params8, just expressed as a
// shift-and-conditional-xor loop instead of this package's generic
// mulWide/reduceWide path). Used only to exhaustively cross-check E8.Mul
// against an independently-written reduction, per spec.md section 8
// testable property 2.
func gfMulReference(a, b byte) byte {
	var result byte
	for b > 0 {
		if b&1 != 0 {
			result ^= a
		}
		highBit := a & 0x80
		a <<= 1
		if highBit != 0 {
			a ^= 0x1b
		}
		b >>= 1
	}
	return result
}

// TestE8MulExhaustiveAgainstReferenceReduction checks every one of the
// 256*256 possible GF(2^8) products against the teacher's independently
// implemented reduction, exactly the exhaustive n=8 cross-check spec.md
// section 8 calls out as cheap and feasible.
func TestE8MulExhaustiveAgainstReferenceReduction(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			want := gfMulReference(byte(a), byte(b))
			got := E8(a).Mul(E8(b))
			require.Equalf(t, E8(want), got, "E8(%d).Mul(%d)", a, b)
		}
	}
}

func TestElementOfRoundTrip(t *testing.T) {
	for i := 0; i < 256; i++ {
		v, err := ElementOfE8(i)
		require.NoError(t, err)
		assert.Equal(t, byte(i), byte(v))
	}
	_, err := ElementOfE8(256)
	assert.Error(t, err)
	_, err = ElementOfE8(-1)
	assert.Error(t, err)
}

func TestBytesRoundTrip(t *testing.T) {
	o := oracle.CryptoRand{}

	a8, _ := RandomE8(o)
	b8, err := E8FromBytes(a8.Bytes())
	require.NoError(t, err)
	assert.Equal(t, a8, b8)

	a128, _ := RandomE128(o)
	b128, err := E128FromBytes(a128.Bytes())
	require.NoError(t, err)
	assert.Equal(t, a128, b128)

	a256, _ := RandomE256(o)
	b256, err := E256FromBytes(a256.Bytes())
	require.NoError(t, err)
	assert.Equal(t, a256, b256)

	_, err = E128FromBytes(make([]byte, 15))
	assert.Error(t, err)
	_, err = E256FromBytes(make([]byte, 33))
	assert.Error(t, err)
}
