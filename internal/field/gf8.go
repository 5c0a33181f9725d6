package field

import (
	horerrs "github.com/gendx/horcrux/internal/errors"
	"github.com/gendx/horcrux/internal/oracle"
)

// E8 is an element of GF(2^8), reduced modulo Params8.
type E8 uint8

func (a E8) words() []uint64 { return []uint64{uint64(a)} }

func e8FromWords(w []uint64) E8 { return E8(w[0]) }

// Add is bitwise XOR, total over all of E8.
func (a E8) Add(b E8) E8 { return a ^ b }

// Mul is carry-less multiplication reduced modulo Params8.
func (a E8) Mul(b E8) E8 { return e8FromWords(mulWide(a.words(), b.words(), Params8)) }

// Square is a*a, computed without a general multiply.
func (a E8) Square() E8 { return e8FromWords(squareWide(a.words(), Params8)) }

// Pow computes a^k by right-to-left square-and-multiply.
func (a E8) Pow(k uint64) E8 { return e8FromWords(powWide(a.words(), k, Params8)) }

// Inv returns a^-1 for a != 0, or ErrZeroInverse for a == 0.
func (a E8) Inv() (E8, error) {
	if a.IsZero() {
		return 0, horerrs.ErrZeroInverse
	}
	return e8FromWords(invWide(a.words(), Params8)), nil
}

// Div computes a/b = a * b^-1.
func (a E8) Div(b E8) (E8, error) {
	inv, err := b.Inv()
	if err != nil {
		return 0, err
	}
	return a.Mul(inv), nil
}

// IsZero reports whether a is the additive identity.
func (a E8) IsZero() bool { return a == 0 }

// Bytes returns the big-endian 1-byte serialization of a.
func (a E8) Bytes() []byte { return []byte{byte(a)} }

// E8FromBytes parses a 1-byte big-endian buffer into an E8.
func E8FromBytes(buf []byte) (E8, error) {
	if len(buf) != 1 {
		return 0, horerrs.ErrWrongSize
	}
	return E8(buf[0]), nil
}

// RandomE8 draws a uniform element of GF(2^8) from the oracle.
func RandomE8(o oracle.Oracle) (E8, error) {
	buf, err := o.Read(1)
	if err != nil {
		return 0, err
	}
	return E8(buf[0]), nil
}

// RandomNonzeroE8 draws a uniform nonzero element of GF(2^8).
func RandomNonzeroE8(o oracle.Oracle) (E8, error) {
	for {
		v, err := RandomE8(o)
		if err != nil {
			return 0, err
		}
		if !v.IsZero() {
			return v, nil
		}
	}
}

// ElementOfE8 returns the E8 whose bit pattern equals i, for 0 <= i < 256.
func ElementOfE8(i int) (E8, error) {
	if i < 0 || i > 0xff {
		return 0, horerrs.ErrWrongSize
	}
	return E8(i), nil
}
