package field

import (
	horerrs "github.com/gendx/horcrux/internal/errors"
	"github.com/gendx/horcrux/internal/oracle"
)

// E128 is an element of GF(2^128), reduced modulo Params128 (the GHASH
// field's reduction polynomial, in this module's non-reflected convention).
// Lo holds bits [0,64), Hi holds bits [64,128).
type E128 struct {
	Lo, Hi uint64
}

func (a E128) words() []uint64 { return []uint64{a.Lo, a.Hi} }

func e128FromWords(w []uint64) E128 { return E128{Lo: w[0], Hi: w[1]} }

func (a E128) Add(b E128) E128 { return E128{Lo: a.Lo ^ b.Lo, Hi: a.Hi ^ b.Hi} }

func (a E128) Mul(b E128) E128 {
	return e128FromWords(mulWide(a.words(), b.words(), Params128))
}

func (a E128) Square() E128 {
	return e128FromWords(squareWide(a.words(), Params128))
}

func (a E128) Pow(k uint64) E128 {
	return e128FromWords(powWide(a.words(), k, Params128))
}

func (a E128) Inv() (E128, error) {
	if a.IsZero() {
		return E128{}, horerrs.ErrZeroInverse
	}
	return e128FromWords(invWide(a.words(), Params128)), nil
}

func (a E128) Div(b E128) (E128, error) {
	inv, err := b.Inv()
	if err != nil {
		return E128{}, err
	}
	return a.Mul(inv), nil
}

func (a E128) IsZero() bool { return a.Lo == 0 && a.Hi == 0 }

// Bytes returns the big-endian 16-byte serialization of a.
func (a E128) Bytes() []byte {
	return wordsToBytesBE(a.words(), 16)
}

// E128FromBytes parses a 16-byte big-endian buffer into an E128.
func E128FromBytes(buf []byte) (E128, error) {
	if len(buf) != 16 {
		return E128{}, horerrs.ErrWrongSize
	}
	return e128FromWords(bytesBEToWords(buf, Params128.wordsN())), nil
}

// RandomE128 draws a uniform element of GF(2^128) from the oracle.
func RandomE128(o oracle.Oracle) (E128, error) {
	buf, err := o.Read(16)
	if err != nil {
		return E128{}, err
	}
	return E128FromBytes(buf)
}

// RandomNonzeroE128 draws a uniform nonzero element of GF(2^128).
func RandomNonzeroE128(o oracle.Oracle) (E128, error) {
	for {
		v, err := RandomE128(o)
		if err != nil {
			return E128{}, err
		}
		if !v.IsZero() {
			return v, nil
		}
	}
}

// ElementOfE128 returns the E128 whose bit pattern equals i, for i >= 0.
func ElementOfE128(i int) (E128, error) {
	if i < 0 {
		return E128{}, horerrs.ErrWrongSize
	}
	return E128{Lo: uint64(i)}, nil
}
