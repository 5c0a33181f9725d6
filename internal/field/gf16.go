package field

import (
	horerrs "github.com/gendx/horcrux/internal/errors"
	"github.com/gendx/horcrux/internal/oracle"
)

// E16 is an element of GF(2^16), reduced modulo Params16.
type E16 uint16

func (a E16) words() []uint64 { return []uint64{uint64(a)} }

func e16FromWords(w []uint64) E16 { return E16(w[0]) }

func (a E16) Add(b E16) E16 { return a ^ b }

func (a E16) Mul(b E16) E16 { return e16FromWords(mulWide(a.words(), b.words(), Params16)) }

func (a E16) Square() E16 { return e16FromWords(squareWide(a.words(), Params16)) }

func (a E16) Pow(k uint64) E16 { return e16FromWords(powWide(a.words(), k, Params16)) }

func (a E16) Inv() (E16, error) {
	if a.IsZero() {
		return 0, horerrs.ErrZeroInverse
	}
	return e16FromWords(invWide(a.words(), Params16)), nil
}

func (a E16) Div(b E16) (E16, error) {
	inv, err := b.Inv()
	if err != nil {
		return 0, err
	}
	return a.Mul(inv), nil
}

func (a E16) IsZero() bool { return a == 0 }

// Bytes returns the big-endian 2-byte serialization of a.
func (a E16) Bytes() []byte {
	return []byte{byte(a >> 8), byte(a)}
}

// E16FromBytes parses a 2-byte big-endian buffer into an E16.
func E16FromBytes(buf []byte) (E16, error) {
	if len(buf) != 2 {
		return 0, horerrs.ErrWrongSize
	}
	return E16(buf[0])<<8 | E16(buf[1]), nil
}

// RandomE16 draws a uniform element of GF(2^16) from the oracle.
func RandomE16(o oracle.Oracle) (E16, error) {
	buf, err := o.Read(2)
	if err != nil {
		return 0, err
	}
	return E16FromBytes(buf)
}

// RandomNonzeroE16 draws a uniform nonzero element of GF(2^16).
func RandomNonzeroE16(o oracle.Oracle) (E16, error) {
	for {
		v, err := RandomE16(o)
		if err != nil {
			return 0, err
		}
		if !v.IsZero() {
			return v, nil
		}
	}
}

// ElementOfE16 returns the E16 whose bit pattern equals i, for 0 <= i < 2^16.
func ElementOfE16(i int) (E16, error) {
	if i < 0 || i > 0xffff {
		return 0, horerrs.ErrWrongSize
	}
	return E16(i), nil
}
