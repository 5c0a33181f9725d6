package field

import (
	"encoding/binary"

	horerrs "github.com/gendx/horcrux/internal/errors"
	"github.com/gendx/horcrux/internal/oracle"
)

// E64 is an element of GF(2^64), reduced modulo Params64.
type E64 uint64

func (a E64) words() []uint64 { return []uint64{uint64(a)} }

func e64FromWords(w []uint64) E64 { return E64(w[0]) }

func (a E64) Add(b E64) E64 { return a ^ b }

func (a E64) Mul(b E64) E64 { return e64FromWords(mulWide(a.words(), b.words(), Params64)) }

func (a E64) Square() E64 { return e64FromWords(squareWide(a.words(), Params64)) }

func (a E64) Pow(k uint64) E64 { return e64FromWords(powWide(a.words(), k, Params64)) }

func (a E64) Inv() (E64, error) {
	if a.IsZero() {
		return 0, horerrs.ErrZeroInverse
	}
	return e64FromWords(invWide(a.words(), Params64)), nil
}

func (a E64) Div(b E64) (E64, error) {
	inv, err := b.Inv()
	if err != nil {
		return 0, err
	}
	return a.Mul(inv), nil
}

func (a E64) IsZero() bool { return a == 0 }

// Bytes returns the big-endian 8-byte serialization of a.
func (a E64) Bytes() []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(a))
	return buf
}

// E64FromBytes parses an 8-byte big-endian buffer into an E64.
func E64FromBytes(buf []byte) (E64, error) {
	if len(buf) != 8 {
		return 0, horerrs.ErrWrongSize
	}
	return E64(binary.BigEndian.Uint64(buf)), nil
}

// RandomE64 draws a uniform element of GF(2^64) from the oracle.
func RandomE64(o oracle.Oracle) (E64, error) {
	buf, err := o.Read(8)
	if err != nil {
		return 0, err
	}
	return E64FromBytes(buf)
}

// RandomNonzeroE64 draws a uniform nonzero element of GF(2^64).
func RandomNonzeroE64(o oracle.Oracle) (E64, error) {
	for {
		v, err := RandomE64(o)
		if err != nil {
			return 0, err
		}
		if !v.IsZero() {
			return v, nil
		}
	}
}

// ElementOfE64 returns the E64 whose bit pattern equals i, for i >= 0.
func ElementOfE64(i int) (E64, error) {
	if i < 0 {
		return 0, horerrs.ErrWrongSize
	}
	return E64(i), nil
}
