package field

import (
	"encoding/binary"

	horerrs "github.com/gendx/horcrux/internal/errors"
	"github.com/gendx/horcrux/internal/oracle"
)

// E32 is an element of GF(2^32), reduced modulo Params32.
type E32 uint32

func (a E32) words() []uint64 { return []uint64{uint64(a)} }

func e32FromWords(w []uint64) E32 { return E32(w[0]) }

func (a E32) Add(b E32) E32 { return a ^ b }

func (a E32) Mul(b E32) E32 { return e32FromWords(mulWide(a.words(), b.words(), Params32)) }

func (a E32) Square() E32 { return e32FromWords(squareWide(a.words(), Params32)) }

func (a E32) Pow(k uint64) E32 { return e32FromWords(powWide(a.words(), k, Params32)) }

func (a E32) Inv() (E32, error) {
	if a.IsZero() {
		return 0, horerrs.ErrZeroInverse
	}
	return e32FromWords(invWide(a.words(), Params32)), nil
}

func (a E32) Div(b E32) (E32, error) {
	inv, err := b.Inv()
	if err != nil {
		return 0, err
	}
	return a.Mul(inv), nil
}

func (a E32) IsZero() bool { return a == 0 }

// Bytes returns the big-endian 4-byte serialization of a.
func (a E32) Bytes() []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(a))
	return buf
}

// E32FromBytes parses a 4-byte big-endian buffer into an E32.
func E32FromBytes(buf []byte) (E32, error) {
	if len(buf) != 4 {
		return 0, horerrs.ErrWrongSize
	}
	return E32(binary.BigEndian.Uint32(buf)), nil
}

// RandomE32 draws a uniform element of GF(2^32) from the oracle.
func RandomE32(o oracle.Oracle) (E32, error) {
	buf, err := o.Read(4)
	if err != nil {
		return 0, err
	}
	return E32FromBytes(buf)
}

// RandomNonzeroE32 draws a uniform nonzero element of GF(2^32).
func RandomNonzeroE32(o oracle.Oracle) (E32, error) {
	for {
		v, err := RandomE32(o)
		if err != nil {
			return 0, err
		}
		if !v.IsZero() {
			return v, nil
		}
	}
}

// ElementOfE32 returns the E32 whose bit pattern equals i, for i >= 0.
func ElementOfE32(i int) (E32, error) {
	if i < 0 || uint64(i) > 0xffffffff {
		return 0, horerrs.ErrWrongSize
	}
	return E32(i), nil
}
