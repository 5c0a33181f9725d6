package field

import (
	horerrs "github.com/gendx/horcrux/internal/errors"
	"github.com/gendx/horcrux/internal/oracle"
)

// E256 is an element of GF(2^256), reduced modulo Params256. W[0] holds
// bits [0,64), ..., W[3] holds bits [192,256).
type E256 struct {
	W [4]uint64
}

func (a E256) words() []uint64 { return a.W[:] }

func e256FromWords(w []uint64) E256 {
	var out E256
	copy(out.W[:], w)
	return out
}

func (a E256) Add(b E256) E256 {
	var out E256
	for i := range out.W {
		out.W[i] = a.W[i] ^ b.W[i]
	}
	return out
}

func (a E256) Mul(b E256) E256 {
	return e256FromWords(mulWide(a.words(), b.words(), Params256))
}

func (a E256) Square() E256 {
	return e256FromWords(squareWide(a.words(), Params256))
}

func (a E256) Pow(k uint64) E256 {
	return e256FromWords(powWide(a.words(), k, Params256))
}

func (a E256) Inv() (E256, error) {
	if a.IsZero() {
		return E256{}, horerrs.ErrZeroInverse
	}
	return e256FromWords(invWide(a.words(), Params256)), nil
}

func (a E256) Div(b E256) (E256, error) {
	inv, err := b.Inv()
	if err != nil {
		return E256{}, err
	}
	return a.Mul(inv), nil
}

func (a E256) IsZero() bool { return isZeroWide(a.words()) }

// Bytes returns the big-endian 32-byte serialization of a.
func (a E256) Bytes() []byte {
	return wordsToBytesBE(a.words(), 32)
}

// E256FromBytes parses a 32-byte big-endian buffer into an E256.
func E256FromBytes(buf []byte) (E256, error) {
	if len(buf) != 32 {
		return E256{}, horerrs.ErrWrongSize
	}
	return e256FromWords(bytesBEToWords(buf, Params256.wordsN())), nil
}

// RandomE256 draws a uniform element of GF(2^256) from the oracle.
func RandomE256(o oracle.Oracle) (E256, error) {
	buf, err := o.Read(32)
	if err != nil {
		return E256{}, err
	}
	return E256FromBytes(buf)
}

// RandomNonzeroE256 draws a uniform nonzero element of GF(2^256).
func RandomNonzeroE256(o oracle.Oracle) (E256, error) {
	for {
		v, err := RandomE256(o)
		if err != nil {
			return E256{}, err
		}
		if !v.IsZero() {
			return v, nil
		}
	}
}

// ElementOfE256 returns the E256 whose bit pattern equals i, for i >= 0.
func ElementOfE256(i int) (E256, error) {
	if i < 0 {
		return E256{}, horerrs.ErrWrongSize
	}
	return E256{W: [4]uint64{uint64(i), 0, 0, 0}}, nil
}
