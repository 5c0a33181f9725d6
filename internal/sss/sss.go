// Package sss implements component D (the share scheme) on top of
// internal/field and internal/poly: orchestrating Split and Reconstruct,
// dispatching to the field width selected by a secret's (or share's) byte
// length, the way spec.md section 4.D describes.
package sss

import (
	horerrs "github.com/gendx/horcrux/internal/errors"
	"github.com/gendx/horcrux/internal/field"
	"github.com/gendx/horcrux/internal/oracle"
	"github.com/gendx/horcrux/internal/poly"
)

// Split divides secret into n shares, any t of which reconstruct it, per
// the encoding requested. The field width is selected by len(secret): 1,
// 2, 4, 8, 16, or 32 bytes map to GF(2^8) ... GF(2^256); any other length
// fails with ErrWrongSize.
func Split(secret []byte, n, t int, enc Encoding, o oracle.Oracle) ([]Share, error) {
	switch len(secret) {
	case 1:
		return splitWidth(secret, n, t, enc, o, field.RandomE8, field.RandomNonzeroE8, field.ElementOfE8, field.E8FromBytes)
	case 2:
		return splitWidth(secret, n, t, enc, o, field.RandomE16, field.RandomNonzeroE16, field.ElementOfE16, field.E16FromBytes)
	case 4:
		return splitWidth(secret, n, t, enc, o, field.RandomE32, field.RandomNonzeroE32, field.ElementOfE32, field.E32FromBytes)
	case 8:
		return splitWidth(secret, n, t, enc, o, field.RandomE64, field.RandomNonzeroE64, field.ElementOfE64, field.E64FromBytes)
	case 16:
		return splitWidth(secret, n, t, enc, o, field.RandomE128, field.RandomNonzeroE128, field.ElementOfE128, field.E128FromBytes)
	case 32:
		return splitWidth(secret, n, t, enc, o, field.RandomE256, field.RandomNonzeroE256, field.ElementOfE256, field.E256FromBytes)
	default:
		return nil, horerrs.ErrWrongSize
	}
}

// Reconstruct recovers a secret from at least t shares, trimming to
// exactly the first t (input order) if more are supplied. Field width is
// selected by the y-coordinate byte length of the first share.
func Reconstruct(shares []Share, t int) ([]byte, error) {
	if t < 1 {
		return nil, horerrs.ErrTooFewShares
	}
	if len(shares) < t {
		return nil, horerrs.ErrTooFewShares
	}
	trimmed := shares[:t]

	switch len(trimmed[0].Y) {
	case 1:
		return reconstructWidth(trimmed, field.E8FromBytes, field.ElementOfE8)
	case 2:
		return reconstructWidth(trimmed, field.E16FromBytes, field.ElementOfE16)
	case 4:
		return reconstructWidth(trimmed, field.E32FromBytes, field.ElementOfE32)
	case 8:
		return reconstructWidth(trimmed, field.E64FromBytes, field.ElementOfE64)
	case 16:
		return reconstructWidth(trimmed, field.E128FromBytes, field.ElementOfE128)
	case 32:
		return reconstructWidth(trimmed, field.E256FromBytes, field.ElementOfE256)
	default:
		return nil, horerrs.ErrWrongSize
	}
}

// compactCapacityExceeded reports whether n shares under compact encoding
// would require an index outside the field's element range. Only checked
// for small widths where 1<<nBits fits comfortably in an int; n=32 and
// above can never be hit by a realistic share count.
func compactCapacityExceeded(nBits, nShares int) bool {
	if nBits > 24 {
		return false
	}
	return nShares >= (1 << uint(nBits))
}

func splitWidth[T field.Elem[T]](
	secret []byte, nShares, t int, enc Encoding, o oracle.Oracle,
	random field.RandomFunc[T], randomNonzero field.RandomFunc[T],
	elementOf field.ElementOfFunc[T], fromBytes field.FromBytesFunc[T],
) ([]Share, error) {
	if nShares < t {
		return nil, horerrs.ErrTooFewShares
	}

	s, err := fromBytes(secret)
	if err != nil {
		return nil, err
	}

	p, err := poly.Sample[T](s, t, o, random)
	if err != nil {
		return nil, err
	}
	defer p.Zeroize()

	nBits := len(secret) * 8
	shares := make([]Share, nShares)

	switch enc {
	case EncodingCompact:
		if compactCapacityExceeded(nBits, nShares) {
			return nil, horerrs.ErrTooManyCompactShares
		}
		for j := 1; j <= nShares; j++ {
			x, err := elementOf(j)
			if err != nil {
				return nil, horerrs.ErrTooManyCompactShares
			}
			y := poly.Evaluate(p, x)
			shares[j-1] = Share{X: x.Bytes(), Y: y.Bytes(), Compact: true, Index: j}
		}

	case EncodingRandomized:
		seen := make(map[string]struct{}, nShares)
		for j := 0; j < nShares; j++ {
			var x T
			for {
				x, err = randomNonzero(o)
				if err != nil {
					return nil, err
				}
				key := string(x.Bytes())
				if _, dup := seen[key]; !dup {
					seen[key] = struct{}{}
					break
				}
			}
			y := poly.Evaluate(p, x)
			shares[j] = Share{X: x.Bytes(), Y: y.Bytes(), Compact: false}
		}
	}

	return shares, nil
}

func reconstructWidth[T field.Elem[T]](
	shares []Share,
	fromBytes field.FromBytesFunc[T],
	elementOf field.ElementOfFunc[T],
) ([]byte, error) {
	points := make([]poly.Point[T], len(shares))

	for i, sh := range shares {
		var x T
		var err error
		if sh.Compact {
			x, err = elementOf(sh.Index)
		} else {
			x, err = fromBytes(sh.X)
		}
		if err != nil {
			return nil, err
		}

		y, err := fromBytes(sh.Y)
		if err != nil {
			return nil, err
		}
		points[i] = poly.Point[T]{X: x, Y: y}
	}

	// Distinctness and nonzero-x invariants (spec.md section 4.D step 2)
	// are enforced by InterpolateAtZero itself.

	secret, err := poly.InterpolateAtZero(points)
	if err != nil {
		return nil, err
	}
	return secret.Bytes(), nil
}
