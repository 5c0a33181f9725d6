// Package poly implements component C of the design: sampling, Horner
// evaluation, and Lagrange interpolation at x=0, written once generically
// over any field.Elem[T] so the six widths (field.E8 ... field.E256) share
// a single implementation.
package poly

import (
	horerrs "github.com/gendx/horcrux/internal/errors"
	"github.com/gendx/horcrux/internal/field"
	"github.com/gendx/horcrux/internal/oracle"
)

// Polynomial is an ordered sequence of T coefficients [a0, a1, ..., a_{T-1}]
// with a0 the secret. Non-constant coefficients are key material: callers
// must call Zeroize once the shares derived from a Polynomial have been
// emitted.
type Polynomial[T field.Elem[T]] struct {
	Coeffs []T
}

// Sample allocates a degree-(T-1) polynomial with secret as the constant
// term and the remaining T-1 coefficients drawn uniformly from random.
// The top coefficient may land on zero; that is an acceptable, expected
// outcome (spec.md section 4.C), not an error.
func Sample[T field.Elem[T]](secret T, t int, o oracle.Oracle, random field.RandomFunc[T]) (Polynomial[T], error) {
	if t < 1 {
		return Polynomial[T]{}, horerrs.ErrTooFewShares
	}
	coeffs := make([]T, t)
	coeffs[0] = secret
	for i := 1; i < t; i++ {
		v, err := random(o)
		if err != nil {
			return Polynomial[T]{}, err
		}
		coeffs[i] = v
	}
	return Polynomial[T]{Coeffs: coeffs}, nil
}

// Evaluate computes P(x) via Horner's method: acc starts at the highest
// coefficient, then folds in acc = acc*x + a_i down to the constant term.
func Evaluate[T field.Elem[T]](p Polynomial[T], x T) T {
	t := len(p.Coeffs)
	acc := p.Coeffs[t-1]
	for i := t - 2; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.Coeffs[i])
	}
	return acc
}

// Zeroize overwrites every coefficient (including the secret) with the
// field's zero value, so the polynomial no longer carries key material in
// memory once a caller is done with it.
func (p Polynomial[T]) Zeroize() {
	var zero T
	for i := range p.Coeffs {
		p.Coeffs[i] = zero
	}
}

// Point is one (x, y) sample of a polynomial, as used for interpolation.
type Point[T field.Elem[T]] struct {
	X, Y T
}

// InterpolateAtZero computes P(0) = sum_j y_j * prod_{m != j} x_m/(x_j+x_m)
// via Lagrange interpolation, given T distinct, nonzero-x points. In
// characteristic 2, subtraction is addition, so x_j - x_m = x_j XOR x_m.
func InterpolateAtZero[T field.Elem[T]](points []Point[T]) (T, error) {
	var zero T
	seen := make(map[string]struct{}, len(points))
	for _, pt := range points {
		if pt.X.IsZero() {
			return zero, horerrs.ErrZeroShareX
		}
		key := string(pt.X.Bytes())
		if _, dup := seen[key]; dup {
			return zero, horerrs.ErrDuplicateShares
		}
		seen[key] = struct{}{}
	}

	var result T
	for j, pj := range points {
		// acc accumulates prod_{m != j} x_m * (x_j + x_m)^-1, the
		// Lagrange basis polynomial L_j evaluated at 0. It starts at
		// pj.X's own multiplicative identity (x_j * x_j^-1), since T
		// exposes no standalone "one" constant.
		xInv, err := pj.X.Inv()
		if err != nil {
			return zero, err
		}
		acc := pj.X.Mul(xInv)

		for m, pm := range points {
			if m == j {
				continue
			}
			diff := pj.X.Add(pm.X)
			diffInv, err := diff.Inv()
			if err != nil {
				return zero, err
			}
			acc = acc.Mul(pm.X).Mul(diffInv)
		}
		result = result.Add(pj.Y.Mul(acc))
	}
	return result, nil
}
