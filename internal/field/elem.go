// Package field implements GF(2^n) arithmetic for n in
// {8, 16, 32, 64, 128, 256}: component A (word primitives, in clmul/),
// component B (the field element types below), and component E (the
// reduction-polynomial table in reduction.go).
//
// Every width shares the same capability-based core (wide.go): a wide
// carry-less multiply built on clmul.Mul64, and a single reduceWide
// function parameterized by a width's Params. Per-width code is limited
// to the element container type and the thin methods that convert to and
// from the generic word-array representation.
package field

import "github.com/gendx/horcrux/internal/oracle"

// Elem is the capability every field element type (E8 ... E256) provides,
// letting internal/poly and internal/sss be written once, generically
// over whichever width the caller's secret length selects. T is the
// concrete element type itself (E8's Elem[E8] is satisfied by E8's own
// methods), the usual Go generics self-referencing pattern.
type Elem[T any] interface {
	Add(T) T
	Mul(T) T
	Square() T
	Inv() (T, error)
	Bytes() []byte
	IsZero() bool
}

// RandomFunc draws a uniform element of a specific width from an oracle.
type RandomFunc[T any] func(oracle.Oracle) (T, error)

// FromBytesFunc parses a big-endian byte buffer into a specific width's
// element type.
type FromBytesFunc[T any] func([]byte) (T, error)

// ElementOfFunc maps a small non-negative integer index onto the field
// element whose bit-pattern equals that integer (used by the compact
// share encoding's x-coordinates).
type ElementOfFunc[T any] func(int) (T, error)
