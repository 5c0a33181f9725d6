// Package errors provides sentinel errors for the horcrux application.
package errors

import "errors"

// Input validation errors
var (
	// ErrWrongSize is returned when a secret's byte length does not match
	// any supported field width, or a serialized share's hex length is wrong.
	ErrWrongSize = errors.New("wrong size for any supported field width")

	// ErrParseShare is returned when a share line does not match the
	// "<x>|<y>" grammar (missing separator, non-hex digits, non-decimal index).
	ErrParseShare = errors.New("malformed share line")
)

// Split/reconstruct errors
var (
	// ErrTooFewShares is returned when fewer than T shares are supplied to
	// reconstruct, or when N < T on split.
	ErrTooFewShares = errors.New("too few shares")

	// ErrTooManyCompactShares is returned when compact encoding is requested
	// with N >= 2^n for the chosen field width.
	ErrTooManyCompactShares = errors.New("too many shares for compact encoding at this field width")

	// ErrDuplicateShares is returned when two reconstruction shares carry
	// identical x coordinates.
	ErrDuplicateShares = errors.New("duplicate share x-coordinates")

	// ErrZeroShareX is returned when a reconstruction share has x = 0.
	ErrZeroShareX = errors.New("share has zero x-coordinate")
)

// Field arithmetic errors
var (
	// ErrZeroInverse is returned when the multiplicative inverse of the
	// zero element is requested. Reachable only as an internal invariant
	// violation from public split/reconstruct entry points, since those
	// already reject zero x-coordinates before calling inv.
	ErrZeroInverse = errors.New("no multiplicative inverse of zero")
)

// Randomness source errors
var (
	// ErrOracleFailure is returned when the configured random source
	// reports failure.
	ErrOracleFailure = errors.New("random oracle failure")
)
