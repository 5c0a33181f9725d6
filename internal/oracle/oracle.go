// Package oracle provides the uniform-random byte source consumed by the
// field and share-scheme layers. Nothing in this module reads randomness
// from a process-global source directly: callers always pass an Oracle
// in, following the teacher's style of threading dependencies explicitly
// rather than reaching for package-level state.
package oracle

import (
	"crypto/rand"
	"fmt"

	horerrs "github.com/gendx/horcrux/internal/errors"
)

// Oracle yields uniform random bytes on demand. A failure to produce them
// (the underlying source is exhausted, unavailable, or errors) must
// surface as internal/errors.ErrOracleFailure, wrapped with context.
type Oracle interface {
	// Read returns exactly n uniform random bytes, or an error.
	Read(n int) ([]byte, error)
}

// CryptoRand is the default Oracle, backed by crypto/rand.Reader. It is
// the production choice: every draw is independently unpredictable.
type CryptoRand struct{}

// Read implements Oracle.
func (CryptoRand) Read(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("%w: %v", horerrs.ErrOracleFailure, err)
	}
	return buf, nil
}
