package oracle

import (
	"fmt"

	"golang.org/x/crypto/chacha20"

	horerrs "github.com/gendx/horcrux/internal/errors"
)

// Seeded is a deterministic Oracle: the same seed always produces the
// same byte stream, which makes split reproducible byte-for-byte (spec
// property: "Determinism: with a fixed oracle seed, split is
// byte-for-byte reproducible"). It is built on ChaCha20's keystream
// rather than on a seeded math/rand source, since the keystream is a
// long-period, well-distributed byte sequence with no int63-vs-bytes
// impedance mismatch to work around.
//
// Seeded is for demonstrations, golden-file tests, and the CLI's --seed
// flag. It must never be the default oracle for real secret splitting.
type Seeded struct {
	cipher *chacha20.Cipher
}

// NewSeeded derives a Seeded oracle from an arbitrary seed. The seed is
// stretched/truncated to the 32-byte ChaCha20 key size by simple
// zero-padding or truncation; a 12-byte nonce of all zeroes is used since
// each Seeded oracle instance is single-use (one split call). Seeds that
// agree in their first 32 bytes after zero-padding (for example "ab" and
// "ab\x00") yield the same key and therefore the same byte stream.
func NewSeeded(seed []byte) (*Seeded, error) {
	var key [chacha20.KeySize]byte
	copy(key[:], seed)

	var nonce [chacha20.NonceSize]byte

	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", horerrs.ErrOracleFailure, err)
	}
	return &Seeded{cipher: c}, nil
}

// Read implements Oracle by returning the next n bytes of keystream.
func (s *Seeded) Read(n int) ([]byte, error) {
	src := make([]byte, n)
	dst := make([]byte, n)
	s.cipher.XORKeyStream(dst, src)
	return dst, nil
}
