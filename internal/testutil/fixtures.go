package testutil

import (
	"crypto/sha256"
)

// SecretFixture represents a test secret of one of the field-width byte
// sizes (1, 2, 4, 8, 16, or 32 bytes), with a pre-computed hash for
// reconstruction checks.
type SecretFixture struct {
	// Raw is the secret's raw bytes.
	Raw []byte
	// Hash is the SHA256 hash of Raw.
	Hash [32]byte
}

// NewSecretFixture creates a secret fixture of the given byte size,
// drawing from opts' seed if provided, otherwise crypto/rand.
func NewSecretFixture(size int, opts ...FixtureOption) *SecretFixture {
	r := newRand(opts...)
	raw := generateRandomBytes(r, size)
	return &SecretFixture{Raw: raw, Hash: sha256.Sum256(raw)}
}

// ValidateHash checks if data matches the fixture's hash.
func (s *SecretFixture) ValidateHash(data []byte) bool {
	return sha256.Sum256(data) == s.Hash
}

// DataFixture represents arbitrary test data with a pre-computed hash.
type DataFixture struct {
	// Data is the raw byte content.
	Data []byte
	// Hash is the SHA256 hash of Data.
	Hash [32]byte
	// Size is the byte length of Data.
	Size int
}

// NewDataFixture creates a data fixture with random data of the given size.
func NewDataFixture(size int, opts ...FixtureOption) *DataFixture {
	r := newRand(opts...)
	data := generateRandomBytes(r, size)
	return &DataFixture{Data: data, Hash: sha256.Sum256(data), Size: size}
}

// NewDataFixtureFromBytes creates a data fixture from existing bytes.
func NewDataFixtureFromBytes(data []byte) *DataFixture {
	return &DataFixture{Data: data, Hash: sha256.Sum256(data), Size: len(data)}
}

// ValidateHash checks if data matches this fixture's hash.
func (d *DataFixture) ValidateHash(data []byte) bool {
	return sha256.Sum256(data) == d.Hash
}

// ValidateContent checks if data matches this fixture byte-for-byte.
func (d *DataFixture) ValidateContent(data []byte) bool {
	if len(data) != len(d.Data) {
		return false
	}
	for i := range d.Data {
		if d.Data[i] != data[i] {
			return false
		}
	}
	return true
}
