package testutil

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/gendx/horcrux/internal/oracle"
	"github.com/gendx/horcrux/internal/sss"
)

// SSSFixture provides a complete split/reconstruct test setup.
type SSSFixture struct {
	// Secret is the original secret bytes.
	Secret []byte
	// SecretHash is the SHA256 hash of Secret.
	SecretHash [32]byte
	// Shares is the result of splitting Secret.
	Shares []sss.Share
	// Threshold is the minimum number of shares needed (t).
	Threshold int
	// TotalShares is the total number of shares produced (n).
	TotalShares int
}

// SSSFixtureBuilder constructs an SSSFixture with a fluent API.
type SSSFixtureBuilder struct {
	secret    []byte
	threshold int
	total     int
	encoding  sss.Encoding
	seedHex   []byte
	opts      []FixtureOption
	err       error
}

// NewSSSFixture starts building an SSS fixture, defaulting to a 2-of-2
// compact-encoded split of a random 32-byte secret.
func NewSSSFixture() *SSSFixtureBuilder {
	return &SSSFixtureBuilder{
		threshold: 2,
		total:     2,
		encoding:  sss.EncodingCompact,
	}
}

// WithSecret sets a specific secret for the fixture. Its length must be
// one of the field widths sss.Split supports (1, 2, 4, 8, 16, 32 bytes).
func (b *SSSFixtureBuilder) WithSecret(secret []byte) *SSSFixtureBuilder {
	b.secret = secret
	return b
}

// WithRandomSecret generates a random secret of the given byte size.
func (b *SSSFixtureBuilder) WithRandomSecret(size int) *SSSFixtureBuilder {
	r := newRand(b.opts...)
	b.secret = generateRandomBytes(r, size)
	return b
}

// WithThreshold sets the t-of-n scheme.
func (b *SSSFixtureBuilder) WithThreshold(t, n int) *SSSFixtureBuilder {
	if t < 2 {
		b.err = fmt.Errorf("threshold t must be at least 2, got %d", t)
		return b
	}
	if n < t {
		b.err = fmt.Errorf("total n must be >= threshold t, got t=%d, n=%d", t, n)
		return b
	}
	b.threshold = t
	b.total = n
	return b
}

// WithEncoding selects the share x-coordinate encoding.
func (b *SSSFixtureBuilder) WithEncoding(enc sss.Encoding) *SSSFixtureBuilder {
	b.encoding = enc
	return b
}

// WithSeed sets a deterministic math/rand seed, used only to generate a
// random secret when WithSecret isn't called. For a deterministic oracle
// (reproducible shares), use WithOracleSeed instead.
func (b *SSSFixtureBuilder) WithSeed(seed int64) *SSSFixtureBuilder {
	b.opts = append(b.opts, WithSeed(seed))
	return b
}

// WithOracleSeed makes the split use a deterministic oracle.Seeded
// instance seeded from the given bytes, so the resulting shares are
// byte-for-byte reproducible.
func (b *SSSFixtureBuilder) WithOracleSeed(seed []byte) *SSSFixtureBuilder {
	b.seedHex = seed
	return b
}

// Build creates the SSSFixture, performing the split operation.
func (b *SSSFixtureBuilder) Build() (*SSSFixture, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.secret == nil {
		r := newRand(b.opts...)
		b.secret = generateRandomBytes(r, 32)
	}
	if len(b.secret) == 0 {
		return nil, fmt.Errorf("secret cannot be empty")
	}

	var o oracle.Oracle = oracle.CryptoRand{}
	if b.seedHex != nil {
		seeded, err := oracle.NewSeeded(b.seedHex)
		if err != nil {
			return nil, fmt.Errorf("building seeded oracle: %w", err)
		}
		o = seeded
	}

	shares, err := sss.Split(b.secret, b.total, b.threshold, b.encoding, o)
	if err != nil {
		return nil, fmt.Errorf("sss split failed: %w", err)
	}

	return &SSSFixture{
		Secret:      b.secret,
		SecretHash:  sha256.Sum256(b.secret),
		Shares:      shares,
		Threshold:   b.threshold,
		TotalShares: b.total,
	}, nil
}

// MustBuild creates the fixture or panics (for use in test setup).
func (b *SSSFixtureBuilder) MustBuild() *SSSFixture {
	f, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("SSSFixture build failed: %v", err))
	}
	return f
}

// Reconstruct reconstructs the secret using the shares at the given
// indices into f.Shares (not share.Index, which only exists for compact
// shares).
func (f *SSSFixture) Reconstruct(indices ...int) ([]byte, error) {
	if len(indices) < f.Threshold {
		return nil, fmt.Errorf("need at least %d shares, got %d", f.Threshold, len(indices))
	}

	subset := make([]sss.Share, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= len(f.Shares) {
			return nil, fmt.Errorf("invalid share index %d (have %d shares)", idx, len(f.Shares))
		}
		subset[i] = f.Shares[idx]
	}

	return sss.Reconstruct(subset, f.Threshold)
}

// ValidateReconstruction reconstructs from the shares at the given
// indices and verifies the result matches the original secret.
func (f *SSSFixture) ValidateReconstruction(indices ...int) error {
	reconstructed, err := f.Reconstruct(indices...)
	if err != nil {
		return fmt.Errorf("reconstruct failed: %w", err)
	}

	reconstructedHash := sha256.Sum256(reconstructed)
	if reconstructedHash != f.SecretHash {
		return fmt.Errorf("hash mismatch: expected %x, got %x", f.SecretHash[:8], reconstructedHash[:8])
	}
	if !bytes.Equal(f.Secret, reconstructed) {
		return fmt.Errorf("content mismatch")
	}
	return nil
}

// AllCombinations returns all valid t-combinations of share indices into
// f.Shares.
func (f *SSSFixture) AllCombinations() [][]int {
	return combinations(f.TotalShares, f.Threshold)
}

// combinations generates all k-combinations from n items (0..n-1).
func combinations(n, k int) [][]int {
	var result [][]int
	if k <= 0 || k > n {
		return result
	}
	indices := make([]int, k)
	for i := range indices {
		indices[i] = i
	}

	for {
		combo := make([]int, k)
		copy(combo, indices)
		result = append(result, combo)

		i := k - 1
		for i >= 0 && indices[i] == n-k+i {
			i--
		}
		if i < 0 {
			break
		}

		indices[i]++
		for j := i + 1; j < k; j++ {
			indices[j] = indices[j-1] + 1
		}
	}

	return result
}

// TamperedShare returns a copy of the share at index with its Y bytes
// tampered (first byte flipped).
func (f *SSSFixture) TamperedShare(index int) sss.Share {
	if index < 0 || index >= len(f.Shares) {
		panic(fmt.Sprintf("invalid share index %d", index))
	}

	original := f.Shares[index]
	tampered := sss.Share{
		X:       append([]byte(nil), original.X...),
		Y:       append([]byte(nil), original.Y...),
		Compact: original.Compact,
		Index:   original.Index,
	}
	if len(tampered.Y) > 0 {
		tampered.Y[0] ^= 0xFF
	}
	return tampered
}
