package sss

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	horerrs "github.com/gendx/horcrux/internal/errors"
	"github.com/gendx/horcrux/internal/oracle"
)

func TestSplitAndReconstruct(t *testing.T) {
	o := oracle.CryptoRand{}

	tests := []struct {
		name   string
		secret []byte
		t, n   int
	}{
		{name: "2-of-2, 1 byte (GF256)", secret: []byte{0x42}, t: 2, n: 2},
		{name: "2-of-3, 2 bytes (GF65536)", secret: []byte{0x12, 0x34}, t: 2, n: 3},
		{name: "3-of-5, 4 bytes", secret: []byte("test"), t: 3, n: 5},
		{name: "3-of-5, 8 bytes", secret: []byte("testtest"), t: 3, n: 5},
		{name: "2-of-4, 16 bytes", secret: bytes.Repeat([]byte{0xab}, 16), t: 2, n: 4},
		{name: "3-of-10, 32 bytes all zero", secret: make([]byte, 32), t: 3, n: 10},
		{name: "3-of-10, 32 bytes all ones", secret: bytes.Repeat([]byte{0xff}, 32), t: 3, n: 10},
		{name: "1-of-3 (single-party)", secret: []byte{0x01, 0x02}, t: 1, n: 3},
	}

	for _, enc := range []Encoding{EncodingCompact, EncodingRandomized} {
		for _, tt := range tests {
			t.Run(enc.String()+"/"+tt.name, func(t *testing.T) {
				shares, err := Split(tt.secret, tt.n, tt.t, enc, o)
				require.NoError(t, err)
				assert.Len(t, shares, tt.n)

				for i, s := range shares {
					assert.Len(t, s.Y, len(tt.secret), "share %d y length", i)
				}

				got, err := Reconstruct(shares[:tt.t], tt.t)
				require.NoError(t, err)
				assert.Equal(t, tt.secret, got)
			})
		}
	}
}

func TestReconstructAnyTSubset(t *testing.T) {
	o := oracle.CryptoRand{}
	secret := []byte("subset verification test secret!")

	for _, enc := range []Encoding{EncodingCompact, EncodingRandomized} {
		shares, err := Split(secret, 5, 3, enc, o)
		require.NoError(t, err)

		subsets := [][]int{{0, 1, 2}, {0, 2, 4}, {1, 3, 4}, {2, 3, 4}}
		for _, idxs := range subsets {
			subset := make([]Share, len(idxs))
			for i, idx := range idxs {
				subset[i] = shares[idx]
			}
			got, err := Reconstruct(subset, 3)
			require.NoError(t, err, "subset %v", idxs)
			assert.Equal(t, secret, got, "subset %v", idxs)
		}
	}
}

func TestReconstructTrimsToExactlyT(t *testing.T) {
	o := oracle.CryptoRand{}
	secret := []byte("trim test secret")

	shares, err := Split(secret, 5, 2, EncodingCompact, o)
	require.NoError(t, err)

	got, err := Reconstruct(shares, 2)
	require.NoError(t, err)
	assert.Equal(t, secret, got)
}

func TestSplitErrors(t *testing.T) {
	o := oracle.CryptoRand{}

	_, err := Split([]byte("test"), 2, 3, EncodingCompact, o)
	assert.ErrorIs(t, err, horerrs.ErrTooFewShares)

	_, err = Split(make([]byte, 3), 2, 2, EncodingCompact, o)
	assert.ErrorIs(t, err, horerrs.ErrWrongSize)

	_, err = Split([]byte{0x01}, 300, 2, EncodingCompact, o)
	assert.ErrorIs(t, err, horerrs.ErrTooManyCompactShares)
}

func TestReconstructErrors(t *testing.T) {
	o := oracle.CryptoRand{}
	secret := []byte{0xaa}

	shares, err := Split(secret, 3, 3, EncodingCompact, o)
	require.NoError(t, err)

	_, err = Reconstruct(shares[:2], 3)
	assert.ErrorIs(t, err, horerrs.ErrTooFewShares)

	dup := []Share{shares[0], shares[0]}
	_, err = Reconstruct(dup, 2)
	assert.ErrorIs(t, err, horerrs.ErrDuplicateShares)
}

func TestRandomSecretsRoundTrip(t *testing.T) {
	o := oracle.CryptoRand{}
	for i := 0; i < 10; i++ {
		secret := make([]byte, 32)
		_, err := rand.Read(secret)
		require.NoError(t, err)

		shares, err := Split(secret, 2, 2, EncodingRandomized, o)
		require.NoError(t, err)

		got, err := Reconstruct(shares, 2)
		require.NoError(t, err)
		assert.Equal(t, secret, got)
	}
}

func TestShareLineRoundTrip(t *testing.T) {
	o := oracle.CryptoRand{}
	secret := []byte("roundtrip secret")

	for _, enc := range []Encoding{EncodingCompact, EncodingRandomized} {
		shares, err := Split(secret, 4, 2, enc, o)
		require.NoError(t, err)

		for _, s := range shares {
			line := FormatShare(s)
			parsed, err := ParseShare(line)
			require.NoError(t, err)
			assert.Equal(t, s.Y, parsed.Y)
			if s.Compact {
				assert.True(t, parsed.Compact)
				assert.Equal(t, s.Index, parsed.Index)
			} else {
				assert.Equal(t, s.X, parsed.X)
			}
		}
	}
}

func TestParseShareRejectsMalformedLines(t *testing.T) {
	cases := []string{
		"",
		"nosep",
		"1|2|3",
		"1|zz",
		"1|ab|",
		"1|a",
	}
	for _, c := range cases {
		_, err := ParseShare(c)
		assert.Error(t, err, "input %q", c)
	}
}

// S1/S2/S3/S4 from spec.md section 8, concrete scenarios (n=256, compact).
func TestSpecScenariosS1ThroughS4(t *testing.T) {
	secretHex := "3f5ffcd50ac6d0ece12bd0063e0c5f6e1c3e317f2d4692a3237fac857b85bca5"
	secret, err := hex.DecodeString(secretHex)
	require.NoError(t, err)
	require.Len(t, secret, 32)

	seed := make([]byte, 32)
	oracleSeeded, err := oracle.NewSeeded(seed)
	require.NoError(t, err)

	shares, err := Split(secret, 10, 3, EncodingCompact, oracleSeeded)
	require.NoError(t, err)
	require.Len(t, shares, 10)

	// S2: reconstruct from {3,5,8} recovers the secret exactly.
	subset := []Share{shares[2], shares[4], shares[7]}
	got, err := Reconstruct(subset, 3)
	require.NoError(t, err)
	assert.Equal(t, secret, got)

	// S3: {3,3,5} -> DuplicateShares.
	_, err = Reconstruct([]Share{shares[2], shares[2], shares[4]}, 3)
	assert.ErrorIs(t, err, horerrs.ErrDuplicateShares)

	// S4: {3,5} with T=3 -> TooFewShares.
	_, err = Reconstruct([]Share{shares[2], shares[4]}, 3)
	assert.ErrorIs(t, err, horerrs.ErrTooFewShares)
}

// S5: split with a 31-byte secret for the 256-bit width fails WrongSize.
func TestSpecScenarioS5(t *testing.T) {
	o := oracle.CryptoRand{}
	_, err := Split(make([]byte, 31), 10, 3, EncodingCompact, o)
	assert.ErrorIs(t, err, horerrs.ErrWrongSize)
}

// S7: randomized encoding produces pairwise-distinct, nonzero x-values,
// and any 3-subset reconstructs.
func TestSpecScenarioS7(t *testing.T) {
	o := oracle.CryptoRand{}
	secret := make([]byte, 32)
	_, err := rand.Read(secret)
	require.NoError(t, err)

	shares, err := Split(secret, 10, 3, EncodingRandomized, o)
	require.NoError(t, err)
	require.Len(t, shares, 10)

	seen := make(map[string]bool)
	for _, s := range shares {
		assert.NotEqual(t, make([]byte, len(s.X)), s.X, "x must be nonzero")
		key := hex.EncodeToString(s.X)
		assert.False(t, seen[key], "x values must be pairwise distinct")
		seen[key] = true
	}

	got, err := Reconstruct(shares[:3], 3)
	require.NoError(t, err)
	assert.Equal(t, secret, got)
}

func TestDeterminismWithFixedSeed(t *testing.T) {
	secret := []byte("deterministic test secret bytes!")
	seed := []byte("a fixed seed value for testing!")

	o1, err := oracle.NewSeeded(seed)
	require.NoError(t, err)
	shares1, err := Split(secret, 4, 2, EncodingRandomized, o1)
	require.NoError(t, err)

	o2, err := oracle.NewSeeded(seed)
	require.NoError(t, err)
	shares2, err := Split(secret, 4, 2, EncodingRandomized, o2)
	require.NoError(t, err)

	assert.Equal(t, shares1, shares2)
}

func BenchmarkSplit(b *testing.B) {
	o := oracle.CryptoRand{}
	secret := make([]byte, 32)
	_, _ = rand.Read(secret)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Split(secret, 5, 3, EncodingCompact, o)
	}
}

func BenchmarkReconstruct(b *testing.B) {
	o := oracle.CryptoRand{}
	secret := make([]byte, 32)
	_, _ = rand.Read(secret)
	shares, _ := Split(secret, 5, 3, EncodingCompact, o)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Reconstruct(shares[:3], 3)
	}
}
