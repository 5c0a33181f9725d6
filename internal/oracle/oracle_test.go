package oracle

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCryptoRandReturnsRequestedLength(t *testing.T) {
	o := CryptoRand{}
	buf, err := o.Read(32)
	require.NoError(t, err)
	assert.Len(t, buf, 32)
}

func TestSeededIsDeterministic(t *testing.T) {
	o1, err := NewSeeded([]byte("a fixed demonstration seed"))
	require.NoError(t, err)
	o2, err := NewSeeded([]byte("a fixed demonstration seed"))
	require.NoError(t, err)

	b1, err := o1.Read(64)
	require.NoError(t, err)
	b2, err := o2.Read(64)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(b1, b2), "same seed must produce the same byte stream")
}

func TestSeededDiffersAcrossSeeds(t *testing.T) {
	o1, err := NewSeeded([]byte("seed one"))
	require.NoError(t, err)
	o2, err := NewSeeded([]byte("seed two"))
	require.NoError(t, err)

	b1, err := o1.Read(64)
	require.NoError(t, err)
	b2, err := o2.Read(64)
	require.NoError(t, err)

	assert.False(t, bytes.Equal(b1, b2))
}

func TestSeededConsecutiveReadsDontRepeat(t *testing.T) {
	o, err := NewSeeded([]byte("stream continuity"))
	require.NoError(t, err)

	first, err := o.Read(16)
	require.NoError(t, err)
	second, err := o.Read(16)
	require.NoError(t, err)

	assert.False(t, bytes.Equal(first, second))
}
