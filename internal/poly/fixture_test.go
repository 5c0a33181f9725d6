package poly_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gendx/horcrux/internal/field"
	"github.com/gendx/horcrux/internal/oracle"
	"github.com/gendx/horcrux/internal/poly"
	"github.com/gendx/horcrux/internal/testutil"
)

// TestSampleEvaluateInterpolateWithFixtureSecret sources its secret from
// testutil.NewSecretFixture (the builder this repo's test suites share)
// instead of hand-rolling a random field element, then runs the same
// sample/evaluate/interpolate round trip poly_test.go covers internally.
func TestSampleEvaluateInterpolateWithFixtureSecret(t *testing.T) {
	secretBytes := testutil.NewSecretFixture(8, testutil.WithSeed(99)).Raw
	secret, err := field.E64FromBytes(secretBytes)
	require.NoError(t, err)

	o := oracle.CryptoRand{}
	p, err := poly.Sample[field.E64](secret, 3, o, field.RandomE64)
	require.NoError(t, err)
	defer p.Zeroize()

	points := make([]poly.Point[field.E64], 0, 5)
	for i := 1; i <= 5; i++ {
		x, err := field.ElementOfE64(i)
		require.NoError(t, err)
		points = append(points, poly.Point[field.E64]{X: x, Y: poly.Evaluate(p, x)})
	}

	got, err := poly.InterpolateAtZero(points[:3])
	require.NoError(t, err)
	assert.Equal(t, secret, got)

	got2, err := poly.InterpolateAtZero(points[2:])
	require.NoError(t, err)
	assert.Equal(t, secret, got2)
}
