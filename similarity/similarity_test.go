package similarity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVector(seed float64) []float64 {
	vec := make([]float64, Dimensions)
	for i := range vec {
		vec[i] = math.Sin(seed + float64(i)*0.1)
	}
	return vec
}

func TestSimilarityIdenticalVectors(t *testing.T) {
	vec := testVector(1)

	assert.InDelta(t, 100.0, Similarity(vec, vec), 1e-9)
}

func TestSimilarityOppositeVectors(t *testing.T) {
	vec := testVector(1)
	opposite := make([]float64, len(vec))
	for i, v := range vec {
		opposite[i] = -v
	}

	assert.InDelta(t, -100.0, Similarity(vec, opposite), 1e-9)
}

func TestSimilarityOrthogonalVectors(t *testing.T) {
	a := make([]float64, Dimensions)
	b := make([]float64, Dimensions)
	a[0] = 1
	b[1] = 1

	assert.InDelta(t, 0.0, Similarity(a, b), 1e-9)
}

func TestCosSimIsSymmetric(t *testing.T) {
	a := testVector(1)
	b := testVector(2)

	assert.Equal(t, CosSim(a, b), CosSim(b, a))
}

func TestDecodeRoundTrip(t *testing.T) {
	vec := testVector(3)

	decoded, err := Decode(Encode(vec))
	require.NoError(t, err)

	require.Len(t, decoded, Dimensions)
	for i := range vec {
		// Encode narrows to float32
		assert.InDelta(t, vec[i], decoded[i], 1e-6)
	}
}

func TestDecodeRejectsBadLength(t *testing.T) {
	_, err := Decode(make([]byte, 100))
	assert.Error(t, err)
}

func TestExpandBFloatPassesFullWidthThrough(t *testing.T) {
	full := Encode(testVector(4))

	assert.Equal(t, full, ExpandBFloat(full))
}

func TestExpandBFloatIsIdempotent(t *testing.T) {
	truncated := Truncate(Encode(testVector(5)))

	expanded := ExpandBFloat(truncated)
	assert.Len(t, expanded, Dimensions*4)
	assert.Equal(t, expanded, ExpandBFloat(expanded))
}

func TestTruncatedSimilarityMatchesReference(t *testing.T) {
	// Expanding a truncated vector must reproduce the similarity of the
	// uncompressed pair within the precision the truncation discards.
	secret := testVector(1)
	guess := testVector(2)
	reference := Similarity(secret, guess)

	truncSecret, err := Decode(Truncate(Encode(secret)))
	require.NoError(t, err)
	truncGuess, err := Decode(Truncate(Encode(guess)))
	require.NoError(t, err)

	assert.InDelta(t, reference, Similarity(truncSecret, truncGuess), 0.5)
}
