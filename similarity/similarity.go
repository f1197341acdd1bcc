// Package similarity holds the pure scoring primitives: expansion of the
// compressed word vectors stored in the database and cosine similarity
// scoring between them.
package similarity

import (
	"encoding/binary"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Dimensions is the length of the word embedding vectors.
const Dimensions = 300

// bytesPerFloat is the width of a full-precision float32 on the wire.
const bytesPerFloat = 4

// ExpandBFloat expands a truncated-float32 vector back to full width.
//
// Vectors are stored with only the high two bytes of each little-endian
// float32 kept, halving the storage. Expansion zero-fills the dropped low
// bytes. Vectors already at full width are returned unchanged, so the
// function is safe to apply to either encoding.
func ExpandBFloat(vec []byte) []byte {
	halfLength := Dimensions * bytesPerFloat / 2
	if len(vec) != halfLength {
		return vec
	}

	expanded := make([]byte, 0, len(vec)*2)
	for i := 0; i < len(vec); i += 2 {
		expanded = append(expanded, 0, 0, vec[i], vec[i+1])
	}
	return expanded
}

// Decode unpacks a stored vector, truncated or full width, into floats.
func Decode(vec []byte) ([]float64, error) {
	expanded := ExpandBFloat(vec)
	if len(expanded) != Dimensions*bytesPerFloat {
		return nil, fmt.Errorf("vector has %d bytes, want %d", len(expanded), Dimensions*bytesPerFloat)
	}

	out := make([]float64, Dimensions)
	for i := range out {
		bits := binary.LittleEndian.Uint32(expanded[i*bytesPerFloat:])
		out[i] = float64(math.Float32frombits(bits))
	}
	return out, nil
}

// Encode packs floats into the full-width wire format. The inverse of
// Decode for full-precision vectors; used by fixtures and the data import
// tooling.
func Encode(vec []float64) []byte {
	out := make([]byte, len(vec)*bytesPerFloat)
	for i, v := range vec {
		binary.LittleEndian.PutUint32(out[i*bytesPerFloat:], math.Float32bits(float32(v)))
	}
	return out
}

// Truncate drops the low two bytes of each float in a full-width vector,
// producing the compressed storage form that ExpandBFloat reverses.
func Truncate(vec []byte) []byte {
	out := make([]byte, 0, len(vec)/2)
	for i := 0; i+bytesPerFloat <= len(vec); i += bytesPerFloat {
		out = append(out, vec[i+2], vec[i+3])
	}
	return out
}

// CosSim returns the cosine similarity of two vectors.
func CosSim(a, b []float64) float64 {
	return floats.Dot(a, b) / (math.Sqrt(floats.Dot(a, a)) * math.Sqrt(floats.Dot(b, b)))
}

// Similarity returns the cosine similarity of two vectors scaled to the
// 0-100 range shown to players.
func Similarity(a, b []float64) float64 {
	return CosSim(a, b) * 100
}
