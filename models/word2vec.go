package models

import (
	"github.com/ikornaselur/similarium/similarity"
)

// Word2Vec is a word's embedding vector as stored, possibly in the
// truncated half-width encoding. Read-only at runtime; the table is
// produced by the offline data pipeline.
type Word2Vec struct {
	Word string `db:"word"`
	Vec  []byte `db:"vec"`
}

// ExpandedVec decodes the stored bytes into a full-precision vector.
func (w *Word2Vec) ExpandedVec() ([]float64, error) {
	return similarity.Decode(w.Vec)
}
