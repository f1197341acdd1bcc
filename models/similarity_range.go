package models

// SimilarityRange holds per-word similarity statistics over the
// precomputed neighbor set: the nearest neighbor, the tenth nearest and
// the farthest tracked one. Values are raw cosine similarities (0-1
// scale). Read-only at runtime.
type SimilarityRange struct {
	Word  string  `db:"word"`
	Top   float64 `db:"top"`
	Top10 float64 `db:"top10"`
	Rest  float64 `db:"rest"`
}
