package models

// Nearby is a precomputed neighbor of a secret word. Percentile runs from
// 1 (farthest tracked neighbor) up to the similarity count (the word
// itself); words outside the tracked set have no row. Read-only at
// runtime.
type Nearby struct {
	Word       string  `db:"word"`
	Neighbor   string  `db:"neighbor"`
	Similarity float64 `db:"similarity"`
	Percentile int     `db:"percentile"`
}
