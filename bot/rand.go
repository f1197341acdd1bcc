package bot

import (
	"math/rand"
)

// randIntn is swapped out in tests for deterministic message selection
var randIntn = rand.Intn
