package words

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetSecretIsConsistentForInput(t *testing.T) {
	secret := GetSecret("C012345", 1)

	assert.Equal(t, secret, GetSecret("C012345", 1))
	assert.Equal(t, secret, GetSecret("C012345", 1))
}

func TestGetSecretVariesByPuzzleNumber(t *testing.T) {
	assert.NotEqual(t, GetSecret("C012345", 1), GetSecret("C012345", 2))
}

func TestGetSecretVariesByChannel(t *testing.T) {
	// Different channels walk the word list in different orders. A
	// collision on a single day is possible but not across several.
	var differs bool
	for day := 0; day < 5; day++ {
		if GetSecret("C0000001", day) != GetSecret("C0000002", day) {
			differs = true
			break
		}
	}
	assert.True(t, differs)
}

func TestGetSecretWrapsAroundWordList(t *testing.T) {
	count := TargetWordCount()

	assert.Equal(t, GetSecret("C012345", 3), GetSecret("C012345", 3+count))
}

func TestGetPuzzleNumber(t *testing.T) {
	assert.Equal(t, 0, GetPuzzleNumber(BaseDate))
	assert.Equal(t, 0, GetPuzzleNumber(BaseDate.Add(23*time.Hour)))
	assert.Equal(t, 1, GetPuzzleNumber(BaseDate.AddDate(0, 0, 1)))
	assert.Equal(t, 365, GetPuzzleNumber(BaseDate.AddDate(1, 0, 0)))
}

func TestGetPuzzleDate(t *testing.T) {
	assert.Equal(t, "Friday May 6", GetPuzzleDate(0))
	assert.Equal(t, "Monday May 9", GetPuzzleDate(3))
}

func TestTimestampMS(t *testing.T) {
	assert.Equal(t, int64(0), TimestampMS(BaseDate))
	assert.Equal(t, int64(1000), TimestampMS(BaseDate.Add(time.Second)))

	// Later submissions always order after earlier ones
	earlier := TimestampMS(BaseDate.AddDate(0, 1, 0))
	later := TimestampMS(BaseDate.AddDate(0, 1, 0).Add(time.Millisecond))
	assert.Greater(t, later, earlier)
}

func TestAmericanizeFallsBackIfSpellingNotFound(t *testing.T) {
	assert.Equal(t, "foobar", Americanize("foobar"))
}

func TestAmericanizeReturnsAmericanSpellingForBritishWord(t *testing.T) {
	assert.Equal(t, "accessorize", Americanize("accessorise"))
	assert.Equal(t, "color", Americanize("colour"))
}
