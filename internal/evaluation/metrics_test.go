package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBLEUScore_IdenticalSequences(t *testing.T) {
	text := "perform chest x-ray prescribe antipyretics recommend rest"
	assert.InDelta(t, 1.0, BLEUScore(text, text), 1e-9)
}

func TestBLEUScore_DisjointVocabularies(t *testing.T) {
	score := BLEUScore(
		"perform chest x-ray prescribe antipyretics",
		"schedule dental cleaning remove wisdom tooth",
	)
	assert.Less(t, score, 0.05)
	assert.Greater(t, score, 0.0)
}

func TestBLEUScore_PartialOverlap(t *testing.T) {
	score := BLEUScore(
		"recommend telehealth consultation prescribe antihistamines",
		"recommend telehealth consultation prescribe antihistamines daily",
	)
	assert.Greater(t, score, 0.3)
	assert.Less(t, score, 1.0)
}

func TestBLEUScore_ShortDisjointStaysBelowRubricCutoff(t *testing.T) {
	// Very short candidates are where weak smoothing would cross the 0.3
	// similarity threshold without any token overlap
	score := BLEUScore("rest", "drink fluids")
	assert.Less(t, score, 0.3)

	score = BLEUScore("prescribe antihistamines", "schedule imaging")
	assert.Less(t, score, 0.3)
}

func TestBLEUScore_EmptyInputs(t *testing.T) {
	assert.Equal(t, 0.0, BLEUScore("", "some plan"))
	assert.Equal(t, 0.0, BLEUScore("reference plan", ""))
	assert.Equal(t, 0.0, BLEUScore("", ""))
}

func TestBLEUScore_ShortCandidate(t *testing.T) {
	// Shorter than the max n-gram order still produces a usable score
	score := BLEUScore("recommend rest", "recommend rest")
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestBLEUScore_BrevityPenalized(t *testing.T) {
	full := BLEUScore("perform chest x-ray prescribe antipyretics recommend rest", "perform chest x-ray prescribe antipyretics recommend rest")
	short := BLEUScore("perform chest x-ray prescribe antipyretics recommend rest", "perform chest x-ray")
	assert.Less(t, short, full)
}
