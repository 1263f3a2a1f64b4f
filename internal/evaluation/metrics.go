package evaluation

import (
	"math"
	"strings"
)

const maxNGramOrder = 4

// BLEUScore computes a smoothed BLEU similarity between a reference text and
// a candidate text, both tokenized on whitespace. The score combines modified
// n-gram precisions up to order 4 with a brevity penalty. Zero-count
// precisions are smoothed so short sequences with partial overlap do not
// collapse to 0. Identical token sequences score 1.0.
func BLEUScore(reference, candidate string) float64 {
	refTokens := strings.Fields(reference)
	candTokens := strings.Fields(candidate)
	if len(refTokens) == 0 || len(candTokens) == 0 {
		return 0.0
	}

	orders := maxNGramOrder
	if len(candTokens) < orders {
		orders = len(candTokens)
	}

	logSum := 0.0
	for n := 1; n <= orders; n++ {
		p := ngramPrecision(refTokens, candTokens, n)
		logSum += math.Log(p)
	}
	geoMean := math.Exp(logSum / float64(orders))

	return brevityPenalty(len(refTokens), len(candTokens)) * geoMean
}

// ngramPrecision computes the clipped n-gram precision of the candidate
// against the reference. A zero match count is smoothed to an epsilon count
// of 0.1 so the geometric mean stays defined without inflating scores for
// unrelated texts.
func ngramPrecision(refTokens, candTokens []string, n int) float64 {
	refCounts := countNGrams(refTokens, n)
	candCounts := countNGrams(candTokens, n)

	matches := 0
	total := 0
	for gram, count := range candCounts {
		total += count
		if refCount, ok := refCounts[gram]; ok {
			if count < refCount {
				matches += count
			} else {
				matches += refCount
			}
		}
	}

	if total == 0 {
		return 1.0
	}
	if matches == 0 {
		return 0.1 / float64(total)
	}
	return float64(matches) / float64(total)
}

func countNGrams(tokens []string, n int) map[string]int {
	counts := make(map[string]int)
	for i := 0; i+n <= len(tokens); i++ {
		counts[strings.Join(tokens[i:i+n], " ")]++
	}
	return counts
}

func brevityPenalty(refLen, candLen int) float64 {
	if candLen >= refLen {
		return 1.0
	}
	return math.Exp(1.0 - float64(refLen)/float64(candLen))
}
