package evaluation

import "math"

// Ranking-quality metrics over a recommended index list and a relevant set.
// All follow the usual information-retrieval definitions; ranks are 0-indexed
// inside DCG and 1-indexed for reciprocal rank.

func PrecisionAtK(recommended, relevant []int, k int) float64 {
	if k <= 0 {
		return 0
	}
	return float64(hitsAtK(recommended, relevant, k)) / float64(k)
}

func RecallAtK(recommended, relevant []int, k int) float64 {
	if len(relevant) == 0 {
		return 0
	}
	return float64(hitsAtK(recommended, relevant, k)) / float64(len(relevant))
}

// F1 is the harmonic mean of precision and recall, 0 when both are 0.
func F1(precision, recall float64) float64 {
	if precision+recall == 0 {
		return 0
	}
	return 2 * precision * recall / (precision + recall)
}

// NDCGAtK divides the achieved DCG by the DCG of the ideal ordering (all
// relevant items first), 0 when there is nothing relevant to rank.
func NDCGAtK(recommended, relevant []int, k int) float64 {
	rel := toSet(relevant)

	var dcg float64
	for i, idx := range top(recommended, k) {
		if _, ok := rel[idx]; ok {
			dcg += 1 / math.Log2(float64(i)+2)
		}
	}

	ideal := len(relevant)
	if ideal > k {
		ideal = k
	}
	var idcg float64
	for i := 0; i < ideal; i++ {
		idcg += 1 / math.Log2(float64(i)+2)
	}
	if idcg == 0 {
		return 0
	}
	return dcg / idcg
}

// MRR is the reciprocal rank of the first relevant item anywhere in the
// ranking, 0 if none appears.
func MRR(recommended, relevant []int) float64 {
	rel := toSet(relevant)
	for i, idx := range recommended {
		if _, ok := rel[idx]; ok {
			return 1 / float64(i+1)
		}
	}
	return 0
}

func hitsAtK(recommended, relevant []int, k int) int {
	rel := toSet(relevant)
	hits := 0
	for _, idx := range top(recommended, k) {
		if _, ok := rel[idx]; ok {
			hits++
		}
	}
	return hits
}

func top(recommended []int, k int) []int {
	if k > len(recommended) {
		k = len(recommended)
	}
	if k < 0 {
		k = 0
	}
	return recommended[:k]
}

func toSet(items []int) map[int]struct{} {
	s := make(map[int]struct{}, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}
