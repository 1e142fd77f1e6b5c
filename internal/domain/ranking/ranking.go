package ranking

import (
	"sort"

	"jobmatch/internal/domain/feature"
)

// Scores computes the cosine similarity of the query against every catalog
// embedding in one pass; the result is index-aligned with the embedding list.
func Scores(query feature.Vector, embeddings []feature.Vector) []float64 {
	out := make([]float64, len(embeddings))
	for i, emb := range embeddings {
		out[i] = query.Dot(emb)
	}
	return out
}

// Rank returns all posting indices sorted by descending score. The sort is
// stable: equal scores keep their original catalog order, so an all-zero
// score vector ranks the catalog in load order.
func Rank(scores []float64) []int {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})
	return idx
}

// TopK returns the first k ranked indices, clamped to the catalog size.
func TopK(scores []float64, k int) []int {
	ranked := Rank(scores)
	if k < 0 {
		k = 0
	}
	if k > len(ranked) {
		k = len(ranked)
	}
	return ranked[:k]
}
