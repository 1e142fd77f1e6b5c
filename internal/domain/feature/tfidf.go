package feature

import (
	"fmt"
	"math"
	"sort"
)

// MaxTextFeatures caps the text vocabulary; terms beyond the cap are dropped
// by corpus frequency ranking, ties broken alphabetically, so fitting is
// deterministic for a fixed corpus.
const MaxTextFeatures = 2000

// TextVectorizer is a fitted TF-IDF model over unigrams and bigrams. Fit
// assigns vocabulary indices in term order; Transform never mutates state, so
// a fitted vectorizer is safe for concurrent use.
type TextVectorizer struct {
	terms []string
	index map[string]int
	idf   []float64
}

// FitText builds the vocabulary and IDF weights from the corpus using smooth
// IDF: ln((1+n)/(1+df)) + 1.
func FitText(docs []string) *TextVectorizer {
	docFreq := make(map[string]int)
	corpusFreq := make(map[string]int)

	for _, doc := range docs {
		terms := NGrams(Tokenize(doc))
		seen := make(map[string]struct{}, len(terms))
		for _, t := range terms {
			corpusFreq[t]++
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			docFreq[t]++
		}
	}

	kept := make([]string, 0, len(corpusFreq))
	for t := range corpusFreq {
		kept = append(kept, t)
	}
	if len(kept) > MaxTextFeatures {
		sort.Slice(kept, func(i, j int) bool {
			if corpusFreq[kept[i]] != corpusFreq[kept[j]] {
				return corpusFreq[kept[i]] > corpusFreq[kept[j]]
			}
			return kept[i] < kept[j]
		})
		kept = kept[:MaxTextFeatures]
	}
	sort.Strings(kept)

	v := &TextVectorizer{
		terms: kept,
		index: make(map[string]int, len(kept)),
		idf:   make([]float64, len(kept)),
	}
	n := float64(len(docs))
	for i, t := range kept {
		v.index[t] = i
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[t]))) + 1
	}
	return v
}

// NewTextVectorizerFromState rebuilds a fitted vectorizer from persisted
// vocabulary and IDF weights.
func NewTextVectorizerFromState(terms []string, idf []float64) (*TextVectorizer, error) {
	if len(terms) != len(idf) {
		return nil, fmt.Errorf("text vectorizer state: %d terms vs %d idf weights", len(terms), len(idf))
	}
	v := &TextVectorizer{
		terms: terms,
		index: make(map[string]int, len(terms)),
		idf:   idf,
	}
	for i, t := range terms {
		v.index[t] = i
	}
	return v, nil
}

// Dim returns the text vocabulary size.
func (v *TextVectorizer) Dim() int {
	return len(v.terms)
}

// Terms returns the fitted vocabulary in index order.
func (v *TextVectorizer) Terms() []string {
	return v.terms
}

// IDF returns the fitted per-term IDF weights, aligned with Terms.
func (v *TextVectorizer) IDF() []float64 {
	return v.idf
}

// Transform encodes one document as an L2-normalized TF-IDF vector against
// the fitted vocabulary. Out-of-vocabulary terms contribute nothing.
func (v *TextVectorizer) Transform(doc string) Vector {
	counts := make(map[int]int)
	for _, t := range NGrams(Tokenize(doc)) {
		if idx, ok := v.index[t]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return Vector{}
	}

	indices := make([]int, 0, len(counts))
	for idx := range counts {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	out := Vector{Indices: indices, Values: make([]float64, len(indices))}
	for i, idx := range indices {
		out.Values[i] = float64(counts[idx]) * v.idf[idx]
	}
	out.Normalize()
	return out
}
