package feature

import (
	"errors"
	"strings"

	"jobmatch/internal/catalog"
)

// SkillWeight scales the multi-hot skill block relative to the TF-IDF text
// block: exact skill overlap should dominate generic lexical overlap.
const SkillWeight = 2.0

// ErrEmptyCorpus is returned when fitting over zero usable postings.
var ErrEmptyCorpus = errors.New("empty corpus: no usable postings after filtering")

// Model is a fitted feature pipeline: the text vocabulary, the skill axes,
// the catalog, and one embedding per posting, row-aligned by index. A Model
// is immutable after Fit and safe for concurrent readers; retraining builds
// a fresh Model and swaps it wholesale.
type Model struct {
	Text       *TextVectorizer
	Skills     *SkillEncoder
	Postings   []catalog.Posting
	Embeddings []Vector
}

// Fit trains the text vectorizer and skill encoder over the catalog and
// produces the combined, L2-normalized embedding per posting.
func Fit(postings []catalog.Posting) (*Model, error) {
	if len(postings) == 0 {
		return nil, ErrEmptyCorpus
	}

	docs := make([]string, len(postings))
	skillSets := make([][]string, len(postings))
	for i, p := range postings {
		docs[i] = p.Title + " " + p.RequiredSkillsRaw
		skillSets[i] = p.RequiredSkills
	}

	m := &Model{
		Text:     FitText(docs),
		Skills:   FitSkills(skillSets),
		Postings: postings,
	}

	m.Embeddings = make([]Vector, len(postings))
	for i := range postings {
		m.Embeddings[i] = m.combine(m.Text.Transform(docs[i]), m.Skills.Transform(skillSets[i]))
	}
	return m, nil
}

// Dim returns the combined feature-space dimensionality.
func (m *Model) Dim() int {
	return m.Text.Dim() + m.Skills.Dim()
}

// EncodeQuery places a user skill list into the fitted feature space: the
// space-joined skills are one document against the text vocabulary, the
// tokens light up the fitted skill axes, and the combination is normalized
// exactly as catalog embeddings were. Unknown skills contribute nothing; an
// entirely out-of-vocabulary list yields the zero vector.
func (m *Model) EncodeQuery(skills []string) Vector {
	norm := catalog.NormalizeSkillList(skills)
	textVec := m.Text.Transform(strings.Join(norm, " "))
	skillVec := m.Skills.Transform(norm)
	return m.combine(textVec, skillVec)
}

func (m *Model) combine(textVec, skillVec Vector) Vector {
	skillVec.Scale(SkillWeight)
	v := Concat(textVec, skillVec, m.Text.Dim())
	v.Normalize()
	return v
}
