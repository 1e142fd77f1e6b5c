package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"jobmatch/internal/catalog"
	"jobmatch/internal/domain/feature"
)

// Version tags the bundle layout. Bumped on any incompatible change so stale
// artifacts are refit instead of misread.
const Version = 1

var (
	// ErrNotFound means no artifact exists at the path; the caller should
	// fit from the catalog. Not an error condition at startup.
	ErrNotFound = errors.New("model artifact not found")
	// ErrCorrupt means the artifact exists but fails to deserialize or
	// validate; the caller should treat it as absent and refit.
	ErrCorrupt = errors.New("model artifact corrupt")
)

type postingRecord struct {
	Title          string `json:"title"`
	Company        string `json:"company"`
	RequiredSkills string `json:"required_skills"`
}

type vectorRecord struct {
	Indices []int     `json:"i"`
	Values  []float64 `json:"v"`
}

// bundle is the persisted form of a fitted pipeline: explicit, versioned,
// typed fields so shape problems surface at load time, not inside scoring.
type bundle struct {
	Version      int             `json:"version"`
	TextTerms    []string        `json:"text_terms"`
	TextIDF      []float64       `json:"text_idf"`
	SkillClasses []string        `json:"skill_classes"`
	Postings     []postingRecord `json:"postings"`
	Embeddings   []vectorRecord  `json:"embeddings"`
}

// Save persists the fitted model atomically: write to a temp file in the
// same directory, then rename over the target.
func Save(path string, m *feature.Model) error {
	if path == "" {
		return fmt.Errorf("artifact: empty path")
	}
	if m == nil {
		return fmt.Errorf("artifact: nil model")
	}

	b := bundle{
		Version:      Version,
		TextTerms:    m.Text.Terms(),
		TextIDF:      m.Text.IDF(),
		SkillClasses: m.Skills.Classes(),
		Postings:     make([]postingRecord, len(m.Postings)),
		Embeddings:   make([]vectorRecord, len(m.Embeddings)),
	}
	for i, p := range m.Postings {
		b.Postings[i] = postingRecord{Title: p.Title, Company: p.Company, RequiredSkills: p.RequiredSkillsRaw}
	}
	for i, v := range m.Embeddings {
		b.Embeddings[i] = vectorRecord{Indices: v.Indices, Values: v.Values}
	}

	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("artifact: marshal: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".model-*.tmp")
	if err != nil {
		return fmt.Errorf("artifact: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("artifact: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("artifact: close: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("artifact: rename: %w", err)
	}
	return nil
}

// Load reads a persisted bundle back into a fitted model. A missing file
// maps to ErrNotFound; any decode or validation failure maps to ErrCorrupt.
func Load(path string) (*feature.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("artifact: %w", err)
	}

	var b bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return restore(b)
}

func restore(b bundle) (*feature.Model, error) {
	if b.Version != Version {
		return nil, fmt.Errorf("%w: version %d, want %d", ErrCorrupt, b.Version, Version)
	}
	if len(b.Postings) != len(b.Embeddings) {
		return nil, fmt.Errorf("%w: %d postings vs %d embeddings", ErrCorrupt, len(b.Postings), len(b.Embeddings))
	}
	if len(b.Postings) == 0 {
		return nil, fmt.Errorf("%w: empty catalog", ErrCorrupt)
	}

	text, err := feature.NewTextVectorizerFromState(b.TextTerms, b.TextIDF)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	skills := feature.NewSkillEncoderFromClasses(b.SkillClasses)
	dim := text.Dim() + skills.Dim()

	m := &feature.Model{
		Text:       text,
		Skills:     skills,
		Postings:   make([]catalog.Posting, len(b.Postings)),
		Embeddings: make([]feature.Vector, len(b.Embeddings)),
	}

	for i, rec := range b.Postings {
		p, ok := catalog.NewPosting(rec.Title, rec.Company, rec.RequiredSkills)
		if !ok {
			return nil, fmt.Errorf("%w: unusable posting at row %d", ErrCorrupt, i)
		}
		m.Postings[i] = p
	}

	for i, rec := range b.Embeddings {
		if len(rec.Indices) != len(rec.Values) {
			return nil, fmt.Errorf("%w: embedding %d shape mismatch", ErrCorrupt, i)
		}
		prev := -1
		for _, idx := range rec.Indices {
			if idx <= prev || idx >= dim {
				return nil, fmt.Errorf("%w: embedding %d index %d out of range", ErrCorrupt, i, idx)
			}
			prev = idx
		}
		m.Embeddings[i] = feature.Vector{Indices: rec.Indices, Values: rec.Values}
	}
	return m, nil
}
