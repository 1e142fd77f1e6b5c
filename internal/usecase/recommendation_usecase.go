package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sync/atomic"
	"time"

	"jobmatch/internal/artifact"
	"jobmatch/internal/catalog"
	"jobmatch/internal/domain/feature"
	"jobmatch/internal/domain/gap"
	"jobmatch/internal/domain/ranking"
)

var (
	ErrModelNotFitted = errors.New("model not fitted")
	ErrInvalidInput   = errors.New("invalid input")
)

const (
	maxTopK           = 50
	recommendCacheTTL = 10 * time.Minute
)

// Recommendation is one scored posting in a response. MatchScore is a
// percentage rounded to one decimal.
type Recommendation struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	MatchScore     float64  `json:"match_score"`
	RequiredSkills []string `json:"required_skills"`
	MissingSkills  []string `json:"missing_skills"`
}

type RecommendationUsecase interface {
	Recommend(ctx context.Context, skills []string, topK int) ([]Recommendation, error)
	Reload(ctx context.Context) error
	Ready() bool
}

// RecommendationEngine owns the fitted pipeline. The model is published
// through an atomic pointer: query handlers read a consistent snapshot while
// Reload builds and swaps a fresh one, so concurrent readers never observe a
// half-updated (vocabulary, embeddings) pair.
type RecommendationEngine struct {
	source      catalog.Source
	modelPath   string
	defaultTopK int
	cache       RecommendationCache
	logger      *log.Logger

	model atomic.Pointer[feature.Model]
}

func NewRecommendationEngine(source catalog.Source, modelPath string, defaultTopK int, cache RecommendationCache, logger *log.Logger) *RecommendationEngine {
	if logger == nil {
		logger = log.Default()
	}
	if defaultTopK <= 0 || defaultTopK > maxTopK {
		defaultTopK = 5
	}
	return &RecommendationEngine{
		source:      source,
		modelPath:   modelPath,
		defaultTopK: defaultTopK,
		cache:       cache,
		logger:      logger,
	}
}

// Start makes the engine ready: load the persisted artifact when present and
// valid, otherwise fit from the catalog source and persist the result. A
// corrupt artifact is logged and treated as absent. Fit-time failures are
// fatal for the caller.
func (e *RecommendationEngine) Start(ctx context.Context) error {
	if e.modelPath != "" {
		m, err := artifact.Load(e.modelPath)
		switch {
		case err == nil:
			e.model.Store(m)
			e.logger.Printf("[Engine] model loaded from artifact: %d postings, %d features", len(m.Postings), m.Dim())
			return nil
		case errors.Is(err, artifact.ErrNotFound):
			e.logger.Printf("[Engine] no model artifact, fitting from catalog")
		case errors.Is(err, artifact.ErrCorrupt):
			e.logger.Printf("[Engine] model artifact unusable, refitting: %v", err)
		default:
			return fmt.Errorf("load model artifact: %w", err)
		}
	}
	return e.Reload(ctx)
}

// Reload refits from the catalog source and atomically swaps the snapshot.
// The previous model stays valid until the new one is fully built.
func (e *RecommendationEngine) Reload(ctx context.Context) error {
	if e.source == nil {
		return fmt.Errorf("no catalog source configured")
	}

	postings, err := e.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	m, err := feature.Fit(postings)
	if err != nil {
		return fmt.Errorf("fit model: %w", err)
	}

	if e.modelPath != "" {
		if err := artifact.Save(e.modelPath, m); err != nil {
			// Persistence is an optimization; the fitted model still serves.
			e.logger.Printf("[Engine] save model artifact failed: %v", err)
		}
	}

	e.model.Store(m)
	e.logger.Printf("[Engine] model fitted: %d postings, %d features", len(m.Postings), m.Dim())

	if f, ok := e.cache.(interface {
		FlushRecommendations(context.Context) error
	}); ok {
		if err := f.FlushRecommendations(ctx); err != nil {
			e.logger.Printf("[Engine] cache flush failed: %v", err)
		}
	}
	return nil
}

// Ready reports whether a fitted model is resident.
func (e *RecommendationEngine) Ready() bool {
	return e.model.Load() != nil
}

// Snapshot returns the current fitted model, or nil before the first fit.
// Offline consumers (the evaluation harness) read through this.
func (e *RecommendationEngine) Snapshot() *feature.Model {
	return e.model.Load()
}

// Recommend scores the user's skills against every catalog embedding and
// returns the top-K postings with skill-gap annotations. A fully
// out-of-vocabulary skill list legitimately scores 0 everywhere and returns
// the catalog head in load order.
func (e *RecommendationEngine) Recommend(ctx context.Context, skills []string, topK int) ([]Recommendation, error) {
	m := e.model.Load()
	if m == nil {
		return nil, ErrModelNotFitted
	}

	if topK <= 0 {
		topK = e.defaultTopK
	}
	if topK > maxTopK {
		topK = maxTopK
	}

	userSkills := catalog.NormalizeSkillList(skills)

	cacheKey := RecommendCacheKey(userSkills, topK)
	if e.cache != nil {
		var cached []Recommendation
		if ok, err := e.cache.GetJSON(ctx, cacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	query := m.EncodeQuery(userSkills)
	scores := ranking.Scores(query, m.Embeddings)

	out := make([]Recommendation, 0, topK)
	for _, idx := range ranking.TopK(scores, topK) {
		p := m.Postings[idx]
		out = append(out, Recommendation{
			Title:          p.Title,
			Company:        p.Company,
			MatchScore:     roundScore(scores[idx]),
			RequiredSkills: p.RequiredSkills,
			MissingSkills:  gap.Missing(p.RequiredSkills, userSkills),
		})
	}

	if e.cache != nil {
		if err := e.cache.SetJSON(ctx, cacheKey, out, recommendCacheTTL); err != nil {
			e.logger.Printf("[Engine] cache set failed: %v", err)
		}
	}
	return out, nil
}

// roundScore converts a cosine similarity to a 0-100 percentage with one
// decimal.
func roundScore(score float64) float64 {
	return math.Round(score*1000) / 10
}
