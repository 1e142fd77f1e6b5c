package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// RecommendationCache is the response cache surface; the Redis adapter in
// infrastructure/cache satisfies it. A nil cache disables caching.
type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type recommendCacheKeyInput struct {
	Skills []string `json:"skills"`
	TopK   int      `json:"top_k"`
}

// RecommendCacheKey builds a stable key from the normalized skill list and
// the requested result count.
func RecommendCacheKey(normalizedSkills []string, topK int) string {
	b, _ := json.Marshal(recommendCacheKeyInput{Skills: normalizedSkills, TopK: topK})
	sum := sha256.Sum256(b)
	return "recommend:" + hex.EncodeToString(sum[:])
}
