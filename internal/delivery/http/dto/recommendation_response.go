package dto

import (
	"fmt"

	"jobmatch/internal/usecase"
)

type RecommendationRequest struct {
	Skills []string `json:"skills"`
	TopK   int      `json:"top_k"`
}

// RecommendationItem mirrors the response shape the frontend consumes:
// Match Score is a percentage string with one decimal, Missing Skills is
// capped at three entries.
type RecommendationItem struct {
	Title          string   `json:"Job Title"`
	Company        string   `json:"Company"`
	MatchScore     string   `json:"Match Score"`
	RequiredSkills []string `json:"Required Skills"`
	MissingSkills  []string `json:"Missing Skills"`
}

type RecommendationsResponse struct {
	Recommendations []RecommendationItem `json:"recommendations"`
}

func NewRecommendationsResponse(items []usecase.Recommendation) RecommendationsResponse {
	out := make([]RecommendationItem, 0, len(items))
	for _, it := range items {
		out = append(out, RecommendationItem{
			Title:          it.Title,
			Company:        it.Company,
			MatchScore:     fmt.Sprintf("%.1f%%", it.MatchScore),
			RequiredSkills: it.RequiredSkills,
			MissingSkills:  it.MissingSkills,
		})
	}
	return RecommendationsResponse{Recommendations: out}
}
