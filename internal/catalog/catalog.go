package catalog

import (
	"strings"
)

// Posting is one job listing as loaded from the catalog source. Postings are
// immutable after load; RequiredSkills is the canonical lowercase token set
// derived once from RequiredSkillsRaw.
type Posting struct {
	Title             string
	Company           string
	RequiredSkillsRaw string
	RequiredSkills    []string
}

// NormalizeSkills splits a comma-separated skills string into the canonical
// token set: trimmed, lowercased, empty tokens dropped, first occurrence wins.
func NormalizeSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		tok := strings.ToLower(strings.TrimSpace(p))
		if tok == "" {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

// NormalizeSkillList applies the same normalization to an already-split skill
// list, e.g. the skills field of an incoming recommendation request.
func NormalizeSkillList(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		tok := strings.ToLower(strings.TrimSpace(s))
		if tok == "" {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

// NewPosting builds a Posting with its derived skill set. Returns false when
// the record is unusable (missing title or skills) and should be dropped.
func NewPosting(title, company, skillsRaw string) (Posting, bool) {
	title = strings.TrimSpace(title)
	company = strings.TrimSpace(company)
	skillsRaw = strings.TrimSpace(skillsRaw)
	if title == "" || skillsRaw == "" {
		return Posting{}, false
	}
	return Posting{
		Title:             title,
		Company:           company,
		RequiredSkillsRaw: skillsRaw,
		RequiredSkills:    NormalizeSkills(skillsRaw),
	}, true
}
