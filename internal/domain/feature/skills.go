package feature

import "sort"

// SkillEncoder is a fitted multi-hot encoding over the distinct skill tokens
// seen in the catalog. Classes are sorted, so the skill axes are deterministic
// for a fixed catalog.
type SkillEncoder struct {
	classes []string
	index   map[string]int
}

// FitSkills collects the union of all normalized skill tokens.
func FitSkills(skillSets [][]string) *SkillEncoder {
	seen := make(map[string]struct{})
	for _, set := range skillSets {
		for _, s := range set {
			seen[s] = struct{}{}
		}
	}
	classes := make([]string, 0, len(seen))
	for s := range seen {
		classes = append(classes, s)
	}
	sort.Strings(classes)
	return NewSkillEncoderFromClasses(classes)
}

// NewSkillEncoderFromClasses rebuilds an encoder from a persisted class list.
func NewSkillEncoderFromClasses(classes []string) *SkillEncoder {
	e := &SkillEncoder{
		classes: classes,
		index:   make(map[string]int, len(classes)),
	}
	for i, c := range classes {
		e.index[c] = i
	}
	return e
}

// Dim returns the number of skill axes.
func (e *SkillEncoder) Dim() int {
	return len(e.classes)
}

// Classes returns the fitted skill tokens in axis order.
func (e *SkillEncoder) Classes() []string {
	return e.classes
}

// Transform encodes a normalized skill list as a multi-hot vector. Tokens
// outside the fitted classes are dropped silently.
func (e *SkillEncoder) Transform(skills []string) Vector {
	indices := make([]int, 0, len(skills))
	for _, s := range skills {
		if idx, ok := e.index[s]; ok {
			indices = append(indices, idx)
		}
	}
	if len(indices) == 0 {
		return Vector{}
	}
	sort.Ints(indices)

	// A skill can appear once per posting after normalization, but guard
	// against repeated query tokens mapping to the same axis.
	dedup := indices[:1]
	for _, idx := range indices[1:] {
		if idx != dedup[len(dedup)-1] {
			dedup = append(dedup, idx)
		}
	}

	values := make([]float64, len(dedup))
	for i := range values {
		values[i] = 1
	}
	return Vector{Indices: dedup, Values: values}
}
