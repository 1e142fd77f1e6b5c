package evaluation

import (
	"fmt"
	"math"

	"jobmatch/internal/domain/feature"
	"jobmatch/internal/domain/ranking"
)

// Profile is one hand-labeled ground-truth case: the query skills and the
// catalog indices considered relevant for them.
type Profile struct {
	Name     string
	Skills   []string
	Relevant []int
}

// Row is the metric set for one (profile, cutoff) pair, rounded to three
// decimals as reported.
type Row struct {
	Profile   string
	K         int
	Precision float64
	Recall    float64
	F1        float64
	NDCG      float64
}

// ProfileMRR is the reciprocal-rank result per profile; MRR is cutoff-free.
type ProfileMRR struct {
	Profile string
	MRR     float64
}

// MeanRow aggregates one cutoff across all profiles.
type MeanRow struct {
	K         int
	Precision float64
	Recall    float64
	F1        float64
	NDCG      float64
}

// Report is the full harness output for one invocation.
type Report struct {
	Rows  []Row
	MRRs  []ProfileMRR
	Means []MeanRow
}

// Evaluate replays the full query pipeline against a fitted model for every
// labeled profile and computes ranking metrics at each cutoff. Read-only over
// the model; it never refits.
func Evaluate(m *feature.Model, profiles []Profile, cutoffs []int) (Report, error) {
	if m == nil {
		return Report{}, fmt.Errorf("evaluation: nil model")
	}
	if len(profiles) == 0 {
		return Report{}, fmt.Errorf("evaluation: no profiles")
	}
	if len(cutoffs) == 0 {
		cutoffs = DefaultCutoffs()
	}

	rep := Report{
		Rows: make([]Row, 0, len(profiles)*len(cutoffs)),
		MRRs: make([]ProfileMRR, 0, len(profiles)),
	}

	sums := make(map[int]*MeanRow, len(cutoffs))
	for _, k := range cutoffs {
		sums[k] = &MeanRow{K: k}
	}

	for _, prof := range profiles {
		query := m.EncodeQuery(prof.Skills)
		recommended := ranking.Rank(ranking.Scores(query, m.Embeddings))

		for _, k := range cutoffs {
			p := PrecisionAtK(recommended, prof.Relevant, k)
			r := RecallAtK(recommended, prof.Relevant, k)
			row := Row{
				Profile:   prof.Name,
				K:         k,
				Precision: round3(p),
				Recall:    round3(r),
				F1:        round3(F1(p, r)),
				NDCG:      round3(NDCGAtK(recommended, prof.Relevant, k)),
			}
			rep.Rows = append(rep.Rows, row)

			s := sums[k]
			s.Precision += row.Precision
			s.Recall += row.Recall
			s.F1 += row.F1
			s.NDCG += row.NDCG
		}

		rep.MRRs = append(rep.MRRs, ProfileMRR{Profile: prof.Name, MRR: round3(MRR(recommended, prof.Relevant))})
	}

	n := float64(len(profiles))
	rep.Means = make([]MeanRow, 0, len(cutoffs))
	for _, k := range cutoffs {
		s := sums[k]
		rep.Means = append(rep.Means, MeanRow{
			K:         k,
			Precision: round3(s.Precision / n),
			Recall:    round3(s.Recall / n),
			F1:        round3(s.F1 / n),
			NDCG:      round3(s.NDCG / n),
		})
	}
	return rep, nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
