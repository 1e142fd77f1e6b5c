package evaluation

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes one row per (profile, cutoff) followed by the per-cutoff
// means, matching the evaluation_metrics.csv layout.
func WriteCSV(w io.Writer, rep Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Profile", "K", "Precision", "Recall", "F1", "NDCG"}); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	for _, row := range rep.Rows {
		rec := []string{
			row.Profile,
			strconv.Itoa(row.K),
			fmtMetric(row.Precision),
			fmtMetric(row.Recall),
			fmtMetric(row.F1),
			fmtMetric(row.NDCG),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}
	for _, m := range rep.Means {
		rec := []string{
			"MEAN",
			strconv.Itoa(m.K),
			fmtMetric(m.Precision),
			fmtMetric(m.Recall),
			fmtMetric(m.F1),
			fmtMetric(m.NDCG),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}

func fmtMetric(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
