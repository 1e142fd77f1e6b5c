package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"jobmatch/internal/catalog"
	"jobmatch/internal/domain/feature"
	"jobmatch/internal/evaluation"
)

// Offline evaluation harness: fits the pipeline over the labeled fixture
// catalog (or an external CSV), replays every ground-truth profile through
// it, and reports ranking metrics per cutoff.
func main() {
	var (
		catalogPath = flag.String("catalog", "", "optional CSV catalog; defaults to the built-in labeled fixture")
		cutoffsFlag = flag.String("k", "3,5,10", "comma-separated ranking cutoffs")
		outPath     = flag.String("out", "evaluation_metrics.csv", "metrics CSV output path")
	)
	flag.Parse()

	cutoffs, err := parseCutoffs(*cutoffsFlag)
	if err != nil {
		log.Fatalf("invalid -k: %v", err)
	}

	postings := evaluation.FixtureCatalog()
	if *catalogPath != "" {
		postings, err = catalog.NewCSVSource(*catalogPath).Load(context.Background())
		if err != nil {
			log.Fatalf("load catalog: %v", err)
		}
	}

	model, err := feature.Fit(postings)
	if err != nil {
		log.Fatalf("fit model: %v", err)
	}

	report, err := evaluation.Evaluate(model, evaluation.FixtureProfiles(), cutoffs)
	if err != nil {
		log.Fatalf("evaluate: %v", err)
	}

	printReport(report)

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("create %s: %v", *outPath, err)
	}
	defer f.Close()
	if err := evaluation.WriteCSV(f, report); err != nil {
		log.Fatalf("write report: %v", err)
	}
	fmt.Printf("\nmetrics written to %s\n", *outPath)
}

func parseCutoffs(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("bad cutoff %q", p)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no cutoffs")
	}
	return out, nil
}

func printReport(rep evaluation.Report) {
	fmt.Printf("%-28s %4s %10s %8s %8s %8s\n", "Profile", "K", "Precision", "Recall", "F1", "NDCG")
	for _, row := range rep.Rows {
		fmt.Printf("%-28s %4d %10.3f %8.3f %8.3f %8.3f\n",
			row.Profile, row.K, row.Precision, row.Recall, row.F1, row.NDCG)
	}

	fmt.Println()
	for _, m := range rep.MRRs {
		fmt.Printf("%-28s MRR %.3f\n", m.Profile, m.MRR)
	}

	fmt.Println()
	for _, mean := range rep.Means {
		fmt.Printf("MEAN @ K=%-2d  precision=%.3f recall=%.3f f1=%.3f ndcg=%.3f\n",
			mean.K, mean.Precision, mean.Recall, mean.F1, mean.NDCG)
	}
}
