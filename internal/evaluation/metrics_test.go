package evaluation

import (
	"math"
	"testing"
)

func TestPrecisionRecallMRR_Scenario(t *testing.T) {
	recommended := []int{0, 2, 1, 3}
	relevant := []int{0, 1}

	if got := PrecisionAtK(recommended, relevant, 3); math.Abs(got-2.0/3.0) > 1e-12 {
		t.Fatalf("precision@3 = %v, want 2/3", got)
	}
	if got := RecallAtK(recommended, relevant, 3); got != 1.0 {
		t.Fatalf("recall@3 = %v, want 1.0", got)
	}
	if got := MRR(recommended, relevant); got != 1.0 {
		t.Fatalf("mrr = %v, want 1.0", got)
	}
}

func TestF1(t *testing.T) {
	if got := F1(0, 0); got != 0 {
		t.Fatalf("f1(0,0) = %v, want 0", got)
	}
	if got := F1(0.5, 1.0); math.Abs(got-2.0/3.0) > 1e-12 {
		t.Fatalf("f1(0.5,1) = %v, want 2/3", got)
	}
}

func TestNDCGAtK(t *testing.T) {
	// Ideal ordering scores 1.
	if got := NDCGAtK([]int{0, 1, 2}, []int{0, 1}, 3); math.Abs(got-1) > 1e-12 {
		t.Fatalf("ideal ndcg = %v, want 1", got)
	}

	// Relevant item pushed down discounts the gain.
	got := NDCGAtK([]int{2, 0}, []int{0}, 2)
	want := (1 / math.Log2(3)) / 1
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("ndcg = %v, want %v", got, want)
	}

	if got := NDCGAtK([]int{0, 1}, nil, 2); got != 0 {
		t.Fatalf("ndcg with empty relevant = %v, want 0", got)
	}
}

func TestRecallAtK_EmptyRelevant(t *testing.T) {
	if got := RecallAtK([]int{0, 1}, nil, 2); got != 0 {
		t.Fatalf("recall with empty relevant = %v, want 0", got)
	}
}

func TestMRR_NoRelevantFound(t *testing.T) {
	if got := MRR([]int{5, 6, 7}, []int{0}); got != 0 {
		t.Fatalf("mrr = %v, want 0", got)
	}
}
