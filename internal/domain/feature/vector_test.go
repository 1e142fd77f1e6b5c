package feature

import (
	"math"
	"testing"
)

func TestVectorDot(t *testing.T) {
	a := Vector{Indices: []int{0, 2, 5}, Values: []float64{1, 2, 3}}
	b := Vector{Indices: []int{2, 3, 5}, Values: []float64{4, 9, 1}}
	if got := a.Dot(b); got != 11 {
		t.Fatalf("dot = %v, want 11", got)
	}
	if got := a.Dot(Vector{}); got != 0 {
		t.Fatalf("dot with zero vector = %v, want 0", got)
	}
}

func TestVectorNormalize(t *testing.T) {
	v := Vector{Indices: []int{0, 1}, Values: []float64{3, 4}}
	v.Normalize()
	if math.Abs(v.Norm()-1) > 1e-12 {
		t.Fatalf("norm after normalize = %v, want 1", v.Norm())
	}

	zero := Vector{}
	zero.Normalize()
	if zero.Norm() != 0 {
		t.Fatalf("zero vector must stay zero")
	}
}

func TestConcatOffset(t *testing.T) {
	a := Vector{Indices: []int{1}, Values: []float64{0.5}}
	b := Vector{Indices: []int{0, 2}, Values: []float64{1, 1}}
	out := Concat(a, b, 3)
	wantIdx := []int{1, 3, 5}
	for i, idx := range out.Indices {
		if idx != wantIdx[i] {
			t.Fatalf("indices = %v, want %v", out.Indices, wantIdx)
		}
	}
}
