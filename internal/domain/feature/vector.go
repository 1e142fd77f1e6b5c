package feature

import "math"

// Vector is a sparse embedding: parallel index/value slices with indices
// strictly ascending. The zero Vector is the zero embedding.
type Vector struct {
	Indices []int
	Values  []float64
}

// Dot returns the inner product of two sparse vectors. For unit-norm operands
// this equals cosine similarity.
func (v Vector) Dot(other Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(v.Indices) && j < len(other.Indices) {
		switch {
		case v.Indices[i] == other.Indices[j]:
			sum += v.Values[i] * other.Values[j]
			i++
			j++
		case v.Indices[i] < other.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// Norm returns the Euclidean norm.
func (v Vector) Norm() float64 {
	var sum float64
	for _, x := range v.Values {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Normalize scales the vector to unit Euclidean norm in place. The zero
// vector is left untouched.
func (v Vector) Normalize() {
	n := v.Norm()
	if n == 0 {
		return
	}
	for i := range v.Values {
		v.Values[i] /= n
	}
}

// Concat appends other shifted by offset. Both inputs must already be sorted;
// offset must exceed every index in v.
func Concat(v Vector, other Vector, offset int) Vector {
	out := Vector{
		Indices: make([]int, 0, len(v.Indices)+len(other.Indices)),
		Values:  make([]float64, 0, len(v.Values)+len(other.Values)),
	}
	out.Indices = append(out.Indices, v.Indices...)
	out.Values = append(out.Values, v.Values...)
	for i, idx := range other.Indices {
		out.Indices = append(out.Indices, idx+offset)
		out.Values = append(out.Values, other.Values[i])
	}
	return out
}

// Scale multiplies every value by w in place.
func (v Vector) Scale(w float64) {
	for i := range v.Values {
		v.Values[i] *= w
	}
}
