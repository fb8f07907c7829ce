package groupsimilar

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrDimensionMismatch is returned by vector comparators when two records
	// have different lengths.
	ErrDimensionMismatch = errors.New("groupsimilar: vectors have different dimensions")

	// ErrZeroVector is returned by Cosine when a record has zero norm, for
	// which no angle is defined.
	ErrZeroVector = errors.New("groupsimilar: zero vector has no direction")
)

// Cosine returns a Comparator over numeric vectors scoring (1 - cos θ) / 2,
// so that identical directions score 0 and opposite directions score 1.
func Cosine() Comparator[[]float64] {
	return ComparatorFunc[[]float64](func(a, b []float64) (float64, error) {
		if len(a) != len(b) {
			return 0, fmt.Errorf("%w: %d and %d", ErrDimensionMismatch, len(a), len(b))
		}
		normA, normB := floats.Norm(a, 2), floats.Norm(b, 2)
		if normA == 0 || normB == 0 {
			return 0, ErrZeroVector
		}
		cos := floats.Dot(a, b) / (normA * normB)
		// Rounding can push cos just outside [-1, 1].
		cos = math.Max(-1, math.Min(1, cos))
		return (1 - cos) / 2, nil
	})
}

// Euclidean returns a Comparator over numeric vectors scoring d / (d + scale)
// for Euclidean distance d, so a pair at distance scale scores 0.5. It panics
// unless scale is positive and finite.
func Euclidean(scale float64) Comparator[[]float64] {
	if !(scale > 0) || math.IsInf(scale, 1) {
		panic(fmt.Sprintf("groupsimilar: Euclidean scale must be positive and finite, got %v", scale))
	}
	return ComparatorFunc[[]float64](func(a, b []float64) (float64, error) {
		if len(a) != len(b) {
			return 0, fmt.Errorf("%w: %d and %d", ErrDimensionMismatch, len(a), len(b))
		}
		d := floats.Distance(a, b, 2)
		return d / (d + scale), nil
	})
}
