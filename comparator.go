package groupsimilar

import "github.com/antzucaro/matchr"

// Comparator scores how different two records are.
//
// Dissimilarity should return a value in [0, 1], where 0 means identical.
// Implementations must be deterministic and safe for concurrent use, and
// are expected to be symmetric: the matrix builder only evaluates
// Dissimilarity(records[i], records[j]) for i < j. An error aborts the whole
// grouping call.
type Comparator[V any] interface {
	Dissimilarity(a, b V) (float64, error)
}

// ComparatorFunc adapts a fallible function into a Comparator.
type ComparatorFunc[V any] func(a, b V) (float64, error)

func (f ComparatorFunc[V]) Dissimilarity(a, b V) (float64, error) { return f(a, b) }

// DissimilarityFunc adapts a plain function into a Comparator that never fails.
type DissimilarityFunc[V any] func(a, b V) float64

func (f DissimilarityFunc[V]) Dissimilarity(a, b V) (float64, error) { return f(a, b), nil }

// Named is implemented by records that are compared by name.
type Named interface {
	Name() string
}

// JaroWinkler returns a Comparator scoring strings by one minus their
// Jaro-Winkler similarity.
func JaroWinkler() Comparator[string] {
	return DissimilarityFunc[string](jaroWinklerDissimilarity)
}

// JaroWinklerNamed returns a Comparator scoring records by one minus the
// Jaro-Winkler similarity of their names.
func JaroWinklerNamed[V Named]() Comparator[V] {
	return DissimilarityFunc[V](func(a, b V) float64 {
		return jaroWinklerDissimilarity(a.Name(), b.Name())
	})
}

func jaroWinklerDissimilarity(a, b string) float64 {
	// matchr scores two empty strings as 0 similarity.
	if a == b {
		return 0
	}
	return 1 - matchr.JaroWinkler(a, b, false)
}

// Keyed returns a Comparator over V that compares the keys derived from each
// record. key is called once per record per comparison, so expensive keys
// should be precomputed into the record.
func Keyed[V, K any](key func(V) K, cmp Comparator[K]) Comparator[V] {
	return ComparatorFunc[V](func(a, b V) (float64, error) {
		return cmp.Dissimilarity(key(a), key(b))
	})
}
