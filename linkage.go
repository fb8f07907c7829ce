package groupsimilar

import (
	"errors"
	"fmt"
	"math"
)

// ErrMatrixSize is returned when a condensed matrix does not hold exactly
// one entry per pair of records.
var ErrMatrixSize = errors.New("groupsimilar: condensed matrix length does not match record count")

// Linkage builds an agglomerative merge tree from a condensed dissimilarity
// matrix over n records. It returns n-1 steps ordered by non-decreasing
// dissimilarity; step i creates cluster id n+i. The condensed matrix is not
// modified.
//
// Single linkage is computed from a minimum spanning tree; every other method
// uses the nearest-neighbor chain algorithm.
func Linkage(condensed []float64, n int, method Method) ([]Step, error) {
	if n < 0 {
		return nil, fmt.Errorf("groupsimilar: record count must be >= 0, got %d", n)
	}
	if want := CondensedLen(n); len(condensed) != want {
		return nil, fmt.Errorf("%w: got %d entries, want %d (n=%d)", ErrMatrixSize, len(condensed), want, n)
	}
	if method == "" {
		method = MethodComplete
	}
	if !method.valid() {
		return nil, fmt.Errorf("%w: unsupported linkage method %q", ErrInvalidConfig, method)
	}
	if n < 2 {
		return nil, nil
	}

	dis := make([]float64, len(condensed))
	copy(dis, condensed)

	var merges []merge
	switch method {
	case MethodSingle:
		merges = primMST(dis, n)
	default:
		if method.squared() {
			for i, d := range dis {
				dis[i] = d * d
			}
		}
		merges = nnChain(dis, n, method)
		if method.squared() {
			for i := range merges {
				merges[i].height = math.Sqrt(merges[i].height)
			}
		}
	}

	return label(merges, n), nil
}

// activeList is a doubly linked list over the cluster slots 0..n-1 that are
// still active. Iteration runs from start while the index is < n.
type activeList struct {
	start int
	succ  []int
	pred  []int
}

func newActiveList(n int) *activeList {
	l := &activeList{
		succ: make([]int, n+1),
		pred: make([]int, n+1),
	}
	for i := 0; i <= n; i++ {
		l.succ[i] = i + 1
		l.pred[i] = i - 1
	}
	return l
}

func (l *activeList) remove(idx int) {
	if idx == l.start {
		l.start = l.succ[idx]
		return
	}
	l.succ[l.pred[idx]] = l.succ[idx]
	l.pred[l.succ[idx]] = l.pred[idx]
}

// nnChain runs the nearest-neighbor chain algorithm over dis, which is
// updated in place. A merged cluster lives on in the larger of its two slots;
// the smaller slot is deactivated. Only reducible methods (everything but
// centroid and median) produce a correct hierarchy this way.
func nnChain(dis []float64, n int, method Method) []merge {
	at := func(i, j int) int {
		if i > j {
			i, j = j, i
		}
		return condensedIndex(n, i, j)
	}

	size := make([]int, n)
	for i := range size {
		size[i] = 1
	}
	active := newActiveList(n)
	chain := make([]int, n+1)
	tip := 0
	merges := make([]merge, 0, n-1)

	for step := 0; step < n-1; step++ {
		var a, b int
		var best float64

		if tip <= 3 {
			a = active.start
			chain[0] = a
			tip = 1

			b = active.succ[a]
			best = dis[at(a, b)]
			for i := active.succ[b]; i < n; i = active.succ[i] {
				if d := dis[at(a, i)]; d < best {
					best = d
					b = i
				}
			}
		} else {
			tip -= 3
			a = chain[tip-1]
			b = chain[tip]
			best = dis[at(a, b)]
		}

		// Grow the chain until two clusters are each other's nearest neighbor.
		for {
			chain[tip] = b
			for i := active.start; i < n; i = active.succ[i] {
				if i == b {
					continue
				}
				if d := dis[at(i, b)]; d < best {
					best = d
					a = i
				}
			}
			b = a
			a = chain[tip]
			tip++
			if b == chain[tip-2] {
				break
			}
		}

		merges = append(merges, merge{a: a, b: b, height: best})

		if a > b {
			a, b = b, a
		}
		sa, sb := size[a], size[b]
		active.remove(a)

		for k := active.start; k < n; k = active.succ[k] {
			if k == b {
				continue
			}
			dis[at(k, b)] = method.update(dis[at(k, a)], dis[at(k, b)], best, sa, sb, size[k])
		}
		size[b] = sa + sb
	}

	return merges
}
