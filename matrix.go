package groupsimilar

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ErrNaNDissimilarity is wrapped by a ComparatorError when a comparator
// returns NaN, which cannot be ordered by the merge-tree engine.
var ErrNaNDissimilarity = errors.New("groupsimilar: comparator returned NaN")

// ComparatorError reports a comparator failure for the pair (I, J).
type ComparatorError struct {
	I, J int
	Err  error
}

func (e *ComparatorError) Error() string {
	return fmt.Sprintf("groupsimilar: compare records %d and %d: %v", e.I, e.J, e.Err)
}

func (e *ComparatorError) Unwrap() error { return e.Err }

// ProgressFunc receives the number of pairs compared so far and the total
// number of pairs. It may be called from multiple goroutines at once.
type ProgressFunc func(done, total int)

// CondensedLen returns the number of unordered pairs among n records.
func CondensedLen(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// condensedIndex returns the position of pair (i, j), i < j, in a condensed
// matrix over n records.
func condensedIndex(n, i, j int) int {
	return n*i - i*(i+1)/2 + (j - i - 1)
}

// CondensedMatrix scores every unordered pair of records and returns the
// upper triangle of the dissimilarity matrix, flattened in row-major order:
// (0,1), (0,2), ..., (0,n-1), (1,2), ... For fewer than two records it returns
// an empty slice without calling cmp.
func CondensedMatrix[V any](records []V, cmp Comparator[V], progress ProgressFunc) ([]float64, error) {
	n := len(records)
	if n < 2 {
		return []float64{}, nil
	}

	total := CondensedLen(n)
	result := make([]float64, total)
	done := 0

	for i := 0; i < n-1; i++ {
		if err := compareRow(records, cmp, i, result); err != nil {
			return nil, err
		}
		done += n - 1 - i
		if progress != nil {
			progress(done, total)
		}
	}

	return result, nil
}

// CondensedMatrixParallel computes the same matrix as CondensedMatrix using
// multiple goroutines. Rows are striped across numWorkers workers so that
// short and long rows are spread evenly. Every pair writes its own slot, so
// no synchronization is needed for writes. If numWorkers <= 1 it falls back
// to CondensedMatrix.
//
// The first comparator error stops the remaining rows and is returned; no
// partial matrix is returned.
func CondensedMatrixParallel[V any](records []V, cmp Comparator[V], numWorkers int, progress ProgressFunc) ([]float64, error) {
	n := len(records)
	if numWorkers <= 1 || n < 2 {
		return CondensedMatrix(records, cmp, progress)
	}

	rows := n - 1
	numWorkers = min(numWorkers, rows)

	total := CondensedLen(n)
	result := make([]float64, total)
	var done atomic.Int64

	g, ctx := errgroup.WithContext(context.Background())
	for w := 0; w < numWorkers; w++ {
		w := w
		g.Go(func() error {
			for i := w; i < rows; i += numWorkers {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := compareRow(records, cmp, i, result); err != nil {
					return err
				}
				d := done.Add(int64(n - 1 - i))
				if progress != nil {
					progress(int(d), total)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// compareRow fills the condensed entries for pairs (i, j), j > i.
func compareRow[V any](records []V, cmp Comparator[V], i int, result []float64) error {
	n := len(records)
	base := condensedIndex(n, i, i+1)
	for j := i + 1; j < n; j++ {
		d, err := cmp.Dissimilarity(records[i], records[j])
		if err != nil {
			return &ComparatorError{I: i, J: j, Err: err}
		}
		if math.IsNaN(d) {
			return &ComparatorError{I: i, J: j, Err: ErrNaNDissimilarity}
		}
		result[base+j-i-1] = d
	}
	return nil
}
