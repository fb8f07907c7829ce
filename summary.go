package groupsimilar

import "gonum.org/v1/gonum/stat"

// Summary describes the shape of a grouping result.
type Summary struct {
	Records    int
	Clusters   int
	Groups     int // clusters with at least one match
	Singletons int
	Largest    int

	// MeanSize and StdDevSize are over every cluster, counting the
	// representative. StdDevSize is 0 for fewer than two clusters.
	MeanSize   float64
	StdDevSize float64

	// MeanDissimilarity and MaxDissimilarity are over groups only. Both are
	// 0 when nothing was grouped.
	MeanDissimilarity float64
	MaxDissimilarity  float64
}

// Summarize computes a Summary of r.
func Summarize[V any](r *Result[V]) Summary {
	s := Summary{Clusters: len(r.Clusters)}
	if len(r.Clusters) == 0 {
		return s
	}

	sizes := make([]float64, 0, len(r.Clusters))
	var heights []float64
	for _, c := range r.Clusters {
		size := 1 + len(c.Matches)
		s.Records += size
		s.Largest = max(s.Largest, size)
		sizes = append(sizes, float64(size))
		if len(c.Matches) == 0 {
			s.Singletons++
			continue
		}
		s.Groups++
		heights = append(heights, c.Dissimilarity)
		s.MaxDissimilarity = max(s.MaxDissimilarity, c.Dissimilarity)
	}

	if len(sizes) > 1 {
		s.MeanSize, s.StdDevSize = stat.MeanStdDev(sizes, nil)
	} else {
		s.MeanSize = sizes[0]
	}
	if len(heights) > 0 {
		s.MeanDissimilarity = stat.Mean(heights, nil)
	}
	return s
}
