package groupsimilar

import "sort"

// Cluster is one group of similar records.
type Cluster[V any] struct {
	// Representative is the record the group is keyed under.
	Representative V
	// Index is the input index of Representative.
	Index int
	// Matches are the other records in the group. Empty for a record that
	// matched nothing.
	Matches []V
	// MatchIndices are the input indices of Matches.
	MatchIndices []int
	// Dissimilarity is the height of the merge that formed the group, or 0
	// for a record that matched nothing.
	Dissimilarity float64
}

// Result contains the output of Group.
type Result[V any] struct {
	// Clusters partitions the input: every record is either exactly one
	// cluster's Representative or in exactly one cluster's Matches.
	Clusters []Cluster[V]

	// Steps is the full merge tree the clusters were cut from. Step i
	// creates cluster id n+i.
	Steps []Step
}

// Len returns the number of records across all clusters.
func (r *Result[V]) Len() int {
	total := 0
	for _, c := range r.Clusters {
		total += 1 + len(c.Matches)
	}
	return total
}

// NonTrivial returns the clusters that have at least one match.
func (r *Result[V]) NonTrivial() []Cluster[V] {
	out := make([]Cluster[V], 0, len(r.Clusters))
	for _, c := range r.Clusters {
		if len(c.Matches) > 0 {
			out = append(out, c)
		}
	}
	return out
}

// AsMap returns the result as a map from representative to matches. Equal
// representatives share one key and their matches are appended in cluster
// order.
func AsMap[V comparable](r *Result[V]) map[V][]V {
	out := make(map[V][]V, len(r.Clusters))
	for _, c := range r.Clusters {
		matches, ok := out[c.Representative]
		if !ok {
			matches = []V{}
		}
		out[c.Representative] = append(matches, c.Matches...)
	}
	return out
}

// Group clusters records by similarity according to cfg.
// Returns an error if the config is invalid or the comparator fails; no
// partial result is returned.
func Group[V any](records []V, cfg Config[V]) (*Result[V], error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	n := len(records)
	if n == 0 {
		return &Result[V]{Clusters: []Cluster[V]{}}, nil
	}

	condensed, err := CondensedMatrixParallel(records, cfg.Comparator, cfg.Workers, cfg.Progress)
	if err != nil {
		return nil, err
	}

	steps, err := Linkage(condensed, n, cfg.Method)
	if err != nil {
		return nil, err
	}

	partitions := Cut(steps, n, cfg.Threshold)
	if cfg.Order == OrderInput {
		sort.SliceStable(partitions, func(i, j int) bool {
			return partitions[i].Representative < partitions[j].Representative
		})
	}

	clusters := make([]Cluster[V], len(partitions))
	for i, p := range partitions {
		matches := make([]V, len(p.Members))
		for j, m := range p.Members {
			matches[j] = records[m]
		}
		clusters[i] = Cluster[V]{
			Representative: records[p.Representative],
			Index:          p.Representative,
			Matches:        matches,
			MatchIndices:   p.Members,
			Dissimilarity:  p.Dissimilarity,
		}
	}

	return &Result[V]{Clusters: clusters, Steps: steps}, nil
}
