// Package groupsimilar groups records that are similar to one another using
// a pairwise dissimilarity function and agglomerative hierarchical
// clustering.
//
// The pipeline has three stages. First, every unordered pair of records is
// scored by a [Comparator], in parallel, into a condensed dissimilarity
// matrix. Second, the matrix is reduced to a merge tree (dendrogram) with
// complete linkage. Third, the tree is cut at a [Threshold]: walking from the
// root toward the leaves, the widest subtree whose merge dissimilarity is
// within the threshold becomes one group, and its first leaf becomes the
// group's representative. Records that never merge within the threshold are
// returned as singleton groups.
//
// Basic usage:
//
//	cfg := groupsimilar.DefaultConfig(groupsimilar.JaroWinkler())
//	result, err := groupsimilar.Group(names, cfg)
//	for _, c := range result.Clusters {
//		// c.Representative, c.Matches
//	}
//
// Thresholds are validated on construction:
//
//	th, err := groupsimilar.NewThreshold(0.5)
//	cfg.Threshold = th
//
// Comparators must be safe for concurrent use, and are expected to be
// symmetric: only compare(records[i], records[j]) with i < j is evaluated.
// Besides the Jaro-Winkler comparators for strings, [Cosine] and [Euclidean]
// score numeric vectors.
//
// # Lower-level stages
//
// Each stage is exported on its own:
//
//	condensed, err := groupsimilar.CondensedMatrixParallel(records, cmp, workers, nil)
//	steps, err := groupsimilar.Linkage(condensed, len(records), groupsimilar.MethodComplete)
//	partitions := groupsimilar.Cut(steps, len(records), threshold)
package groupsimilar
