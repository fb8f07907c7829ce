package groupsimilar

import "sort"

// Step is one merge in a dendrogram. Cluster1 and Cluster2 are the ids of
// the merged clusters, with Cluster1 < Cluster2. Ids 0..n-1 are records;
// step i creates cluster id n+i. Size counts the records under the step.
type Step struct {
	Cluster1      int
	Cluster2      int
	Dissimilarity float64
	Size          int
}

// merge is a raw merge produced by a linkage algorithm. a and b name any
// record inside each merged cluster; label resolves them to cluster ids.
type merge struct {
	a, b   int
	height float64
}

// label converts raw merges into dendrogram steps. Merges are stable-sorted
// by height, so merges at equal height keep the order the linkage algorithm
// produced them in, and each merge is then resolved against a UnionFind so
// that the k-th step creates cluster id n+k.
func label(merges []merge, n int) []Step {
	if len(merges) == 0 {
		return nil
	}

	sorted := make([]merge, len(merges))
	copy(sorted, merges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].height < sorted[j].height
	})

	uf := NewUnionFind(n)
	steps := make([]Step, 0, len(sorted))

	for _, m := range sorted {
		a := uf.Find(m.a)
		b := uf.Find(m.b)
		if a > b {
			a, b = b, a
		}
		root := uf.Link(a, b)
		steps = append(steps, Step{
			Cluster1:      a,
			Cluster2:      b,
			Dissimilarity: m.height,
			Size:          uf.Size(root),
		})
	}

	return steps
}
