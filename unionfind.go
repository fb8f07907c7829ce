package groupsimilar

// UnionFind is a disjoint-set structure sized for dendrogram relabeling. It
// holds 2*n - 1 elements: original records 0..n-1 and merged clusters
// n..2n-2. Every Link creates a fresh cluster id instead of reusing one of
// its inputs, so roots always name the most recent merge.
type UnionFind struct {
	parent []int
	size   []int
	// nextLabel is the ID for the next merged cluster, starting at n.
	nextLabel int
}

// NewUnionFind creates a UnionFind for n initial elements.
func NewUnionFind(n int) *UnionFind {
	total := 2*n - 1
	if total < 1 {
		total = 1
	}
	parent := make([]int, total)
	size := make([]int, total)
	for i := range parent {
		parent[i] = -1 // -1 means "is a root"
	}
	for i := 0; i < n && i < total; i++ {
		size[i] = 1
	}
	return &UnionFind{
		parent:    parent,
		size:      size,
		nextLabel: n,
	}
}

// Find returns the root of the set containing x, with path compression.
func (uf *UnionFind) Find(x int) int {
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	for uf.parent[x] != -1 {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// Size returns the number of original elements under root.
func (uf *UnionFind) Size(root int) int {
	return uf.size[root]
}

// Link merges the distinct roots a and b under a new cluster id and returns
// that id.
func (uf *UnionFind) Link(a, b int) int {
	label := uf.nextLabel
	uf.size[label] = uf.size[a] + uf.size[b]
	uf.parent[a] = label
	uf.parent[b] = label
	uf.nextLabel++
	return label
}
