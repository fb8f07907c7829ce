package groupsimilar

// Partition is one output group of Cut, expressed in record indices.
type Partition struct {
	// Representative is the record the group is keyed under.
	Representative int
	// Members are the other records in the group, in extraction order. It
	// never contains Representative.
	Members []int
	// Dissimilarity is the height of the merge that formed the group, or 0
	// for a record that was not grouped with anything.
	Dissimilarity float64
}

// treeNode is either a leaf holding a record index or a merge of two ids.
type treeNode struct {
	leaf        bool
	record      int
	left, right int
}

// nodeTable is an arena of dendrogram nodes indexed by id, with a tombstone
// per id. Extraction consumes ids so that each record is emitted once.
type nodeTable struct {
	nodes    []treeNode
	consumed []bool
}

func newNodeTable(steps []Step, n int) *nodeTable {
	t := &nodeTable{
		nodes:    make([]treeNode, n+len(steps)),
		consumed: make([]bool, n+len(steps)),
	}
	for i := 0; i < n; i++ {
		t.nodes[i] = treeNode{leaf: true, record: i}
	}
	for i, s := range steps {
		t.nodes[n+i] = treeNode{left: s.Cluster1, right: s.Cluster2}
	}
	return t
}

// extract consumes id and everything beneath it that has not already been
// consumed, returning the leaf records depth-first, Cluster1 before
// Cluster2.
func (t *nodeTable) extract(id int) []int {
	var records []int
	stack := []int{id}
	for len(stack) > 0 {
		at := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if t.consumed[at] {
			continue
		}
		t.consumed[at] = true

		node := t.nodes[at]
		if node.leaf {
			records = append(records, node.record)
			continue
		}
		stack = append(stack, node.right, node.left)
	}
	return records
}

// Cut groups n records by cutting the dendrogram steps at threshold.
//
// Steps are visited from the last (the root) to the first. Each step whose
// dissimilarity is within the threshold claims every record beneath it that
// no earlier, wider step has claimed; the first claimed record becomes the
// representative. Records never claimed are returned as singletons, in index
// order, after every merged group.
//
// steps must follow the Linkage contract: step i creates id n+i and refers
// only to ids below n+i.
func Cut(steps []Step, n int, threshold Threshold) []Partition {
	if n <= 0 {
		return []Partition{}
	}

	table := newNodeTable(steps, n)
	partitions := make([]Partition, 0, n)
	byRepresentative := make(map[int]int)

	for i := len(steps) - 1; i >= 0; i-- {
		if !threshold.Within(steps[i].Dissimilarity) {
			continue
		}
		records := table.extract(n + i)
		if len(records) == 0 {
			continue
		}

		rep := records[0]
		if pos, ok := byRepresentative[rep]; ok {
			partitions[pos].Members = append(partitions[pos].Members, records[1:]...)
			continue
		}
		byRepresentative[rep] = len(partitions)
		partitions = append(partitions, Partition{
			Representative: rep,
			Members:        append([]int{}, records[1:]...),
			Dissimilarity:  steps[i].Dissimilarity,
		})
	}

	for i := 0; i < n; i++ {
		if table.consumed[i] {
			continue
		}
		partitions = append(partitions, Partition{
			Representative: i,
			Members:        []int{},
		})
	}

	return partitions
}
