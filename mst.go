package groupsimilar

import "math"

// primMST computes a minimum spanning tree with Prim's algorithm over a
// condensed dissimilarity matrix. Each edge is recorded as (previously added
// record, newly added record, weight); label resolves them to clusters, which
// yields the single-linkage dendrogram.
func primMST(dis []float64, n int) []merge {
	if n <= 1 {
		return nil
	}

	inTree := make([]bool, n)
	currentDistances := make([]float64, n)

	inTree[0] = true
	currentNode := 0
	currentDistances[0] = math.Inf(1)
	for j := 1; j < n; j++ {
		currentDistances[j] = dis[condensedIndex(n, 0, j)]
	}

	edges := make([]merge, 0, n-1)

	for i := 0; i < n-1; i++ {
		minDist := math.Inf(1)
		minNode := -1
		for j := 0; j < n; j++ {
			if !inTree[j] && currentDistances[j] < minDist {
				minDist = currentDistances[j]
				minNode = j
			}
		}

		// Every remaining distance is +Inf; take the first record left.
		if minNode == -1 {
			for j := 0; j < n; j++ {
				if !inTree[j] {
					minNode = j
					minDist = currentDistances[j]
					break
				}
			}
		}

		edges = append(edges, merge{a: currentNode, b: minNode, height: minDist})

		inTree[minNode] = true
		currentNode = minNode

		for k := 0; k < n; k++ {
			if inTree[k] {
				continue
			}
			var d float64
			if minNode < k {
				d = dis[condensedIndex(n, minNode, k)]
			} else {
				d = dis[condensedIndex(n, k, minNode)]
			}
			if d < currentDistances[k] {
				currentDistances[k] = d
			}
		}
	}

	return edges
}
