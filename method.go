package groupsimilar

import (
	"fmt"
	"strings"
)

// Method selects the linkage rule used to build the merge tree.
type Method string

const (
	// MethodComplete merges clusters by their largest pairwise dissimilarity.
	// It is the only method whose groupings are a supported contract.
	MethodComplete Method = "complete"
	MethodSingle   Method = "single"
	MethodAverage  Method = "average"
	MethodWeighted Method = "weighted"
	MethodWard     Method = "ward"
)

// Methods lists every supported linkage method.
var Methods = []Method{MethodComplete, MethodSingle, MethodAverage, MethodWeighted, MethodWard}

// ParseMethod resolves a method name case-insensitively.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	if !m.valid() {
		return "", fmt.Errorf("%w: unsupported linkage method %q", ErrInvalidConfig, s)
	}
	return m, nil
}

func (m Method) valid() bool {
	switch m {
	case MethodComplete, MethodSingle, MethodAverage, MethodWeighted, MethodWard:
		return true
	default:
		return false
	}
}

// squared reports whether the method's update formula operates on squared
// dissimilarities.
func (m Method) squared() bool {
	return m == MethodWard
}

// update returns the dissimilarity between cluster k and the union of
// clusters a and b, given the dissimilarities from k to each of them, the
// dissimilarity between a and b, and the cluster sizes (Lance-Williams).
func (m Method) update(dka, dkb, dab float64, sa, sb, sk int) float64 {
	switch m {
	case MethodSingle:
		return min(dka, dkb)
	case MethodAverage:
		return (float64(sa)*dka + float64(sb)*dkb) / float64(sa+sb)
	case MethodWeighted:
		return (dka + dkb) / 2
	case MethodWard:
		return (float64(sa+sk)*dka + float64(sb+sk)*dkb - float64(sk)*dab) / float64(sa+sb+sk)
	default:
		return max(dka, dkb)
	}
}
