package groupsimilar

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidThreshold is returned when a threshold lies outside [0, 1].
var ErrInvalidThreshold = errors.New("groupsimilar: threshold must be between 0 and 1")

// defaultThreshold is the threshold used when none is configured.
const defaultThreshold = 0.25

// Threshold describes how permissive grouping is. It is a dissimilarity in
// [0, 1]: 0 accepts only exact matches, 1 accepts everything. The zero value
// is a valid threshold of 0.
//
// Threshold implements pflag.Value so it can be bound directly as a flag.
type Threshold struct {
	v float64
}

// NewThreshold validates v and returns it as a Threshold.
func NewThreshold(v float64) (Threshold, error) {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return Threshold{}, fmt.Errorf("%w, got %v", ErrInvalidThreshold, v)
	}
	return Threshold{v: v}, nil
}

// MustThreshold is like NewThreshold but panics on an invalid value.
func MustThreshold(v float64) Threshold {
	t, err := NewThreshold(v)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultThreshold returns the default threshold of 0.25.
func DefaultThreshold() Threshold {
	return Threshold{v: defaultThreshold}
}

// ParseThreshold parses a decimal string into a validated Threshold.
func ParseThreshold(s string) (Threshold, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Threshold{}, fmt.Errorf("groupsimilar: parse threshold %q: %w", s, err)
	}
	return NewThreshold(v)
}

// Value returns the threshold as a float64.
func (t Threshold) Value() float64 { return t.v }

// Within reports whether dissimilarity is close enough to group.
// The boundary is inclusive.
func (t Threshold) Within(dissimilarity float64) bool {
	return dissimilarity <= t.v
}

func (t Threshold) String() string {
	return strconv.FormatFloat(t.v, 'g', -1, 64)
}

// Set parses s into t. It implements pflag.Value.
func (t *Threshold) Set(s string) error {
	parsed, err := ParseThreshold(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Type implements pflag.Value.
func (t *Threshold) Type() string { return "threshold" }
