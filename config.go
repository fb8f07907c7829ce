package groupsimilar

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrInvalidConfig is wrapped by every configuration validation error other
// than an out-of-range threshold.
var ErrInvalidConfig = errors.New("groupsimilar: invalid config")

// Order selects how Result.Clusters is ordered. Group membership does not
// depend on the order.
type Order string

const (
	// OrderInput sorts clusters by their representative's input index.
	OrderInput Order = "input"
	// OrderDiscovery keeps clusters in the order the threshold cut produced
	// them: widest merged groups first, then unmerged records by index.
	OrderDiscovery Order = "discovery"
)

// Config controls grouping behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config[V any] struct {
	// Threshold is the largest merge dissimilarity that still forms a group.
	// Inclusive. Default: 0.25.
	Threshold Threshold

	// Method is the linkage rule for the merge tree. Only MethodComplete is a
	// supported grouping contract; others are accepted as-is.
	// Default: MethodComplete.
	Method Method

	// Comparator scores the dissimilarity of two records. Required.
	Comparator Comparator[V]

	// Workers controls the number of goroutines used to build the
	// dissimilarity matrix. 0 means use runtime.NumCPU(). Must be >= 0.
	Workers int

	// Order selects the ordering of Result.Clusters. Default: OrderInput.
	Order Order

	// Progress, if set, is called as matrix rows complete. It must be safe
	// for concurrent use.
	Progress ProgressFunc
}

// DefaultConfig returns a Config using cmp with reasonable defaults.
func DefaultConfig[V any](cmp Comparator[V]) Config[V] {
	return Config[V]{
		Threshold:  DefaultThreshold(),
		Method:     MethodComplete,
		Comparator: cmp,
		Order:      OrderInput,
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig[V any](cfg *Config[V]) error {
	if t := cfg.Threshold.Value(); t < 0 || t > 1 {
		return fmt.Errorf("%w, got %v", ErrInvalidThreshold, t)
	}
	if cfg.Comparator == nil {
		return fmt.Errorf("%w: Comparator must be set", ErrInvalidConfig)
	}
	if !cfg.Method.valid() {
		return fmt.Errorf("%w: unsupported linkage method %q", ErrInvalidConfig, cfg.Method)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("%w: Workers must be >= 0, got %d", ErrInvalidConfig, cfg.Workers)
	}
	switch cfg.Order {
	case OrderInput, OrderDiscovery:
		// valid
	default:
		return fmt.Errorf("%w: invalid Order %q", ErrInvalidConfig, cfg.Order)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults. The
// zero Threshold is a valid threshold of 0 and is left alone.
func applyDefaults[V any](cfg *Config[V]) {
	if cfg.Method == "" {
		cfg.Method = MethodComplete
	}
	if cfg.Order == "" {
		cfg.Order = OrderInput
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}
