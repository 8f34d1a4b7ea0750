package ostree

import (
	"cmp"
	"fmt"
)

// Config configures an order-statistics tree.
type Config[K any] struct {
	// Compare defines a total order over keys. It returns a negative number
	// if a orders before b, a positive number if a orders after b, and 0 if
	// both denote the same key.
	Compare func(a, b K) int
}

// OrderedConfig returns a configuration using the natural order of K.
func OrderedConfig[K cmp.Ordered]() Config[K] {
	return Config[K]{Compare: cmp.Compare[K]}
}

func (cfg Config[K]) normalized() Config[K] {
	return cfg
}

func (cfg Config[K]) validate() error {
	cfg = cfg.normalized()
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	return nil
}
