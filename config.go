package redblack

import "fmt"

// DefaultName labels trees which have not been given a name.
const DefaultName = "rbtree"

// Config configures a red-black tree.
type Config[K any] struct {
	// Compare returns a negative number if a < b, zero if a == b and a positive
	// number if a > b. It has to establish a total order on K.
	Compare func(a, b K) int
	// Name labels the tree in traces and DOT output. Optional.
	Name string
}

func (cfg Config[K]) normalized() Config[K] {
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	return cfg
}

func (cfg Config[K]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	return nil
}
