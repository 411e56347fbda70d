package redblack

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("redblack: invalid configuration")
	// ErrInvariant is the sentinel every *Violation unwraps to.
	ErrInvariant = errors.New("redblack: invariant violated")
	// ErrEventsClosed signals that the event stream of a tree has been shut down.
	ErrEventsClosed = errors.New("redblack: event stream closed")
)

// Property names one of the structural properties a red-black tree has to
// satisfy.
type Property uint8

// Properties checked by Tree.Check.
const (
	RootColor   Property = iota // the root is black
	Linkage                     // parent and child links point at each other
	RedRed                      // no red node has a red child
	BlackHeight                 // all paths to absent children have the same number of black nodes
	Order                       // left keys ≤ node key ≤ right keys, transitively
	Size                        // number of reachable nodes equals Len()
)

func (p Property) String() string {
	switch p {
	case RootColor:
		return "root-color"
	case Linkage:
		return "linkage"
	case RedRed:
		return "red-red"
	case BlackHeight:
		return "black-height"
	case Order:
		return "order"
	case Size:
		return "size"
	}
	return fmt.Sprintf("property(%d)", uint8(p))
}

// Violation describes a failed invariant: which property failed and at which
// node. Key is nil for violations which are not tied to a single node.
type Violation struct {
	Property Property
	Key      any
	Detail   string
}

func (v *Violation) Error() string {
	if v.Key == nil {
		return fmt.Sprintf("redblack: %s violated: %s", v.Property, v.Detail)
	}
	return fmt.Sprintf("redblack: %s violated at key %v: %s", v.Property, v.Key, v.Detail)
}

// Unwrap makes violations match ErrInvariant with errors.Is.
func (v *Violation) Unwrap() error {
	return ErrInvariant
}
