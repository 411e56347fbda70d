package redblack

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"

	"github.com/guiguan/caster"
)

// Tree is an ordered container of keys of type K, kept balanced as a
// red-black tree.
//
//	Operation     |   Cost
//	--------------+-----------
//	Insert        |   O(log n)
//	Contains      |   O(log n)
//	Height        |   O(n)
//	Check         |   O(n)
//
// Trees have to be created with New or NewWithConfig. They are not safe for
// concurrent use if any goroutine calls Insert.
type Tree[K any] struct {
	cfg    Config[K]
	root   *Node[K]
	size   int
	cast   *caster.Caster // nil unless someone watches fixup events
	subs   map[<-chan interface{}]subscription
	closed bool
}

// New creates an empty tree for a naturally ordered key type.
func New[K cmp.Ordered]() *Tree[K] {
	t, err := NewWithConfig(Config[K]{Compare: cmp.Compare[K]})
	assert(err == nil, "New: default configuration is invalid")
	return t
}

// NewWithConfig creates an empty tree with a validated configuration.
func NewWithConfig[K any](cfg Config[K]) (*Tree[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K]{cfg: cfg.normalized()}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K]) Config() Config[K] {
	return t.cfg
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[K]) Root() *Node[K] {
	if t == nil {
		return nil
	}
	return t.root
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of keys in the tree, counting duplicates.
func (t *Tree[K]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Insert adds key to the tree. Duplicates are accepted; a key equal to an
// existing one is placed into the right subtree of the existing node.
//
// After Insert returns, all red-black properties hold for the whole tree.
func (t *Tree[K]) Insert(key K) {
	assert(t != nil && t.cfg.Compare != nil, "Insert called on uninitialized tree")
	z := newNode(key)
	if t.root == nil {
		t.root = z
	} else {
		cur := t.root
		for {
			if t.cfg.Compare(cur.key, key) > 0 {
				if cur.left == nil {
					cur.left = z
					break
				}
				cur = cur.left
			} else {
				if cur.right == nil {
					cur.right = z
					break
				}
				cur = cur.right
			}
		}
		z.parent = cur
	}
	t.size++
	t.publish(Inserted, z)
	t.insertFixup(z)
}

// Contains reports whether a key equal to q is stored in the tree.
func (t *Tree[K]) Contains(q K) bool {
	if t == nil {
		return false
	}
	n := t.root
	for n != nil {
		c := t.cfg.Compare(q, n.key)
		switch {
		case c == 0:
			return true
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	return false
}

// Height returns the number of nodes on the longest path from the root down to
// a leaf. An empty tree has height 0.
func (t *Tree[K]) Height() int {
	if t == nil {
		return 0
	}
	return height(t.root)
}

func height[K any](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}
