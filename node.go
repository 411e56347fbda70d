package redblack

// Color is the color of a tree node.
type Color bool

// Node colors. Absent children are considered black.
const (
	Red   Color = false
	Black Color = true
)

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "red"
}

// Node is a node of a red-black tree. Nodes are created by Tree.Insert only,
// clients get read-only access for diagnostics.
//
// A node owns its children. The parent link is a back-reference used for
// walking upwards during fixup and rotation; it does not imply ownership.
type Node[K any] struct {
	key    K
	color  Color
	parent *Node[K]
	left   *Node[K]
	right  *Node[K]
}

// newNode creates a red node without links.
func newNode[K any](key K) *Node[K] {
	return &Node[K]{key: key, color: Red}
}

// Key returns the key stored in node n.
func (n *Node[K]) Key() K {
	return n.key
}

// Color returns the color of n. A nil node is black.
func (n *Node[K]) Color() Color {
	if n == nil {
		return Black
	}
	return n.color
}

// IsRed is true for red nodes. A nil node stands in for a black leaf.
func (n *Node[K]) IsRed() bool {
	return n != nil && n.color == Red
}

// IsBlack is true for black nodes and for nil.
func (n *Node[K]) IsBlack() bool {
	return n == nil || n.color == Black
}

// Left returns the left child of n, or nil.
func (n *Node[K]) Left() *Node[K] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child of n, or nil.
func (n *Node[K]) Right() *Node[K] {
	if n == nil {
		return nil
	}
	return n.right
}

// Parent returns the parent of n, or nil for the root.
func (n *Node[K]) Parent() *Node[K] {
	if n == nil {
		return nil
	}
	return n.parent
}

// IsLeftChild reports whether n is the left child of its parent.
// This is an identity check; distinct nodes may carry equal keys.
func (n *Node[K]) IsLeftChild() bool {
	return n != nil && n.parent != nil && n.parent.left == n
}

// IsRightChild reports whether n is the right child of its parent.
func (n *Node[K]) IsRightChild() bool {
	return n != nil && n.parent != nil && n.parent.right == n
}
