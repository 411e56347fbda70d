package redblack

// insertFixup restores the red-black properties after z has been attached as
// a new red leaf. The only property an insertion may break is "no red-red":
// while z and its parent are both red, the violation is either pushed two
// levels up by recoloring (uncle red) or resolved by at most two rotations
// (uncle black).
//
// The parent of a red node always has a parent itself, as the root is black.
func (t *Tree[K]) insertFixup(z *Node[K]) {
	for z.parent.IsRed() {
		parent := z.parent
		grand := parent.parent
		if parent.IsLeftChild() {
			uncle := grand.right
			if uncle.IsRed() {
				parent.color = Black
				uncle.color = Black
				grand.color = Red
				t.publish(Recolored, grand)
				z = grand
				continue
			}
			if z.IsRightChild() { // triangle => line
				z = parent
				t.rotateLeft(z)
			}
			z.parent.color = Black
			z.parent.parent.color = Red
			t.rotateRight(z.parent.parent)
		} else {
			uncle := grand.left
			if uncle.IsRed() {
				parent.color = Black
				uncle.color = Black
				grand.color = Red
				t.publish(Recolored, grand)
				z = grand
				continue
			}
			if z.IsLeftChild() {
				z = parent
				t.rotateRight(z)
			}
			z.parent.color = Black
			z.parent.parent.color = Red
			t.rotateLeft(z.parent.parent)
		}
	}
	t.root.color = Black
}

// rotateLeft turns x's right child y into the root of the subtree formerly
// rooted at x:
//
//	    x                y
//	   / \              / \
//	  a   y     =>     x   c
//	     / \          / \
//	    b   c        a   b
func (t *Tree[K]) rotateLeft(x *Node[K]) {
	y := x.right
	assert(y != nil, "rotateLeft: node has no right child")
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	t.replaceChild(x, y)
	y.left = x
	x.parent = y
	t.publish(RotatedLeft, x)
}

// rotateRight is the mirror of rotateLeft.
func (t *Tree[K]) rotateRight(x *Node[K]) {
	y := x.left
	assert(y != nil, "rotateRight: node has no left child")
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	t.replaceChild(x, y)
	y.right = x
	x.parent = y
	t.publish(RotatedRight, x)
}

// replaceChild lets y take over x's slot in x's parent, or the root slot.
func (t *Tree[K]) replaceChild(x, y *Node[K]) {
	p := x.parent
	y.parent = p
	switch {
	case p == nil:
		t.root = y
	case p.left == x:
		p.left = y
	default:
		p.right = y
	}
}
