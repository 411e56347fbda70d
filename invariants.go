package redblack

import "fmt"

// Check validates the red-black properties of the whole tree and returns the
// first violation found as a *Violation, or nil. Check never modifies the tree.
//
// Ordering is non-strict on both sides, left ≤ node ≤ right, as rotations may
// move copies of a duplicate key into either subtree.
//
// Checking visits every node and is meant for tests and diagnostics.
func (t *Tree[K]) Check() error {
	if t == nil || t.root == nil {
		if t != nil && t.size != 0 {
			return t.violation(Size, nil, fmt.Sprintf("empty tree reports %d keys", t.size))
		}
		return nil
	}
	if t.root.IsRed() {
		return t.violation(RootColor, t.root, "root is red")
	}
	if t.root.parent != nil {
		return t.violation(Linkage, t.root, "root has a parent")
	}
	count, err := t.checkLinks(t.root)
	if err != nil {
		return err
	}
	if count != t.size {
		return t.violation(Size, nil, fmt.Sprintf("%d nodes reachable, %d keys inserted", count, t.size))
	}
	if err := t.checkRedRed(t.root); err != nil {
		return err
	}
	if _, err := t.blackHeight(t.root); err != nil {
		return err
	}
	return t.checkOrder(t.root, nil, nil)
}

// MustCheck panics if Check reports a violation.
func (t *Tree[K]) MustCheck() {
	if err := t.Check(); err != nil {
		tracer().Errorf("%s: %v", t.cfg.Name, err)
		panic(err)
	}
}

func (t *Tree[K]) violation(p Property, n *Node[K], detail string) *Violation {
	v := &Violation{Property: p, Detail: detail}
	if n != nil {
		v.Key = n.key
	}
	tracer().Debugf("%s: %s", t.cfg.Name, v.Error())
	return v
}

// checkLinks verifies that every child points back to its parent and returns
// the number of nodes in the subtree.
func (t *Tree[K]) checkLinks(n *Node[K]) (int, error) {
	if n == nil {
		return 0, nil
	}
	if n.left != nil && n.left.parent != n {
		return 0, t.violation(Linkage, n.left, "left child does not point back to its parent")
	}
	if n.right != nil && n.right.parent != n {
		return 0, t.violation(Linkage, n.right, "right child does not point back to its parent")
	}
	if n.left != nil && n.left == n.right {
		return 0, t.violation(Linkage, n, "node shares a child between both slots")
	}
	l, err := t.checkLinks(n.left)
	if err != nil {
		return 0, err
	}
	r, err := t.checkLinks(n.right)
	if err != nil {
		return 0, err
	}
	return l + r + 1, nil
}

func (t *Tree[K]) checkRedRed(n *Node[K]) error {
	if n == nil {
		return nil
	}
	if n.IsRed() && (n.left.IsRed() || n.right.IsRed()) {
		return t.violation(RedRed, n, "red node has a red child")
	}
	if err := t.checkRedRed(n.left); err != nil {
		return err
	}
	return t.checkRedRed(n.right)
}

// blackHeight returns the number of black nodes on every path from n down to
// an absent child, including n. An absent child contributes 1 as it stands in
// for a black leaf.
func (t *Tree[K]) blackHeight(n *Node[K]) (int, error) {
	if n == nil {
		return 1, nil
	}
	l, err := t.blackHeight(n.left)
	if err != nil {
		return 0, err
	}
	r, err := t.blackHeight(n.right)
	if err != nil {
		return 0, err
	}
	if l != r {
		return 0, t.violation(BlackHeight, n, fmt.Sprintf("left black-height %d != right black-height %d", l, r))
	}
	if n.IsBlack() {
		return l + 1, nil
	}
	return l, nil
}

// checkOrder verifies lo ≤ n.key ≤ hi for every node in the subtree, where
// lo and hi are the keys of the nearest ancestors the subtree lies right of
// and left of, respectively. Bounds are inherited down the whole subtree, so
// the check is transitive and not merely against immediate children.
func (t *Tree[K]) checkOrder(n *Node[K], lo, hi *Node[K]) error {
	if n == nil {
		return nil
	}
	if lo != nil && t.cfg.Compare(n.key, lo.key) < 0 {
		return t.violation(Order, n, fmt.Sprintf("key is in the right subtree of greater key %v", lo.key))
	}
	if hi != nil && t.cfg.Compare(n.key, hi.key) > 0 {
		return t.violation(Order, n, fmt.Sprintf("key is in the left subtree of smaller key %v", hi.key))
	}
	if err := t.checkOrder(n.left, lo, n); err != nil {
		return err
	}
	return t.checkOrder(n.right, n, hi)
}
