package redblack

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewWithConfigRejectsMissingCompare(t *testing.T) {
	_, err := NewWithConfig(Config[int]{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestNewWithConfigNormalizesName(t *testing.T) {
	tree, err := NewWithConfig(Config[string]{Compare: strings.Compare})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Config().Name != DefaultName {
		t.Errorf("expected default name %q, got %q", DefaultName, tree.Config().Name)
	}
}

func TestEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "redblack")
	defer teardown()
	//
	tree := New[int]()
	if !tree.IsEmpty() || tree.Len() != 0 || tree.Height() != 0 {
		t.Errorf("unexpected empty tree state len=%d height=%d", tree.Len(), tree.Height())
	}
	if tree.Contains(0) {
		t.Errorf("empty tree must not contain anything")
	}
	if err := tree.Check(); err != nil {
		t.Errorf("expected empty tree to be valid, got %v", err)
	}
	var none *Tree[int]
	if none.Contains(1) || none.Height() != 0 || none.Len() != 0 || none.Check() != nil {
		t.Errorf("nil tree should behave like an empty tree")
	}
}

func TestInsertSingleKeyIsBlackRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "redblack")
	defer teardown()
	//
	tree := New[int]()
	tree.Insert(7)
	root := tree.Root()
	if root == nil || root.Key() != 7 || !root.IsBlack() {
		t.Fatalf("expected black root 7, have %v", tree)
	}
	if root.Parent() != nil || root.Left() != nil || root.Right() != nil {
		t.Errorf("lone root must not have links")
	}
	if tree.Height() != 1 {
		t.Errorf("expected height 1, is %d", tree.Height())
	}
}

func TestInsertRotatesAscendingTriple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "redblack")
	defer teardown()
	//
	tree := New[int]()
	for _, k := range []int{10, 20, 30} {
		tree.Insert(k)
	}
	assertShape(t, tree, 20, 10, 30)
	if tree.Height() != 2 {
		t.Errorf("expected height 2, is %d", tree.Height())
	}
}

func TestInsertRotatesDescendingTriple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "redblack")
	defer teardown()
	//
	tree := New[int]()
	for _, k := range []int{30, 20, 10} {
		tree.Insert(k)
	}
	assertShape(t, tree, 20, 10, 30)
}

func TestInsertDoubleRotatesTriangles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "redblack")
	defer teardown()
	//
	for _, keys := range [][]int{{10, 30, 20}, {30, 10, 20}} {
		tree := New[int]()
		for _, k := range keys {
			tree.Insert(k)
		}
		assertShape(t, tree, 20, 10, 30)
	}
}

func TestInsertWithoutRebalance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "redblack")
	defer teardown()
	//
	tree := New[int]()
	for _, k := range []int{2, 3, -1} {
		tree.Insert(k)
	}
	assertShape(t, tree, 2, -1, 3)
}

func TestInsertRecolorsRedUncle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "redblack")
	defer teardown()
	//
	tree := New[int]()
	for _, k := range []int{20, 10, 30, 5} {
		tree.Insert(k)
	}
	root := tree.Root()
	if root.Key() != 20 || !root.IsBlack() {
		t.Fatalf("expected black root 20, have\n%s", tree)
	}
	if !root.Left().IsBlack() || !root.Right().IsBlack() {
		t.Errorf("parent and uncle should have been recolored black:\n%s", tree)
	}
	five := root.Left().Left()
	if five == nil || five.Key() != 5 || !five.IsRed() {
		t.Errorf("expected red 5 below 10:\n%s", tree)
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestDuplicatesAreKept(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "redblack")
	defer teardown()
	//
	tree := New[int]()
	tree.Insert(5)
	tree.Insert(5)
	if tree.Len() != 2 {
		t.Errorf("expected 2 keys, have %d", tree.Len())
	}
	root := tree.Root()
	if root.Right() == nil || root.Right().Key() != 5 {
		t.Errorf("expected duplicate to be routed right:\n%s", tree)
	}
	if !tree.Contains(5) {
		t.Errorf("expected tree to contain 5")
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
	for i := 0; i < 100; i++ {
		tree.Insert(5)
		if err := tree.Check(); err != nil {
			t.Fatalf("after %d duplicates: %v", i+3, err)
		}
	}
	if tree.Len() != 102 || !tree.Contains(5) || tree.Contains(4) || tree.Contains(6) {
		t.Errorf("unexpected tree state after duplicates, len=%d", tree.Len())
	}
}

func TestInvariantsHoldAfterEachInsertion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "redblack")
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(4711))
	tree := New[int]()
	for i := 0; i < 2000; i++ {
		tree.Insert(rnd.Intn(500))
		if err := tree.Check(); err != nil {
			t.Fatalf("after insertion #%d: %v", i+1, err)
		}
	}
}

func TestMembership(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "redblack")
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(42))
	tree := New[int]()
	inserted := make(map[int]bool)
	for i := 0; i < 5000; i++ {
		k := rnd.Intn(20000) * 2 // even keys only
		tree.Insert(k)
		inserted[k] = true
		if !tree.Contains(k) {
			t.Fatalf("key %d not found right after insertion", k)
		}
	}
	for k := range inserted {
		if !tree.Contains(k) {
			t.Errorf("key %d got lost by later insertions", k)
		}
	}
	for k := -1; k < 40000; k += 2 {
		if tree.Contains(k) {
			t.Fatalf("tree contains odd key %d which has never been inserted", k)
		}
	}
}

func TestStringKeysWithCustomOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "redblack")
	defer teardown()
	//
	byLength := func(a, b string) int {
		if len(a) != len(b) {
			return len(a) - len(b)
		}
		return strings.Compare(a, b)
	}
	tree, err := NewWithConfig(Config[string]{Compare: byLength, Name: "words"})
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range strings.Fields("the quick brown fox jumps over the lazy dog") {
		tree.Insert(w)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if !tree.Contains("jumps") || tree.Contains("cat") {
		t.Errorf("unexpected membership results")
	}
	if tree.Len() != 9 {
		t.Errorf("expected 9 words, have %d", tree.Len())
	}
}

func TestHeightBoundRandomKeys(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping bulk insertion in short mode")
	}
	const n = 1000000
	rnd := rand.New(rand.NewSource(1))
	tree := New[int]()
	for i := 0; i < n; i++ {
		tree.Insert(rnd.Intn(100000))
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	assertHeightBound(t, tree)
}

func TestHeightBoundAscendingKeys(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping bulk insertion in short mode")
	}
	const n = 1000000
	tree := New[int]()
	for i := 0; i < n; i++ {
		tree.Insert(i)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	assertHeightBound(t, tree)
	for _, k := range []int{0, 1, n / 2, n - 1} {
		if !tree.Contains(k) {
			t.Errorf("expected tree to contain %d", k)
		}
	}
	if tree.Contains(n) || tree.Contains(-1) {
		t.Errorf("tree contains keys out of range")
	}
}

func TestHeightBoundSmallTrees(t *testing.T) {
	tree := New[int]()
	for i := 0; i < 4096; i++ {
		tree.Insert(i)
		assertHeightBound(t, tree)
	}
}

// --- Helpers ---------------------------------------------------------------

func assertHeightBound[K any](t *testing.T, tree *Tree[K]) {
	t.Helper()
	bound := 2 * math.Log2(float64(tree.Len()+1))
	if h := tree.Height(); float64(h) > bound {
		t.Fatalf("height %d of %d nodes exceeds 2·log2(n+1) = %.2f", h, tree.Len(), bound)
	}
}

// assertShape checks for a black root with two red children and nothing else.
func assertShape(t *testing.T, tree *Tree[int], root, left, right int) {
	t.Helper()
	r := tree.Root()
	if r == nil || r.Key() != root || !r.IsBlack() {
		t.Fatalf("expected black root %d, have\n%s", root, tree)
	}
	l, rr := r.Left(), r.Right()
	if l == nil || l.Key() != left || !l.IsRed() || !l.IsLeftChild() || l.Parent() != r {
		t.Errorf("expected red left child %d, have\n%s", left, tree)
	}
	if rr == nil || rr.Key() != right || !rr.IsRed() || !rr.IsRightChild() || rr.Parent() != r {
		t.Errorf("expected red right child %d, have\n%s", right, tree)
	}
	if l.Left() != nil || l.Right() != nil || rr.Left() != nil || rr.Right() != nil {
		t.Errorf("expected children to be leaves, have\n%s", tree)
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}
