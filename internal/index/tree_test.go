package index

import (
	"math/rand"
	"sort"
	"testing"
)

// verify walks the whole tree and fails the test on any structural
// violation: stale parent links, wrong heights, broken AVL balance, or
// out-of-order keys.
func verify[P any](t *testing.T, tr *tree[P]) {
	t.Helper()
	if tr.root != nil && tr.root.parent != nil {
		t.Fatalf("root has non-nil parent")
	}
	verifyNode(t, tr.root)
	keys := inorderKeys(tr)
	if !sort.IntsAreSorted(keys) {
		t.Fatalf("in-order keys not sorted: %v", keys)
	}
}

func verifyNode[P any](t *testing.T, n *node[P]) {
	t.Helper()
	if n == nil {
		return
	}
	if n.left != nil {
		if n.left.parent != n {
			t.Fatalf("node %d: left child %d has wrong parent", n.key, n.left.key)
		}
		if n.left.key >= n.key {
			t.Fatalf("node %d: left child key %d not smaller", n.key, n.left.key)
		}
	}
	if n.right != nil {
		if n.right.parent != n {
			t.Fatalf("node %d: right child %d has wrong parent", n.key, n.right.key)
		}
		if n.right.key <= n.key {
			t.Fatalf("node %d: right child key %d not larger", n.key, n.right.key)
		}
	}

	lh, rh := height(n.left), height(n.right)
	want := lh + 1
	if rh > lh {
		want = rh + 1
	}
	if n.height != want {
		t.Fatalf("node %d: height %d, want %d", n.key, n.height, want)
	}
	if b := lh - rh; b < -1 || b > 1 {
		t.Fatalf("node %d: balance factor %d outside AVL bound", n.key, b)
	}

	verifyNode(t, n.left)
	verifyNode(t, n.right)
}

func inorderKeys[P any](tr *tree[P]) []int {
	var keys []int
	var walk func(n *node[P])
	walk = func(n *node[P]) {
		if n == nil {
			return
		}
		walk(n.left)
		keys = append(keys, n.key)
		walk(n.right)
	}
	walk(tr.root)
	return keys
}

func TestInsertKeepsBalance(t *testing.T) {
	cases := map[string][]int{
		"ascending":    {1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		"descending":   {10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
		"left-right":   {10, 4, 8},
		"right-left":   {4, 10, 8},
		"interleaved":  {5, 1, 9, 3, 7, 2, 8, 4, 6, 0},
		"single":       {42},
		"two-elements": {2, 1},
	}

	for name, keys := range cases {
		t.Run(name, func(t *testing.T) {
			var tr tree[struct{}]
			for _, k := range keys {
				_, existed := tr.insert(k)
				if existed {
					t.Fatalf("insert(%d): unexpected duplicate", k)
				}
				verify(t, &tr)
			}

			sorted := append([]int(nil), keys...)
			sort.Ints(sorted)
			got := inorderKeys(&tr)
			for i, k := range sorted {
				if got[i] != k {
					t.Fatalf("in-order traversal = %v, want %v", got, sorted)
				}
			}
		})
	}
}

func TestInsertReportsExisting(t *testing.T) {
	var tr tree[int]
	n, existed := tr.insert(7)
	if existed {
		t.Fatal("fresh key reported as existing")
	}
	n.payload = 1

	again, existed := tr.insert(7)
	if !existed {
		t.Fatal("duplicate key not reported")
	}
	if again != n {
		t.Fatal("duplicate insert returned a different node")
	}
	if again.payload != 1 {
		t.Fatalf("payload lost on duplicate insert: %d", again.payload)
	}
}

func TestRemoveRandomOrderEmptiesTree(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const n = 200

	keys := rng.Perm(n)
	var tr tree[struct{}]
	for _, k := range keys {
		tr.insert(k)
	}
	verify(t, &tr)

	removal := rng.Perm(n)
	for i, k := range removal {
		nd := tr.find(k)
		if nd == nil {
			t.Fatalf("find(%d) after %d removals: not found", k, i)
		}
		tr.removeNode(nd)
		verify(t, &tr)
	}

	if tr.root != nil {
		t.Fatal("tree not empty after removing every key")
	}
}

func TestRemoveRootVariants(t *testing.T) {
	t.Run("leaf root", func(t *testing.T) {
		var tr tree[struct{}]
		tr.insert(5)
		tr.removeNode(tr.root)
		if tr.root != nil {
			t.Fatal("root still present")
		}
	})

	t.Run("root with only right child", func(t *testing.T) {
		var tr tree[struct{}]
		tr.insert(5)
		tr.insert(8)
		tr.removeNode(tr.find(5))
		verify(t, &tr)
		if tr.root == nil || tr.root.key != 8 {
			t.Fatal("right child not promoted to root")
		}
	})

	t.Run("root with two children", func(t *testing.T) {
		var tr tree[struct{}]
		for _, k := range []int{5, 2, 8, 1, 3, 7, 9} {
			tr.insert(k)
		}
		tr.removeNode(tr.find(5))
		verify(t, &tr)
		if tr.find(5) != nil {
			t.Fatal("removed key still findable")
		}
		// The in-order predecessor takes the root's place.
		if tr.root.key != 3 {
			t.Fatalf("root key = %d, want predecessor 3", tr.root.key)
		}
	})
}

func TestThresholdWalks(t *testing.T) {
	var tr tree[struct{}]
	for _, k := range []int{10, 20, 30, 40, 50} {
		tr.insert(k)
	}

	tests := []struct {
		name  string
		got   *node[struct{}]
		want  int
		found bool
	}{
		{"lowestGE exact", tr.lowestGE(30), 30, true},
		{"lowestGE between", tr.lowestGE(31), 40, true},
		{"lowestGE below all", tr.lowestGE(5), 10, true},
		{"lowestGE above all", tr.lowestGE(51), 0, false},
		{"lowestGT exact", tr.lowestGT(30), 40, true},
		{"lowestGT top", tr.lowestGT(50), 0, false},
		{"highestLT exact", tr.highestLT(30), 20, true},
		{"highestLT bottom", tr.highestLT(10), 0, false},
		{"highestLE exact", tr.highestLE(30), 30, true},
		{"highestLE between", tr.highestLE(29), 20, true},
		{"highestLE below all", tr.highestLE(9), 0, false},
	}
	for _, tc := range tests {
		if tc.found {
			if tc.got == nil || tc.got.key != tc.want {
				t.Errorf("%s: got %v, want key %d", tc.name, tc.got, tc.want)
			}
		} else if tc.got != nil {
			t.Errorf("%s: got key %d, want no result", tc.name, tc.got.key)
		}
	}

	if n := tr.min(); n == nil || n.key != 10 {
		t.Errorf("min: got %v, want 10", n)
	}
	if n := tr.max(); n == nil || n.key != 50 {
		t.Errorf("max: got %v, want 50", n)
	}
}

func TestSuccessorPredecessorChain(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	keys := rng.Perm(50)

	var tr tree[struct{}]
	for _, k := range keys {
		tr.insert(k)
	}

	n := tr.min()
	for want := 0; want < 50; want++ {
		if n == nil || n.key != want {
			t.Fatalf("successor chain broken at %d", want)
		}
		n = successor(n)
	}
	if n != nil {
		t.Fatalf("successor past max returned %d", n.key)
	}

	n = tr.max()
	for want := 49; want >= 0; want-- {
		if n == nil || n.key != want {
			t.Fatalf("predecessor chain broken at %d", want)
		}
		n = predecessor(n)
	}
	if n != nil {
		t.Fatalf("predecessor past min returned %d", n.key)
	}
}

func TestMixedInsertRemoveKeepsBalance(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var tr tree[struct{}]
	present := make(map[int]bool)

	for i := 0; i < 2000; i++ {
		k := rng.Intn(300)
		if present[k] {
			tr.removeNode(tr.find(k))
			delete(present, k)
		} else {
			tr.insert(k)
			present[k] = true
		}
		if i%97 == 0 {
			verify(t, &tr)
		}
	}
	verify(t, &tr)

	if got, want := len(inorderKeys(&tr)), len(present); got != want {
		t.Fatalf("tree has %d keys, want %d", got, want)
	}
}
