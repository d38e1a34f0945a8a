// Package index implements the ordered card indexes the game engine selects
// from: a dual-key battle index, a counted survivability index, and a FIFO
// revival index. All three share one height-balanced search tree engine.
package index

// node is a single tree node. A leaf has height 0 and an absent child counts
// as height -1 for balance purposes.
type node[P any] struct {
	key     int
	payload P

	left, right, parent *node[P]
	height              int
}

// tree is the shared AVL engine. It stores one node per distinct key; how
// duplicate keys fold into a node's payload is decided by the index built on
// top of it.
type tree[P any] struct {
	root *node[P]
}

func (t *tree[P]) empty() bool {
	return t.root == nil
}

// insert walks to the slot for key. If a node with that key already exists it
// is returned with existed=true so the caller can apply its duplicate policy.
// Otherwise a fresh leaf is attached, heights are recomputed and the tree is
// rebalanced from the leaf's parent upward.
func (t *tree[P]) insert(key int) (n *node[P], existed bool) {
	if t.root == nil {
		t.root = &node[P]{key: key}
		return t.root, false
	}

	var parent *node[P]
	current := t.root
	for current != nil {
		parent = current
		switch {
		case key < current.key:
			current = current.left
		case key > current.key:
			current = current.right
		default:
			return current, true
		}
	}

	n = &node[P]{key: key, parent: parent}
	if key < parent.key {
		parent.left = n
	} else {
		parent.right = n
	}
	t.fixHeights(parent)
	t.rebalance(parent)
	return n, false
}

// find returns the node holding key, or nil.
func (t *tree[P]) find(key int) *node[P] {
	current := t.root
	for current != nil {
		switch {
		case key < current.key:
			current = current.left
		case key > current.key:
			current = current.right
		default:
			return current
		}
	}
	return nil
}

// removeNode physically deletes n from the tree. Callers resolve any
// duplicate layer first; by the time this runs, n represents the key's last
// occurrence.
//
// A node with no left child is spliced out by lifting its right child into
// its slot. Otherwise n takes over the key and payload of its in-order
// predecessor (the rightmost node of the left subtree), and the predecessor,
// which has at most a left child, is spliced out instead. Rebalancing starts
// at the parent of the physically removed node.
func (t *tree[P]) removeNode(n *node[P]) {
	if n.left == nil {
		t.spliceRight(n)
		return
	}

	pred := n.left
	for pred.right != nil {
		pred = pred.right
	}
	n.key = pred.key
	n.payload = pred.payload

	parent := pred.parent
	child := pred.left
	if parent.right == pred {
		parent.right = child
	} else {
		parent.left = child
	}
	if child != nil {
		child.parent = parent
	}
	t.fixHeights(parent)
	t.rebalance(parent)
}

// spliceRight removes a node that has no left child by promoting its right
// child into its place.
func (t *tree[P]) spliceRight(n *node[P]) {
	parent := n.parent
	child := n.right
	if parent == nil {
		t.root = child
		if child != nil {
			child.parent = nil
		}
		return
	}
	if parent.left == n {
		parent.left = child
	} else {
		parent.right = child
	}
	if child != nil {
		child.parent = parent
	}
	t.fixHeights(parent)
	t.rebalance(parent)
}

// height returns the AVL height of a possibly absent subtree.
func height[P any](n *node[P]) int {
	if n == nil {
		return -1
	}
	return n.height
}

// balance is height(left) - height(right): positive means left-heavy.
func balance[P any](n *node[P]) int {
	return height(n.left) - height(n.right)
}

// fixHeights recomputes heights from n up to the root.
func (t *tree[P]) fixHeights(n *node[P]) {
	for n != nil {
		lh, rh := height(n.left), height(n.right)
		if lh >= rh {
			n.height = lh + 1
		} else {
			n.height = rh + 1
		}
		n = n.parent
	}
}

// rebalance walks from n to the root, applying one of the four rotation
// patterns at any node whose balance factor leaves the AVL bound. A rotation
// can shrink the rotated subtree, so the walk always continues to the root.
func (t *tree[P]) rebalance(n *node[P]) {
	for n != nil {
		switch b := balance(n); {
		case b > 1:
			if balance(n.left) >= 0 { // left-left
				t.rotateRight(n)
			} else { // left-right
				t.rotateLeft(n.left)
				t.rotateRight(n)
			}
		case b < -1:
			if balance(n.right) <= 0 { // right-right
				t.rotateLeft(n)
			} else { // right-left
				t.rotateRight(n.right)
				t.rotateLeft(n)
			}
		}
		n = n.parent
	}
}

// rotateRight promotes n's left child into n's place. n keeps the promoted
// child's right subtree as its new left subtree.
func (t *tree[P]) rotateRight(n *node[P]) {
	promoted := n.left
	moved := promoted.right
	parent := n.parent

	n.left = moved
	if moved != nil {
		moved.parent = n
	}

	promoted.parent = parent
	if parent == nil {
		t.root = promoted
	} else if parent.left == n {
		parent.left = promoted
	} else {
		parent.right = promoted
	}

	promoted.right = n
	n.parent = promoted

	t.fixHeights(n)
}

// rotateLeft mirrors rotateRight: n's right child is promoted.
func (t *tree[P]) rotateLeft(n *node[P]) {
	promoted := n.right
	moved := promoted.left
	parent := n.parent

	n.right = moved
	if moved != nil {
		moved.parent = n
	}

	promoted.parent = parent
	if parent == nil {
		t.root = promoted
	} else if parent.left == n {
		parent.left = promoted
	} else {
		parent.right = promoted
	}

	promoted.left = n
	n.parent = promoted

	t.fixHeights(n)
}

// --- Ordered walks ---

// min returns the leftmost node, or nil on an empty tree.
func (t *tree[P]) min() *node[P] {
	n := t.root
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// max returns the rightmost node, or nil on an empty tree.
func (t *tree[P]) max() *node[P] {
	n := t.root
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// lowestGE finds the node with the smallest key >= bound: record a
// qualifying node and keep descending toward smaller keys, reject and descend
// toward larger ones.
func (t *tree[P]) lowestGE(bound int) *node[P] {
	var best *node[P]
	for n := t.root; n != nil; {
		if n.key >= bound {
			best = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return best
}

// lowestGT finds the node with the smallest key > bound.
func (t *tree[P]) lowestGT(bound int) *node[P] {
	var best *node[P]
	for n := t.root; n != nil; {
		if n.key > bound {
			best = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return best
}

// highestLT finds the node with the largest key < bound.
func (t *tree[P]) highestLT(bound int) *node[P] {
	var best *node[P]
	for n := t.root; n != nil; {
		if n.key < bound {
			best = n
			n = n.right
		} else {
			n = n.left
		}
	}
	return best
}

// highestLE finds the node with the largest key <= bound.
func (t *tree[P]) highestLE(bound int) *node[P] {
	var best *node[P]
	for n := t.root; n != nil; {
		if n.key <= bound {
			best = n
			n = n.right
		} else {
			n = n.left
		}
	}
	return best
}

// successor returns the next node in key order, following parent links when
// n has no right subtree.
func successor[P any](n *node[P]) *node[P] {
	if n.right != nil {
		next := n.right
		for next.left != nil {
			next = next.left
		}
		return next
	}
	parent := n.parent
	for parent != nil && n == parent.right {
		n = parent
		parent = parent.parent
	}
	return parent
}

// predecessor returns the previous node in key order.
func predecessor[P any](n *node[P]) *node[P] {
	if n.left != nil {
		prev := n.left
		for prev.right != nil {
			prev = prev.right
		}
		return prev
	}
	parent := n.parent
	for parent != nil && n == parent.left {
		n = parent
		parent = parent.parent
	}
	return parent
}
