package index

import (
	llq "github.com/emirpasic/gods/queues/linkedlistqueue"
)

// battleEntry is the payload of a top-level battle node: the carried card
// plus the secondary-key subtree holding every card that ties on the primary
// key. The carried card always equals the subtree root's carried card.
type battleEntry[C any] struct {
	card C
	sub  *tree[subEntry[C]]
}

// subEntry is the payload of a subtree node: the carried card plus the FIFO
// queue of cards that tie on both keys. The carried card always equals the
// queue head.
type subEntry[C any] struct {
	card  C
	queue *llq.Queue
}

// BattleIndex orders cards by a primary stat, breaks primary ties by a
// secondary stat in a per-node subtree, and breaks full ties by arrival
// order. The result is a strict deterministic total order over cards with
// identical stats: primary, then secondary, then first-in-first-out.
//
// The index stores cards by value and never hands out references into its
// own nodes.
type BattleIndex[C any] struct {
	top  tree[battleEntry[C]]
	size int
}

// NewBattleIndex returns an empty index. The caller supplies both key values
// on every operation, so the same type serves attack-primary and
// health-primary orderings.
func NewBattleIndex[C any]() *BattleIndex[C] {
	return &BattleIndex[C]{}
}

// Empty reports whether the index holds no cards.
func (bi *BattleIndex[C]) Empty() bool {
	return bi.top.empty()
}

// Len returns the number of cards held, counting duplicates.
func (bi *BattleIndex[C]) Len() int {
	return bi.size
}

// Insert adds a card under (primary, secondary). A primary tie folds the card
// into the existing node's subtree; a full tie appends it to the subtree
// node's queue.
func (bi *BattleIndex[C]) Insert(primary, secondary int, card C) {
	n, existed := bi.top.insert(primary)
	if !existed {
		n.payload = battleEntry[C]{card: card, sub: &tree[subEntry[C]]{}}
	}
	insertSub(n.payload.sub, secondary, card)
	// A subtree rotation can change which card sits at the subtree root.
	n.payload.card = n.payload.sub.root.payload.card
	bi.size++
}

func insertSub[C any](sub *tree[subEntry[C]], secondary int, card C) {
	sn, existed := sub.insert(secondary)
	if !existed {
		sn.payload = subEntry[C]{card: card, queue: llq.New()}
	}
	sn.payload.queue.Enqueue(card)
}

// Remove takes out one card matching (primary, secondary): the oldest arrival
// among full-stat ties. It returns the removed card, which may be a different
// card value than the caller searched with when several cards share the same
// stats. The second result is false if no card matches.
//
// Removal mirrors insertion: the queue is drained first; an emptied queue
// deletes the subtree node; an emptied subtree deletes the top-level node.
// Otherwise the carried cards are repromoted from the surviving queue head
// and subtree root.
func (bi *BattleIndex[C]) Remove(primary, secondary int) (C, bool) {
	var zero C
	n := bi.top.find(primary)
	if n == nil {
		return zero, false
	}

	removed, ok := removeSub(n.payload.sub, secondary)
	if !ok {
		return zero, false
	}
	if n.payload.sub.empty() {
		bi.top.removeNode(n)
	} else {
		n.payload.card = n.payload.sub.root.payload.card
	}
	bi.size--
	return removed, true
}

func removeSub[C any](sub *tree[subEntry[C]], secondary int) (C, bool) {
	var zero C
	sn := sub.find(secondary)
	if sn == nil {
		return zero, false
	}

	v, _ := sn.payload.queue.Dequeue()
	removed := v.(C)

	if sn.payload.queue.Empty() {
		sub.removeNode(sn)
	} else {
		head, _ := sn.payload.queue.Peek()
		sn.payload.card = head.(C)
	}
	return removed, true
}

// MaxPrimary returns the largest primary key present.
func (bi *BattleIndex[C]) MaxPrimary() (int, bool) {
	n := bi.top.max()
	if n == nil {
		return 0, false
	}
	return n.key, true
}

// --- Cursors ---

// A BattleCursor points at one top-level node and exposes the threshold
// searches over that node's secondary subtree. Cursors are invalidated by
// any insert or remove on the index.
type BattleCursor[C any] struct {
	n *node[battleEntry[C]]
}

// LowestPrimaryGE positions a cursor at the node with the smallest primary
// key >= bound.
func (bi *BattleIndex[C]) LowestPrimaryGE(bound int) (BattleCursor[C], bool) {
	n := bi.top.lowestGE(bound)
	return BattleCursor[C]{n: n}, n != nil
}

// LowestPrimaryGT positions a cursor at the node with the smallest primary
// key > bound.
func (bi *BattleIndex[C]) LowestPrimaryGT(bound int) (BattleCursor[C], bool) {
	n := bi.top.lowestGT(bound)
	return BattleCursor[C]{n: n}, n != nil
}

// HighestPrimaryLT positions a cursor at the node with the largest primary
// key < bound.
func (bi *BattleIndex[C]) HighestPrimaryLT(bound int) (BattleCursor[C], bool) {
	n := bi.top.highestLT(bound)
	return BattleCursor[C]{n: n}, n != nil
}

// Next moves to the in-order successor: the next higher primary key.
func (c BattleCursor[C]) Next() (BattleCursor[C], bool) {
	n := successor(c.n)
	return BattleCursor[C]{n: n}, n != nil
}

// Prev moves to the in-order predecessor: the next lower primary key.
func (c BattleCursor[C]) Prev() (BattleCursor[C], bool) {
	n := predecessor(c.n)
	return BattleCursor[C]{n: n}, n != nil
}

// Primary returns the primary key at the cursor.
func (c BattleCursor[C]) Primary() int {
	return c.n.key
}

// Card returns the card carried by the cursor's node: the queue head of the
// subtree's root.
func (c BattleCursor[C]) Card() C {
	return c.n.payload.card
}

// MinSecondaryGT finds, among the cards tied on this cursor's primary key,
// the one with the smallest secondary key > bound.
func (c BattleCursor[C]) MinSecondaryGT(bound int) (C, bool) {
	var zero C
	sn := c.n.payload.sub.lowestGT(bound)
	if sn == nil {
		return zero, false
	}
	return sn.payload.card, true
}

// MinSecondary finds the card with the absolute smallest secondary key among
// the cards tied on this cursor's primary key.
func (c BattleCursor[C]) MinSecondary() (C, bool) {
	var zero C
	sn := c.n.payload.sub.min()
	if sn == nil {
		return zero, false
	}
	return sn.payload.card, true
}
