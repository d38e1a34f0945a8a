package index

import (
	llq "github.com/emirpasic/gods/queues/linkedlistqueue"
)

// RevivalIndex orders discarded cards by the health they still need to come
// back. Cards tied on missing health share one node and leave it in arrival
// order, the same FIFO policy as a battle subtree but with no secondary key
// layer above it.
type RevivalIndex[C any] struct {
	t    tree[*llq.Queue]
	size int
}

// NewRevivalIndex returns an empty index.
func NewRevivalIndex[C any]() *RevivalIndex[C] {
	return &RevivalIndex[C]{}
}

// Empty reports whether the index holds no cards.
func (ri *RevivalIndex[C]) Empty() bool {
	return ri.t.empty()
}

// Len returns the number of cards held, counting duplicates.
func (ri *RevivalIndex[C]) Len() int {
	return ri.size
}

// Insert files a card under its missing-health value.
func (ri *RevivalIndex[C]) Insert(missing int, card C) {
	n, existed := ri.t.insert(missing)
	if !existed {
		n.payload = llq.New()
	}
	n.payload.Enqueue(card)
	ri.size++
}

// PopBestFor removes and returns the best revival candidate for the given
// heal budget: the card with the largest missing health still coverable in
// full, or, when no card can be fully revived, the card with the smallest
// missing health so the remaining heal is spent on a partial revival. The
// card's missing-health key is returned alongside it. The last result is
// false on an empty index.
func (ri *RevivalIndex[C]) PopBestFor(heal int) (C, int, bool) {
	var zero C
	n := ri.t.highestLE(heal)
	if n == nil {
		n = ri.t.min()
	}
	if n == nil {
		return zero, 0, false
	}

	missing := n.key
	v, _ := n.payload.Dequeue()
	card := v.(C)
	if n.payload.Empty() {
		ri.t.removeNode(n)
	}
	ri.size--
	return card, missing, true
}
