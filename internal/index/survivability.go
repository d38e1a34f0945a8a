package index

// SurvivabilityIndex orders the health values of active cards. It answers
// pure existence and threshold questions and never tracks card identity:
// duplicate health values share one node with a counter.
type SurvivabilityIndex struct {
	t    tree[int] // payload is the duplicate count, always >= 1
	size int
}

// NewSurvivabilityIndex returns an empty index.
func NewSurvivabilityIndex() *SurvivabilityIndex {
	return &SurvivabilityIndex{}
}

// Empty reports whether the index holds no health values.
func (si *SurvivabilityIndex) Empty() bool {
	return si.t.empty()
}

// Len returns the number of values held, counting duplicates.
func (si *SurvivabilityIndex) Len() int {
	return si.size
}

// Insert records one card with the given health. An existing node for that
// health just bumps its counter.
func (si *SurvivabilityIndex) Insert(health int) {
	n, existed := si.t.insert(health)
	if existed {
		n.payload++
	} else {
		n.payload = 1
	}
	si.size++
}

// Remove drops one occurrence of the given health. The node is physically
// deleted only when its counter reaches zero. It returns false if the health
// value is not present, which correct callers never trigger.
func (si *SurvivabilityIndex) Remove(health int) bool {
	n := si.t.find(health)
	if n == nil {
		return false
	}
	if n.payload > 1 {
		n.payload--
	} else {
		si.t.removeNode(n)
	}
	si.size--
	return true
}

// AnyAbove reports whether any recorded health value is strictly greater
// than bound.
func (si *SurvivabilityIndex) AnyAbove(bound int) bool {
	n := si.t.max()
	return n != nil && n.key > bound
}
