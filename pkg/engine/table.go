package engine

// nodeTable is a fixed-capacity slot allocator producing stable numeric
// identities for filesystem objects.
//
// A slot is either nil (free) or owned by exactly one live node whose ID
// equals the slot index. Slot 0 is reserved and never handed out, so valid
// identifiers start at 1. Allocation scans for the lowest free slot, which
// keeps identifiers dense and makes recycling deterministic for tests.
//
// Exceeding the capacity is a normal, expected failure mode surfaced as
// ErrTableFull, not a bug.
type nodeTable struct {
	slots []*node
	live  int
}

func newNodeTable(capacity int) *nodeTable {
	return &nodeTable{
		slots: make([]*node, capacity),
	}
}

// capacity returns the fixed slot count, including the reserved slot 0.
func (t *nodeTable) capacity() int {
	return len(t.slots)
}

// liveCount returns the number of slots currently owned by live nodes.
func (t *nodeTable) liveCount() int {
	return t.live
}

// allocate claims the lowest free slot >= 1 and returns a zero-valued node
// owning it.
func (t *nodeTable) allocate() (*node, error) {
	for id := 1; id < len(t.slots); id++ {
		if t.slots[id] == nil {
			n := &node{
				id:    NodeID(id),
				nlink: 1,
			}
			t.slots[id] = n
			t.live++
			return n, nil
		}
	}
	return nil, &EngineError{
		Code:    ErrTableFull,
		Message: "node table is full",
	}
}

// install places a pre-built node at a specific slot. Used to pin the root
// node at the distinguished root identifier during Init.
func (t *nodeTable) install(n *node) {
	if t.slots[n.id] == nil {
		t.live++
	}
	t.slots[n.id] = n
}

// get resolves an identifier to its live node, or nil when the identifier
// is out of range or the slot is free.
func (t *nodeTable) get(id NodeID) *node {
	if int(id) >= len(t.slots) {
		return nil
	}
	return t.slots[id]
}

// free releases the slot so the identifier becomes reusable. The node's
// content buffer is dropped with it.
func (t *nodeTable) free(id NodeID) {
	if int(id) >= len(t.slots) || t.slots[id] == nil {
		return
	}
	t.slots[id] = nil
	t.live--
}

// reset frees every slot unconditionally.
func (t *nodeTable) reset() {
	clear(t.slots)
	t.live = 0
}
