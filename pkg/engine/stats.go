package engine

// Stats contains dynamic engine occupancy statistics, the in-memory
// equivalent of a filesystem's inode and byte usage counters.
type Stats struct {
	// Capacity is the fixed node table size, including the reserved slot 0
	Capacity int

	// LiveNodes is the number of currently allocated nodes
	LiveNodes int

	// FreeSlots is the number of identifiers still available
	FreeSlots int

	// UsedBytes is the total logical size of all regular-file content
	UsedBytes uint64
}

// Stats reports current node table occupancy and content usage.
//
// The byte count is computed by scanning live slots; with the bounded table
// sizes the engine supports, this stays cheap enough for periodic metric
// refreshes.
func (e *Engine) Stats() Stats {
	st := Stats{
		Capacity:  e.table.capacity(),
		LiveNodes: e.table.liveCount(),
	}
	// Slot 0 is reserved, so it never counts as free.
	st.FreeSlots = st.Capacity - 1 - st.LiveNodes

	for _, n := range e.table.slots {
		if n != nil && n.typ == NodeTypeRegular {
			st.UsedBytes += n.size
		}
	}

	if e.metrics != nil {
		e.metrics.SetUsedBytes(st.UsedBytes)
		e.metrics.SetLiveNodes(st.LiveNodes)
	}

	return st
}
