package engine

import "time"

// Iterate enumerates a directory's logical contents starting at the given
// offset cursor, delivering each entry to fn until fn returns false or the
// chain ends.
//
// The sequence is defined purely by chain order and the numeric offset:
//
//	offset 0  yields "." (the directory itself)
//	offset 1  yields ".." (its parent; the root's parent is itself)
//	offset>=2 yields the (offset-2)-th entry of the child chain,
//	          chain head first
//
// Each yielded DirEntry carries the NextOffset to resume from, so a caller
// can enumerate across separate calls without retaining engine state.
// Iterating past the end of the chain terminates cleanly.
//
// Because position is defined by chain order alone, a structural mutation
// (Create/Unlink/Rmdir) between two resumed calls can cause entries to be
// skipped or repeated. That is an accepted, documented consistency
// limitation of offset-addressed listing, not a bug the engine masks.
func (e *Engine) Iterate(id NodeID, offset int64, fn IterFunc) (err error) {
	defer e.observe("Iterate", time.Now(), &err)

	dir, err := e.resolveDir(id)
	if err != nil {
		return err
	}
	if offset < 0 {
		return &EngineError{Code: ErrInvalidArgument, Message: "negative iteration offset"}
	}

	if offset == 0 {
		if !fn(DirEntry{Name: ".", ID: dir.id, Type: NodeTypeDirectory, NextOffset: 1}) {
			return nil
		}
		offset = 1
	}
	if offset == 1 {
		parent := e.table.get(dir.parent)
		if !fn(DirEntry{Name: "..", ID: parent.id, Type: NodeTypeDirectory, NextOffset: 2}) {
			return nil
		}
		offset = 2
	}

	for i := offset - 2; i < int64(len(dir.children)); i++ {
		child := e.table.get(dir.children[i].node)
		entry := DirEntry{
			Name:       dir.children[i].name,
			ID:         child.id,
			Type:       child.typ,
			NextOffset: i + 3,
		}
		if !fn(entry) {
			return nil
		}
	}

	return nil
}

// ReadDir is a batched convenience over Iterate.
//
// It collects up to count entries starting at the given offset cursor and
// reports whether the end of the directory was reached. Resuming with the
// last entry's NextOffset continues the listing; the consistency caveats of
// Iterate apply unchanged. count <= 0 means no limit.
func (e *Engine) ReadDir(id NodeID, offset int64, count int) (entries []DirEntry, eof bool, err error) {
	err = e.Iterate(id, offset, func(entry DirEntry) bool {
		if count > 0 && len(entries) == count {
			return false
		}
		entries = append(entries, entry)
		return true
	})
	if err != nil {
		return nil, false, err
	}

	// The consumer stopping early is the only way to leave the chain
	// unfinished, so a batch shorter than count means we drained it.
	eof = count <= 0 || len(entries) < count
	return entries, eof, nil
}
