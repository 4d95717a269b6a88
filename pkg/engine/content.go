package engine

import "time"

// Read returns the intersection of [offset, offset+count) with the file's
// current content.
//
// Reading at or past the end of the file returns an empty slice, not an
// error; that is a defined success behavior. The returned slice is a copy,
// so later writes do not alias into it.
func (e *Engine) Read(id NodeID, offset int64, count int) (data []byte, err error) {
	defer e.observe("Read", time.Now(), &err)

	n, err := e.resolveFile(id)
	if err != nil {
		return nil, err
	}
	if offset < 0 || count < 0 {
		return nil, &EngineError{Code: ErrInvalidArgument, Message: "negative read offset or count"}
	}

	if uint64(offset) >= n.size {
		return []byte{}, nil
	}

	available := n.size - uint64(offset)
	toRead := uint64(count)
	if toRead > available {
		toRead = available
	}

	out := make([]byte, toRead)
	copy(out, n.content[offset:uint64(offset)+toRead])
	return out, nil
}

// Write copies data into the file's content buffer at the given offset and
// returns the number of bytes written.
//
// If the write extends past the current size the buffer grows to the new
// size and any gap between the old size and the offset is zero-filled
// (a hole). Writing within existing bounds overwrites in place without
// resizing. Growth past the configured maximum file size fails with
// ErrNoSpace and leaves the file unchanged.
func (e *Engine) Write(id NodeID, offset int64, data []byte) (written int, err error) {
	defer e.observe("Write", time.Now(), &err)

	n, err := e.resolveFile(id)
	if err != nil {
		return 0, err
	}
	if offset < 0 {
		return 0, &EngineError{Code: ErrInvalidArgument, Message: "negative write offset"}
	}

	newEnd := uint64(offset) + uint64(len(data))
	if newEnd > n.size {
		if e.maxFileSize != 0 && newEnd > e.maxFileSize {
			return 0, &EngineError{Code: ErrNoSpace, Message: "write exceeds maximum file size"}
		}
		// Grow to the exact new size; make zero-fills the hole between the
		// old size and the write offset.
		grown := make([]byte, newEnd)
		copy(grown, n.content)
		n.content = grown
		n.size = newEnd
	}

	copy(n.content[offset:], data)
	return len(data), nil
}

// resolveFile resolves an identifier that must name a live regular file.
// Directories never have content; operating on one is a type error.
func (e *Engine) resolveFile(id NodeID) (*node, error) {
	n := e.table.get(id)
	if n == nil {
		return nil, &EngineError{Code: ErrNotFound, Message: "node not found"}
	}
	if n.typ == NodeTypeDirectory {
		return nil, &EngineError{Code: ErrIsDirectory, Message: "node is a directory"}
	}
	return n, nil
}
