package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, e *Engine, id NodeID, offset int64) []DirEntry {
	t.Helper()

	var entries []DirEntry
	err := e.Iterate(id, offset, func(entry DirEntry) bool {
		entries = append(entries, entry)
		return true
	})
	require.NoError(t, err)
	return entries
}

func TestIterateFreshDirectory(t *testing.T) {
	e := newTestEngine(t)

	dir, err := e.Create(e.RootID(), "dir", NodeTypeDirectory, 0o755)
	require.NoError(t, err)

	entries := collect(t, e, dir.ID, 0)
	require.Len(t, entries, 2)

	assert.Equal(t, ".", entries[0].Name)
	assert.Equal(t, dir.ID, entries[0].ID)
	assert.Equal(t, int64(1), entries[0].NextOffset)

	assert.Equal(t, "..", entries[1].Name)
	assert.Equal(t, e.RootID(), entries[1].ID)
	assert.Equal(t, int64(2), entries[1].NextOffset)
}

func TestIterateRootParentIsItself(t *testing.T) {
	e := newTestEngine(t)

	entries := collect(t, e, e.RootID(), 0)
	require.Len(t, entries, 2)
	assert.Equal(t, e.RootID(), entries[0].ID)
	assert.Equal(t, e.RootID(), entries[1].ID)
}

func TestIterateChainOrder(t *testing.T) {
	e := newTestEngine(t)

	for _, name := range []string{"first", "second", "third"} {
		_, err := e.Create(e.RootID(), name, NodeTypeRegular, 0o644)
		require.NoError(t, err)
	}

	entries := collect(t, e, e.RootID(), 0)
	require.Len(t, entries, 5)

	// New entries go to the head of the chain, so listing order is
	// reverse creation order.
	var names []string
	for _, entry := range entries[2:] {
		names = append(names, entry.Name)
	}
	assert.Equal(t, []string{"third", "second", "first"}, names)

	for i, entry := range entries {
		assert.Equal(t, int64(i+1), entry.NextOffset)
	}
}

func TestIterateResume(t *testing.T) {
	e := newTestEngine(t)

	for _, name := range []string{"a", "b", "c", "d"} {
		_, err := e.Create(e.RootID(), name, NodeTypeRegular, 0o644)
		require.NoError(t, err)
	}

	full := collect(t, e, e.RootID(), 0)

	// Walking one entry at a time via NextOffset sees the same sequence.
	var resumed []DirEntry
	offset := int64(0)
	for {
		var got *DirEntry
		err := e.Iterate(e.RootID(), offset, func(entry DirEntry) bool {
			got = &entry
			return false
		})
		require.NoError(t, err)
		if got == nil {
			break
		}
		resumed = append(resumed, *got)
		offset = got.NextOffset
	}

	assert.Equal(t, full, resumed)
}

func TestIterateEarlyStop(t *testing.T) {
	e := newTestEngine(t)

	for _, name := range []string{"a", "b", "c"} {
		_, err := e.Create(e.RootID(), name, NodeTypeRegular, 0o644)
		require.NoError(t, err)
	}

	calls := 0
	err := e.Iterate(e.RootID(), 0, func(DirEntry) bool {
		calls++
		return calls < 2
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestIteratePastEnd(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Create(e.RootID(), "only", NodeTypeRegular, 0o644)
	require.NoError(t, err)

	// Offsets at and beyond the end terminate with no entries.
	assert.Empty(t, collect(t, e, e.RootID(), 3))
	assert.Empty(t, collect(t, e, e.RootID(), 100))
}

func TestIterateErrors(t *testing.T) {
	e := newTestEngine(t)

	err := e.Iterate(999, 0, func(DirEntry) bool { return true })
	assert.True(t, IsCode(err, ErrNotFound))

	file, err := e.Create(e.RootID(), "f", NodeTypeRegular, 0o644)
	require.NoError(t, err)
	err = e.Iterate(file.ID, 0, func(DirEntry) bool { return true })
	assert.True(t, IsCode(err, ErrNotDirectory))

	err = e.Iterate(e.RootID(), -1, func(DirEntry) bool { return true })
	assert.True(t, IsCode(err, ErrInvalidArgument))
}

func TestIterateEntryTypes(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Create(e.RootID(), "d", NodeTypeDirectory, 0o755)
	require.NoError(t, err)
	_, err = e.Create(e.RootID(), "f", NodeTypeRegular, 0o644)
	require.NoError(t, err)

	byName := map[string]DirEntry{}
	for _, entry := range collect(t, e, e.RootID(), 0) {
		byName[entry.Name] = entry
	}

	assert.Equal(t, NodeTypeDirectory, byName["d"].Type)
	assert.Equal(t, NodeTypeRegular, byName["f"].Type)
	assert.Equal(t, NodeTypeDirectory, byName["."].Type)
	assert.Equal(t, NodeTypeDirectory, byName[".."].Type)
}

func TestReadDirPagination(t *testing.T) {
	e := newTestEngine(t)

	for _, name := range []string{"a", "b", "c", "d", "e"} {
		_, err := e.Create(e.RootID(), name, NodeTypeRegular, 0o644)
		require.NoError(t, err)
	}

	full, eof, err := e.ReadDir(e.RootID(), 0, 0)
	require.NoError(t, err)
	assert.True(t, eof)
	require.Len(t, full, 7)

	// Paging three at a time reassembles the same listing.
	var paged []DirEntry
	offset := int64(0)
	for {
		batch, eof, err := e.ReadDir(e.RootID(), offset, 3)
		require.NoError(t, err)
		paged = append(paged, batch...)
		if eof || len(batch) == 0 {
			break
		}
		offset = batch[len(batch)-1].NextOffset
	}

	assert.Equal(t, full, paged)
}

func TestReadDirEmptyPastEnd(t *testing.T) {
	e := newTestEngine(t)

	entries, eof, err := e.ReadDir(e.RootID(), 50, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.True(t, eof)
}
