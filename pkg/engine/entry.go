package engine

import (
	"slices"
	"time"
)

// Lookup scans the parent directory's child chain for an exact name match
// and returns the named node's stat.
func (e *Engine) Lookup(parent NodeID, name string) (st Stat, err error) {
	defer e.observe("Lookup", time.Now(), &err)

	dir, err := e.resolveDir(parent)
	if err != nil {
		return Stat{}, err
	}

	idx := dir.findChild(name)
	if idx < 0 {
		return Stat{}, &EngineError{Code: ErrNotFound, Message: "entry not found", Name: name}
	}

	return statOf(e.table.get(dir.children[idx].node)), nil
}

// Create allocates a new node of the given type and links it into the
// parent directory under the given name.
//
// New entries are inserted at the head of the child chain, so the most
// recently created entry lists first. Directories are born with an empty
// child list and their parent recorded; regular files are born empty.
//
// All validation happens before the node slot is claimed, so a failed
// Create (including ErrTableFull) leaves no partial state behind.
func (e *Engine) Create(parent NodeID, name string, typ NodeType, mode uint32) (st Stat, err error) {
	defer e.observe("Create", time.Now(), &err)

	dir, err := e.resolveDir(parent)
	if err != nil {
		return Stat{}, err
	}
	if err := e.checkName(name); err != nil {
		return Stat{}, err
	}
	if dir.findChild(name) >= 0 {
		return Stat{}, &EngineError{Code: ErrAlreadyExists, Message: "entry already exists", Name: name}
	}

	n, err := e.table.allocate()
	if err != nil {
		return Stat{}, err
	}
	n.typ = typ
	n.mode = mode
	if typ == NodeTypeDirectory {
		n.parent = parent
	}

	dir.children = slices.Insert(dir.children, 0, dirent{name: name, node: n.id})
	e.observeOccupancy()

	return statOf(n), nil
}

// Link creates an additional entry for an existing regular-file node under
// a (possibly different) directory, incrementing its link count.
//
// Directories may never be the target; allowing that would let the tree
// form cycles.
func (e *Engine) Link(target NodeID, parent NodeID, name string) (err error) {
	defer e.observe("Link", time.Now(), &err)

	tn := e.table.get(target)
	if tn == nil {
		return &EngineError{Code: ErrNotFound, Message: "link target not found"}
	}
	if tn.typ == NodeTypeDirectory {
		return &EngineError{Code: ErrIsDirectory, Message: "cannot hardlink a directory"}
	}

	dir, err := e.resolveDir(parent)
	if err != nil {
		return err
	}
	if err := e.checkName(name); err != nil {
		return err
	}
	if dir.findChild(name) >= 0 {
		return &EngineError{Code: ErrAlreadyExists, Message: "entry already exists", Name: name}
	}

	dir.children = slices.Insert(dir.children, 0, dirent{name: name, node: target})
	tn.nlink++

	return nil
}

// Unlink removes the named entry from the parent directory and decrements
// the target's link count. When the count reaches zero the node and its
// content buffer are deallocated and the identifier becomes reusable.
//
// Unlink refuses directories; use Rmdir.
func (e *Engine) Unlink(parent NodeID, name string) (err error) {
	defer e.observe("Unlink", time.Now(), &err)

	dir, err := e.resolveDir(parent)
	if err != nil {
		return err
	}

	idx := dir.findChild(name)
	if idx < 0 {
		return &EngineError{Code: ErrNotFound, Message: "entry not found", Name: name}
	}

	tn := e.table.get(dir.children[idx].node)
	if tn.typ == NodeTypeDirectory {
		return &EngineError{Code: ErrIsDirectory, Message: "cannot unlink a directory", Name: name}
	}

	dir.children = slices.Delete(dir.children, idx, idx+1)
	tn.nlink--
	if tn.nlink == 0 {
		e.table.free(tn.id)
	}
	e.observeOccupancy()

	return nil
}

// Rmdir removes the named directory entry, provided the target directory's
// own child chain is empty. The directory node is deallocated
// unconditionally on success; directories always have link count 1.
func (e *Engine) Rmdir(parent NodeID, name string) (err error) {
	defer e.observe("Rmdir", time.Now(), &err)

	dir, err := e.resolveDir(parent)
	if err != nil {
		return err
	}

	idx := dir.findChild(name)
	if idx < 0 {
		return &EngineError{Code: ErrNotFound, Message: "entry not found", Name: name}
	}

	tn := e.table.get(dir.children[idx].node)
	if tn.typ != NodeTypeDirectory {
		return &EngineError{Code: ErrNotDirectory, Message: "not a directory", Name: name}
	}
	if len(tn.children) > 0 {
		return &EngineError{Code: ErrNotEmpty, Message: "directory not empty", Name: name}
	}

	dir.children = slices.Delete(dir.children, idx, idx+1)
	e.table.free(tn.id)
	e.observeOccupancy()

	return nil
}
