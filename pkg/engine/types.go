package engine

// NodeID is the stable numeric identifier of a filesystem object.
//
// Identifiers are unique for the object's lifetime and are reused only
// after the object is deallocated. ID 0 is reserved and never allocated.
type NodeID uint32

// NodeType is the type tag of a filesystem object.
type NodeType int

const (
	// NodeTypeRegular is a regular file with an owned content buffer
	NodeTypeRegular NodeType = iota

	// NodeTypeDirectory is a directory owning a named child list
	NodeTypeDirectory
)

// String returns a human-readable type name for logging.
func (t NodeType) String() string {
	switch t {
	case NodeTypeRegular:
		return "regular"
	case NodeTypeDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// Stat describes a live node: its identifier, type, permission bits and
// size. Size is meaningful for regular files only; directories report 0.
type Stat struct {
	// ID is the node's stable identifier
	ID NodeID

	// Type is the node's type tag
	Type NodeType

	// Mode holds the Unix permission bits (lower 12 bits)
	Mode uint32

	// Size is the logical content size in bytes (regular files)
	Size uint64
}

// DirEntry is one yielded element of a directory listing.
type DirEntry struct {
	// Name is the entry name ("." and ".." for the synthetic entries)
	Name string

	// ID is the identifier of the node the entry names
	ID NodeID

	// Type is the named node's type tag
	Type NodeType

	// NextOffset is the offset cursor to pass to resume iteration
	// immediately after this entry
	NextOffset int64
}

// IterFunc consumes one directory entry during iteration.
//
// Returning false stops the iteration immediately; the engine does not
// advance past the declined entry.
type IterFunc func(entry DirEntry) bool

// dirent is a named edge from a directory to a node. Entries live in the
// owning directory's child list; index 0 is the chain head.
type dirent struct {
	name string
	node NodeID
}

// node is one allocated filesystem object.
//
// Directory nodes use parent and children; the root directory is its own
// parent, which terminates upward traversal. Regular files use nlink,
// size and content.
type node struct {
	id   NodeID
	typ  NodeType
	mode uint32

	// nlink counts the directory entries referencing this node.
	// Directories always have exactly one.
	nlink uint32

	size    uint64
	content []byte

	parent   NodeID
	children []dirent
}

// findChild returns the index of the named entry in the child list,
// or -1 when absent.
func (n *node) findChild(name string) int {
	for i := range n.children {
		if n.children[i].name == name {
			return i
		}
	}
	return -1
}
