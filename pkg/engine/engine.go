// Package engine implements an in-memory hierarchical filesystem engine:
// a tree of named entries (directories and regular files) addressable by a
// stable numeric identifier, supporting creation, lookup, hardlinking,
// deletion, content read/write, and resumable directory listing.
//
// The engine is the computational core only. Everything that adapts it to
// an operating-system filesystem interface (mount plumbing, buffer copying,
// errno translation) lives on the adapter's side of the operation surface.
//
// # Concurrency
//
// An Engine performs no internal synchronization and no operation suspends.
// Callers must either invoke operations strictly sequentially or provide
// external mutual exclusion; NewSerial wraps an Engine with the
// one-exclusive-lock-per-instance pattern for adapters that need it.
// Concurrent unsynchronized mutation corrupts the entry chains.
package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/corefs/ramfs/internal/logger"
	"github.com/corefs/ramfs/pkg/metrics"
)

// Default engine limits. Capacity counts table slots including the reserved
// slot 0, so the usable identifier range is [1, capacity).
const (
	DefaultCapacity    = 1024
	DefaultRootID      = NodeID(1000)
	DefaultRootMode    = 0o755
	DefaultMaxNameLen  = 255
	DefaultMaxFileSize = uint64(1 << 30) // 1 GiB
)

// Config contains configuration for creating an Engine.
type Config struct {
	// Capacity is the fixed node table size. The table never grows;
	// exhausting it surfaces ErrTableFull to callers.
	Capacity int

	// RootID is the distinguished root identifier, agreed between engine
	// and adapter at initialization time. Must be below Capacity.
	RootID NodeID

	// RootMode holds the permission bits of the root directory.
	RootMode uint32

	// MaxNameLen is the maximum entry name length in bytes.
	MaxNameLen int

	// MaxFileSize bounds content buffer growth. A write extending a file
	// past this limit fails with ErrNoSpace. 0 means unlimited.
	MaxFileSize uint64

	// Metrics receives per-operation observations. nil disables metrics
	// collection with zero overhead.
	Metrics metrics.EngineMetrics
}

// Engine owns a node table and the entry tree rooted at the distinguished
// root identifier. Multiple independent engines can coexist in one process;
// there is no shared global state.
type Engine struct {
	instance uuid.UUID

	table       *nodeTable
	rootID      NodeID
	rootMode    uint32
	maxNameLen  int
	maxFileSize uint64

	metrics metrics.EngineMetrics
}

// New creates an engine and initializes it (Init is implied).
//
// Zero-valued limits fall back to the package defaults; a Capacity that
// cannot hold the root slot is a configuration error.
func New(cfg Config) (*Engine, error) {
	if cfg.Capacity == 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.RootID == 0 {
		cfg.RootID = DefaultRootID
	}
	if cfg.RootMode == 0 {
		cfg.RootMode = DefaultRootMode
	}
	if cfg.MaxNameLen == 0 {
		cfg.MaxNameLen = DefaultMaxNameLen
	}

	if cfg.Capacity < 2 {
		return nil, fmt.Errorf("engine capacity %d is too small", cfg.Capacity)
	}
	if int(cfg.RootID) >= cfg.Capacity {
		return nil, fmt.Errorf("root id %d does not fit in capacity %d", cfg.RootID, cfg.Capacity)
	}

	e := &Engine{
		instance:    uuid.New(),
		table:       newNodeTable(cfg.Capacity),
		rootID:      cfg.RootID,
		rootMode:    cfg.RootMode,
		maxNameLen:  cfg.MaxNameLen,
		maxFileSize: cfg.MaxFileSize,
		metrics:     cfg.Metrics,
	}
	e.Init()

	return e, nil
}

// Instance returns the engine's unique instance identifier, used to tell
// independent engines apart in logs and metrics.
func (e *Engine) Instance() uuid.UUID {
	return e.instance
}

// RootID returns the distinguished root identifier.
func (e *Engine) RootID() NodeID {
	return e.rootID
}

// Init resets the node table and installs the root directory.
//
// The root is its own parent, the fixed point terminating upward traversal.
// Init on a live engine discards the entire tree, equivalent to Destroy
// followed by a fresh start.
func (e *Engine) Init() {
	e.table.reset()
	e.table.install(&node{
		id:     e.rootID,
		typ:    NodeTypeDirectory,
		mode:   e.rootMode,
		nlink:  1,
		parent: e.rootID,
	})
	e.observeOccupancy()
	logger.Debug("engine %s initialized: capacity=%d root=%d", e.instance, e.table.capacity(), e.rootID)
}

// Destroy releases every remaining node and its content unconditionally.
//
// The engine is unusable afterwards until Init is called again.
func (e *Engine) Destroy() {
	e.table.reset()
	e.observeOccupancy()
	logger.Debug("engine %s destroyed", e.instance)
}

// Getattr returns the identifier, type, mode and size of any live node.
func (e *Engine) Getattr(id NodeID) (st Stat, err error) {
	defer e.observe("Getattr", time.Now(), &err)

	n := e.table.get(id)
	if n == nil {
		return Stat{}, &EngineError{Code: ErrNotFound, Message: "node not found"}
	}
	return statOf(n), nil
}

// statOf builds the caller-facing stat for a node.
func statOf(n *node) Stat {
	return Stat{
		ID:   n.id,
		Type: n.typ,
		Mode: n.mode,
		Size: n.size,
	}
}

// resolveDir resolves an identifier that must name a live directory.
func (e *Engine) resolveDir(id NodeID) (*node, error) {
	n := e.table.get(id)
	if n == nil {
		return nil, &EngineError{Code: ErrNotFound, Message: "directory not found"}
	}
	if n.typ != NodeTypeDirectory {
		return nil, &EngineError{Code: ErrNotDirectory, Message: "not a directory"}
	}
	return n, nil
}

// checkName validates an entry name against the configured limits.
func (e *Engine) checkName(name string) error {
	if name == "" || name == "." || name == ".." {
		return &EngineError{Code: ErrInvalidArgument, Message: "invalid entry name", Name: name}
	}
	if len(name) > e.maxNameLen {
		return &EngineError{Code: ErrNameTooLong, Message: "entry name too long", Name: name}
	}
	return nil
}

// observe reports one completed operation to the metrics sink, if any.
func (e *Engine) observe(op string, start time.Time, errp *error) {
	if e.metrics == nil {
		return
	}
	e.metrics.RecordOperation(op, time.Since(start), *errp)
}

// observeOccupancy refreshes the node table occupancy gauges.
func (e *Engine) observeOccupancy() {
	if e.metrics == nil {
		return
	}
	e.metrics.SetLiveNodes(e.table.liveCount())
}
