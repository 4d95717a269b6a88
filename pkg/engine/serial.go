package engine

import "sync"

// SerialEngine wraps an Engine with one exclusive lock per instance so
// concurrent callers are serialized before reaching the entry graph.
//
// This is the adapter-side mutual exclusion the core engine deliberately
// does not provide. Adapters that need finer-grained locking (for example
// per-directory) should implement it themselves and call the Engine
// directly.
type SerialEngine struct {
	mu sync.Mutex
	e  *Engine
}

// NewSerial wraps an engine with an exclusive lock.
func NewSerial(e *Engine) *SerialEngine {
	return &SerialEngine{e: e}
}

// RootID returns the distinguished root identifier.
func (s *SerialEngine) RootID() NodeID {
	return s.e.RootID()
}

// Init resets the engine under the lock.
func (s *SerialEngine) Init() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.e.Init()
}

// Destroy releases every remaining node under the lock.
func (s *SerialEngine) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.e.Destroy()
}

// Getattr calls Engine.Getattr under the lock.
func (s *SerialEngine) Getattr(id NodeID) (Stat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.Getattr(id)
}

// Lookup calls Engine.Lookup under the lock.
func (s *SerialEngine) Lookup(parent NodeID, name string) (Stat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.Lookup(parent, name)
}

// Create calls Engine.Create under the lock.
func (s *SerialEngine) Create(parent NodeID, name string, typ NodeType, mode uint32) (Stat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.Create(parent, name, typ, mode)
}

// Link calls Engine.Link under the lock.
func (s *SerialEngine) Link(target NodeID, parent NodeID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.Link(target, parent, name)
}

// Unlink calls Engine.Unlink under the lock.
func (s *SerialEngine) Unlink(parent NodeID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.Unlink(parent, name)
}

// Rmdir calls Engine.Rmdir under the lock.
func (s *SerialEngine) Rmdir(parent NodeID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.Rmdir(parent, name)
}

// Read calls Engine.Read under the lock.
func (s *SerialEngine) Read(id NodeID, offset int64, count int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.Read(id, offset, count)
}

// Write calls Engine.Write under the lock.
func (s *SerialEngine) Write(id NodeID, offset int64, data []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.Write(id, offset, data)
}

// Iterate calls Engine.Iterate under the lock. The consumer runs with the
// lock held; it must not call back into the same SerialEngine.
func (s *SerialEngine) Iterate(id NodeID, offset int64, fn IterFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.Iterate(id, offset, fn)
}

// ReadDir calls Engine.ReadDir under the lock.
func (s *SerialEngine) ReadDir(id NodeID, offset int64, count int) ([]DirEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.ReadDir(id, offset, count)
}

// Stats calls Engine.Stats under the lock.
func (s *SerialEngine) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.Stats()
}
