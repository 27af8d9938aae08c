// Package memory implements an ephemeral in-memory Backlog storage driver
// with the same contracts as the SQLite driver. Nothing survives Detach;
// the driver exists for throwaway runs and tests.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/backlog/pkg/types"
)

// Backend implements types.Driver over plain maps.
type Backend struct {
	mu        sync.RWMutex
	attached  bool
	tasks     map[uuid.UUID]types.Task
	tasklists map[uuid.UUID]types.TaskList
	states    map[uuid.UUID]types.State
	contains  []containsRow
}

// containsRow is one stored tasklist -> task membership.
type containsRow struct {
	list      uuid.UUID
	task      uuid.UUID
	sortOrder string
}

var _ types.Driver = (*Backend)(nil)

// NewBackend creates a new in-memory backend instance. The backend is not
// attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the in-memory tables. DataDir is ignored. Returns
// ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	b.tasks = make(map[uuid.UUID]types.Task)
	b.tasklists = make(map[uuid.UUID]types.TaskList)
	b.states = make(map[uuid.UUID]types.State)
	b.contains = nil
	b.attached = true
	return nil
}

// Detach discards all stored entities. Idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tasks = nil
	b.tasklists = nil
	b.states = nil
	b.contains = nil
	b.attached = false
	return nil
}

// Tasks returns the task store.
func (b *Backend) Tasks() types.Store[types.Task] {
	return &taskStore{backend: b}
}

// TaskLists returns the task-list store.
func (b *Backend) TaskLists() types.Store[types.TaskList] {
	return &listStore{backend: b}
}

// States returns the UI-state store.
func (b *Backend) States() types.Store[types.State] {
	return &stateStore{backend: b}
}

// Backlog returns the list-contains-task relationship store.
func (b *Backend) Backlog() types.Relate[types.TaskList, types.Task] {
	return &containsStore{backend: b}
}
