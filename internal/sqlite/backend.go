// Package sqlite implements the Backlog storage driver using SQLite as the
// query engine and JSONL snapshot files as the source of truth. The
// database file is disposable: it is rebuilt from the snapshots on every
// Attach, and every committed write is persisted back to the snapshots.
package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/backlog/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// Backend implements types.Driver on top of a SQLite database.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

var _ types.Driver = (*Backend)(nil)

// NewBackend creates a new SQLite backend instance. The backend is not
// attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the backend with the given configuration. Creates
// DataDir if it does not exist, rebuilds the SQLite schema, and loads the
// JSONL snapshots. Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}
	config.DataDir = dataDir

	// The snapshots are the source of truth, so any stale database file is
	// discarded and rebuilt.
	dbPath := filepath.Join(dataDir, "backlog.db")
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return err
	}

	if err := loadSnapshots(db, dataDir); err != nil {
		db.Close()
		return fmt.Errorf("load snapshots: %w", err)
	}

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach releases the SQLite connection. After Detach, operations on the
// stores return ErrDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

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

// handle returns the live database handle, or ErrDetached.
func (b *Backend) handle() (*sql.DB, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrDetached
	}
	return b.db, nil
}
