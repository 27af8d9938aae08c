// Task store for the SQLite driver.
package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/backlog/pkg/types"
)

type taskStore struct {
	backend *Backend
}

var _ types.Store[types.Task] = (*taskStore)(nil)

// rowScanner abstracts *sql.Row and *sql.Rows for the hydrate helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

// Create inserts a new task record and returns the stored form read back
// from the database, so callers can verify it against their intent.
func (s *taskStore) Create(task types.Task) (types.Task, error) {
	db, err := s.backend.handle()
	if err != nil {
		return types.Task{}, err
	}

	createdAt := time.Now().UTC().Format(time.RFC3339)
	_, err = db.Exec(
		"INSERT INTO tasks (task_id, name, description, created_at) VALUES (?, ?, NULLIF(?, ''), ?)",
		task.ID.String(), task.Name, task.Description, createdAt,
	)
	if err != nil {
		return types.Task{}, &types.BackendError{Op: "create task", Err: err}
	}

	row := db.QueryRow(
		"SELECT task_id, name, description FROM tasks WHERE task_id = ?",
		task.ID.String(),
	)
	stored, err := hydrateTask(row)
	if err != nil {
		if errors.Is(err, types.ErrInvalidID) {
			return types.Task{}, err
		}
		return types.Task{}, &types.BackendError{Op: "create task", Err: err}
	}

	if err := s.backend.persistTable("tasks"); err != nil {
		return types.Task{}, &types.BackendError{Op: "persist tasks snapshot", Err: err}
	}
	return stored, nil
}

// Get fetches a task by id. Returns a NotFoundError when no record exists.
func (s *taskStore) Get(id uuid.UUID) (types.Task, error) {
	db, err := s.backend.handle()
	if err != nil {
		return types.Task{}, err
	}

	row := db.QueryRow(
		"SELECT task_id, name, description FROM tasks WHERE task_id = ?",
		id.String(),
	)
	task, err := hydrateTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Task{}, &types.NotFoundError{ItemType: "Task", ID: id}
		}
		if errors.Is(err, types.ErrInvalidID) {
			return types.Task{}, err
		}
		return types.Task{}, &types.BackendError{Op: "get task", Err: err}
	}
	return task, nil
}

// hydrateTask maps a tasks row back to the entity. A stored identifier
// that does not parse as a UUID surfaces as InvalidIDError.
func hydrateTask(row rowScanner) (types.Task, error) {
	var idStr, name string
	var description sql.NullString
	if err := row.Scan(&idStr, &name, &description); err != nil {
		return types.Task{}, err
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return types.Task{}, &types.InvalidIDError{ID: idStr}
	}
	return types.Task{
		Name:        name,
		ID:          id,
		Description: description.String,
	}, nil
}
