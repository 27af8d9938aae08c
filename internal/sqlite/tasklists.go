// Task-list store for the SQLite driver.
package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/backlog/pkg/types"
)

type listStore struct {
	backend *Backend
}

var _ types.Store[types.TaskList] = (*listStore)(nil)

// Create inserts a new task-list record and returns the stored form read
// back from the database.
func (s *listStore) Create(list types.TaskList) (types.TaskList, error) {
	db, err := s.backend.handle()
	if err != nil {
		return types.TaskList{}, err
	}

	createdAt := time.Now().UTC().Format(time.RFC3339)
	_, err = db.Exec(
		"INSERT INTO tasklists (tasklist_id, name, created_at) VALUES (?, ?, ?)",
		list.ID.String(), list.Name, createdAt,
	)
	if err != nil {
		return types.TaskList{}, &types.BackendError{Op: "create tasklist", Err: err}
	}

	row := db.QueryRow(
		"SELECT tasklist_id, name FROM tasklists WHERE tasklist_id = ?",
		list.ID.String(),
	)
	stored, err := hydrateTaskList(row)
	if err != nil {
		if errors.Is(err, types.ErrInvalidID) {
			return types.TaskList{}, err
		}
		return types.TaskList{}, &types.BackendError{Op: "create tasklist", Err: err}
	}

	if err := s.backend.persistTable("tasklists"); err != nil {
		return types.TaskList{}, &types.BackendError{Op: "persist tasklists snapshot", Err: err}
	}
	return stored, nil
}

// Get fetches a task list by id. Returns a NotFoundError when no record
// exists.
func (s *listStore) Get(id uuid.UUID) (types.TaskList, error) {
	db, err := s.backend.handle()
	if err != nil {
		return types.TaskList{}, err
	}

	row := db.QueryRow(
		"SELECT tasklist_id, name FROM tasklists WHERE tasklist_id = ?",
		id.String(),
	)
	list, err := hydrateTaskList(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.TaskList{}, &types.NotFoundError{ItemType: "TaskList", ID: id}
		}
		if errors.Is(err, types.ErrInvalidID) {
			return types.TaskList{}, err
		}
		return types.TaskList{}, &types.BackendError{Op: "get tasklist", Err: err}
	}
	return list, nil
}

func hydrateTaskList(row rowScanner) (types.TaskList, error) {
	var idStr, name string
	if err := row.Scan(&idStr, &name); err != nil {
		return types.TaskList{}, err
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return types.TaskList{}, &types.InvalidIDError{ID: idStr}
	}
	return types.TaskList{Name: name, ID: id}, nil
}
