// UI-state store for the SQLite driver.
package sqlite

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/backlog/pkg/types"
)

type stateStore struct {
	backend *Backend
}

var _ types.Store[types.State] = (*stateStore)(nil)

// Create inserts a new state record and returns the stored form read back
// from the database.
func (s *stateStore) Create(state types.State) (types.State, error) {
	db, err := s.backend.handle()
	if err != nil {
		return types.State{}, err
	}

	visible := ""
	if state.VisibleBacklog != uuid.Nil {
		visible = state.VisibleBacklog.String()
	}
	_, err = db.Exec(
		"INSERT INTO state (state_id, visible_backlog) VALUES (?, NULLIF(?, ''))",
		state.ID.String(), visible,
	)
	if err != nil {
		return types.State{}, &types.BackendError{Op: "create state", Err: err}
	}

	row := db.QueryRow(
		"SELECT state_id, visible_backlog FROM state WHERE state_id = ?",
		state.ID.String(),
	)
	stored, err := hydrateState(row)
	if err != nil {
		if errors.Is(err, types.ErrInvalidID) {
			return types.State{}, err
		}
		return types.State{}, &types.BackendError{Op: "create state", Err: err}
	}

	if err := s.backend.persistTable("state"); err != nil {
		return types.State{}, &types.BackendError{Op: "persist state snapshot", Err: err}
	}
	return stored, nil
}

// Get fetches a state record by id.
func (s *stateStore) Get(id uuid.UUID) (types.State, error) {
	db, err := s.backend.handle()
	if err != nil {
		return types.State{}, err
	}

	row := db.QueryRow(
		"SELECT state_id, visible_backlog FROM state WHERE state_id = ?",
		id.String(),
	)
	state, err := hydrateState(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.State{}, &types.NotFoundError{ItemType: "State", ID: id}
		}
		if errors.Is(err, types.ErrInvalidID) {
			return types.State{}, err
		}
		return types.State{}, &types.BackendError{Op: "get state", Err: err}
	}
	return state, nil
}

func hydrateState(row rowScanner) (types.State, error) {
	var idStr string
	var visible sql.NullString
	if err := row.Scan(&idStr, &visible); err != nil {
		return types.State{}, err
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return types.State{}, &types.InvalidIDError{ID: idStr}
	}
	state := types.State{ID: id}
	if visible.Valid && visible.String != "" {
		backlog, err := uuid.Parse(visible.String)
		if err != nil {
			return types.State{}, &types.InvalidIDError{ID: visible.String}
		}
		state.VisibleBacklog = backlog
	}
	return state, nil
}
