// Contains relationship store for the SQLite driver: tasklist -> task.
package sqlite

import (
	"database/sql"
	"iter"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/backlog/pkg/types"
)

type containsStore struct {
	backend *Backend
}

var _ types.Relate[types.TaskList, types.Task] = (*containsStore)(nil)

// CreateLinkedItem persists the right-hand task and its membership link in
// one transaction, so a failed link never leaves an orphaned task behind.
// Returns a relationship reflecting the stored state of both sides.
func (s *containsStore) CreateLinkedItem(link types.Contains[types.TaskList, types.Task]) (types.Contains[types.TaskList, types.Task], error) {
	var zero types.Contains[types.TaskList, types.Task]

	db, err := s.backend.handle()
	if err != nil {
		return zero, err
	}

	list, task, err := link.Resolve()
	if err != nil {
		return zero, err
	}

	// The left side is only referenced, never created here; a missing list
	// is a NotFoundError the caller can branch on.
	storedList, err := (&listStore{backend: s.backend}).Get(list.ID)
	if err != nil {
		return zero, err
	}

	tx, err := db.Begin()
	if err != nil {
		return zero, &types.BackendError{Op: "link task", Err: err}
	}
	defer tx.Rollback()

	createdAt := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(
		"INSERT INTO tasks (task_id, name, description, created_at) VALUES (?, ?, NULLIF(?, ''), ?)",
		task.ID.String(), task.Name, task.Description, createdAt,
	)
	if err != nil {
		return zero, &types.BackendError{Op: "link task", Err: err}
	}

	sortOrder := link.SortOrder
	if sortOrder == "" {
		sortOrder = types.DefaultSortOrder
	}
	_, err = tx.Exec(
		"INSERT INTO contains (link_id, tasklist_id, task_id, sortorder, created_at) VALUES (?, ?, ?, ?, ?)",
		types.NewID().String(), list.ID.String(), task.ID.String(), sortOrder, createdAt,
	)
	if err != nil {
		return zero, &types.BackendError{Op: "link task", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return zero, &types.BackendError{Op: "link task", Err: err}
	}

	if err := s.backend.persistTable("tasks"); err != nil {
		return zero, &types.BackendError{Op: "persist tasks snapshot", Err: err}
	}
	if err := s.backend.persistTable("contains"); err != nil {
		return zero, &types.BackendError{Op: "persist contains snapshot", Err: err}
	}

	// Read the task back so the caller verifies against what was actually
	// stored.
	var right types.Slot[types.Task]
	if storedTask, err := (&taskStore{backend: s.backend}).Get(task.ID); err != nil {
		right = types.Unresolved[types.Task](err)
	} else {
		right = types.Resolved(storedTask)
	}

	return types.Contains[types.TaskList, types.Task]{
		Left:      types.Resolved(storedList),
		SortOrder: sortOrder,
		Right:     right,
	}, nil
}

// GetLinkedItems yields the relationships whose left side is left, ordered
// by sort-order token then insertion order. Rows whose stored task cannot
// be hydrated are yielded with an unresolved right slot rather than
// aborting the sequence.
func (s *containsStore) GetLinkedItems(left types.TaskList) (iter.Seq[types.Contains[types.TaskList, types.Task]], error) {
	db, err := s.backend.handle()
	if err != nil {
		return nil, err
	}

	if _, err := (&listStore{backend: s.backend}).Get(left.ID); err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT t.task_id, t.name, t.description, c.sortorder
		   FROM contains c
		   JOIN tasks t ON t.task_id = c.task_id
		  WHERE c.tasklist_id = ?
		  ORDER BY c.sortorder, c.rowid`,
		left.ID.String(),
	)
	if err != nil {
		return nil, &types.BackendError{Op: "get linked tasks", Err: err}
	}
	defer rows.Close()

	var links []types.Contains[types.TaskList, types.Task]
	for rows.Next() {
		var idStr, name, sortOrder string
		var description sql.NullString
		if err := rows.Scan(&idStr, &name, &description, &sortOrder); err != nil {
			return nil, &types.BackendError{Op: "get linked tasks", Err: err}
		}

		var right types.Slot[types.Task]
		if id, err := uuid.Parse(idStr); err != nil {
			right = types.Unresolved[types.Task](&types.InvalidIDError{ID: idStr})
		} else {
			right = types.Resolved(types.Task{
				Name:        name,
				ID:          id,
				Description: description.String,
			})
		}

		links = append(links, types.Contains[types.TaskList, types.Task]{
			Left:      types.Resolved(left),
			SortOrder: sortOrder,
			Right:     right,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, &types.BackendError{Op: "get linked tasks", Err: err}
	}

	return func(yield func(types.Contains[types.TaskList, types.Task]) bool) {
		for _, link := range links {
			if !yield(link) {
				return
			}
		}
	}, nil
}
