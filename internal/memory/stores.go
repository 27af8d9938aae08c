// Entity and relationship stores for the in-memory driver.
package memory

import (
	"iter"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/backlog/pkg/types"
)

type taskStore struct {
	backend *Backend
}

var _ types.Store[types.Task] = (*taskStore)(nil)

func (s *taskStore) Create(task types.Task) (types.Task, error) {
	b := s.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.Task{}, types.ErrDetached
	}
	b.tasks[task.ID] = task
	return b.tasks[task.ID], nil
}

func (s *taskStore) Get(id uuid.UUID) (types.Task, error) {
	b := s.backend
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.Task{}, types.ErrDetached
	}
	task, ok := b.tasks[id]
	if !ok {
		return types.Task{}, &types.NotFoundError{ItemType: "Task", ID: id}
	}
	return task, nil
}

type listStore struct {
	backend *Backend
}

var _ types.Store[types.TaskList] = (*listStore)(nil)

func (s *listStore) Create(list types.TaskList) (types.TaskList, error) {
	b := s.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.TaskList{}, types.ErrDetached
	}
	b.tasklists[list.ID] = list
	return b.tasklists[list.ID], nil
}

func (s *listStore) Get(id uuid.UUID) (types.TaskList, error) {
	b := s.backend
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.TaskList{}, types.ErrDetached
	}
	list, ok := b.tasklists[id]
	if !ok {
		return types.TaskList{}, &types.NotFoundError{ItemType: "TaskList", ID: id}
	}
	return list, nil
}

type stateStore struct {
	backend *Backend
}

var _ types.Store[types.State] = (*stateStore)(nil)

func (s *stateStore) Create(state types.State) (types.State, error) {
	b := s.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.State{}, types.ErrDetached
	}
	b.states[state.ID] = state
	return b.states[state.ID], nil
}

func (s *stateStore) Get(id uuid.UUID) (types.State, error) {
	b := s.backend
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.State{}, types.ErrDetached
	}
	state, ok := b.states[id]
	if !ok {
		return types.State{}, &types.NotFoundError{ItemType: "State", ID: id}
	}
	return state, nil
}

type containsStore struct {
	backend *Backend
}

var _ types.Relate[types.TaskList, types.Task] = (*containsStore)(nil)

// CreateLinkedItem stores the right-hand task and its membership row under
// one lock acquisition, mirroring the SQLite driver's single transaction.
func (s *containsStore) CreateLinkedItem(link types.Contains[types.TaskList, types.Task]) (types.Contains[types.TaskList, types.Task], error) {
	var zero types.Contains[types.TaskList, types.Task]

	list, task, err := link.Resolve()
	if err != nil {
		return zero, err
	}

	b := s.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return zero, types.ErrDetached
	}
	storedList, ok := b.tasklists[list.ID]
	if !ok {
		return zero, &types.NotFoundError{ItemType: "TaskList", ID: list.ID}
	}

	sortOrder := link.SortOrder
	if sortOrder == "" {
		sortOrder = types.DefaultSortOrder
	}

	b.tasks[task.ID] = task
	b.contains = append(b.contains, containsRow{
		list:      list.ID,
		task:      task.ID,
		sortOrder: sortOrder,
	})

	return types.Contains[types.TaskList, types.Task]{
		Left:      types.Resolved(storedList),
		SortOrder: sortOrder,
		Right:     types.Resolved(b.tasks[task.ID]),
	}, nil
}

// GetLinkedItems yields memberships of left ordered by sort-order token
// then insertion order.
func (s *containsStore) GetLinkedItems(left types.TaskList) (iter.Seq[types.Contains[types.TaskList, types.Task]], error) {
	b := s.backend
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrDetached
	}
	if _, ok := b.tasklists[left.ID]; !ok {
		return nil, &types.NotFoundError{ItemType: "TaskList", ID: left.ID}
	}

	var rows []containsRow
	for _, row := range b.contains {
		if row.list == left.ID {
			rows = append(rows, row)
		}
	}
	slices.SortStableFunc(rows, func(a, b containsRow) int {
		return strings.Compare(a.sortOrder, b.sortOrder)
	})

	links := make([]types.Contains[types.TaskList, types.Task], 0, len(rows))
	for _, row := range rows {
		var right types.Slot[types.Task]
		if task, ok := b.tasks[row.task]; ok {
			right = types.Resolved(task)
		} else {
			right = types.Unresolved[types.Task](&types.NotFoundError{ItemType: "Task", ID: row.task})
		}
		links = append(links, types.Contains[types.TaskList, types.Task]{
			Left:      types.Resolved(left),
			SortOrder: row.sortOrder,
			Right:     right,
		})
	}

	return func(yield func(types.Contains[types.TaskList, types.Task]) bool) {
		for _, link := range links {
			if !yield(link) {
				return
			}
		}
	}, nil
}
