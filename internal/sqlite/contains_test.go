// Tests for the SQLite contains relationship store.
package sqlite

import (
	"errors"
	"testing"

	"github.com/mesh-intelligence/backlog/pkg/types"
)

func createList(t *testing.T, b *Backend, name string) types.TaskList {
	t.Helper()
	list := types.NewTaskList(name)
	if err := types.Create(b.TaskLists(), list); err != nil {
		t.Fatalf("Create list failed: %v", err)
	}
	return list
}

func linkedTasks(t *testing.T, b *Backend, list types.TaskList) []types.Task {
	t.Helper()
	seq, err := types.GetLinked(b.Backlog(), list)
	if err != nil {
		t.Fatalf("GetLinked failed: %v", err)
	}
	var tasks []types.Task
	for link := range seq {
		task, err := link.Right.Item()
		if err != nil {
			t.Fatalf("unresolved right slot: %v", err)
		}
		tasks = append(tasks, task)
	}
	return tasks
}

func TestLinkedCreationRoundTrip(t *testing.T) {
	b, _ := attachedBackend(t)
	backlog := createList(t, b, "Backlog")
	task := types.NewTask("Test task 3", "")

	if err := types.CreateLinked(b.Backlog(), backlog.Link(task)); err != nil {
		t.Fatalf("CreateLinked failed: %v", err)
	}

	tasks := linkedTasks(t, b, backlog)
	if len(tasks) != 1 {
		t.Fatalf("expected 1 linked task, got %d", len(tasks))
	}
	if tasks[0] != task {
		t.Errorf("linked task mismatch: got %+v, want %+v", tasks[0], task)
	}
}

func TestBacklogScenario(t *testing.T) {
	b, _ := attachedBackend(t)
	backlog := createList(t, b, "Backlog")

	taskA := types.NewTask("A", "")
	taskB := types.NewTask("B", "")

	linkA := backlog.Link(taskA)
	linkA.SortOrder = "a"
	if err := types.CreateLinked(b.Backlog(), linkA); err != nil {
		t.Fatalf("link A failed: %v", err)
	}
	linkB := backlog.Link(taskB)
	linkB.SortOrder = "b"
	if err := types.CreateLinked(b.Backlog(), linkB); err != nil {
		t.Fatalf("link B failed: %v", err)
	}

	tasks := linkedTasks(t, b, backlog)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 linked tasks, got %d", len(tasks))
	}
	if tasks[0] != taskA || tasks[1] != taskB {
		t.Errorf("wrong order or content: %+v", tasks)
	}
}

func TestSortOrderAppliedOverInsertion(t *testing.T) {
	b, _ := attachedBackend(t)
	backlog := createList(t, b, "Backlog")

	// Insert in reverse sort order; query must order by the token.
	second := types.NewTask("second", "")
	link := backlog.Link(second)
	link.SortOrder = "b"
	if err := types.CreateLinked(b.Backlog(), link); err != nil {
		t.Fatalf("link failed: %v", err)
	}
	first := types.NewTask("first", "")
	link = backlog.Link(first)
	link.SortOrder = "a"
	if err := types.CreateLinked(b.Backlog(), link); err != nil {
		t.Fatalf("link failed: %v", err)
	}

	tasks := linkedTasks(t, b, backlog)
	if len(tasks) != 2 || tasks[0] != first || tasks[1] != second {
		t.Errorf("sortorder not applied: %+v", tasks)
	}
}

func TestCreateLinkedUnknownListLeavesNoTask(t *testing.T) {
	b, _ := attachedBackend(t)
	stray := types.NewTaskList("Not persisted")
	task := types.NewTask("orphan candidate", "")

	err := types.CreateLinked(b.Backlog(), stray.Link(task))
	if !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// The task must not have been created either: the operation is atomic.
	if _, err := b.Tasks().Get(task.ID); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("task was persisted despite failed link: %v", err)
	}
}

func TestCreateLinkedBrokenPairShortCircuits(t *testing.T) {
	b, _ := attachedBackend(t)
	task := types.NewTask("task", "")

	link := types.Contains[types.TaskList, types.Task]{
		Left:      types.Unresolved[types.TaskList](&types.NotFoundError{ItemType: "TaskList", ID: types.NewID()}),
		SortOrder: "a",
		Right:     types.Resolved(task),
	}

	err := types.CreateLinked(b.Backlog(), link)
	if !errors.Is(err, types.ErrRelationship) {
		t.Fatalf("expected ErrRelationship, got %v", err)
	}
	if _, err := b.Tasks().Get(task.ID); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("task was persisted despite broken pair: %v", err)
	}
}

func TestGetLinkedItemsUnknownList(t *testing.T) {
	b, _ := attachedBackend(t)
	stray := types.NewTaskList("Not persisted")

	_, err := types.GetLinked(b.Backlog(), stray)
	if !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
