package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBothResolved(t *testing.T) {
	list := NewTaskList("tasklist")
	task := NewTask("task", "")

	link := Contains[TaskList, Task]{
		Left:      Resolved(list),
		SortOrder: "a",
		Right:     Resolved(task),
	}

	left, right, err := link.Resolve()
	require.NoError(t, err)
	assert.Equal(t, list, left)
	assert.Equal(t, task, right)
}

func TestResolveShortCircuitsOnBrokenLeft(t *testing.T) {
	leftErr := &NotFoundError{ItemType: "TaskList", ID: NewID()}
	task := NewTask("task", "")

	link := Contains[TaskList, Task]{
		Left:      Unresolved[TaskList](leftErr),
		SortOrder: "a",
		Right:     Resolved(task),
	}

	_, _, err := link.Resolve()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRelationship)

	// Both sides must be preserved verbatim, not collapsed.
	var relErr *RelationshipError[TaskList, Task]
	require.ErrorAs(t, err, &relErr)
	assert.Same(t, leftErr, relErr.Left.Err())
	assert.True(t, relErr.Right.OK())
	got, rerr := relErr.Right.Item()
	require.NoError(t, rerr)
	assert.Equal(t, task, got)
}

func TestResolveShortCircuitsOnBrokenRight(t *testing.T) {
	list := NewTaskList("tasklist")
	rightErr := &InvalidIDError{ID: "not-a-uuid"}

	link := Contains[TaskList, Task]{
		Left:      Resolved(list),
		SortOrder: "a",
		Right:     Unresolved[Task](rightErr),
	}

	_, _, err := link.Resolve()
	require.Error(t, err)

	var relErr *RelationshipError[TaskList, Task]
	require.ErrorAs(t, err, &relErr)
	assert.True(t, relErr.Left.OK())
	assert.Same(t, rightErr, relErr.Right.Err())
}

func TestCreateLinkedNeverReachesBackendOnBrokenPair(t *testing.T) {
	backend := &fakeBacklogStore{}
	task := NewTask("task", "")

	link := Contains[TaskList, Task]{
		Left:      Unresolved[TaskList](&NotFoundError{ItemType: "TaskList", ID: NewID()}),
		SortOrder: "a",
		Right:     Resolved(task),
	}

	err := CreateLinked[TaskList, Task](backend, link)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRelationship)
	assert.Zero(t, backend.createCalls)
}

func TestCreateLinked(t *testing.T) {
	backlog := TaskList{Name: "Backlog", ID: backlogID}
	task := NewTask("Test task 3", "")

	err := CreateLinked[TaskList, Task](&fakeBacklogStore{}, backlog.Link(task))
	assert.NoError(t, err)
}

func TestCreateLinkedMismatch(t *testing.T) {
	backlog := TaskList{Name: "Backlog", ID: backlogID}
	task := NewTask("MISMATCH", "")

	err := CreateLinked[TaskList, Task](&fakeBacklogStore{}, backlog.Link(task))
	require.Error(t, err)

	var mismatch *MismatchError[Task]
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, task, mismatch.Expected)
}

func TestCreateLinkedUnknownList(t *testing.T) {
	stray := NewTaskList("Not persisted")
	task := NewTask("Test task", "")

	err := CreateLinked[TaskList, Task](&fakeBacklogStore{}, stray.Link(task))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetLinkedItems(t *testing.T) {
	backlog := TaskList{Name: "Backlog", ID: backlogID}

	seq, err := GetLinked[TaskList, Task](&fakeBacklogStore{}, backlog)
	require.NoError(t, err)

	var rights []Task
	for link := range seq {
		task, rerr := link.Right.Item()
		require.NoError(t, rerr)
		rights = append(rights, task)
	}
	assert.Equal(t, []Task{
		{Name: "Task 1", ID: task1ID},
		{Name: "Task 2", ID: task2ID},
	}, rights)
}

func TestGetLinkedItemsUnknownList(t *testing.T) {
	stray := NewTaskList("Not persisted")

	_, err := GetLinked[TaskList, Task](&fakeBacklogStore{}, stray)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
