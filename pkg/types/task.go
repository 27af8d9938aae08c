package types

import "github.com/google/uuid"

// Task represents a single work item in a backlog.
type Task struct {
	Name        string
	ID          uuid.UUID // UUID v7, generated on construction.
	Description string    // Optional; empty means no description.
}

// NewTask creates a Task with a fresh identifier, suitable for use as a
// backend key. Name may be empty: every task has a name, even a blank one,
// but not every task has a description.
func NewTask(name, description string) Task {
	return Task{
		Name:        name,
		ID:          NewID(),
		Description: description,
	}
}

// ItemID returns the task's stable identifier.
func (t Task) ItemID() uuid.UUID { return t.ID }

// Kind returns "Task".
func (t Task) Kind() string { return "Task" }

// TaskList represents a named list of tasks, e.g. a backlog.
type TaskList struct {
	Name string
	ID   uuid.UUID // UUID v7, generated on construction.
}

// NewTaskList creates a TaskList with a fresh identifier.
func NewTaskList(name string) TaskList {
	return TaskList{
		Name: name,
		ID:   NewID(),
	}
}

// ItemID returns the list's stable identifier.
func (l TaskList) ItemID() uuid.UUID { return l.ID }

// Kind returns "TaskList".
func (l TaskList) Kind() string { return "TaskList" }

// CanContain marks TaskList as a sanctioned container of Tasks, permitting
// Contains[TaskList, Task]. See ContainerOf.
func (TaskList) CanContain(Task) {}

// Link pairs this list with a task as a relationship whose endpoints are
// both already resolved. The task is typically freshly constructed and not
// yet persisted; pass the result to CreateLinked.
func (l TaskList) Link(t Task) Contains[TaskList, Task] {
	return Contains[TaskList, Task]{
		Left:      Resolved(l),
		SortOrder: DefaultSortOrder,
		Right:     Resolved(t),
	}
}
