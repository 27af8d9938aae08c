package types

import "errors"

// Driver is the lifecycle and access contract every storage driver
// implements. Callers attach to a backend, take typed stores, and detach
// when done. The stores remain bound to the driver: operations on them
// after Detach return ErrDetached.
type Driver interface {
	// Attach connects the driver to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed.
	Detach() error

	// Tasks returns the task store.
	Tasks() Store[Task]

	// TaskLists returns the task-list store.
	TaskLists() Store[TaskList]

	// States returns the UI-state store.
	States() Store[State]

	// Backlog returns the list-contains-task relationship store.
	Backlog() Relate[TaskList, Task]
}

// Driver lifecycle errors.
var (
	ErrDetached        = errors.New("driver is detached")
	ErrAlreadyAttached = errors.New("driver is already attached")
)
