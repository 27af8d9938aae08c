// Package integration provides shared test helpers for integration tests.
package integration

import (
	"testing"

	"github.com/mesh-intelligence/backlog/internal/memory"
	"github.com/mesh-intelligence/backlog/internal/sqlite"
	"github.com/mesh-intelligence/backlog/pkg/types"
)

// drivers returns one factory per storage driver so every integration test
// runs against both.
func drivers() map[string]func() types.Driver {
	return map[string]func() types.Driver{
		"sqlite": func() types.Driver { return sqlite.NewBackend() },
		"memory": func() types.Driver { return memory.NewBackend() },
	}
}

// setupDriver attaches a driver to an isolated temp directory. Each test
// case gets its own instance for isolation.
func setupDriver(t *testing.T, name string, factory func() types.Driver) types.Driver {
	t.Helper()
	dir := t.TempDir()
	d := factory()
	if err := d.Attach(types.Config{Driver: name, DataDir: dir}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	t.Cleanup(func() { d.Detach() })
	return d
}

// mustCreateList creates a task list or fails the test.
func mustCreateList(t *testing.T, d types.Driver, name string) types.TaskList {
	t.Helper()
	list := types.NewTaskList(name)
	if err := types.Create(d.TaskLists(), list); err != nil {
		t.Fatalf("create list %q: %v", name, err)
	}
	return list
}

// mustCreateTask creates a standalone task or fails the test.
func mustCreateTask(t *testing.T, d types.Driver, name, description string) types.Task {
	t.Helper()
	task := types.NewTask(name, description)
	if err := types.Create(d.Tasks(), task); err != nil {
		t.Fatalf("create task %q: %v", name, err)
	}
	return task
}

// mustLink creates a task inside a list or fails the test.
func mustLink(t *testing.T, d types.Driver, list types.TaskList, name string) types.Task {
	t.Helper()
	task := types.NewTask(name, "")
	if err := types.CreateLinked(d.Backlog(), list.Link(task)); err != nil {
		t.Fatalf("link task %q into %q: %v", name, list.Name, err)
	}
	return task
}

// mustLinkedTasks returns the tasks in list, in backlog order.
func mustLinkedTasks(t *testing.T, d types.Driver, list types.TaskList) []types.Task {
	t.Helper()
	links, err := types.GetLinked(d.Backlog(), list)
	if err != nil {
		t.Fatalf("get linked tasks for %q: %v", list.Name, err)
	}
	var tasks []types.Task
	for link := range links {
		_, task, err := link.Resolve()
		if err != nil {
			t.Fatalf("resolve link in %q: %v", list.Name, err)
		}
		tasks = append(tasks, task)
	}
	return tasks
}
