// Tests for JSONL snapshot persistence across attach cycles.
package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/backlog/pkg/types"
)

func TestSnapshotFilesWritten(t *testing.T) {
	b, config := attachedBackend(t)

	if err := types.Create(b.Tasks(), types.NewTask("Test Task 1", "")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(config.DataDir, "tasks.jsonl")); err != nil {
		t.Errorf("tasks.jsonl not written: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	config := types.Config{Driver: types.DriverSQLite, DataDir: t.TempDir()}
	task := types.NewTask("Test Task 1", "")

	first := NewBackend()
	if err := first.Attach(config); err != nil {
		t.Fatalf("first Attach failed: %v", err)
	}
	if err := types.Create(first.Tasks(), task); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := first.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	second := NewBackend()
	if err := second.Attach(config); err != nil {
		t.Fatalf("second Attach failed: %v", err)
	}
	defer second.Detach()

	stored, err := types.Get(second.Tasks(), task.ID)
	if err != nil {
		t.Fatalf("Get after reattach failed: %v", err)
	}
	if stored != task {
		t.Errorf("reloaded task mismatch: got %+v, want %+v", stored, task)
	}
}

func TestSaveAndLoadLinks(t *testing.T) {
	config := types.Config{Driver: types.DriverSQLite, DataDir: t.TempDir()}

	first := NewBackend()
	if err := first.Attach(config); err != nil {
		t.Fatalf("first Attach failed: %v", err)
	}
	backlog := createList(t, first, "Backlog")
	task := types.NewTask("linked", "")
	if err := types.CreateLinked(first.Backlog(), backlog.Link(task)); err != nil {
		t.Fatalf("CreateLinked failed: %v", err)
	}
	if err := first.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	second := NewBackend()
	if err := second.Attach(config); err != nil {
		t.Fatalf("second Attach failed: %v", err)
	}
	defer second.Detach()

	tasks := linkedTasks(t, second, backlog)
	if len(tasks) != 1 || tasks[0] != task {
		t.Errorf("reloaded links mismatch: %+v", tasks)
	}
}

func TestMalformedSnapshotLinesSkipped(t *testing.T) {
	dataDir := t.TempDir()
	path := filepath.Join(dataDir, "tasks.jsonl")
	content := `{"task_id":"0196b4c9-8447-7959-ae1f-72c7c8a3dd36","name":"Task 1","created_at":"2026-01-01T00:00:00Z"}` + "\n" +
		"not json\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing snapshot: %v", err)
	}

	b := NewBackend()
	if err := b.Attach(types.Config{Driver: types.DriverSQLite, DataDir: dataDir}); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer b.Detach()

	task, err := b.Tasks().Get(uuid.MustParse("0196b4c9-8447-7959-ae1f-72c7c8a3dd36"))
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if task.Name != "Task 1" {
		t.Errorf("wrong task loaded: %+v", task)
	}
}
