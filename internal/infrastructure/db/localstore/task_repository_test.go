package localstore

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/tasklite/task-tracker/internal/core/domain"
	"github.com/tasklite/task-tracker/internal/infrastructure/db/kv"
)

func sampleTask(id, title string) domain.Task {
	return domain.Task{
		ID:        id,
		Title:     title,
		Priority:  domain.PriorityMedium,
		Category:  domain.DefaultCategory,
		CreatedAt: time.Now().UTC(),
	}
}

func TestTaskRepository_SaveAndList(t *testing.T) {
	store := kv.NewMemory()
	repo := NewTaskRepository(store, discardLogger)

	tasks := []domain.Task{sampleTask("t1", "one"), sampleTask("t2", "two")}
	if err := repo.SaveTasks(context.Background(), "u1", tasks); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got := repo.ListTasks(context.Background(), "u1")
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}
	if got[0].ID != "t1" || got[1].ID != "t2" {
		t.Errorf("order not preserved: %+v", got)
	}
}

func TestTaskRepository_ListUnknownUserIsEmpty(t *testing.T) {
	repo := NewTaskRepository(kv.NewMemory(), discardLogger)

	if got := repo.ListTasks(context.Background(), "nobody"); len(got) != 0 {
		t.Errorf("expected no tasks, got %+v", got)
	}
}

func TestTaskRepository_UsersAreIsolated(t *testing.T) {
	store := kv.NewMemory()
	repo := NewTaskRepository(store, discardLogger)

	_ = repo.SaveTasks(context.Background(), "u1", []domain.Task{sampleTask("t1", "alice's")})
	_ = repo.SaveTasks(context.Background(), "u2", []domain.Task{sampleTask("t2", "bob's")})

	alice := repo.ListTasks(context.Background(), "u1")
	bob := repo.ListTasks(context.Background(), "u2")

	if len(alice) != 1 || alice[0].ID != "t1" {
		t.Errorf("alice's list wrong: %+v", alice)
	}
	if len(bob) != 1 || bob[0].ID != "t2" {
		t.Errorf("bob's list wrong: %+v", bob)
	}

	// Overwriting one user's list leaves the other untouched.
	_ = repo.SaveTasks(context.Background(), "u1", nil)
	if got := repo.ListTasks(context.Background(), "u2"); len(got) != 1 {
		t.Errorf("bob's list clobbered: %+v", got)
	}
}

func TestTaskRepository_TasksStoredAsUserKeyedMap(t *testing.T) {
	store := kv.NewMemory()
	repo := NewTaskRepository(store, discardLogger)

	_ = repo.SaveTasks(context.Background(), "u1", []domain.Task{sampleTask("t1", "one")})

	raw, err := store.Get(context.Background(), "tasks")
	if err != nil {
		t.Fatalf("tasks key missing: %v", err)
	}

	var all map[string][]domain.Task
	if err := json.Unmarshal(raw, &all); err != nil {
		t.Fatalf("tasks key is not a user-keyed map: %v", err)
	}
	if len(all["u1"]) != 1 {
		t.Errorf("expected 1 task under u1, got %+v", all)
	}
}

func TestTaskRepository_NilListStoredAsEmptyArray(t *testing.T) {
	store := kv.NewMemory()
	repo := NewTaskRepository(store, discardLogger)

	if err := repo.SaveTasks(context.Background(), "u1", nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	raw, _ := store.Get(context.Background(), "tasks")
	var all map[string]json.RawMessage
	if err := json.Unmarshal(raw, &all); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if string(all["u1"]) != "[]" {
		t.Errorf("nil list must serialise as [], got %s", all["u1"])
	}
}

func TestTaskRepository_CorruptDataRecoveredAsEmpty(t *testing.T) {
	store := kv.NewMemory()
	_ = store.Set(context.Background(), "tasks", []byte("not json at all"))
	repo := NewTaskRepository(store, discardLogger)

	if got := repo.ListTasks(context.Background(), "u1"); len(got) != 0 {
		t.Fatalf("corrupt data must read as empty, got %+v", got)
	}

	// The next save replaces the corrupt document.
	if err := repo.SaveTasks(context.Background(), "u1", []domain.Task{sampleTask("t1", "fresh")}); err != nil {
		t.Fatalf("save after corruption failed: %v", err)
	}
	if got := repo.ListTasks(context.Background(), "u1"); len(got) != 1 {
		t.Errorf("expected recovered list with 1 task, got %+v", got)
	}
}
