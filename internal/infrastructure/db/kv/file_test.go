package kv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tasklite/task-tracker/internal/core/ports"
)

func TestFile_SetGetRoundtrip(t *testing.T) {
	store, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}

	want := []byte(`{"hello":"world"}`)
	if err := store.Set(context.Background(), "greeting", want); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := store.Get(context.Background(), "greeting")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("roundtrip mismatch: got %s", got)
	}
}

func TestFile_GetMissingKey(t *testing.T) {
	store, _ := NewFile(t.TempDir())

	if _, err := store.Get(context.Background(), "nope"); !errors.Is(err, ports.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestFile_SetOverwrites(t *testing.T) {
	store, _ := NewFile(t.TempDir())

	_ = store.Set(context.Background(), "k", []byte("first"))
	_ = store.Set(context.Background(), "k", []byte("second"))

	got, err := store.Get(context.Background(), "k")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("expected the later write, got %s", got)
	}
}

func TestFile_DeleteIsIdempotent(t *testing.T) {
	store, _ := NewFile(t.TempDir())

	_ = store.Set(context.Background(), "k", []byte("v"))
	if err := store.Delete(context.Background(), "k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Get(context.Background(), "k"); !errors.Is(err, ports.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound after delete, got %v", err)
	}

	// Deleting a missing key is a no-op.
	if err := store.Delete(context.Background(), "k"); err != nil {
		t.Fatalf("second delete must succeed: %v", err)
	}
}

func TestFile_OneFilePerKey(t *testing.T) {
	dir := t.TempDir()
	store, _ := NewFile(dir)

	_ = store.Set(context.Background(), "users", []byte("[]"))
	_ = store.Set(context.Background(), "tasks", []byte("{}"))

	for _, name := range []string{"users.json", "tasks.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s on disk: %v", name, err)
		}
	}
}

func TestFile_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	first, _ := NewFile(dir)
	_ = first.Set(context.Background(), "k", []byte("persisted"))

	second, err := NewFile(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	got, err := second.Get(context.Background(), "k")
	if err != nil {
		t.Fatalf("get after reopen failed: %v", err)
	}
	if string(got) != "persisted" {
		t.Errorf("expected persisted value, got %s", got)
	}
}

func TestMemory_Roundtrip(t *testing.T) {
	store := NewMemory()

	if _, err := store.Get(context.Background(), "k"); !errors.Is(err, ports.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}

	_ = store.Set(context.Background(), "k", []byte("v"))
	got, err := store.Get(context.Background(), "k")
	if err != nil || string(got) != "v" {
		t.Fatalf("roundtrip failed: %s, %v", got, err)
	}

	_ = store.Delete(context.Background(), "k")
	if _, err := store.Get(context.Background(), "k"); !errors.Is(err, ports.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound after delete, got %v", err)
	}
}
