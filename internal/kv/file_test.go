package kv

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())

	if _, ok, err := store.Get("lists"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := store.Set("lists", []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	value, ok, err := store.Get("lists")
	if err != nil || !ok {
		t.Fatalf("expected value, got ok=%v err=%v", ok, err)
	}
	if string(value) != `[]` {
		t.Fatalf("expected [], got %q", value)
	}
}

func TestFileStoreWritesOneFilePerKey(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	store.Set("lists", []byte(`[]`))
	store.Set("settings", []byte(`{}`))

	for _, name := range []string{"lists.json", "settings.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected %s to exist: %v", name, err)
		}
	}
}

func TestFileStoreDelete(t *testing.T) {
	store := NewFileStore(t.TempDir())
	store.Set("undo", []byte(`{}`))

	if err := store.Delete("undo"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := store.Get("undo"); ok {
		t.Fatal("expected key gone after delete")
	}

	// Deleting a missing key is not an error.
	if err := store.Delete("undo"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}

func TestFileStoreSkipsEqualContent(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	store.Set("lists", []byte(`[]`))
	path := filepath.Join(dir, "lists.json")
	first, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}

	store.Set("lists", []byte(`[]`))
	second, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !first.ModTime().Equal(second.ModTime()) {
		t.Fatal("expected equal-content write to be skipped")
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	store.Set("lists", []byte(`[{"id":"a"}]`))

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "lists.json" {
		t.Fatalf("expected only lists.json, got %v", entries)
	}
}
