package persist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/comalice/sequencex"
)

func sampleSnapshot() sequencex.Snapshot[int] {
	s := sequencex.NewWithCapacity[int](8)
	for i := 0; i < 3; i++ {
		s.Append(i + 1)
	}
	return s.Snapshot()
}

func TestJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "seq.json")
	snap := sampleSnapshot()
	if err := SaveJSON(path, snap); err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}
	loaded, err := LoadJSON[int](path)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	restored := sequencex.New[int]()
	if err := restored.Restore(loaded); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if got := restored.String(); got != "1 2 3" {
		t.Errorf("restored contents = %q, want %q", got, "1 2 3")
	}
	if restored.Cap() != 8 {
		t.Errorf("restored capacity = %d, want 8", restored.Cap())
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.yaml")
	snap := sampleSnapshot()
	if err := SaveYAML(path, snap); err != nil {
		t.Fatalf("SaveYAML: %v", err)
	}
	loaded, err := LoadYAML[int](path)
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	if loaded.Length != snap.Length || loaded.Capacity != snap.Capacity {
		t.Errorf("counters = %d/%d, want %d/%d",
			loaded.Length, loaded.Capacity, snap.Length, snap.Capacity)
	}
	for i, v := range loaded.Elements {
		if v != snap.Elements[i] {
			t.Errorf("element %d = %d, want %d", i, v, snap.Elements[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadJSON[int](filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}
	_, err = LoadYAML[int](filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadJSON[int](path); err == nil {
		t.Error("corrupt JSON should fail to load")
	}
}
