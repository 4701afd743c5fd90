package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Logf("store close failed: %v", err)
		}
	})
	return s
}

func TestSetGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	if err := s.Set("roster", `[{"id":1,"name":"Jane"}]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, ok, err := s.Get("roster")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatalf("expected key to be present")
	}
	if value != `[{"id":1,"name":"Jane"}]` {
		t.Fatalf("unexpected value: %s", value)
	}
}

func TestGetMissingKey(t *testing.T) {
	s := openTestStore(t)
	value, ok, err := s.Get("nope")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok || value != "" {
		t.Fatalf("expected missing key, got %q (ok=%v)", value, ok)
	}
}

func TestSetOverwrites(t *testing.T) {
	s := openTestStore(t)
	if err := s.Set("seasons", "[]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set("seasons", `[{"startDate":"2024-01-01"}]`); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}
	value, ok, _ := s.Get("seasons")
	if !ok || value != `[{"startDate":"2024-01-01"}]` {
		t.Fatalf("expected overwritten value, got %q", value)
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)
	if err := s.Set("currentTrainingSession", "{}"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Delete("currentTrainingSession"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := s.Get("currentTrainingSession"); ok {
		t.Fatalf("expected key to be gone after delete")
	}
	// Deleting an absent key is a no-op.
	if err := s.Delete("currentTrainingSession"); err != nil {
		t.Fatalf("Delete of absent key failed: %v", err)
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := s.Set("roster", "[]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()
	value, ok, err := reopened.Get("roster")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if !ok || value != "[]" {
		t.Fatalf("expected persisted value, got %q (ok=%v)", value, ok)
	}
}

func TestGetAfterCloseReturnsStorageError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closed.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	_, _, err = s.Get("roster")
	var se *StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected StorageError, got %v", err)
	}
}
