package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory_store.json")
	s := NewFileStore(path)
	ctx := context.Background()

	if err := s.Put(ctx, "u1", json.RawMessage(`{"home":"Varanasi"}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := s.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, []byte(`{"home":"Varanasi"}`)) {
		t.Fatalf("got %s", got)
	}
}

func TestFileStoreUnknownUser(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "memory_store.json"))
	got, err := s.Get(context.Background(), "nobody")
	if err != nil || got != nil {
		t.Fatalf("unknown user: val=%s err=%v, want nil,nil", got, err)
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "memory_store.json"))
	ctx := context.Background()

	s.Put(ctx, "u1", json.RawMessage(`{"v":1}`))
	if err := s.Put(ctx, "u1", json.RawMessage(`{"v":2}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, _ := s.Get(ctx, "u1")
	if !bytes.Equal(got, []byte(`{"v":2}`)) {
		t.Fatalf("got %s, want overwritten value", got)
	}
}

func TestFileStorePreservesOtherUsers(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "memory_store.json"))
	ctx := context.Background()

	s.Put(ctx, "u1", json.RawMessage(`{"a":1}`))
	s.Put(ctx, "u2", json.RawMessage(`{"b":2}`))

	got, _ := s.Get(ctx, "u1")
	if !bytes.Equal(got, []byte(`{"a":1}`)) {
		t.Fatalf("u1 clobbered: %s", got)
	}
}

func TestFileStoreToleratesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory_store.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewFileStore(path)
	ctx := context.Background()

	if got, err := s.Get(ctx, "u1"); err != nil || got != nil {
		t.Fatalf("corrupt file Get: val=%s err=%v", got, err)
	}
	if err := s.Put(ctx, "u1", json.RawMessage(`{"v":1}`)); err != nil {
		t.Fatalf("Put over corrupt file: %v", err)
	}
	got, _ := s.Get(ctx, "u1")
	if !bytes.Equal(got, []byte(`{"v":1}`)) {
		t.Fatalf("got %s", got)
	}
}
