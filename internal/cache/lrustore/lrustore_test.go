package lrustore

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestSetGetDel(t *testing.T) {
	s, err := New(8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	if err := s.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, []byte("v")) {
		t.Fatalf("got %q, want %q", got, "v")
	}

	if err := s.Del(ctx, "k"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	got, err = s.Get(ctx, "k")
	if err != nil || got != nil {
		t.Fatalf("after Del: val=%q err=%v, want nil,nil", got, err)
	}
}

func TestMissIsNilNil(t *testing.T) {
	s, _ := New(8)
	got, err := s.Get(context.Background(), "absent")
	if err != nil || got != nil {
		t.Fatalf("miss: val=%q err=%v, want nil,nil", got, err)
	}
}

func TestTTLExpiry(t *testing.T) {
	s, _ := New(8)
	clock := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	ctx := context.Background()
	if err := s.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	clock = clock.Add(59 * time.Second)
	if got, _ := s.Get(ctx, "k"); got == nil {
		t.Fatal("entry expired early")
	}

	clock = clock.Add(2 * time.Second)
	if got, _ := s.Get(ctx, "k"); got != nil {
		t.Fatalf("entry survived past TTL: %q", got)
	}
}

func TestZeroTTLNeverExpires(t *testing.T) {
	s, _ := New(8)
	clock := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	ctx := context.Background()
	s.Set(ctx, "k", []byte("v"), 0)
	clock = clock.Add(100 * 24 * time.Hour)
	if got, _ := s.Get(ctx, "k"); got == nil {
		t.Fatal("zero-ttl entry expired")
	}
}

func TestBoundedEviction(t *testing.T) {
	s, _ := New(2)
	ctx := context.Background()
	s.Set(ctx, "a", []byte("1"), 0)
	s.Set(ctx, "b", []byte("2"), 0)
	s.Set(ctx, "c", []byte("3"), 0)
	if got, _ := s.Get(ctx, "a"); got != nil {
		t.Fatal("oldest entry not evicted at capacity")
	}
	if got, _ := s.Get(ctx, "c"); got == nil {
		t.Fatal("newest entry missing")
	}
}
