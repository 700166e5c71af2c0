package cache_test

import (
	"testing"
	"time"

	"github.com/turboost/store/pkg/cache"
)

func TestSetGetDelete(t *testing.T) {
	if err := cache.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok := cache.Get("k")
	if !ok || string(got) != "v" {
		t.Errorf("expected v, got %q (ok=%v)", got, ok)
	}

	if err := cache.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := cache.Get("k"); ok {
		t.Error("expected key to be gone after delete")
	}
}

func TestExpiry(t *testing.T) {
	if err := cache.Set("ephemeral", []byte("x"), 10*time.Millisecond); err != nil {
		t.Fatalf("set: %v", err)
	}

	time.Sleep(30 * time.Millisecond)

	if _, ok := cache.Get("ephemeral"); ok {
		t.Error("expected entry to expire")
	}
}

func TestMissingKey(t *testing.T) {
	if _, ok := cache.Get("never-set"); ok {
		t.Error("expected miss for unknown key")
	}
}
