package kv_test

import (
	"context"
	"path/filepath"
	"testing"

	"patterns/internal/platform/kv"
)

func TestStoresRoundTrip(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	sqliteStore, err := kv.NewSQLiteStore(filepath.Join(dir, "db", "patterns.db"))
	if err != nil {
		t.Fatalf("new sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = sqliteStore.Close() })

	stores := map[string]kv.Store{
		"memory": kv.NewMemoryStore(),
		"file":   kv.NewFileStore(filepath.Join(dir, "state")),
		"sqlite": sqliteStore,
	}
	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if _, ok, err := store.Get(ctx, "darkMode"); err != nil || ok {
				t.Fatalf("expected absent key, ok=%t err=%v", ok, err)
			}
			if err := store.Set(ctx, "darkMode", "true"); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := store.Set(ctx, "darkMode", "false"); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			got, ok, err := store.Get(ctx, "darkMode")
			if err != nil || !ok || got != "false" {
				t.Fatalf("get after overwrite: %q ok=%t err=%v", got, ok, err)
			}
			if err := store.Remove(ctx, "darkMode"); err != nil {
				t.Fatalf("remove: %v", err)
			}
			if err := store.Remove(ctx, "darkMode"); err != nil {
				t.Fatalf("removing an absent key should succeed: %v", err)
			}
			if _, ok, _ := store.Get(ctx, "darkMode"); ok {
				t.Fatalf("key should be absent after remove")
			}
		})
	}
}

func TestFileStoreRejectsPathKeys(t *testing.T) {
	t.Parallel()
	store := kv.NewFileStore(t.TempDir())
	if err := store.Set(context.Background(), "../escape", "x"); err == nil {
		t.Fatalf("path-like key should be rejected")
	}
}
