package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatcherTriggersRerun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "birthwt.txt")
	if err := os.WriteFile(path, []byte("bwt smoke\n2523 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var reruns atomic.Int32
	w, err := New(path, func(ctx context.Context) error {
		reruns.Add(1)
		return nil
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Start(ctx)
	}()

	// Give the watcher a moment to register before writing.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("bwt smoke\n2523 0\n2551 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for reruns.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("rerun was never triggered")
		case <-time.After(50 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
	w.Stop()
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "birthwt.txt")
	if err := os.WriteFile(path, []byte("bwt smoke\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var reruns atomic.Int32
	w, err := New(path, func(ctx context.Context) error {
		reruns.Add(1)
		return nil
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Start(ctx) }()
	time.Sleep(100 * time.Millisecond)

	// A sibling file changing must not trigger a rerun.
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(300 * time.Millisecond)
	if reruns.Load() != 0 {
		t.Errorf("rerun triggered by unrelated file")
	}
	cancel()
	w.Stop()
}
