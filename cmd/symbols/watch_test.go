package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWatchFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "notes.md", "v1")
	other := filepath.Join(dir, "other.md")

	ctx, cancel := context.WithCancel(context.Background())
	changed := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, path, 10*time.Millisecond, func() { changed <- struct{}{} })
	}()

	// The watcher may not be registered yet; keep saving until a change lands.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for received := false; !received; {
		select {
		case <-changed:
			received = true
		case <-tick.C:
			if err := os.WriteFile(other, []byte("ignored"), 0o600); err != nil {
				t.Fatalf("writing other file: %v", err)
			}
			if err := os.WriteFile(path, []byte("v2"), 0o600); err != nil {
				t.Fatalf("writing watched file: %v", err)
			}
		case <-deadline:
			cancel()
			t.Fatal("no change notification within 5s")
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watchFile() error = %v, want nil after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watchFile did not return after cancel")
	}
}

func TestWatchFile_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "doc.md")
	err := watchFile(context.Background(), path, time.Millisecond, func() {})
	if err == nil || !strings.Contains(err.Error(), "watching") {
		t.Errorf("watchFile() error = %v, want watching error", err)
	}
}

func TestRunRender_Watch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "live.md", ":icon[one]\n")
	output := filepath.Join(dir, "live.html")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	env, _, _ := newTestEnv()
	env.Ctx = ctx
	done := make(chan error, 1)
	go func() {
		done <- runRender(ctx, []string{input, "-o", output, "--watch", "-q"}, env)
	}()

	// Saves closer together than watchDebounce keep resetting the timer,
	// so space them well apart and poll the output in between.
	deadline := time.After(10 * time.Second)
	save := time.NewTicker(4 * watchDebounce)
	defer save.Stop()
	poll := time.NewTicker(20 * time.Millisecond)
	defer poll.Stop()
	for {
		data, _ := os.ReadFile(output)
		if strings.Contains(string(data), ">two</span>") {
			break
		}
		select {
		case <-save.C:
			if err := os.WriteFile(input, []byte(":icon[two]\n"), 0o600); err != nil {
				t.Fatalf("updating input: %v", err)
			}
		case <-poll.C:
		case err := <-done:
			t.Fatalf("runRender() returned early: %v", err)
		case <-deadline:
			t.Fatal("output not re-rendered within 10s")
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("runRender() error = %v, want nil after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("runRender did not return after cancel")
	}
}
