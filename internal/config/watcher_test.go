package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "uxengine.yaml")
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	reloaded := make(chan *Config, 1)
	w, err := NewWatcher(path, nil, func(c *Config) {
		select {
		case reloaded <- c:
		default:
		}
	})
	if err != nil {
		t.Fatalf("new watcher failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	defer w.Stop()

	cfg := DefaultConfig()
	cfg.Engine.SessionCapacity = 123
	if err := cfg.Save(path); err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}

	select {
	case got := <-reloaded:
		if got.Engine.SessionCapacity != 123 {
			t.Fatalf("expected reloaded capacity 123, got %d", got.Engine.SessionCapacity)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for reload")
	}
}

func TestWatcherKeepsPreviousConfigOnBadWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "uxengine.yaml")
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	reloaded := make(chan *Config, 1)
	w, err := NewWatcher(path, nil, func(c *Config) { reloaded <- c })
	if err != nil {
		t.Fatalf("new watcher failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("{{{broken"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	select {
	case <-reloaded:
		t.Fatalf("broken config must not trigger the reload callback")
	case <-time.After(1 * time.Second):
	}
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uxengine.yaml")
	w, err := NewWatcher(path, nil, nil)
	if err != nil {
		t.Fatalf("new watcher failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	w.Stop()
	w.Stop()
}
