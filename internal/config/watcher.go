// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// watcher.go - Live reload of the config file.
package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// CONFIG WATCHER
// =============================================================================

// Watcher watches the config directory and invokes a callback when the
// config file changes. Rapid successive writes (editors often write twice)
// are debounced into a single reload.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onReload func(*Config)
	mu       sync.Mutex
	pending  time.Time
	dirty    bool
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewWatcher creates a watcher that calls onReload with the freshly loaded
// config after each change. The callback runs on the watcher goroutine.
func NewWatcher(debounce time.Duration, onReload func(*Config)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Watcher{
		watcher:  watcher,
		debounce: debounce,
		onReload: onReload,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Watch starts watching the config directory.
func (w *Watcher) Watch() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	// Watch the directory, not the file: editors replace files by rename,
	// which drops a watch held on the file itself.
	if err := w.watcher.Add(dir); err != nil {
		return err
	}

	go w.processEvents()
	go w.processPending()

	return nil
}

// processEvents processes file system events
func (w *Watcher) processEvents() {
	defer func() {
		if r := recover(); r != nil {
			// Non-fatal, goroutine exits
			_ = r
		}
	}()

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !isConfigFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.mu.Lock()
				w.pending = time.Now()
				w.dirty = true
				w.mu.Unlock()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Log error (non-fatal)
			_ = err
		}
	}
}

// processPending fires the reload callback after the debounce window.
func (w *Watcher) processPending() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return

		case <-ticker.C:
			w.mu.Lock()
			fire := w.dirty && time.Since(w.pending) >= w.debounce
			if fire {
				w.dirty = false
			}
			w.mu.Unlock()

			if !fire {
				continue
			}
			cfg, err := Load()
			if err != nil || cfg == nil {
				continue
			}
			SetGlobal(cfg)
			if w.onReload != nil {
				w.onReload(cfg)
			}
		}
	}
}

// isConfigFile reports whether path names one of the recognized config files.
func isConfigFile(path string) bool {
	base := filepath.Base(path)
	return base == "config.toml" || base == "config.json"
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.cancel()
	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}
