// Package assets keeps the scene config in sync with the file on disk.
package assets

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/anima/engine/config"
	"github.com/spaghettifunk/anima/engine/core"
)

// Reload is the outcome of reading the config after it changed on disk.
type Reload struct {
	Config   *config.Config
	Err      error
	LoadedAt time.Time
}

// Loader reads the config at path.
type Loader func(path string) (*config.Config, error)

// Watcher reloads a config file whenever it is written and hands the result
// over on a channel. Only the most recent reload is kept until it is read.
type Watcher struct {
	path   string
	loader Loader

	fsnotify *fsnotify.Watcher
	reloads  chan Reload
	done     chan struct{}
	wg       sync.WaitGroup

	mutex      sync.RWMutex
	isClosed   bool
	lastLoaded time.Time
}

func NewWatcher(path string) (*Watcher, error) {
	return NewWatcherWithLoader(path, config.Load)
}

func NewWatcherWithLoader(path string, loader Loader) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// editors often replace the file, so the directory is watched instead
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	w := &Watcher{
		path:     abs,
		loader:   loader,
		fsnotify: fsWatch,
		reloads:  make(chan Reload, 1),
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.start()
	return w, nil
}

func (w *Watcher) start() {
	defer w.wg.Done()
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.handleFileEvent()
			}
		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(err.Error())
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) handleFileEvent() {
	cfg, err := w.loader(w.path)
	r := Reload{Config: cfg, Err: err, LoadedAt: time.Now()}
	if err == nil {
		w.mutex.Lock()
		w.lastLoaded = r.LoadedAt
		w.mutex.Unlock()
	}

	for {
		select {
		case w.reloads <- r:
			return
		default:
		}
		// drop the stale reload nobody picked up yet
		select {
		case <-w.reloads:
		default:
		}
	}
}

// Reloads delivers every reload, successful or not.
func (w *Watcher) Reloads() <-chan Reload {
	return w.reloads
}

// Poll returns the pending config without blocking. Failed reloads are
// logged and skipped.
func (w *Watcher) Poll() (*config.Config, bool) {
	select {
	case r := <-w.reloads:
		if r.Err != nil {
			core.LogWarn("config reload of %s failed: %s", w.path, r.Err.Error())
			return nil, false
		}
		return r.Config, true
	default:
		return nil, false
	}
}

func (w *Watcher) LastLoaded() time.Time {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.lastLoaded
}

func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) Close() error {
	w.mutex.Lock()
	if w.isClosed {
		w.mutex.Unlock()
		return errors.New("watcher already closed")
	}
	w.isClosed = true
	w.mutex.Unlock()

	close(w.done)
	err := w.fsnotify.Close()
	w.wg.Wait()
	return err
}
