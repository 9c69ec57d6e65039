package internal

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

type watcher struct {
	fs         *fsnotify.Watcher
	dirs       []string
	isWatching atomic.Bool
	outputPath func(string) string
}

// StartWatching re-processes Lua files under the given directories
// whenever they change, writing each result to outputPath(file).
func (e *Engine) StartWatching(dirs []string, outputPath func(string) string) error {
	if e.watcher != nil && e.watcher.isWatching.Load() {
		return fmt.Errorf("already watching")
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	e.watcher = &watcher{fs: fs, dirs: dirs, outputPath: outputPath}

	for _, dir := range dirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return fs.Add(path)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	e.watcher.isWatching.Store(true)
	go e.watchLoop()
	return nil
}

// StopWatching stops a running watch loop.
func (e *Engine) StopWatching() error {
	if e.watcher == nil || !e.watcher.isWatching.Load() {
		log.Println("not watching")
		return nil
	}
	e.watcher.isWatching.Store(false)
	return e.watcher.fs.Close()
}

func (e *Engine) watchLoop() {
	for e.watcher.isWatching.Load() {
		select {
		case event, ok := <-e.watcher.fs.Events:
			if !ok {
				return
			}
			e.handleFileEvent(event)
		case err, ok := <-e.watcher.fs.Errors:
			if !ok {
				return
			}
			log.Printf("error: %v", err)
		}
	}
}

func (e *Engine) handleFileEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !HasLuaExtension(event.Name) {
		return
	}
	destination := e.watcher.outputPath(event.Name)
	if destination == event.Name {
		// processing our own output would loop forever
		return
	}

	// wait for a while after file change to consider multiple changes as one
	time.Sleep(100 * time.Millisecond)

	result, err := e.ProcessFile(event.Name)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if err := os.WriteFile(destination, []byte(result.Output), 0o644); err != nil {
		log.Printf("error writing %s: %v", destination, err)
		return
	}
	log.Printf("%s: %d -> %d bytes", event.Name, result.OriginalSize, result.MinifiedSize)
}
