package prefabs

import (
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Watcher reports prefab and script files that changed on disk.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isSpecFile(event.Name) && !isScriptFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- event.Name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}

// Reloader rebuilds Tuning whenever a watched file changes. The game loop
// picks the newest result up with Poll, so tuning is only swapped between
// sessions on the game goroutine.
type Reloader struct {
	watcher *Watcher
	dir     string
	seen    map[string]time.Time
	latest  chan *Tuning
	done    chan struct{}
}

// NewReloader watches dir (and its scripts subdirectory when present). dir
// is expected to be Dir, the directory Load reads overrides from.
func NewReloader(dir string) (*Reloader, error) {
	dirs := []string{dir}
	scripts := filepath.Join(dir, "scripts")
	if isDir(scripts) {
		dirs = append(dirs, scripts)
	}
	w, err := NewWatcher(dirs...)
	if err != nil {
		return nil, err
	}
	r := &Reloader{
		watcher: w,
		dir:     dir,
		seen:    make(map[string]time.Time),
		latest:  make(chan *Tuning, 1),
		done:    make(chan struct{}),
	}
	go r.run()
	return r, nil
}

func (r *Reloader) run() {
	defer close(r.done)
	for {
		select {
		case name, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if !r.modified(name) {
				continue
			}
			t, err := LoadTuning()
			if err != nil {
				log.Printf("prefabs: reload %s: %v", name, err)
				continue
			}
			log.Printf("prefabs: reloaded after change to %s", filepath.Base(name))
			select {
			case <-r.latest:
			default:
			}
			r.latest <- t
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("prefabs: watch: %v", err)
		}
	}
}

// modified reports whether the file at path has a different mod time than
// when it last triggered a reload. A file that is gone counts as modified,
// since the embedded copy takes over.
func (r *Reloader) modified(path string) bool {
	name := filepath.Base(path)
	if rel, err := filepath.Rel(r.dir, path); err == nil {
		name = filepath.ToSlash(rel)
	}
	mt, ok := ModTime(name)
	if !ok {
		delete(r.seen, name)
		return true
	}
	if prev, seen := r.seen[name]; seen && prev.Equal(mt) {
		return false
	}
	r.seen[name] = mt
	return true
}

// Poll returns the newest reloaded tuning, if any arrived since the last call.
func (r *Reloader) Poll() (*Tuning, bool) {
	if r == nil {
		return nil, false
	}
	select {
	case t := <-r.latest:
		return t, true
	default:
		return nil, false
	}
}

func (r *Reloader) Close() error {
	if r == nil {
		return nil
	}
	err := r.watcher.Close()
	<-r.done
	return err
}
