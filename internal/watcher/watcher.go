// Package watcher reports changes to script files.
//
// A Watcher observes the directory containing each added file, so editors
// that save by writing a temporary file and renaming it over the original
// are still seen. Bursts of events for the same file are coalesced into a
// single Event once the file has been quiet for the debounce delay.
package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/navvec/internal/logging"
)

// Errors returned by the watcher.
var (
	// ErrWatcherClosed indicates the watcher has been closed.
	ErrWatcherClosed = errors.New("watcher closed")

	// ErrPathNotExist indicates the path does not exist.
	ErrPathNotExist = errors.New("path does not exist")

	// ErrAlreadyWatching indicates the file is already being watched.
	ErrAlreadyWatching = errors.New("already watching path")

	// ErrIsDirectory indicates a directory was passed where a file is required.
	ErrIsDirectory = errors.New("path is a directory")
)

// DefaultDebounce is used when no positive delay is configured.
const DefaultDebounce = 100 * time.Millisecond

// Op describes what happened to a file. Ops combine as bit flags when
// events are coalesced.
type Op uint8

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
)

// String returns a readable form like "CREATE|WRITE".
func (op Op) String() string {
	var names []string
	if op&OpCreate != 0 {
		names = append(names, "CREATE")
	}
	if op&OpWrite != 0 {
		names = append(names, "WRITE")
	}
	if op&OpRemove != 0 {
		names = append(names, "REMOVE")
	}
	if op&OpRename != 0 {
		names = append(names, "RENAME")
	}
	if len(names) == 0 {
		return "NONE"
	}
	s := names[0]
	for _, n := range names[1:] {
		s += "|" + n
	}
	return s
}

// Event reports a settled change to a watched file.
type Event struct {
	Path      string
	Op        Op
	Timestamp time.Time
}

// Watcher watches individual files for changes.
type Watcher struct {
	mu     sync.Mutex
	fsw    *fsnotify.Watcher
	delay  time.Duration
	logger *logging.Logger

	files  map[string]bool
	dirs   map[string]bool
	closed bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before an event is delivered.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.delay = d
		}
	}
}

// WithLogger sets the logger used for watcher errors.
func WithLogger(l *logging.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates a watcher.
func New(opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:    fsw,
		delay:  DefaultDebounce,
		logger: logging.Null(),
		files:  make(map[string]bool),
		dirs:   make(map[string]bool),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Add starts watching the file at path.
func (w *Watcher) Add(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrPathNotExist
		}
		return err
	}
	if info.IsDir() {
		return ErrIsDirectory
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if w.files[absPath] {
		return ErrAlreadyWatching
	}

	dir := filepath.Dir(absPath)
	if !w.dirs[dir] {
		if err := w.fsw.Add(dir); err != nil {
			return err
		}
		w.dirs[dir] = true
	}
	w.files[absPath] = true
	return nil
}

// Files returns the watched files, sorted.
func (w *Watcher) Files() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]string, 0, len(w.files))
	for f := range w.files {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Run delivers debounced events to fn until ctx is done or the watcher is
// closed. fn is called from Run's goroutine, one event at a time.
func (w *Watcher) Run(ctx context.Context, fn func(Event)) error {
	pending := make(map[string]Op)
	var timer *time.Timer
	var fire <-chan time.Time

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return ErrWatcherClosed
			}
			path, op := w.filter(ev)
			if op == 0 {
				continue
			}
			pending[path] |= op

			if timer == nil {
				timer = time.NewTimer(w.delay)
			} else {
				timer.Reset(w.delay)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return ErrWatcherClosed
			}
			w.logger.Warn("watch error: %v", err)

		case now := <-fire:
			fire = nil
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			for _, p := range paths {
				fn(Event{Path: p, Op: pending[p], Timestamp: now})
				delete(pending, p)
			}
		}
	}
}

// filter maps an fsnotify event onto a watched file. Events for other files
// in the same directory, and chmod-only events, yield op 0.
func (w *Watcher) filter(ev fsnotify.Event) (string, Op) {
	path, err := filepath.Abs(ev.Name)
	if err != nil {
		return "", 0
	}

	w.mu.Lock()
	watched := w.files[path]
	w.mu.Unlock()
	if !watched {
		return "", 0
	}
	return path, convertOp(ev.Op)
}

// convertOp converts fsnotify.Op to Op.
func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	if fsOp.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fsOp.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fsOp.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fsOp.Has(fsnotify.Rename) {
		op |= OpRename
	}
	return op
}

// Close stops the watcher. A running Run returns ErrWatcherClosed.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	return w.fsw.Close()
}
