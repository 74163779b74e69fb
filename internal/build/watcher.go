package build

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/wex/internal/tokens"
)

// ErrRemoteSource is returned when asked to watch a token source URL.
var ErrRemoteSource = errors.New("remote token sources cannot be watched")

// RunHook observes every generation run a Watcher performs.
type RunHook func(*Result, error)

// Watcher regenerates outputs whenever the token source changes on disk.
// It watches the source's directory so editors that save by renaming a
// temporary file into place are picked up.
type Watcher struct {
	generator *Generator
	opts      Options
	logger    hclog.Logger
	hook      RunHook
}

// NewWatcher creates a watcher for opts.Source. The generator must be backed
// by the operating system filesystem.
func NewWatcher(g *Generator, opts Options, logger hclog.Logger) *Watcher {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Watcher{
		generator: g,
		opts:      opts,
		logger:    logger.Named("watch"),
	}
}

// OnRun registers a hook called after each run, including the first.
func (w *Watcher) OnRun(hook RunHook) *Watcher {
	w.hook = hook
	return w
}

// Run generates once and then keeps regenerating until ctx is cancelled.
// A failure of the first run is returned; later failures are logged and
// watching continues. Returns nil when ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	if tokens.IsRemote(w.opts.Source) {
		return fmt.Errorf("%w: %s", ErrRemoteSource, w.opts.Source)
	}

	source, err := filepath.Abs(w.opts.Source)
	if err != nil {
		return fmt.Errorf("failed to resolve source path: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fsWatcher.Close()

	if err := fsWatcher.Add(filepath.Dir(source)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(source), err)
	}

	if _, err := w.run(ctx); err != nil {
		return err
	}

	w.logger.Info("watching token source", "path", source)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("stopping watcher")
			return nil

		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(source, event) {
				continue
			}
			w.logger.Debug("source changed", "path", event.Name, "op", event.Op.String())

			w.drain(fsWatcher)
			if _, err := w.run(ctx); err != nil {
				w.logger.Error("regeneration failed", "error", err)
			}

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", "error", err)
		}
	}
}

// relevant reports whether event should trigger a regeneration.
func (w *Watcher) relevant(source string, event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != source {
		return false
	}
	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		w.logger.Warn("token source moved or removed, waiting for it to return", "path", source)
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// drain discards events already queued so a burst of writes regenerates once.
func (w *Watcher) drain(fsWatcher *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return
			}
			w.logger.Trace("coalesced event", "path", event.Name, "op", event.Op.String())
		default:
			return
		}
	}
}

func (w *Watcher) run(ctx context.Context) (*Result, error) {
	result, err := w.generator.Run(ctx, w.opts)
	if err == nil {
		w.logger.Info("generated outputs", "written", len(result.Written), "unchanged", len(result.Unchanged))
	}
	if w.hook != nil {
		w.hook(result, err)
	}
	return result, err
}
