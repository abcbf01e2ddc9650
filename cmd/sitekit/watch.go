package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	sitekit "github.com/alnah/go-sitekit"
	"github.com/alnah/go-sitekit/internal/fileutil"
	"github.com/alnah/go-sitekit/internal/logfields"
)

// runWatch normalizes dates once, then again for every content file that
// changes until the context is cancelled.
func runWatch(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseWatchFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	if flags.debounce <= 0 {
		return fmt.Errorf("%w: --debounce must be positive, got %s", ErrUsage, flags.debounce)
	}

	s, err := newSession(flags.common, positional, contentDirArg, env)
	if err != nil {
		return err
	}

	report, err := sitekit.NormalizeDates(ctx, s.cfg.ContentDir, s.opts...)
	if err != nil {
		return err
	}
	if !flags.common.quiet {
		printReport(env.Stdout, report, false)
	}

	w := &watcher{
		root:     s.cfg.ContentDir,
		debounce: flags.debounce,
		logger:   s.logger,
		flush: func(files []string) {
			r, err := sitekit.NormalizeDateFiles(ctx, files, s.opts...)
			if err != nil {
				return
			}
			if len(r.Updated) > 0 && !flags.common.quiet {
				printReport(env.Stdout, r, false)
			}
		},
	}
	w.extensions, err = fileutil.NormalizeExtensions(s.cfg.Extensions)
	if err != nil {
		return err
	}
	return w.run(ctx)
}

// watcher batches filesystem events for content files and hands them to
// flush once no event arrived for the debounce period.
type watcher struct {
	root       string
	extensions []string
	debounce   time.Duration
	logger     *slog.Logger
	flush      func(files []string)
}

// run blocks until ctx is cancelled or the event stream closes.
// Our own atomic writes produce events too; the second pass finds the
// dates canonical and leaves the files alone, so the loop settles.
func (w *watcher) run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer fsw.Close()

	if err := w.addTree(fsw, w.root); err != nil {
		return err
	}
	w.logger.Info("watching for changes", logfields.File(w.root))

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := w.addTree(fsw, event.Name); err != nil {
					w.logger.Warn("cannot watch new directory", logfields.File(event.Name), logfields.Error(err))
				}
				continue
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("change detected", logfields.File(event.Name), slog.String("op", event.Op.String()))
			pending[event.Name] = struct{}{}
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", logfields.Error(err))

		case <-timer.C:
			files := make([]string, 0, len(pending))
			for file := range pending {
				if fileutil.FileExists(file) {
					files = append(files, file)
				}
			}
			clear(pending)
			if len(files) > 0 {
				slices.Sort(files)
				w.flush(files)
			}
		}
	}
}

// relevant reports whether event is a write or create of a content file.
// Temporary files from atomic writes start with a dot and are ignored.
func (w *watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}
	return fileutil.HasExtension(event.Name, w.extensions)
}

// addTree watches dir and its non-hidden subdirectories; fsnotify is not
// recursive.
func (w *watcher) addTree(fsw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := fsw.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		return nil
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
