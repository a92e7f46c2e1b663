package extend

import (
	"bytes"
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/syssam/modelx"
	"github.com/syssam/modelx/definition"
)

// Watch runs one extension pass and then re-applies a model whenever
// its definition file changes on disk. It is a development helper: the
// extension pass stays the only writer of the model handles and runs
// synchronously inside the watch loop.
//
// A rewrite that does not change the decoded document (reformatting,
// key reordering) is detected through document snapshots and skipped.
// Watch blocks until ctx is done or the pass fails.
func Watch(ctx context.Context, reg *modelx.Registry, models any, opts ...Option) error {
	o, err := NewOptions(opts...)
	if err != nil {
		return err
	}
	reqs, err := normalizeRequests(models, o)
	if err != nil {
		return err
	}
	requests := make(map[string]Request, len(reqs))
	snapshots := make(map[string][]byte, len(reqs))
	for _, req := range reqs {
		if err := extendOne(reg, req, o); err != nil {
			return err
		}
		path := filepath.Clean(req.path())
		requests[path] = req
		doc, err := definition.Load(path)
		if err != nil {
			return err
		}
		snap, err := doc.Snapshot()
		if err != nil {
			return err
		}
		snapshots[path] = snap
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// Watch directories: editors replace files on save, and a watch on
	// the file itself is lost with the old inode.
	dirs := make(map[string]struct{})
	for path := range requests {
		dir := filepath.Dir(path)
		if _, ok := dirs[dir]; ok {
			continue
		}
		dirs[dir] = struct{}{}
		if err := watcher.Add(dir); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			path := filepath.Clean(ev.Name)
			req, ok := requests[path]
			if !ok {
				continue
			}
			doc, err := definition.Load(path)
			if err != nil {
				// Editors write in chunks; a half-written file is
				// retried on the next event.
				o.Logger.Warn().Err(err).Str("path", path).Msg("skipping unreadable definition")
				continue
			}
			snap, err := doc.Snapshot()
			if err != nil {
				return err
			}
			if bytes.Equal(snap, snapshots[path]) {
				continue
			}
			if err := extendOne(reg, req, o); err != nil {
				return err
			}
			snapshots[path] = snap
			o.Logger.Info().Str("model", req.Name).Str("path", path).Msg("definition reloaded")
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
