package source

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/Control-D-Inc/hostname"
)

// Watch calls onChange with the path of any watched file that changes, until
// ctx is done.
//
// Parent directories are watched instead of the files themselves, so files
// replaced by rename are still tracked.
// See: https://github.com/fsnotify/fsnotify#watching-a-file-doesnt-work-well
func Watch(ctx context.Context, paths []string, onChange func(path string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create watcher: %w", err)
	}
	defer watcher.Close()

	files := make(map[string]string, len(paths))
	dirs := make(map[string]struct{})
	for _, p := range paths {
		rp := resolvePath(p)
		files[rp] = p
		dir := filepath.Dir(rp)
		if _, ok := dirs[dir]; ok {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("could not add %s to watcher list: %w", dir, err)
		}
		dirs[dir] = struct{}{}
		hostname.Logger.Load().Debug().Msgf("start watching %s", dir)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			p, ok := files[filepath.Clean(event.Name)]
			if !ok {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) ||
				event.Has(fsnotify.Chmod) || event.Has(fsnotify.Remove) {
				hostname.Logger.Load().Debug().Msgf("%s changed: %s", p, event.Op)
				onChange(p)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			hostname.Logger.Load().Err(err).Msg("could not get event for watched files")
		}
	}
}

// resolvePath returns the absolute path of p, following symlinks if possible.
func resolvePath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	if rp, _ := filepath.EvalSymlinks(p); rp != "" {
		return rp
	}
	return filepath.Clean(p)
}
