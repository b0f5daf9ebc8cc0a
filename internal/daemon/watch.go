//go:build unix

package daemon

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watchRegistry reloads the pack registry when its backing file changes on
// disk, so edits made by a second CLI process (or by hand) are picked up
// without restarting the daemon. The parent directory is watched because the
// registry writes via temp-file rename, which replaces the watched inode.
func (d *Daemon) watchRegistry() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	registryFile := d.registry.FilePath()
	if err := watcher.Add(filepath.Dir(registryFile)); err != nil {
		watcher.Close()
		return err
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(registryFile) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if err := d.registry.Load(); err != nil {
					d.log.Warn("registry reload failed", "err", err)
				} else {
					d.log.Debug("registry reloaded", "file", registryFile)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				d.log.Warn("registry watch error", "err", err)
			case <-done:
				return
			}
		}
	}()

	d.stopWatch = func() {
		close(done)
		watcher.Close()
	}
	return nil
}
