package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/rolodex/rolodex/pkg/telemetry"
)

// Watcher reloads the config file when it changes on disk and hands the
// result to a callback. Reload failures are logged and the previous
// configuration stays in effect.
type Watcher struct {
	watcher  *fsnotify.Watcher
	logger   *telemetry.Logger
	path     string
	onChange func(*Config)
	done     chan struct{}
}

// Watch starts watching the config file at path. The containing
// directory is watched rather than the file itself, since editors
// typically replace the file on save.
func Watch(path string, logger *telemetry.Logger, onChange func(*Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch config directory: %w", err)
	}

	w := &Watcher{
		watcher:  fw,
		logger:   logger.NewComponentLogger("config-watcher"),
		path:     path,
		onChange: onChange,
		done:     make(chan struct{}),
	}

	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			cfg, err := Load(w.path)
			if err != nil {
				w.logger.WithError(err).Warn("Config reload failed, keeping previous configuration")
				continue
			}
			w.logger.Debug("Config reloaded")
			w.onChange(cfg)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.WithError(err).Warn("Config watcher error")

		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
