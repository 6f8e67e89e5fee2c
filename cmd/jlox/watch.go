package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watch runs the script, then runs it again after every change until
// interrupted. Each run gets a fresh interpreter.
func (c *cli) watch(path string) int {
	abs, err := filepath.Abs(path)
	if err != nil {
		fmt.Fprintln(c.stderr, fmt.Errorf("resolving script path: %w", err))
		return exitNoInput
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintln(c.stderr, fmt.Errorf("starting watcher: %w", err))
		return exitNoInput
	}
	defer watcher.Close()

	// The directory is watched so a script replaced by rename stays tracked
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		fmt.Fprintln(c.stderr, fmt.Errorf("watching %s: %w", path, err))
		return exitNoInput
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	c.runFile(path)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return exitOK
			}
			if !isScriptChange(ev, abs) {
				continue
			}
			c.logger.WithField("event", ev.Op.String()).Debug("script changed")
			fmt.Fprintf(c.stdout, "--- %s changed, running again\n", path)
			c.runFile(path)
		case err, ok := <-watcher.Errors:
			if !ok {
				return exitOK
			}
			c.logger.WithError(err).Warn("watch error")
		case <-interrupt:
			return exitOK
		}
	}
}

func isScriptChange(ev fsnotify.Event, script string) bool {
	if filepath.Clean(ev.Name) != script {
		return false
	}
	return ev.Op&(fsnotify.Write|fsnotify.Create) != 0
}
