package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

const (
	historyFile = ".jlox_history"
	prompt      = "> "
)

func (c *cli) historyPath() string {
	path := c.cfg.HistoryFile
	home, err := os.UserHomeDir()
	if path == "" {
		if err != nil {
			return ""
		}
		return filepath.Join(home, historyFile)
	}
	if strings.HasPrefix(path, "~/") && err == nil {
		return filepath.Join(home, path[2:])
	}
	return path
}

func (c *cli) repl() int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath := c.historyPath(); histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			f, err := os.Create(histPath)
			if err != nil {
				c.logger.WithError(err).Warn("cannot save history")
				return
			}
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}()
	}

	interp := c.newInterpreter()
	fmt.Fprintf(c.stdout, "jlox %s, :quit to exit\n", version)

	for {
		line, err := ln.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(c.stdout)
				return exitOK
			}
			fmt.Fprintln(c.stderr, fmt.Errorf("reading input: %w", err))
			return exitNoInput
		}

		trimmed := strings.TrimSpace(line)
		switch trimmed {
		case "":
			continue
		case ":quit":
			return exitOK
		}
		ln.AppendHistory(line)

		// A trailing ';' is optional on the prompt, a doubled one is an
		// empty statement
		source := line + ";"
		if errs := interp.Run(source); len(errs) > 0 {
			c.reporter.report(source, errs)
		}
	}
}
