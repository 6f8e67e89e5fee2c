package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"jlox/internal"

	"github.com/sirupsen/logrus"
)

const version = "1.0.0"

// Exit codes follow sysexits.h
const (
	exitOK      = 0
	exitUsage   = 64
	exitDataErr = 65
	exitNoInput = 66
	exitConfig  = 78
)

type stdPrinter struct {
	out io.Writer
}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Fprintln(s.out, a...)
}

func (s stdPrinter) Print(a ...interface{}) (n int, err error) {
	return fmt.Fprint(s.out, a...)
}

type cli struct {
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	cfg      *config
	logger   *logrus.Logger
	reporter *reporter
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("jlox", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: jlox [flags] [script]")
		fs.PrintDefaults()
	}
	configPath := fs.String("config", defaultConfigFile, "path to the YAML config file")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn or error")
	noColor := fs.Bool("no-color", false, "disable colored diagnostics")
	maxDepth := fs.Int("max-depth", 0, "maximum call depth of guest programs")
	watch := fs.Bool("watch", false, "run the script again every time it changes")
	tokens := fs.Bool("tokens", false, "print the tokens of the script and exit")
	ast := fs.Bool("ast", false, "print the syntax tree of the script and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() > 1 || (fs.NArg() == 0 && (*tokens || *ast || *watch)) {
		fs.Usage()
		return exitUsage
	}

	explicitConfig := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicitConfig = true
		}
	})
	cfg, err := loadConfig(*configPath, explicitConfig)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *maxDepth > 0 {
		cfg.MaxCallDepth = *maxDepth
	}
	if *noColor {
		off := false
		cfg.Color = &off
	}
	if err := cfg.checkVersion(version); err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}
	logger, err := newLogger(cfg.LogLevel, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}

	c := &cli{
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
		cfg:      cfg,
		logger:   logger,
		reporter: newReporter(stderr, cfg.colorEnabled()),
	}

	if fs.NArg() == 0 {
		return c.repl()
	}

	path := fs.Arg(0)
	switch {
	case *tokens:
		return c.dumpTokens(path)
	case *ast:
		return c.dumpTree(path)
	case *watch:
		return c.watch(path)
	}
	return c.runFile(path)
}

func newLogger(level string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return logger, nil
}

func (c *cli) newInterpreter() *internal.Interpreter {
	return internal.NewInterpreter(
		stdPrinter{out: c.stdout},
		internal.WithInput(c.stdin),
		internal.WithLogger(c.logger),
		internal.WithMaxCallDepth(c.cfg.MaxCallDepth),
	)
}

func (c *cli) readSource(path string) (string, bool) {
	b, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(c.stderr, fmt.Errorf("reading script: %w", err))
		return "", false
	}
	return string(b), true
}

func (c *cli) runFile(path string) int {
	source, ok := c.readSource(path)
	if !ok {
		return exitNoInput
	}
	c.logger.WithField("script", path).Debug("running")
	if errs := c.newInterpreter().Run(source); len(errs) > 0 {
		c.reporter.report(source, errs)
		return exitDataErr
	}
	return exitOK
}

func (c *cli) dumpTokens(path string) int {
	source, ok := c.readSource(path)
	if !ok {
		return exitNoInput
	}
	tokens, errs := internal.Tokens(source)
	if len(errs) > 0 {
		c.reporter.report(source, errs)
		return exitDataErr
	}
	for _, tk := range tokens {
		fmt.Fprintln(c.stdout, tk)
	}
	return exitOK
}

func (c *cli) dumpTree(path string) int {
	source, ok := c.readSource(path)
	if !ok {
		return exitNoInput
	}
	tree, errs := internal.PrintTree(source)
	if len(errs) > 0 {
		c.reporter.report(source, errs)
		return exitDataErr
	}
	if tree != "" {
		fmt.Fprintln(c.stdout, tree)
	}
	return exitOK
}
