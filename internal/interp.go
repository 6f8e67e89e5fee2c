package internal

import (
	"bufio"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Print(a ...interface{}) (n int, err error)
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithInput sets the reader used by the read native. Defaults to stdin.
func WithInput(r io.Reader) Option {
	return func(i *Interpreter) {
		i.input = bufio.NewReader(r)
	}
}

// WithLogger sets the logger that receives stage timings at debug level
func WithLogger(logger logrus.FieldLogger) Option {
	return func(i *Interpreter) {
		i.logger = logger
	}
}

// WithMaxCallDepth bounds nested guest calls. Non-positive values keep the default.
func WithMaxCallDepth(depth int) Option {
	return func(i *Interpreter) {
		if depth > 0 {
			i.maxCallDepth = depth
		}
	}
}

// Interpreter runs programs against a root environment that survives
// between runs, so a REPL can build on earlier lines.
type Interpreter struct {
	printer      IPrinter
	input        *bufio.Reader
	logger       logrus.FieldLogger
	maxCallDepth int

	globals *env
}

// NewInterpreter creates an interpreter with the native functions installed
func NewInterpreter(p IPrinter, opts ...Option) *Interpreter {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)

	i := &Interpreter{
		printer:      p,
		input:        bufio.NewReader(os.Stdin),
		logger:       logger,
		maxCallDepth: DefaultMaxCallDepth,
		globals:      newEnv(nil),
	}
	for _, opt := range opts {
		opt(i)
	}

	defineGlobals(i.globals)

	return i
}

// Run scans, parses, resolves and evaluates source. Each stage only runs
// if the previous one produced no diagnostics.
func (i *Interpreter) Run(source string) Diagnostics {
	state := newInterpreterState(source)

	if !i.scan(state) || !i.parse(state) || !i.resolve(state) {
		return state.errors
	}

	start := time.Now()
	exec := &exec{
		globals:      i.globals,
		printer:      i.printer,
		input:        i.input,
		maxCallDepth: i.maxCallDepth,
	}
	if err := exec.interpret(state.stmts); err != nil {
		diag, ok := err.(*Diagnostic)
		if !ok {
			diag = &Diagnostic{Stage: StageRuntime, Length: 1, Message: err.Error()}
		}
		state.errors = append(state.errors, diag)
	}
	i.logStage(StageRuntime, state, start)

	return state.errors
}

func (i *Interpreter) scan(state *interpreterState) bool {
	start := time.Now()
	lexer := &lexer{state: state}
	lexer.scan()
	i.logStage(StageScan, state, start)
	return state.Valid()
}

func (i *Interpreter) parse(state *interpreterState) bool {
	start := time.Now()
	parser := &parser{state: state}
	parser.parse()
	i.logStage(StageParse, state, start)
	return state.Valid()
}

func (i *Interpreter) resolve(state *interpreterState) bool {
	start := time.Now()
	resolver := newResolver(state, i.rootScope())
	resolver.resolve()
	i.logStage(StageResolve, state, start)
	return state.Valid()
}

// rootScope mirrors the names currently bound in the root environment.
// Deriving it on every run keeps the resolver in step with bindings a
// failed run never created.
func (i *Interpreter) rootScope() scope {
	root := make(scope, len(i.globals.values))
	for name, decl := range i.globals.values {
		root[name] = decl.mutable
	}
	return root
}

func (i *Interpreter) logStage(stage Stage, state *interpreterState, start time.Time) {
	i.logger.WithFields(logrus.Fields{
		"stage":       stage.String(),
		"tokens":      len(state.tokens),
		"statements":  len(state.stmts),
		"diagnostics": len(state.errors),
		"elapsed":     time.Since(start),
	}).Debug("stage finished")
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(source string, p IPrinter) Diagnostics {
	return NewInterpreter(p).Run(source)
}

// Tokens scans source and describes every token, one per entry
func Tokens(source string) ([]string, Diagnostics) {
	state := newInterpreterState(source)
	lexer := &lexer{state: state}
	lexer.scan()
	if !state.Valid() {
		return nil, state.errors
	}
	out := make([]string, len(state.tokens))
	for i := range state.tokens {
		out[i] = state.tokens[i].String()
	}
	return out, nil
}

// PrintTree parses source and renders each statement as an S-expression
func PrintTree(source string) (string, Diagnostics) {
	state := newInterpreterState(source)
	lexer := &lexer{state: state}
	lexer.scan()
	if !state.Valid() {
		return "", state.errors
	}
	parser := &parser{state: state}
	parser.parse()
	if !state.Valid() {
		return "", state.errors
	}
	lines := make([]string, len(state.stmts))
	for i, s := range state.stmts {
		lines[i] = stringVisitor{}.stmt(s)
	}
	return strings.Join(lines, "\n"), nil
}
