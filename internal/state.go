package internal

import (
	"fmt"
	"strings"
)

// Stage names the pipeline stage that produced a diagnostic
type Stage int

// Pipeline stages, in execution order
const (
	StageScan Stage = iota
	StageParse
	StageResolve
	StageRuntime
)

func (s Stage) String() string {
	switch s {
	case StageScan:
		return "Scan"
	case StageParse:
		return "Parse"
	case StageResolve:
		return "Resolve"
	case StageRuntime:
		return "Runtime"
	}
	return "Unknown"
}

// Diagnostic is a positioned error record. Offset and Length are byte
// positions into the source that was run.
type Diagnostic struct {
	Stage   Stage
	Offset  int
	Length  int
	Message string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s error at %d: %s", d.Stage, d.Offset, d.Message)
}

// Diagnostics groups the diagnostics of one run. All entries share a stage
// because a stage with diagnostics stops the pipeline.
type Diagnostics []*Diagnostic

// Err returns nil for an empty list and the list itself otherwise
func (ds Diagnostics) Err() error {
	if len(ds) == 0 {
		return nil
	}
	return ds
}

// Stage returns the stage of the first diagnostic
func (ds Diagnostics) Stage() Stage {
	if len(ds) == 0 {
		return StageScan
	}
	return ds[0].Stage
}

func (ds Diagnostics) Error() string {
	msgs := make([]string, len(ds))
	for i, d := range ds {
		msgs[i] = d.Error()
	}
	return strings.Join(msgs, "\n")
}

func newDiagnostic(stage Stage, tk *token, message string) *Diagnostic {
	length := tk.length
	if length == 0 {
		length = 1
	}
	return &Diagnostic{
		Stage:   stage,
		Offset:  tk.offset,
		Length:  length,
		Message: message,
	}
}

// runtimeErr builds the diagnostic returned by the evaluator
func runtimeErr(tk *token, format string, a ...interface{}) *Diagnostic {
	return newDiagnostic(StageRuntime, tk, fmt.Sprintf(format, a...))
}

// interpreterState stores the products and diagnostics of one run
type interpreterState struct {
	source string
	tokens []token
	stmts  []stmt
	errors Diagnostics
}

func newInterpreterState(source string) *interpreterState {
	return &interpreterState{source: source, errors: make(Diagnostics, 0)}
}

func (s *interpreterState) setError(stage Stage, tk *token, format string, a ...interface{}) {
	s.errors = append(s.errors, newDiagnostic(stage, tk, fmt.Sprintf(format, a...)))
}

func (s *interpreterState) setErrorAt(stage Stage, offset, length int, format string, a ...interface{}) {
	s.errors = append(s.errors, &Diagnostic{
		Stage:   stage,
		Offset:  offset,
		Length:  length,
		Message: fmt.Sprintf(format, a...),
	})
}

// Valid returns true if no diagnostics were collected
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}
