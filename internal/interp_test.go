package internal

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestStageLogging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	i := NewInterpreter(&testPrinter{}, WithLogger(logger))
	if errs := i.Run("print 1;"); len(errs) > 0 {
		t.Fatalf("unexpected diagnostics: %v", errs)
	}

	stages := []string{"Scan", "Parse", "Resolve", "Runtime"}
	entries := hook.AllEntries()
	if len(entries) != len(stages) {
		t.Fatalf("expected one entry per stage, got %d", len(entries))
	}
	for n, entry := range entries {
		if entry.Level != logrus.DebugLevel {
			t.Errorf("stage entries are debug level, got %s", entry.Level)
		}
		if entry.Data["stage"] != stages[n] {
			t.Errorf("entry %d: expected stage %s, got %v", n, stages[n], entry.Data["stage"])
		}
	}
	if entries[0].Data["tokens"] != 4 {
		t.Errorf("scan entry should count tokens, got %v", entries[0].Data["tokens"])
	}
}

func TestStageLoggingStopsAtFailingStage(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	errs := NewInterpreter(&testPrinter{}, WithLogger(logger)).Run("print ;")
	if len(errs) != 1 || errs.Stage() != StageParse {
		t.Fatalf("expected a parse diagnostic, got %v", errs)
	}
	last := hook.LastEntry()
	if last == nil || last.Data["stage"] != "Parse" || last.Data["diagnostics"] != 1 {
		t.Errorf("parse should be the last logged stage, got %+v", last)
	}
}

func TestDiagnostics(t *testing.T) {
	var empty Diagnostics
	if empty.Err() != nil {
		t.Error("no diagnostics should mean no error")
	}

	errs := RunSourceWithPrinter("print a; print b;", &testPrinter{})
	if errs.Err() == nil {
		t.Fatal("diagnostics should surface as an error")
	}
	expected := "Resolve error at 6: Undeclared identifier `a`\nResolve error at 15: Undeclared identifier `b`"
	if errs.Error() != expected {
		t.Errorf("unexpected error text:\n%s", diff(expected, errs.Error()))
	}
}

func TestPrintTreeReportsDiagnostics(t *testing.T) {
	if _, errs := PrintTree("print 'ab';"); len(errs) != 1 || errs[0].Stage != StageScan {
		t.Errorf("expected a scan diagnostic, got %v", errs)
	}
	if _, errs := PrintTree("print ;"); len(errs) != 1 || errs[0].Stage != StageParse {
		t.Errorf("expected a parse diagnostic, got %v", errs)
	}
	if tree, errs := PrintTree("print x;\nprint y;"); len(errs) != 0 || tree != "(print x)\n(print y)" {
		t.Errorf("unexpected tree %q, %v", tree, errs)
	}
}
