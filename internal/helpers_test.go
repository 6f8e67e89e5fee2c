package internal

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

type testPrinter struct {
	printed string
}

func (t *testPrinter) Println(a ...interface{}) (n int, err error) {
	t.Print(a...)
	t.printed += "\n"
	return 0, nil
}

func (t *testPrinter) Print(a ...interface{}) (n int, err error) {
	for i, e := range a {
		if i != 0 {
			t.printed += " "
		}
		t.printed += fmt.Sprintf("%v", e)
	}
	return 0, nil
}

func (t *testPrinter) Equals(p string) bool {
	if t.printed == p+"\n" {
		t.Reset()
		return true
	}
	return false
}

func (t *testPrinter) Reset() {
	t.printed = ""
}

// diff renders the difference between the expected and found text
func diff(expected, found string) string {
	dmp := diffmatchpatch.New()
	return dmp.DiffPrettyText(dmp.DiffMain(expected, found, false))
}

func checkExpression(t *testing.T, exp string, result ...string) {
	t.Helper()
	source := "print " + exp + ";"
	tp := &testPrinter{}
	if errs := RunSourceWithPrinter(source, tp); len(errs) > 0 {
		t.Errorf("Error on: \n%s\n\tunexpected diagnostics: %v", exp, errs)
		return
	}
	matched := false
	for _, r := range result {
		if tp.Equals(r) {
			matched = true
			break
		}
	}
	if !matched {
		t.Errorf(
			"Error on: \n%s\n\tResult should be equal to %s instead of %s",
			exp,
			result,
			tp.printed,
		)
	}
}

func checkStatements(t *testing.T, code string, resultVar string, result string) {
	t.Helper()
	source := code + "\nprint " + resultVar + ";"
	tp := &testPrinter{}
	if errs := RunSourceWithPrinter(source, tp); len(errs) > 0 {
		t.Errorf("Error on: \n%s\n\tunexpected diagnostics: %v", code, errs)
		return
	}
	if !tp.Equals(result) {
		t.Errorf(
			"Error on: \n%s\n\t%s should be equal to %s instead of %s",
			code,
			resultVar,
			result,
			tp.printed,
		)
	}
}

// checkOutput runs source and compares everything it printed
func checkOutput(t *testing.T, source string, lines ...string) {
	t.Helper()
	tp := &testPrinter{}
	if errs := RunSourceWithPrinter(source, tp); len(errs) > 0 {
		t.Errorf("\nSource:\n----\n%s\n----\nunexpected diagnostics: %v", source, errs)
		return
	}
	expected := ""
	if len(lines) > 0 {
		expected = strings.Join(lines, "\n") + "\n"
	}
	if tp.printed != expected {
		t.Errorf("\nSource:\n----\n%s\n----\nOutput diff:\n%s", source, diff(expected, tp.printed))
	}
}

// checkErrorMsg expects the first diagnostic of source to match stage and message
func checkErrorMsg(t *testing.T, source string, stage Stage, errorMsg string) {
	t.Helper()
	tp := &testPrinter{}
	errs := RunSourceWithPrinter(source, tp)
	if len(errs) == 0 {
		t.Errorf("\nSource:\n----\n%s\n----\nExpected %s error %q, found none", source, stage, errorMsg)
		return
	}
	if errs[0].Stage != stage || errs[0].Message != errorMsg {
		t.Errorf(
			"\nSource:\n----\n%s\n----\nExpected:\n----\n%s: %s\n----\nFound:\n----\n%s: %s\n----",
			source,
			stage,
			errorMsg,
			errs[0].Stage,
			errs[0].Message,
		)
	}
}
