package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"jlox/internal"

	"github.com/labstack/gommon/color"
	"github.com/mattn/go-isatty"
)

// reporter renders diagnostics against the source they point into
type reporter struct {
	out   io.Writer
	color *color.Color
}

func newReporter(out io.Writer, colored bool) *reporter {
	c := color.New()
	c.SetOutput(out)
	if colored && isTerminal(out) {
		c.Enable()
	} else {
		c.Disable()
	}
	return &reporter{out: out, color: c}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r *reporter) report(source string, errs internal.Diagnostics) {
	for _, d := range errs {
		fmt.Fprintln(r.out, r.format(source, d))
	}
}

func (r *reporter) format(source string, d *internal.Diagnostic) string {
	line, col, text := position(source, d.Offset)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n",
		r.color.Bold(fmt.Sprintf("[%d:%d]", line, col)),
		r.color.Red(fmt.Sprintf("%s error: %s", d.Stage, d.Message)),
	)
	b.WriteString("    " + text + "\n")
	b.WriteString("    " + r.color.Yellow(underline(text, col, d.Length)))
	return b.String()
}

// position converts a byte offset into a 1-based line and rune column and
// returns the text of that line
func position(source string, offset int) (line, col int, text string) {
	if offset > len(source) {
		offset = len(source)
	}
	start := strings.LastIndexByte(source[:offset], '\n') + 1
	end := strings.IndexByte(source[offset:], '\n')
	if end < 0 {
		end = len(source)
	} else {
		end += offset
	}
	line = strings.Count(source[:start], "\n") + 1
	col = utf8.RuneCountInString(source[start:offset]) + 1
	return line, col, strings.TrimRight(source[start:end], "\r")
}

// underline places carets under length bytes starting at col. Tabs in the
// prefix are kept so the carets line up in a terminal.
func underline(text string, col, length int) string {
	var b strings.Builder
	rest := ""
	prefix := 0
	for i, c := range text {
		if prefix == col-1 {
			rest = text[i:]
			break
		}
		if c == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteRune(' ')
		}
		prefix++
	}

	carets := utf8.RuneCountInString(truncate(rest, length))
	if carets < 1 {
		carets = 1
	}
	b.WriteString(strings.Repeat("^", carets))
	return b.String()
}

// truncate returns at most n bytes of s without splitting a rune
func truncate(s string, n int) string {
	if n >= len(s) {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
