// Package report renders validation outcomes and diagnostics for the
// terminal. Success lines go to stdout; warnings and errors go to stderr.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/atvirokodosprendimai/packcheck/internal/core/domain"
)

// Reporter writes human-readable outcome lines to the process output
// streams. Status tags are colored only when the stream is a terminal.
type Reporter struct {
	out io.Writer
	err io.Writer
}

func New(out, err io.Writer) *Reporter {
	return &Reporter{out: out, err: err}
}

// Success prints the single line emitted when a document passes validation.
func (r *Reporter) Success(path string, mode domain.Mode) {
	fmt.Fprintf(r.out, "%s %s is valid %s JSON.\n", color.GreenString("[OK]"), path, upper(mode))
}

// Failure prints the failure header followed by one indented bullet per
// violation, in report order.
func (r *Reporter) Failure(path string, mode domain.Mode, errs []string) {
	fmt.Fprintf(r.err, "%s %s failed %s validation:\n", color.RedString("[FAIL]"), path, upper(mode))
	for _, e := range errs {
		fmt.Fprintf(r.err, "  - %s\n", e)
	}
}

// Warn prints a non-fatal diagnostic. Warnings never affect the exit code.
func (r *Reporter) Warn(msg string) {
	fmt.Fprintf(r.err, "%s %s\n", color.YellowString("[WARN]"), msg)
}

// Error prints a fatal diagnostic.
func (r *Reporter) Error(format string, args ...any) {
	fmt.Fprintf(r.err, "%s %s\n", color.RedString("[ERROR]"), fmt.Sprintf(format, args...))
}

func upper(mode domain.Mode) string {
	return strings.ToUpper(string(mode))
}
