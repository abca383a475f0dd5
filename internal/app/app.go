// Package app wires the validation pipeline: load, root-shape check, mode
// detection, schema validation, reporting.
package app

import (
	"errors"
	"io"
	"io/fs"

	"github.com/atvirokodosprendimai/packcheck/internal/adapters/jsonfile"
	"github.com/atvirokodosprendimai/packcheck/internal/adapters/report"
	"github.com/atvirokodosprendimai/packcheck/internal/core/domain"
	"github.com/atvirokodosprendimai/packcheck/internal/core/usecase"
)

// Run executes one validation pass over the document at path and returns
// the process exit code: 0 when the document conforms, 1 on any failure.
// All output goes through the given writers, so runs are stateless and
// repeatable.
func Run(path string, stdout, stderr io.Writer) int {
	rep := report.New(stdout, stderr)

	value, err := jsonfile.Load(path)
	if err != nil {
		var syn *jsonfile.SyntaxError
		switch {
		case errors.Is(err, fs.ErrNotExist):
			rep.Error("File not found: %s", path)
		case errors.As(err, &syn):
			rep.Error("%s: invalid JSON syntax:\n  %s", path, syn)
		default:
			rep.Error("%s: %v", path, err)
		}
		return 1
	}

	doc, ok := value.(map[string]any)
	if !ok {
		rep.Error("Root JSON must be an object, found %s", domain.KindOf(value))
		return 1
	}

	mode, note := usecase.DetectMode(doc)
	switch note {
	case usecase.NoteBothSchemas:
		rep.Warn("JSON contains keys from both GLOBAL and THREAD schemas; treating as GLOBAL for validation.")
	case usecase.NoteUndetermined:
		rep.Warn("Could not determine schema type; assuming GLOBAL.")
	}

	if err := usecase.Validate(doc, usecase.SchemaFor(mode)); err != nil {
		var violation *domain.ErrSchemaViolation
		if errors.As(err, &violation) {
			rep.Failure(path, mode, violation.Errors)
		} else {
			rep.Error("%s: %v", path, err)
		}
		return 1
	}

	rep.Success(path, mode)
	return 0
}
