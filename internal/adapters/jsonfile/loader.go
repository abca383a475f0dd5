// Package jsonfile loads a single UTF-8 encoded JSON document from disk.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// SyntaxError reports malformed JSON content. Line and Col locate the
// offending byte (1-based) when the decoder supplied an offset; both are
// zero when no position is known (e.g. truncated input).
type SyntaxError struct {
	Path string
	Line int
	Col  int
	Err  error
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v (line %d, column %d)", e.Err, e.Line, e.Col)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Load reads path and decodes its contents into a generic JSON value.
// Read failures are returned as-is (callers test with errors.Is against
// fs.ErrNotExist); decode failures are wrapped in *SyntaxError.
func Load(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		se := &SyntaxError{Path: path, Err: err}
		var jse *json.SyntaxError
		if errors.As(err, &jse) {
			se.Line, se.Col = lineCol(data, jse.Offset)
		}
		return nil, se
	}
	return v, nil
}

// lineCol converts the decoder's byte offset into a 1-based position.
func lineCol(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	line, col = 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
