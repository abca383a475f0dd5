package usecase

import (
	"fmt"

	"github.com/atvirokodosprendimai/packcheck/internal/core/domain"
)

// DetectionNote flags ambiguity observed while detecting a document's mode.
// Detection still succeeds in the ambiguous cases; the note tells the
// caller which warning, if any, to surface.
type DetectionNote int

const (
	NoteNone DetectionNote = iota
	// NoteBothSchemas: the document mixes keys from both schemas.
	NoteBothSchemas
	// NoteUndetermined: none of the recognized keys are present.
	NoteUndetermined
)

// DetectMode decides whether a document is a global or thread pack from
// its key set alone; field values are never inspected. Ambiguous documents
// default to global.
func DetectMode(doc map[string]any) (domain.Mode, DetectionNote) {
	hasGlobal := containsAny(doc, domain.GlobalSchema)
	hasThread := containsAny(doc, domain.ThreadSchema)

	switch {
	case hasGlobal && !hasThread:
		return domain.ModeGlobal, NoteNone
	case hasThread && !hasGlobal:
		return domain.ModeThread, NoteNone
	case hasGlobal && hasThread:
		return domain.ModeGlobal, NoteBothSchemas
	}
	return domain.ModeGlobal, NoteUndetermined
}

func containsAny(doc map[string]any, schema domain.Schema) bool {
	for _, f := range schema.Fields {
		if _, ok := doc[f.Name]; ok {
			return true
		}
	}
	return false
}

// SchemaFor returns the descriptor a document is validated against under
// the given mode.
func SchemaFor(mode domain.Mode) domain.Schema {
	if mode == domain.ModeThread {
		return domain.ThreadSchema
	}
	return domain.GlobalSchema
}

// Validate checks every descriptor field in declaration order and
// accumulates one message per violation; it never stops early. Keys not
// named by the descriptor are ignored. Returns nil when the document
// conforms, otherwise *domain.ErrSchemaViolation carrying the full report.
func Validate(doc map[string]any, schema domain.Schema) error {
	var errs []string
	for _, f := range schema.Fields {
		v, ok := doc[f.Name]
		if !ok {
			errs = append(errs, fmt.Sprintf("Missing required key: %s", f.Name))
			continue
		}
		if got := domain.KindOf(v); got != f.Want {
			errs = append(errs, fmt.Sprintf("Key '%s' must be %s, found %s", f.Name, f.Phrase, got))
		}
	}
	if len(errs) > 0 {
		return &domain.ErrSchemaViolation{Mode: schema.Mode, Errors: errs}
	}
	return nil
}
