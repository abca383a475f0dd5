package domain

import (
	"fmt"
	"strings"
)

// Mode identifies which of the two built-in schemas applies to a document.
type Mode string

const (
	ModeGlobal Mode = "global"
	ModeThread Mode = "thread"
)

// Field is one required top-level entry in a schema descriptor. Phrase is
// the wording used in kind-mismatch messages, e.g. "a list (array)".
type Field struct {
	Name   string
	Want   Kind
	Phrase string
}

// Schema is an ordered descriptor of required top-level fields. Validation
// walks Fields in declaration order, so message order is stable. The two
// descriptors below are static and never mutated.
type Schema struct {
	Mode   Mode
	Fields []Field
}

// GlobalSchema describes the cross-cutting reasoning pack shape: eight
// top-level keys, each holding a list.
var GlobalSchema = Schema{
	Mode: ModeGlobal,
	Fields: []Field{
		{Name: "context_you_should_have_used", Want: KindList, Phrase: "a list (array)"},
		{Name: "thought_process_failures", Want: KindList, Phrase: "a list (array)"},
		{Name: "failure_patterns", Want: KindList, Phrase: "a list (array)"},
		{Name: "grok_strengths_and_limitations", Want: KindList, Phrase: "a list (array)"},
		{Name: "multi_llm_roles", Want: KindList, Phrase: "a list (array)"},
		{Name: "power_user_best_practices", Want: KindList, Phrase: "a list (array)"},
		{Name: "team_of_models_architecture", Want: KindList, Phrase: "a list (array)"},
		{Name: "reasoning_strategy_pack", Want: KindList, Phrase: "a list (array)"},
	},
}

// ThreadSchema describes a single conversation thread's pack: three string
// fields followed by four list fields.
var ThreadSchema = Schema{
	Mode: ModeThread,
	Fields: []Field{
		{Name: "thread_name", Want: KindString, Phrase: "a string"},
		{Name: "primary_goal", Want: KindString, Phrase: "a string"},
		{Name: "niche_or_topic", Want: KindString, Phrase: "a string"},
		{Name: "tasks_for_grok", Want: KindList, Phrase: "a list"},
		{Name: "hard_constraints", Want: KindList, Phrase: "a list"},
		{Name: "output_requirements", Want: KindList, Phrase: "a list"},
		{Name: "priority_rules", Want: KindList, Phrase: "a list"},
	},
}

// ErrSchemaViolation is returned when a document does not conform to the
// detected schema. Errors holds one human-readable message per violation,
// in descriptor declaration order.
type ErrSchemaViolation struct {
	Mode   Mode
	Errors []string
}

func (e *ErrSchemaViolation) Error() string {
	return fmt.Sprintf("%s schema validation failed: %s", e.Mode, strings.Join(e.Errors, "; "))
}
