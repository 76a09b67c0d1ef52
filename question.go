package inquire

import (
	"context"
	"fmt"
)

// Answers holds previously collected answers keyed by question name.
// The map is owned by the caller and is read-only inside this package;
// it is passed through to Filter, Validate, and When so cross-field
// logic can inspect earlier answers.
type Answers map[string]any

// String returns the answer for name as a string, or "" when absent
// or of another type.
func (a Answers) String(name string) string {
	s, _ := a[name].(string)
	return s
}

// Bool returns the answer for name as a bool, or false when absent
// or of another type.
func (a Answers) Bool(name string) bool {
	b, _ := a[name].(bool)
	return b
}

// Filter transforms a raw submit attempt before validation, e.g. trimming
// or type coercion. It may block; a returned error rejects the attempt
// and skips validation.
type Filter func(ctx context.Context, value any, answers Answers) (any, error)

// Validate decides whether a filtered value is acceptable. A nil return
// accepts the value; a non-nil error rejects it and carries the message
// shown to the user. It may block.
type Validate func(ctx context.Context, value any, answers Answers) error

// When decides whether a question should be asked at all. A false return
// skips the question and resolves it to its default.
type When func(answers Answers) bool

// QuestionType discriminates the prompt variant a question is rendered with.
type QuestionType int

// Question types supported by the built-in drivers.
const (
	TypeInput    QuestionType = iota // free text
	TypePassword                     // masked text, default hint hidden
	TypeConfirm                      // yes/no
	TypeList                         // pick one from Choices
)

// Question describes a single prompt. Only Name is required; every other
// field has a documented default applied by the resolver. A Question is
// immutable once resolved.
type Question struct {
	Name           string       // answer key, required and unique
	Message        string       // question text (default: Name + ":")
	Default        any          // preselected answer, also used when input is empty
	Type           QuestionType // variant discriminator (default: TypeInput)
	Prefix         string       // glyph before the message (default: "?")
	Suffix         string       // text after the message (default: "")
	Filter         Filter       // default: identity
	Validate       Validate     // default: accept all
	When           When         // default: always ask
	FilteringText  string       // spinner caption while Filter runs
	ValidatingText string       // spinner caption while Validate runs
	Choices        []Choice     // list variant options
	Mask           rune         // password echo rune (default: '*')

	// bound choice collection, populated by the resolver
	choices *Choices
}

// ConfigError reports an invalid question configuration. It is returned
// synchronously from New, before any goroutine or channel exists, and is
// never recoverable.
type ConfigError struct {
	Param  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("inquire: question parameter %q %s", e.Param, e.Reason)
}

func missingParamError(param string) *ConfigError {
	return &ConfigError{Param: param, Reason: "is required"}
}

// resolveQuestion merges q with defaults and returns a fully populated
// copy. Defaults are applied only for zero-valued fields. The Choices
// slice, when present, is wrapped into a collection deduplicated by key
// and bound to the answer set.
func resolveQuestion(q Question, answers Answers) (Question, error) {
	if q.Name == "" {
		return Question{}, missingParamError("name")
	}
	if q.Message == "" {
		q.Message = q.Name + ":"
	}
	if q.Prefix == "" {
		q.Prefix = "?"
	}
	if q.Filter == nil {
		q.Filter = func(_ context.Context, value any, _ Answers) (any, error) {
			return value, nil
		}
	}
	if q.Validate == nil {
		q.Validate = func(context.Context, any, Answers) error {
			return nil
		}
	}
	if q.When == nil {
		q.When = func(Answers) bool { return true }
	}
	if q.Mask == 0 {
		q.Mask = '*'
	}
	if len(q.Choices) > 0 {
		q.choices = newChoices(q.Choices, answers)
	}
	return q, nil
}

// choiceList returns the bound choice collection, or nil when the
// question has no choices.
func (q Question) choiceList() *Choices {
	return q.choices
}
