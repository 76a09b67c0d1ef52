package inquire

import (
	"fmt"
	"strings"
)

// QuestionLine builds the display string for a question: prefix, message,
// suffix, and the default-value hint. It is a pure function of the resolved
// configuration and the prompt status and may be called any number of times.
//
// The hint is rendered only while the prompt is pending. For password
// questions a fixed "[hidden]" placeholder is shown instead of the default
// itself so secret defaults never reach the terminal.
func QuestionLine(q Question, status Status, scheme *ColorScheme) string {
	var b strings.Builder

	b.WriteString(scheme.Prefix.ToANSI())
	b.WriteString(q.Prefix)
	b.WriteString(Reset())
	b.WriteString(" ")
	b.WriteString(scheme.Message.ToANSI())
	b.WriteString(q.Message)
	b.WriteString(q.Suffix)
	b.WriteString(Reset())
	b.WriteString(" ")

	if hint := defaultHint(q, status); hint != "" {
		b.WriteString(scheme.Hint.ToANSI())
		b.WriteString(hint)
		b.WriteString(Reset())
		b.WriteString(" ")
	}

	return b.String()
}

// defaultHint returns the hint text for the question's default value, or ""
// when no hint should be shown.
func defaultHint(q Question, status Status) string {
	if status == StatusAnswered {
		return ""
	}
	if q.Type == TypeConfirm {
		// Confirm always hints, capitalizing the default side.
		if b, ok := q.Default.(bool); ok && b {
			return "(Y/n)"
		}
		return "(y/N)"
	}
	if q.Default == nil {
		return ""
	}
	if q.Type == TypePassword {
		return "[hidden]"
	}
	return fmt.Sprintf("(%v)", q.Default)
}

// answeredLine renders the question line followed by the accepted value in
// the answer color. Password answers are echoed masked.
func answeredLine(q Question, value any, scheme *ColorScheme) string {
	var b strings.Builder
	b.WriteString(QuestionLine(q, StatusAnswered, scheme))
	b.WriteString(scheme.Answer.ToANSI())
	b.WriteString(echoAnswer(q, value))
	b.WriteString(Reset())
	return b.String()
}

// echoAnswer formats an accepted value for display on the answered line.
func echoAnswer(q Question, value any) string {
	if q.Type == TypePassword {
		s := fmt.Sprint(value)
		return strings.Repeat(string(q.Mask), len([]rune(s)))
	}
	if b, ok := value.(bool); ok && q.Type == TypeConfirm {
		if b {
			return "yes"
		}
		return "no"
	}
	return fmt.Sprint(value)
}
