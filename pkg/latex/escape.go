package latex

import (
	"fmt"
	"strings"
)

var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// Escape makes free text safe to place in LaTeX markup. It must be applied
// exactly once, when the text is collected.
func Escape(s string) string {
	return escaper.Replace(s)
}

var urlEscaper = strings.NewReplacer(`%`, `\%`, `#`, `\#`)

// EscapeURL escapes only what breaks an \href argument. Other reserved
// characters are legal inside URLs there.
func EscapeURL(s string) string {
	return urlEscaper.Replace(s)
}

// PreconditionError lists the structural problems that stop markup from
// being handed to the compiler.
type PreconditionError struct {
	Violations []string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("latex precondition failed: %s", strings.Join(e.Violations, "; "))
}

var requiredMarkers = []string{`\documentclass`, `\begin{document}`, `\end{document}`}

// Check reports every structural problem in markup: missing document
// markers and unbalanced braces. Escaped braces and comments are ignored.
func Check(markup string) []string {
	var violations []string
	for _, m := range requiredMarkers {
		if !strings.Contains(markup, m) {
			violations = append(violations, "missing "+m)
		}
	}

	depth := 0
	line := 1
	comment := false
	for i := 0; i < len(markup); i++ {
		switch c := markup[i]; {
		case c == '\n':
			line++
			comment = false
		case comment:
		case c == '\\':
			// the next byte is escaped; a newline still ends the line
			if i+1 < len(markup) && markup[i+1] != '\n' {
				i++
			}
		case c == '%':
			comment = true
		case c == '{':
			depth++
		case c == '}':
			if depth == 0 {
				violations = append(violations, fmt.Sprintf("unmatched closing brace on line %d", line))
				continue
			}
			depth--
		}
	}
	if depth > 0 {
		violations = append(violations, fmt.Sprintf("%d unclosed opening brace(s)", depth))
	}
	return violations
}

// Validate wraps Check in an error.
func Validate(markup string) error {
	if v := Check(markup); len(v) > 0 {
		return &PreconditionError{Violations: v}
	}
	return nil
}
