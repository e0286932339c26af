// Package summary composes the commit messages that describe a change to
// the résumé.
package summary

import "strings"

// Compose renders a title followed by a blank line and one "- item" line
// per item. Without items there is nothing to describe and the result is "".
func Compose(title string, items []string) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	return b.String()
}

// Change is what every mutation reports back.
type Change struct {
	Title string
	Items []string
	// Notice is shown to the user when the mutation did nothing for a
	// reason worth explaining.
	Notice string
}

// Message is the commit message for the change.
func (c Change) Message() string {
	return Compose(c.Title, c.Items)
}

// Empty reports whether the change has nothing to commit.
func (c Change) Empty() bool {
	return len(c.Items) == 0
}

// Noop returns an empty change carrying a notice.
func Noop(notice string) Change {
	return Change{Notice: notice}
}
