package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xrsl/rsm/pkg/latex"
	"github.com/xrsl/rsm/pkg/prompt"
	"github.com/xrsl/rsm/pkg/resume"
	"github.com/xrsl/rsm/pkg/style"
	"github.com/xrsl/rsm/pkg/vcs"
	"github.com/xrsl/rsm/pkg/workflow"
)

func init() {
	style.NoColor = true
}

func TestReport(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"aborted", fmt.Errorf("input %q: %w", "Degree", prompt.ErrAborted), "✗ Aborted\n"},
		{"no repo", vcs.ErrNotRepository, "✗ Not a résumé repository. Run rsm init first\n"},
		{"validation", &resume.ValidationError{Problems: []string{"a", "b"}}, "✗ Invalid input\n  a\n  b\n"},
		{"branch", &workflow.BranchError{Op: "create", Branch: "x", Err: vcs.ErrBranchExists}, "✗ Branch error: create x: branch already exists\n"},
		{"precondition", &latex.PreconditionError{Violations: []string{"missing \\end{document}"}}, "✗ Document not compiled: 1 problem(s)\n  missing \\end{document}\n"},
		{"process", &latex.ProcessError{Command: "pdflatex", ExitCode: 1, Output: "! Undefined control sequence.\n"}, "✗ pdflatex exited with code 1\n! Undefined control sequence.\n"},
		{"other", errors.New("boom"), "✗ boom\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			report(&buf, tt.err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestReportOutcome(t *testing.T) {
	var buf bytes.Buffer
	reportOutcome(&buf, workflow.Outcome{
		Branch:    "backend",
		Message:   "Added new education\n\n- BS at MIT\n",
		Commit:    "0123456789abcdef",
		Committed: true,
	})
	assert.Equal(t, "✓ Added new education on backend 0123456\n", buf.String())

	buf.Reset()
	reportOutcome(&buf, workflow.Outcome{Notice: "Technical skills are flattened. Reordering not applicable."})
	assert.Equal(t, "○ Technical skills are flattened. Reordering not applicable.\n", buf.String())

	buf.Reset()
	reportOutcome(&buf, workflow.Outcome{})
	assert.Equal(t, "○ No changes to commit.\n", buf.String())
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"init", "add", "remove", "update", "reorder", "role", "branches", "generate", "compile", "doctor", "config", "version"} {
		c, _, err := rootCmd.Find([]string{name})
		if assert.NoError(t, err, name) {
			assert.Equal(t, name, c.Name())
		}
	}
}
