package latex

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// ProcessError is a compiler run that exited non-zero. Output is the
// compiler's combined output, unmodified.
type ProcessError struct {
	Command  string
	ExitCode int
	Output   string
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Command, e.ExitCode)
}

// auxExtensions are the compiler by-products Clean removes.
var auxExtensions = []string{".aux", ".log", ".out", ".fls", ".fdb_latexmk", ".synctex.gz"}

// Compiler runs an external LaTeX compiler such as pdflatex.
type Compiler struct {
	// Command is the executable, looked up on PATH.
	Command string
}

// Available reports whether the compiler executable can be found.
func (c Compiler) Available() (string, bool) {
	path, err := exec.LookPath(c.Command)
	return path, err == nil
}

// Compile typesets texPath in its own directory and returns the PDF path.
// The markup is checked first; a *PreconditionError means the compiler was
// never started.
func (c Compiler) Compile(ctx context.Context, texPath string) (string, error) {
	markup, err := os.ReadFile(texPath)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", texPath, err)
	}
	if err := Validate(string(markup)); err != nil {
		return "", err
	}

	cmd := exec.CommandContext(ctx, c.Command, "-interaction=nonstopmode", "-halt-on-error", filepath.Base(texPath))
	cmd.Dir = filepath.Dir(texPath)
	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			return "", &ProcessError{Command: c.Command, ExitCode: exitErr.ExitCode(), Output: string(out)}
		}
		if ctx.Err() != nil {
			return "", fmt.Errorf("run %s: %w", c.Command, ctx.Err())
		}
		return "", fmt.Errorf("run %s: %w", c.Command, err)
	}
	return strings.TrimSuffix(texPath, filepath.Ext(texPath)) + ".pdf", nil
}

// Clean removes compiler by-products next to texPath and returns the files
// it deleted.
func Clean(texPath string) ([]string, error) {
	base := strings.TrimSuffix(texPath, filepath.Ext(texPath))
	var removed []string
	for _, ext := range auxExtensions {
		path := base + ext
		err := os.Remove(path)
		switch {
		case err == nil:
			removed = append(removed, path)
		case errors.Is(err, os.ErrNotExist):
		default:
			return removed, fmt.Errorf("remove %s: %w", path, err)
		}
	}
	return removed, nil
}

// Open shows a file in the platform's default viewer without waiting for it.
func Open(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return cmd.Process.Release()
}
