package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/xrsl/rsm/pkg/resume"
	"github.com/xrsl/rsm/pkg/style"
)

// Terminal asks questions on a line-oriented terminal. Invalid answers are
// explained and the question is asked again.
type Terminal struct {
	ctx   context.Context
	in    *bufio.Reader
	out   io.Writer
	lines chan readResult
	start sync.Once
}

type readResult struct {
	line string
	err  error
}

// NewTerminal reads answers from in and writes questions to out. A
// question waiting for input fails with ErrAborted once ctx is done.
func NewTerminal(ctx context.Context, in io.Reader, out io.Writer) *Terminal {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Terminal{ctx: ctx, in: bufio.NewReader(in), out: out, lines: make(chan readResult)}
}

// read feeds lines to readLine until the input fails.
func (t *Terminal) read() {
	defer close(t.lines)
	for {
		line, err := t.in.ReadString('\n')
		select {
		case t.lines <- readResult{line: line, err: err}:
		case <-t.ctx.Done():
			return
		}
		if err != nil {
			return
		}
	}
}

func (t *Terminal) readLine() (string, error) {
	if err := t.ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrAborted, err)
	}
	t.start.Do(func() { go t.read() })

	var r readResult
	select {
	case <-t.ctx.Done():
		fmt.Fprintln(t.out)
		return "", fmt.Errorf("%w: %w", ErrAborted, t.ctx.Err())
	case got, ok := <-t.lines:
		if !ok {
			return "", ErrAborted
		}
		r = got
	}
	if r.err != nil {
		if errors.Is(r.err, io.EOF) && r.line != "" {
			return strings.TrimSpace(r.line), nil
		}
		if errors.Is(r.err, io.EOF) {
			return "", ErrAborted
		}
		return "", r.err
	}
	return strings.TrimSpace(r.line), nil
}

func (t *Terminal) question(msg string) {
	fmt.Fprintf(t.out, "%s %s", style.C(style.Green, "?"), msg)
}

func (t *Terminal) hint(format string, args ...any) {
	fmt.Fprintf(t.out, "  %s\n", style.C(style.Gray, fmt.Sprintf(format, args...)))
}

func (t *Terminal) list(choices []string) {
	for i, c := range choices {
		fmt.Fprintf(t.out, "   %s %s\n", style.C(style.Cyan, strconv.Itoa(i+1)+")"), c)
	}
}

// numbers parses whitespace or comma separated 1-based choices.
func numbers(s string, n int) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' })
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 1 || v > n {
			return nil, fmt.Errorf("%q is not a number between 1 and %d", f, n)
		}
		out = append(out, v-1)
	}
	return out, nil
}

func (t *Terminal) Select(msg string, choices []string) (int, error) {
	if len(choices) == 0 {
		return 0, fmt.Errorf("%s: no choices", msg)
	}
	t.question(msg + "\n")
	t.list(choices)
	for {
		fmt.Fprintf(t.out, "  Choice %s: ", style.C(style.Cyan, fmt.Sprintf("[1-%d]", len(choices))))
		answer, err := t.readLine()
		if err != nil {
			return 0, err
		}
		picked, err := numbers(answer, len(choices))
		if err != nil || len(picked) != 1 {
			t.hint("Pick exactly one number between 1 and %d", len(choices))
			continue
		}
		return picked[0], nil
	}
}

func (t *Terminal) MultiSelect(msg string, choices []string, minimum int) ([]int, error) {
	t.question(msg + "\n")
	t.list(choices)
	for {
		fmt.Fprintf(t.out, "  Choices %s: ", style.C(style.Cyan, "[e.g. 1 3, 'a' for all]"))
		answer, err := t.readLine()
		if err != nil {
			return nil, err
		}
		var picked []int
		if strings.EqualFold(answer, "a") {
			for i := range choices {
				picked = append(picked, i)
			}
		} else {
			picked, err = numbers(answer, len(choices))
			if err != nil {
				t.hint("%v", err)
				continue
			}
		}
		slices.Sort(picked)
		picked = slices.Compact(picked)
		if len(picked) < minimum {
			t.hint("Pick at least %d", minimum)
			continue
		}
		return picked, nil
	}
}

func (t *Terminal) Input(msg string, opts InputOpts) (string, error) {
	for {
		t.question(msg)
		if opts.Default != "" {
			fmt.Fprintf(t.out, " %s", style.C(style.Cyan, "["+opts.Default+"]"))
		}
		fmt.Fprint(t.out, ": ")
		answer, err := t.readLine()
		if err != nil {
			return "", err
		}
		value, err := check(answer, opts)
		if err != nil {
			t.hint("%v", err)
			continue
		}
		return value, nil
	}
}

func (t *Terminal) Confirm(msg string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	for {
		t.question(msg)
		fmt.Fprintf(t.out, " %s: ", style.C(style.Cyan, hint))
		answer, err := t.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		t.hint("Answer y or n")
	}
}

func (t *Terminal) Order(msg string, choices []string) ([]int, error) {
	keep := make([]int, len(choices))
	for i := range keep {
		keep[i] = i
	}
	if len(choices) < 2 {
		return keep, nil
	}
	t.question(msg + "\n")
	t.list(choices)
	for {
		fmt.Fprintf(t.out, "  New order %s: ", style.C(style.Cyan, "[e.g. 2 1 3, enter to keep]"))
		answer, err := t.readLine()
		if err != nil {
			return nil, err
		}
		if answer == "" {
			return keep, nil
		}
		order, err := numbers(answer, len(choices))
		if err != nil {
			t.hint("%v", err)
			continue
		}
		if !resume.IsPermutation(order, len(choices)) {
			t.hint("List every number from 1 to %d exactly once", len(choices))
			continue
		}
		return order, nil
	}
}
