package edit

import (
	"fmt"
	"slices"
	"strings"

	"github.com/xrsl/rsm/pkg/latex"
	"github.com/xrsl/rsm/pkg/prompt"
	"github.com/xrsl/rsm/pkg/resume"
)

// field is one text field of an entry type.
type field[T any] struct {
	name     string
	optional bool
	url      bool
	ptr      func(*T) *string
}

func (f field[T]) escape(s string) string {
	if f.url {
		return latex.EscapeURL(s)
	}
	return latex.Escape(s)
}

// collectFields asks for every field of a new entry.
func collectFields[T any](p prompt.Prompter, fields []field[T]) (T, error) {
	var e T
	for _, f := range fields {
		v, err := p.Input(f.name, prompt.InputOpts{Required: !f.optional})
		if err != nil {
			return e, err
		}
		*f.ptr(&e) = f.escape(strings.TrimSpace(v))
	}
	return e, nil
}

// updateFields re-asks every field with its current value as default and
// describes each change. Answers equal to the current value are kept as
// they are; anything else is new input and gets escaped.
func updateFields[T any](p prompt.Prompter, e T, fields []field[T]) (T, []string, error) {
	var items []string
	for _, f := range fields {
		cur := *f.ptr(&e)
		v, err := p.Input(f.name, prompt.InputOpts{Default: cur})
		if err != nil {
			return e, nil, err
		}
		v = strings.TrimSpace(v)
		if v == "" || v == cur {
			continue
		}
		v = f.escape(v)
		*f.ptr(&e) = v
		items = append(items, fmt.Sprintf("%s updated from '%s' to '%s'", f.name, cur, v))
	}
	return e, items, nil
}

// collectBullets reads bullet lines until an empty one.
func collectBullets(p prompt.Prompter, msg string) ([]string, error) {
	var bullets []string
	for {
		v, err := p.Input(msg, prompt.InputOpts{})
		if err != nil {
			return nil, err
		}
		v = strings.TrimSpace(v)
		if v == "" {
			return bullets, nil
		}
		bullets = append(bullets, latex.Escape(v))
	}
}

// updateBullets lets the user keep a subset of bullets and append new
// ones. The result replaces the old list as a whole.
func updateBullets(p prompt.Prompter, bullets []string) ([]string, error) {
	var kept []string
	if len(bullets) > 0 {
		keep, err := p.MultiSelect("Bullet points to keep", bullets, 0)
		if err != nil {
			return nil, err
		}
		for _, i := range keep {
			kept = append(kept, bullets[i])
		}
	}
	more, err := collectBullets(p, "New bullet point (empty to finish)")
	if err != nil {
		return nil, err
	}
	return append(kept, more...), nil
}

// reorderBullets offers a nested reorder of one entry's bullets.
func reorderBullets(p prompt.Prompter, label string, bullets []string) ([]string, bool, error) {
	if len(bullets) < 2 {
		return bullets, false, nil
	}
	ok, err := p.Confirm(fmt.Sprintf("Reorder bullet points of %s?", label), false)
	if err != nil || !ok {
		return bullets, false, err
	}
	order, err := orderOf(p, "Reorder bullet points", bullets)
	if err != nil {
		return bullets, false, err
	}
	out := resume.Permute(bullets, order)
	return out, !slices.Equal(out, bullets), nil
}

// splitList splits comma separated input, dropping empty parts.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, latex.Escape(part))
		}
	}
	return out
}
