package prompt

import (
	"fmt"
	"slices"
)

// Script answers questions from a fixed queue. Each answer must match the
// question kind: int for Select, []int for MultiSelect and Order, string
// for Input and bool for Confirm. Answers are returned as given, except
// that Input applies its defaults and validation like a terminal would.
type Script struct {
	Answers []any
	// Asked records every question in order.
	Asked []string
}

// NewScript returns a Script that will give answers in order.
func NewScript(answers ...any) *Script {
	return &Script{Answers: answers}
}

// Remaining reports how many answers have not been consumed.
func (s *Script) Remaining() int {
	return len(s.Answers)
}

func next[T any](s *Script, kind, msg string) (T, error) {
	var zero T
	s.Asked = append(s.Asked, msg)
	if len(s.Answers) == 0 {
		return zero, fmt.Errorf("%s %q: %w", kind, msg, ErrAborted)
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	v, ok := answer.(T)
	if !ok {
		return zero, fmt.Errorf("%s %q: scripted answer %#v has type %T", kind, msg, answer, answer)
	}
	return v, nil
}

func (s *Script) Select(msg string, choices []string) (int, error) {
	i, err := next[int](s, "select", msg)
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= len(choices) {
		return 0, fmt.Errorf("select %q: answer %d out of range", msg, i)
	}
	return i, nil
}

func (s *Script) MultiSelect(msg string, choices []string, _ int) ([]int, error) {
	picked, err := next[[]int](s, "multi-select", msg)
	if err != nil {
		return nil, err
	}
	for _, i := range picked {
		if i < 0 || i >= len(choices) {
			return nil, fmt.Errorf("multi-select %q: answer %d out of range", msg, i)
		}
	}
	picked = slices.Clone(picked)
	slices.Sort(picked)
	return slices.Compact(picked), nil
}

func (s *Script) Input(msg string, opts InputOpts) (string, error) {
	answer, err := next[string](s, "input", msg)
	if err != nil {
		return "", err
	}
	value, err := check(answer, opts)
	if err != nil {
		return "", fmt.Errorf("%s: %w", msg, err)
	}
	return value, nil
}

func (s *Script) Confirm(msg string, _ bool) (bool, error) {
	return next[bool](s, "confirm", msg)
}

func (s *Script) Order(msg string, choices []string) ([]int, error) {
	order, err := next[[]int](s, "order", msg)
	if err != nil {
		return nil, err
	}
	if len(order) != len(choices) {
		return nil, fmt.Errorf("order %q: %d positions for %d choices", msg, len(order), len(choices))
	}
	return order, nil
}
