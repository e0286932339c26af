// Package prompt asks the user for input. Mutations only talk to the
// Prompter interface so they can be driven from a terminal or a script.
package prompt

import (
	"errors"
)

// ErrAborted is returned when input ends before a question is answered.
var ErrAborted = errors.New("input aborted")

// ErrRequired is returned when a required answer is empty.
var ErrRequired = errors.New("value is required")

// InputOpts tune a free-text question.
type InputOpts struct {
	// Default is returned when the answer is empty.
	Default string
	// Required rejects an empty answer when there is no default.
	Required bool
	// Validate, when set, rejects answers it returns an error for.
	Validate func(string) error
}

// Prompter is everything a mutation may ask.
type Prompter interface {
	// Select returns the index of one choice.
	Select(msg string, choices []string) (int, error)
	// MultiSelect returns the indexes of the chosen entries in ascending order.
	MultiSelect(msg string, choices []string, minimum int) ([]int, error)
	// Input returns a line of text.
	Input(msg string, opts InputOpts) (string, error)
	// Confirm returns a yes/no answer.
	Confirm(msg string, def bool) (bool, error)
	// Order returns a permutation of the indexes of choices: out[i] is the
	// index of the choice that moves to position i.
	Order(msg string, choices []string) ([]int, error)
}

func check(answer string, opts InputOpts) (string, error) {
	if answer == "" {
		answer = opts.Default
	}
	if answer == "" && opts.Required {
		return "", ErrRequired
	}
	if opts.Validate != nil {
		if err := opts.Validate(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}
