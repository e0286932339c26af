package prompt

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func terminal(input string) (*Terminal, *bytes.Buffer) {
	var out bytes.Buffer
	return NewTerminal(context.Background(), strings.NewReader(input), &out), &out
}

func TestTerminalSelectReasksOnInvalid(t *testing.T) {
	term, out := terminal("9\nx\n2\n")
	i, err := term.Select("Pick one", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	assert.Contains(t, out.String(), "Pick exactly one")
}

func TestTerminalMultiSelect(t *testing.T) {
	term, _ := terminal("\n3,1 1\n")
	picked, err := term.MultiSelect("Pick", []string{"a", "b", "c"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, picked)

	term, _ = terminal("a\n")
	picked, err = term.MultiSelect("Pick", []string{"a", "b"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, picked)
}

func TestTerminalInput(t *testing.T) {
	term, _ := terminal("\n\nAda\n")
	v, err := term.Input("Name", InputOpts{Required: true})
	require.NoError(t, err)
	assert.Equal(t, "Ada", v)

	term, _ = terminal("\n")
	v, err = term.Input("Phone", InputOpts{Default: "555"})
	require.NoError(t, err)
	assert.Equal(t, "555", v)
}

func TestTerminalInputValidate(t *testing.T) {
	term, out := terminal("bad\ngood\n")
	v, err := term.Input("Word", InputOpts{Validate: func(s string) error {
		if s == "bad" {
			return errors.New("not that one")
		}
		return nil
	}})
	require.NoError(t, err)
	assert.Equal(t, "good", v)
	assert.Contains(t, out.String(), "not that one")
}

func TestTerminalConfirm(t *testing.T) {
	term, _ := terminal("maybe\nY\n\n")
	ok, err := term.Confirm("Sure?", false)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = term.Confirm("Again?", false)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTerminalOrder(t *testing.T) {
	term, _ := terminal("1 1 2\n3 1 2\n")
	order, err := term.Order("Reorder", []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, order)

	term, _ = terminal("\n")
	order, err = term.Order("Reorder", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, order)
}

func TestTerminalEOFAborts(t *testing.T) {
	term, _ := terminal("")
	_, err := term.Input("Name", InputOpts{})
	assert.ErrorIs(t, err, ErrAborted)
}

func TestTerminalCanceledWhileWaiting(t *testing.T) {
	r, w := io.Pipe()
	t.Cleanup(func() { w.Close() })
	ctx, cancel := context.WithCancel(context.Background())
	term := NewTerminal(ctx, r, io.Discard)

	done := make(chan error, 1)
	go func() {
		_, err := term.Input("Name", InputOpts{Required: true})
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrAborted)
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("question still waiting after cancel")
	}
}

func TestTerminalCanceledBeforeAsking(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	term := NewTerminal(ctx, strings.NewReader("yes\n"), io.Discard)
	_, err := term.Confirm("Continue?", false)
	assert.ErrorIs(t, err, ErrAborted)
}

func TestScript(t *testing.T) {
	s := NewScript(1, []int{2, 0}, "", true, []int{1, 0})
	i, err := s.Select("one", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	picked, err := s.MultiSelect("many", []string{"a", "b", "c"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, picked)

	v, err := s.Input("text", InputOpts{Default: "kept"})
	require.NoError(t, err)
	assert.Equal(t, "kept", v)

	ok, err := s.Confirm("sure", false)
	require.NoError(t, err)
	assert.True(t, ok)

	order, err := s.Order("order", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, order)

	assert.Equal(t, 0, s.Remaining())
	assert.Equal(t, []string{"one", "many", "text", "sure", "order"}, s.Asked)

	_, err = s.Confirm("extra", false)
	assert.ErrorIs(t, err, ErrAborted)
}

func TestScriptRequired(t *testing.T) {
	s := NewScript("")
	_, err := s.Input("Name", InputOpts{Required: true})
	assert.ErrorIs(t, err, ErrRequired)
}
