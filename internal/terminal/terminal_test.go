package terminal

import (
	"errors"
	"path/filepath"
	"testing"

	"motherboard/internal/commands"
	"motherboard/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTerminal(t *testing.T) (*Terminal, *logger.Logger) {
	t.Helper()
	log := logger.New(filepath.Join(t.TempDir(), "viewer.txt"))
	reg := commands.NewRegistry()
	reg.Register("ok", "ok", nil, func([]string) error { return nil })
	reg.Register("fail", "fail", nil, func([]string) error { return errors.New("boom") })
	return New(log, reg), log
}

func TestSubmitRunsCommands(t *testing.T) {
	term, log := newTerminal(t)
	var results []error
	term.OnCommand = func(err error) { results = append(results, err) }

	term.Submit("cmd ok")
	term.Submit("cmd fail")
	term.Submit("cmd missing")

	require.Len(t, results, 3)
	assert.NoError(t, results[0])
	assert.EqualError(t, results[1], "boom")
	assert.ErrorIs(t, results[2], commands.ErrUnknown)

	lines := log.Lines()
	assert.Contains(t, lines[len(lines)-1], "unknown command")
}

func TestSubmitPlainTextHints(t *testing.T) {
	term, log := newTerminal(t)
	called := false
	term.OnCommand = func(error) { called = true }

	term.Submit("hello")
	assert.False(t, called)
	lines := log.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "cmd help")
	assert.False(t, term.IsOpen())
}
