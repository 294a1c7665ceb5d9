package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/floorboard/internal/app"
)

func TestRootCmd_PassesFlags(t *testing.T) {
	var got app.Options
	calls := 0
	root := newRootCmd(func(_ context.Context, opts app.Options) error {
		calls++
		got = opts
		return nil
	}, func() bool { return true }, false)

	root.SetArgs([]string{"--config", "/tmp/c.toml", "--prefs", "/tmp/p.toml", "--log-level", "debug"})
	require.NoError(t, root.Execute())

	assert.Equal(t, 1, calls)
	assert.Equal(t, app.Options{ConfigPath: "/tmp/c.toml", PrefsPath: "/tmp/p.toml", LogLevel: "debug"}, got)
}

func TestRootCmd_RefusesNonInteractive(t *testing.T) {
	called := false
	root := newRootCmd(func(context.Context, app.Options) error {
		called = true
		return nil
	}, func() bool { return false }, false)
	root.SetArgs([]string{})

	err := root.Execute()
	assert.True(t, errors.Is(err, errNotInteractive))
	assert.False(t, called)
}

func TestLogsCmd_PrintsTail(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_dir = \""+dir+"\"\n"), 0o644))

	log := strings.Join([]string{
		`{"time":"2026-03-02T09:30:00Z","level":"INFO","msg":"floorboard starting"}`,
		`not json`,
		`{"time":"2026-03-02T09:30:01Z","level":"WARN","msg":"persist theme","component":"theme","error":"read-only"}`,
		`{"time":"2026-03-02T09:30:02Z","level":"INFO","msg":"floorboard stopped","plans":3}`,
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "floorboard.log"), []byte(log), 0o644))

	root := newRootCmd(nil, func() bool { return false }, false)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--config", cfgPath, "logs", "-n", "2"})
	require.NoError(t, root.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "WARN [theme] persist theme error=read-only")
	assert.Contains(t, lines[1], "INFO floorboard stopped plans=3")
}

func TestLogsCmd_MissingLogPrintsNothing(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_dir = \""+dir+"\"\n"), 0o644))

	root := newRootCmd(nil, func() bool { return false }, false)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--config", cfgPath, "logs"})
	require.NoError(t, root.Execute())
	assert.Empty(t, out.String())
}
