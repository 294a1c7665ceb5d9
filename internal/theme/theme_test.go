package theme

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/floorboard/internal/logsink"
	"github.com/five82/floorboard/internal/prefs"
	"github.com/five82/floorboard/internal/state"
)

func TestInitialize_DefaultsToLight(t *testing.T) {
	board := state.NewBoard()
	p := New(board, &prefs.Memory{}, logsink.NewPanel(), nil)
	p.Initialize()

	assert.Equal(t, Light, p.Mode())
	assert.False(t, board.HasClass(BodyID, DarkClass))
	assert.Equal(t, NightLabel, board.Text(ToggleID))
}

func TestInitialize_StoredDark(t *testing.T) {
	board := state.NewBoard()
	store := &prefs.Memory{}
	require.NoError(t, store.Set(PrefKey, "dark"))

	p := New(board, store, logsink.NewPanel(), nil)
	p.Initialize()

	assert.Equal(t, Dark, p.Mode())
	assert.True(t, board.HasClass(BodyID, DarkClass))
	assert.Equal(t, DayLabel, board.Text(ToggleID))
}

func TestInitialize_UnknownValueIsLight(t *testing.T) {
	store := &prefs.Memory{}
	require.NoError(t, store.Set(PrefKey, "sepia"))

	p := New(state.NewBoard(), store, nil, nil)
	p.Initialize()
	assert.Equal(t, Light, p.Mode())
}

func TestToggle_PersistsAndLogs(t *testing.T) {
	board := state.NewBoard()
	store := &prefs.Memory{}
	sink := logsink.NewPanel()
	p := New(board, store, sink, nil)
	p.Initialize()

	assert.Equal(t, Dark, p.Toggle())
	v, ok := store.Get(PrefKey)
	require.True(t, ok)
	assert.Equal(t, "dark", v)
	assert.True(t, board.HasClass(BodyID, DarkClass))
	assert.Equal(t, DayLabel, board.Text(ToggleID))

	entries := sink.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, logsink.SeverityInfo, entries[0].Severity)
	assert.Equal(t, "Night mode enabled", entries[0].Message)
}

func TestToggle_TwiceRestoresState(t *testing.T) {
	board := state.NewBoard()
	store := &prefs.Memory{}
	sink := logsink.NewPanel()
	p := New(board, store, sink, nil)
	p.Initialize()
	before := board.Snapshot()

	p.Toggle()
	p.Toggle()

	assert.Equal(t, Light, p.Mode())
	assert.Equal(t, before, board.Snapshot())
	v, _ := store.Get(PrefKey)
	assert.Equal(t, "light", v)
	assert.Equal(t, "Light mode enabled", sink.Entries()[1].Message)
}

func TestToggle_WriteFailureKeepsMode(t *testing.T) {
	board := state.NewBoard()
	store := &prefs.Memory{SetErr: errors.New("disk full")}
	sink := logsink.NewPanel()
	p := New(board, store, sink, nil)
	p.Initialize()

	assert.Equal(t, Dark, p.Toggle())
	assert.True(t, board.HasClass(BodyID, DarkClass))
	assert.Equal(t, 1, sink.Len())
}

func TestToggle_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")

	p := New(state.NewBoard(), prefs.Open(path), nil, nil)
	p.Initialize()
	p.Toggle()

	reopened := New(state.NewBoard(), prefs.Open(path), nil, nil)
	reopened.Initialize()
	assert.Equal(t, Dark, reopened.Mode())
}
