package logsink

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/floorboard/internal/logging"
)

func fixedClock() func() time.Time {
	ts := time.Date(2026, 2, 1, 9, 30, 5, 0, time.Local)
	return func() time.Time { return ts }
}

func TestPanel_AppendsInOrder(t *testing.T) {
	p := NewPanel(WithClock(fixedClock()))

	p.Info("first")
	p.Warn("second")
	p.Error("third")

	entries := p.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "first", entries[0].Message)
	assert.Equal(t, SeverityWarn, entries[1].Severity)
	assert.Equal(t, SeverityError, entries[2].Severity)
	assert.Equal(t, 1, p.Count(SeverityError))
	assert.Equal(t, 3, p.Len())
}

func TestPanel_EntriesIsCopy(t *testing.T) {
	p := NewPanel()
	p.Info("keep")

	entries := p.Entries()
	entries[0].Message = "changed"

	assert.Equal(t, "keep", p.Entries()[0].Message)
}

func TestEntry_String(t *testing.T) {
	p := NewPanel(WithClock(fixedClock()))
	p.Info("Line 2 resumed")

	assert.Equal(t, "[09:30:05] [INFO] Line 2 resumed", p.Entries()[0].String())
}

func TestPanel_NoEviction(t *testing.T) {
	p := NewPanel()
	for i := 0; i < 10000; i++ {
		p.Info("tick")
	}
	assert.Equal(t, 10000, p.Len())
}

func TestPanel_MirrorsToDiagnostics(t *testing.T) {
	dir := t.TempDir()
	diag, err := logging.NewLogger(dir, logging.LevelDebug)
	require.NoError(t, err)

	p := NewPanel(WithDiagnostics(diag))
	p.Error("view not found")
	require.NoError(t, diag.Close())

	data, err := os.ReadFile(diag.Path())
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"msg":"view not found"`), "log file: %s", data)
	assert.Contains(t, string(data), `"level":"ERROR"`)
}
