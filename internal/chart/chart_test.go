package chart

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestResize_RedrawsAtWidth(t *testing.T) {
	c := ProductionTrend()
	c.Resize(70)

	if c.Width() != 70 {
		t.Fatalf("Width = %d, want 70", c.Width())
	}
	if c.Resizes() != 1 {
		t.Fatalf("Resizes = %d, want 1", c.Resizes())
	}
	lines := strings.Split(c.Render(), "\n")
	if len(lines) != defaultHeight+1 {
		t.Fatalf("got %d lines, want %d", len(lines), defaultHeight+1)
	}
	for i, line := range lines {
		if got := utf8.RuneCountInString(line); got != 70 {
			t.Fatalf("line %d width = %d, want 70: %q", i, got, line)
		}
	}
	if !strings.HasPrefix(lines[len(lines)-1], "09:00") {
		t.Fatalf("label row = %q, want it to start with 09:00", lines[len(lines)-1])
	}
}

func TestResize_ClampsNarrowWidths(t *testing.T) {
	c := New("t", nil, []int{1, 2})
	c.Resize(0)
	if c.Width() != minWidth {
		t.Fatalf("Width = %d, want %d", c.Width(), minWidth)
	}
}

func TestRender_PeakColumnIsFull(t *testing.T) {
	c := New("t", []string{"a", "b"}, []int{50, 100})
	c.SetHeight(2)
	c.Resize(minWidth)

	lines := strings.Split(c.Render(), "\n")
	// Each column is three bar glyphs plus a gap.
	want := []string{"    ███ ", "███ ███ ", "a   b   "}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestResize_NarrowWidthDrawsAtMinimum(t *testing.T) {
	narrow := New("t", []string{"a", "b"}, []int{50, 100})
	narrow.Resize(4)
	atMin := New("t", []string{"a", "b"}, []int{50, 100})
	atMin.Resize(minWidth)

	if narrow.Render() != atMin.Render() {
		t.Fatalf("Resize(4) = %q, want the %d-column frame %q", narrow.Render(), minWidth, atMin.Render())
	}
}

func TestNew_CopiesInputs(t *testing.T) {
	series := []int{1, 2, 3}
	c := New("t", nil, series)
	series[0] = 99
	if c.Series()[0] != 1 {
		t.Fatalf("Series aliased caller slice")
	}
}

func TestRender_EmptySeries(t *testing.T) {
	c := New("t", nil, nil)
	c.Resize(10)
	if c.Render() != strings.Repeat(" ", 10) {
		t.Fatalf("Render = %q, want blanks", c.Render())
	}
}
