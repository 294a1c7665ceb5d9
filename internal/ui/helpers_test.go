package ui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/five82/floorboard/internal/plans"
	"github.com/five82/floorboard/internal/theme"
)

func TestMarquee_StepAndPause(t *testing.T) {
	q := newMarquee([]string{"abc"})
	first := q.view(4)

	q.step()
	if got := q.view(4); got == first {
		t.Fatalf("view after step = %q, want a rotated frame", got)
	}

	q.hover(true)
	paused := q.view(4)
	q.step()
	q.step()
	if got := q.view(4); got != paused {
		t.Fatalf("view while hovered = %q, want %q", got, paused)
	}

	q.hover(false)
	q.step()
	if got := q.view(4); got == paused {
		t.Fatalf("view after hover ends = %q, want it to move", got)
	}
}

func TestMarquee_FillsWidth(t *testing.T) {
	q := newMarquee([]string{"hi"})
	for _, w := range []int{1, 10, 200} {
		if got := ansi.StringWidth(q.view(w)); got != w {
			t.Fatalf("view(%d) width = %d", w, got)
		}
	}
	if got := q.view(0); got != "" {
		t.Fatalf("view(0) = %q, want empty", got)
	}

	for _, notices := range [][]string{nil, {}} {
		empty := newMarquee(notices)
		empty.step()
		if empty.offset != 0 {
			t.Fatalf("empty marquee offset = %d, want 0", empty.offset)
		}
		if got := empty.view(10); got != "" {
			t.Fatalf("empty marquee view = %q, want empty", got)
		}
	}
}

func TestMarquee_WrapsOffset(t *testing.T) {
	q := newMarquee([]string{"ab"})
	n := len([]rune(q.text))
	for range n {
		q.step()
	}
	if q.offset != 0 {
		t.Fatalf("offset after %d steps = %d, want 0", n, q.offset)
	}
}

func TestValidateQty(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"0", true},
		{"1500", true},
		{" 42 ", true},
		{"", false},
		{"-1", false},
		{"12a", false},
		{"1.5", false},
	}
	for _, tc := range cases {
		err := validateQty(tc.in)
		if (err == nil) != tc.ok {
			t.Fatalf("validateQty(%q) err = %v, want ok=%v", tc.in, err, tc.ok)
		}
		// The form never lets through what Build would reject.
		_, perr := plans.ParseQty(tc.in)
		if (perr == nil) != tc.ok {
			t.Fatalf("ParseQty(%q) disagrees with validateQty", tc.in)
		}
	}
}

func TestValidateDateAndItem(t *testing.T) {
	if err := validateDate("2026-03-05"); err != nil {
		t.Fatalf("validateDate valid: %v", err)
	}
	if err := validateDate("03/05/2026"); err == nil {
		t.Fatal("validateDate accepted a non ISO date")
	}
	if err := validateItem("   "); err == nil {
		t.Fatal("validateItem accepted a blank name")
	}
}

func TestParsePercent(t *testing.T) {
	cases := map[string]float64{
		"42%":  0.42,
		"0%":   0,
		"100%": 1,
		"150%": 1,
		"":     0,
		"n/a":  0,
	}
	for in, want := range cases {
		if got := parsePercent(in); got != want {
			t.Fatalf("parsePercent(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestThemeFor(t *testing.T) {
	if got := ThemeFor(theme.Dark); got.Name != "Night" || got.Mode != theme.Dark {
		t.Fatalf("ThemeFor(dark) = %s/%s", got.Name, got.Mode)
	}
	if got := ThemeFor(theme.Light); got.Name != "Day" {
		t.Fatalf("ThemeFor(light) = %s", got.Name)
	}
	if got := ThemeFor(theme.Mode("sepia")); got.Name != "Day" {
		t.Fatalf("ThemeFor(unknown) = %s, want Day", got.Name)
	}
}

func TestStyles_UnknownBadgeFallsBackToMuted(t *testing.T) {
	s := ThemeFor(theme.Light).Styles()
	if got := s.BadgeStyle("bg-purple").GetBackground(); got != s.BadgeStyle("").GetBackground() {
		t.Fatalf("unknown badge background = %v", got)
	}
	if s.StatusStyle(plans.StatusActive).GetBold() != true {
		t.Fatal("running status should be bold")
	}
}
