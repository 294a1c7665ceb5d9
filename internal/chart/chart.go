// Package chart draws the hourly production trend as a block-glyph column
// chart sized to its container.
package chart

import (
	"slices"
	"strings"
	"sync"
)

var blocks = []rune(" ▁▂▃▄▅▆▇█")

const (
	defaultHeight = 6
	minWidth      = 8
)

// Line is a labeled numeric series. It caches its rendering for the last
// width it was given; Resize recomputes it.
type Line struct {
	mu sync.Mutex

	title  string
	labels []string
	series []int

	width   int
	height  int
	frame   string
	resizes int
}

// New builds a chart. labels and series are copied; extra labels are ignored
// and missing ones render blank.
func New(title string, labels []string, series []int) *Line {
	c := &Line{
		title:  title,
		labels: slices.Clone(labels),
		series: slices.Clone(series),
		height: defaultHeight,
		width:  minWidth,
	}
	c.frame = c.draw()
	return c
}

// ProductionTrend returns the hourly production chart shown on the dashboard.
func ProductionTrend() *Line {
	return New("Hourly output",
		[]string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00"},
		[]int{150, 230, 180, 290, 200, 250, 184},
	)
}

// Title returns the chart title.
func (c *Line) Title() string { return c.title }

// Series returns a copy of the data points.
func (c *Line) Series() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.series)
}

// Resize re-lays the chart out for width columns. Widths below the minimum are
// clamped.
func (c *Line) Resize(width int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.width = max(width, minWidth)
	c.resizes++
	c.frame = c.draw()
}

// SetHeight changes the number of bar rows, redrawing at the current width.
func (c *Line) SetHeight(rows int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.height = max(rows, 1)
	c.frame = c.draw()
}

// Width returns the width of the last layout.
func (c *Line) Width() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width
}

// Resizes returns how many times Resize has been called.
func (c *Line) Resizes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resizes
}

// Render returns the cached frame: bar rows followed by a label row.
func (c *Line) Render() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame
}

// draw must be called with mu held.
func (c *Line) draw() string {
	n := len(c.series)
	if n == 0 {
		return strings.Repeat(" ", c.width)
	}

	peak := slices.Max(c.series)
	if peak <= 0 {
		peak = 1
	}
	col := max(c.width/n, 1)
	bar := col
	if col > 1 {
		bar = col - 1 // one column gap between bars
	}

	levels := c.height * 8
	var b strings.Builder
	for row := 0; row < c.height; row++ {
		floor := (c.height - 1 - row) * 8
		for _, v := range c.series {
			lvl := max(v, 0) * levels / peak
			cell := min(max(lvl-floor, 0), 8)
			b.WriteString(strings.Repeat(string(blocks[cell]), bar))
			if col > bar {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}

	for i := range c.series {
		label := ""
		if i < len(c.labels) {
			label = c.labels[i]
		}
		r := []rune(label)
		if len(r) > col {
			r = r[:col]
		}
		b.WriteString(string(r))
		b.WriteString(strings.Repeat(" ", col-len(r)))
	}
	return b.String()
}
