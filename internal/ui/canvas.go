package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// Canvas is a lightweight helper around cellbuf.Screen that lets us compose
// lipgloss-rendered strings into a cell buffer before turning the frame back
// into a string for Bubble Tea.
type Canvas struct {
	screen  *cellbuf.Screen
	writer  *cellbuf.ScreenWriter
	width   int
	height  int
	offsetX int
	offsetY int
}

func NewCanvas(width, height int) *Canvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	screen := cellbuf.NewScreen(io.Discard, width, height, &cellbuf.ScreenOptions{
		ShowCursor: false,
		AltScreen:  false,
	})
	return &Canvas{
		screen: screen,
		writer: cellbuf.NewScreenWriter(screen),
		width:  width,
		height: height,
	}
}

// SetOffset records where this canvas should be placed when composited onto a
// larger frame. The canvas itself is unaffected.
func (c *Canvas) SetOffset(x, y int) {
	if c == nil {
		return
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	c.offsetX = x
	c.offsetY = y
}

// Offset returns the placement recorded by SetOffset.
func (c *Canvas) Offset() (int, int) {
	if c == nil {
		return 0, 0
	}
	return c.offsetX, c.offsetY
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (int, int) {
	if c == nil {
		return 0, 0
	}
	return c.width, c.height
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int {
	if c == nil {
		return 0
	}
	return c.width
}

// Height returns the canvas height in cells.
func (c *Canvas) Height() int {
	if c == nil {
		return 0
	}
	return c.height
}

// Cell exposes the underlying cell at x,y for inspection.
func (c *Canvas) Cell(x, y int) *cellbuf.Cell {
	if c == nil || c.screen == nil {
		return nil
	}
	return c.screen.Cell(x, y)
}

// Fill paints the entire canvas with the provided background color.
func (c *Canvas) Fill(bg lipgloss.TerminalColor) {
	if c == nil {
		return
	}
	fill := lipgloss.NewStyle().
		Background(bg).
		Width(c.width).
		Height(c.height).
		Render("")
	c.DrawStringAt(0, 0, fill)
}

// DrawStringAt writes the provided block starting at x,y. Newlines are
// normalized so each line begins at column 0 relative to x.
func (c *Canvas) DrawStringAt(x, y int, content string) {
	if content == "" || c == nil || c.writer == nil {
		return
	}
	normalized := normalizeForCellbuf(content)
	c.writer.PrintCropAt(x, y, normalized, "")
}

// Render returns the composed frame as a newline-delimited string suitable for
// Bubble Tea consumption.
func (c *Canvas) Render() string {
	if c == nil || c.screen == nil {
		return ""
	}
	raw := cellbuf.Render(c.screen)
	_ = c.screen.Close()
	return strings.ReplaceAll(raw, "\r\n", "\n")
}

func normalizeForCellbuf(content string) string {
	if content == "" {
		return ""
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\n", "\r\n")
}
