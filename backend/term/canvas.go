// Package term runs a modkit session in a terminal. A Canvas rasterizes gui
// painter calls onto a character grid, one cell per atlas glyph, and a
// bubbletea program feeds terminal events to a host bridge.
package term

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	gui "github.com/go-theft-auto/modkit"
)

// Cell size in gui pixels. One terminal cell holds one glyph.
const (
	CellWidth  = gui.GlyphWidth
	CellHeight = gui.GlyphHeight
)

// Cell is one character of the grid. Colors are packed gui colors; a zero
// Background leaves the terminal default.
type Cell struct {
	Rune       rune
	Foreground uint32
	Background uint32
}

var blank = Cell{Rune: ' '}

// Canvas is a gui.Painter over a character grid.
type Canvas struct {
	cols, rows int
	cells      []Cell
	clip       gui.Rect
	clipStack  []gui.Rect
	styles     map[[2]uint32]lipgloss.Style
}

var _ gui.Painter = (*Canvas)(nil)

// NewCanvas returns a blank cols x rows canvas.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{styles: make(map[[2]uint32]lipgloss.Style)}
	c.Resize(cols, rows)
	return c
}

// Resize changes the grid size and clears it.
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	c.cells = make([]Cell, c.cols*c.rows)
	c.Clear()
}

// Clear blanks every cell and resets clipping.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = blank
	}
	c.clipStack = c.clipStack[:0]
	c.clip = gui.Rect{W: c.Size().X, H: c.Size().Y}
}

// Size returns the canvas size in gui pixels.
func (c *Canvas) Size() gui.Vec2 {
	return gui.Vec2{X: float32(c.cols * CellWidth), Y: float32(c.rows * CellHeight)}
}

// Cell returns the cell at (col, row). Out of range cells are blank.
func (c *Canvas) Cell(col, row int) Cell {
	if !c.inGrid(col, row) {
		return blank
	}
	return c.cells[row*c.cols+col]
}

// CellCenter returns the gui pixel at the center of a cell.
func CellCenter(col, row int) gui.Vec2 {
	return gui.Vec2{
		X: float32(col*CellWidth) + CellWidth/2.0,
		Y: float32(row*CellHeight) + CellHeight/2.0,
	}
}

func (c *Canvas) inGrid(col, row int) bool {
	return col >= 0 && row >= 0 && col < c.cols && row < c.rows
}

// at returns the cell at (col, row) if it is on the grid and its center is
// inside the clip rectangle.
func (c *Canvas) at(col, row int) (*Cell, bool) {
	if !c.inGrid(col, row) || !c.clip.Contains(CellCenter(col, row)) {
		return nil, false
	}
	return &c.cells[row*c.cols+col], true
}

// AddRect blends color into the background of every cell whose center is inside.
func (c *Canvas) AddRect(x, y, w, h float32, color uint32) {
	if color>>24 == 0 {
		return
	}
	r := gui.Rect{X: x, Y: y, W: w, H: h}
	for row := max(gui.FloorDiv(y, CellHeight), 0); row <= min(gui.FloorDiv(y+h, CellHeight), c.rows-1); row++ {
		for col := max(gui.FloorDiv(x, CellWidth), 0); col <= min(gui.FloorDiv(x+w, CellWidth), c.cols-1); col++ {
			if !r.Contains(CellCenter(col, row)) {
				continue
			}
			if cell, ok := c.at(col, row); ok {
				cell.Background = blend(color, cell.Background)
			}
		}
	}
}

// AddRectOutline draws box characters on the border cells of the rectangle.
// Cells already holding text keep it and only take the color.
func (c *Canvas) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if color>>24 == 0 {
		return
	}
	c0, c1 := gui.FloorDiv(x, CellWidth), gui.FloorDiv(x+w-1, CellWidth)
	r0, r1 := gui.FloorDiv(y, CellHeight), gui.FloorDiv(y+h-1, CellHeight)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if row != r0 && row != r1 && col != c0 && col != c1 {
				continue
			}
			cell, ok := c.at(col, row)
			if !ok {
				continue
			}
			cell.Foreground = opaque(color)
			if cell.Rune == ' ' {
				cell.Rune = boxRune(col == c0, col == c1, row == r0, row == r1)
			}
		}
	}
}

func boxRune(left, right, top, bottom bool) rune {
	switch {
	case (left && right) && (top && bottom):
		return '□'
	case left && right:
		return '│'
	case top && bottom:
		return '─'
	case top && left:
		return '┌'
	case top && right:
		return '┐'
	case bottom && left:
		return '└'
	case bottom && right:
		return '┘'
	case top, bottom:
		return '─'
	}
	return '│'
}

// AddIcon draws the first rune of fallback in the cell at the icon center.
// The terminal has no textures, so textureID is ignored.
func (c *Canvas) AddIcon(x, y, w, h float32, textureID uint32, fallback string) {
	r, _ := utf8.DecodeRuneInString(fallback)
	if r == utf8.RuneError {
		return
	}
	col, row := gui.FloorDiv(x+w/2, CellWidth), gui.FloorDiv(y+h/2, CellHeight)
	if cell, ok := c.at(col, row); ok {
		cell.Rune = r
		cell.Foreground = gui.ColorWhite
	}
}

// AddText writes text starting at the cell nearest to (x, y).
func (c *Canvas) AddText(x, y float32, text string, color uint32) {
	if color>>24 == 0 {
		return
	}
	col := gui.FloorDiv(x+CellWidth/2.0, CellWidth)
	row := gui.FloorDiv(y+CellHeight/2.0, CellHeight)
	for _, r := range text {
		if cell, ok := c.at(col, row); ok {
			cell.Rune = r
			cell.Foreground = opaque(color)
		}
		col++
	}
}

// MeasureText returns the size of text in gui pixels.
func (c *Canvas) MeasureText(text string) gui.Vec2 {
	return gui.Vec2{X: float32(utf8.RuneCountInString(text) * CellWidth), Y: CellHeight}
}

// PushClipRect intersects the clip rectangle with (x1, y1)-(x2, y2).
func (c *Canvas) PushClipRect(x1, y1, x2, y2 float32) {
	c.clipStack = append(c.clipStack, c.clip)
	cur := c.clip
	nx1, ny1 := max(x1, cur.X), max(y1, cur.Y)
	nx2, ny2 := min(x2, cur.X+cur.W), min(y2, cur.Y+cur.H)
	c.clip = gui.Rect{X: nx1, Y: ny1, W: max(nx2-nx1, 0), H: max(ny2-ny1, 0)}
}

// PopClipRect restores the previous clip rectangle.
func (c *Canvas) PopClipRect() {
	if n := len(c.clipStack); n > 0 {
		c.clip = c.clipStack[n-1]
		c.clipStack = c.clipStack[:n-1]
	}
}

// Text returns the grid as plain text, one line per row.
func (c *Canvas) Text() string {
	var sb strings.Builder
	for row := range c.rows {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range c.cells[row*c.cols : (row+1)*c.cols] {
			sb.WriteRune(cell.Rune)
		}
	}
	return sb.String()
}

// Render returns the grid styled with lipgloss, one line per row.
func (c *Canvas) Render() string {
	var sb strings.Builder
	var run strings.Builder
	for row := range c.rows {
		if row > 0 {
			sb.WriteByte('\n')
		}
		cells := c.cells[row*c.cols : (row+1)*c.cols]
		for i := 0; i < len(cells); {
			key := [2]uint32{cells[i].Foreground, cells[i].Background}
			run.Reset()
			for ; i < len(cells) && cells[i].Foreground == key[0] && cells[i].Background == key[1]; i++ {
				run.WriteRune(cells[i].Rune)
			}
			sb.WriteString(c.style(key).Render(run.String()))
		}
	}
	return sb.String()
}

func (c *Canvas) style(key [2]uint32) lipgloss.Style {
	if s, ok := c.styles[key]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if key[0] != 0 {
		s = s.Foreground(lipgloss.Color(hex(key[0])))
	}
	if key[1] != 0 {
		s = s.Background(lipgloss.Color(hex(key[1])))
	}
	c.styles[key] = s
	return s
}

func hex(color uint32) string {
	r, g, b, _ := gui.UnpackRGBA(color)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func opaque(color uint32) uint32 { return color | 0xFF000000 }

// blend composites src over dst. A zero dst is treated as black.
func blend(src, dst uint32) uint32 {
	sr, sg, sb, sa := gui.UnpackRGBA(src)
	dr, dg, db, _ := gui.UnpackRGBA(dst)
	a := uint32(sa)
	mix := func(s, d uint8) uint8 { return uint8((uint32(s)*a + uint32(d)*(255-a)) / 255) }
	return gui.RGBA(mix(sr, dr), mix(sg, dg), mix(sb, db), 255)
}
