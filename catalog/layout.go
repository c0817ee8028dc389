package catalog

import (
	gui "github.com/go-theft-auto/modkit"
)

// Default cell metrics for the item grid.
const (
	DefaultCellSize float32 = 18
	DefaultIconSize float32 = 16
)

// Layout places the item grid inside the panel bounds.
type Layout struct {
	Bounds gui.Rect
	// Inset moves the first cell away from the panel's top-left corner.
	Inset    gui.Vec2
	CellW    float32
	CellH    float32
	IconSize float32
}

// LayoutFor returns the browser panel for a display of the given size: 90% of the
// width and 78% of the height, starting one twentieth in, below the header row.
func LayoutFor(display gui.Vec2) Layout {
	w, h := int(display.X), int(display.Y)
	return Layout{
		Bounds: gui.Rect{
			X: float32(w / 20),
			Y: float32(h/20 + 20),
			W: float32(int(display.X * 0.9)),
			H: float32(int(display.Y * 0.78)),
		},
		Inset:    gui.Vec2{X: 2, Y: 5},
		CellW:    DefaultCellSize,
		CellH:    DefaultCellSize,
		IconSize: DefaultIconSize,
	}
}

// Columns returns the number of cells per row.
func (l Layout) Columns() int {
	if l.CellW <= 0 {
		return 0
	}
	return int(l.Bounds.W / l.CellW)
}

// Rows returns the number of rows per page.
func (l Layout) Rows() int {
	if l.CellH <= 0 {
		return 0
	}
	return int(l.Bounds.H / l.CellH)
}

// PerPage returns Columns() * Rows().
func (l Layout) PerPage() int {
	return l.Columns() * l.Rows()
}

// Origin returns the top-left corner of cell 0.
func (l Layout) Origin() gui.Vec2 {
	return gui.Vec2{X: l.Bounds.X + l.Inset.X, Y: l.Bounds.Y + l.Inset.Y}
}

// Cell returns the icon rectangle of visible index i.
func (l Layout) Cell(i int) gui.Rect {
	cols := max(l.Columns(), 1)
	o := l.Origin()
	return gui.Rect{
		X: o.X + float32(i%cols)*l.CellW,
		Y: o.Y + float32(i/cols)*l.CellH,
		W: l.IconSize,
		H: l.IconSize,
	}
}

// IndexAt maps a pointer position to a visible index using row and column math.
// ok is false outside the panel or outside the grid.
func (l Layout) IndexAt(x, y float32) (index int, ok bool) {
	if !l.Bounds.Contains(gui.Vec2{X: x, Y: y}) {
		return 0, false
	}
	cols, rows := l.Columns(), l.Rows()
	o := l.Origin()
	row := gui.FloorDiv(y-o.Y, l.CellH)
	col := gui.FloorDiv(x-o.X, l.CellW)
	if row < 0 || col < 0 || row >= rows || col >= cols {
		return 0, false
	}
	return row*cols + col, true
}

// Moved returns l with the panel's top-left corner at (x, y).
func (l Layout) Moved(x, y float32) Layout {
	l.Bounds.X, l.Bounds.Y = x, y
	return l
}
