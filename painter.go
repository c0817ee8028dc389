package gui

// Painter is the drawing collaborator. Widgets describe what to draw through it;
// the backend that implements it owns the pixels (a GPU vertex batch, a terminal grid).
type Painter interface {
	// AddRect draws a filled rectangle.
	AddRect(x, y, w, h float32, color uint32)
	// AddRectOutline draws a rectangle outline of the given thickness.
	AddRectOutline(x, y, w, h float32, color uint32, thickness float32)
	// AddIcon draws a textured icon. When textureID is 0 the backend draws fallback instead.
	AddIcon(x, y, w, h float32, textureID uint32, fallback string)
	// AddText draws a single line of text with its top-left corner at (x, y).
	AddText(x, y float32, text string, color uint32)
	// MeasureText returns the size text would occupy.
	MeasureText(text string) Vec2
	// PushClipRect restricts subsequent drawing to the rectangle (x1, y1)-(x2, y2).
	PushClipRect(x1, y1, x2, y2 float32)
	// PopClipRect restores the previous clip rectangle.
	PopClipRect()
}

// offsetPainter shifts every primitive vertically. ScrollContainer renders its
// children in content space through one of these.
type offsetPainter struct {
	Painter
	dy float32
}

func (p offsetPainter) AddRect(x, y, w, h float32, color uint32) {
	p.Painter.AddRect(x, y+p.dy, w, h, color)
}

func (p offsetPainter) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	p.Painter.AddRectOutline(x, y+p.dy, w, h, color, thickness)
}

func (p offsetPainter) AddIcon(x, y, w, h float32, textureID uint32, fallback string) {
	p.Painter.AddIcon(x, y+p.dy, w, h, textureID, fallback)
}

func (p offsetPainter) AddText(x, y float32, text string, color uint32) {
	p.Painter.AddText(x, y+p.dy, text, color)
}

func (p offsetPainter) PushClipRect(x1, y1, x2, y2 float32) {
	p.Painter.PushClipRect(x1, y1+p.dy, x2, y2+p.dy)
}

// CenterText returns the x position that centers text inside r.
func CenterText(p Painter, r Rect, text string) float32 {
	return r.X + (r.W-p.MeasureText(text).X)/2
}
