package gui

// ScrollContainer lays its children out top-to-bottom at a fixed row height and
// shows a window of them through a clamped scroll offset.
//
// Children live in content space: child i sits at Y + i*RowHeight. Rendering and
// pointer dispatch translate by the scroll offset, so the viewport shows content
// rows [offset, offset+H).
type ScrollContainer struct {
	Box
	RowHeight float32

	children []Widget
	offset   float32
}

// NewScrollContainer creates an empty container. rowHeight must be positive.
func NewScrollContainer(box Box, rowHeight float32) *ScrollContainer {
	return &ScrollContainer{Box: box, RowHeight: rowHeight}
}

// Add appends a child and moves it into its row. Order determines layout and dispatch order.
func (s *ScrollContainer) Add(children ...Widget) {
	for _, w := range children {
		row := float32(len(s.children))
		w.SetPosition(s.Rect.X, s.Rect.Y+row*s.RowHeight)
		s.children = append(s.children, w)
	}
	s.clamp()
}

// Clear removes all children.
func (s *ScrollContainer) Clear() {
	s.children = s.children[:0]
	s.offset = 0
}

// Children returns the children in layout order.
func (s *ScrollContainer) Children() []Widget {
	return s.children
}

// SetPosition moves the container and re-lays out its children.
func (s *ScrollContainer) SetPosition(x, y float32) {
	s.Box.SetPosition(x, y)
	for i, w := range s.children {
		w.SetPosition(x, y+float32(i)*s.RowHeight)
	}
}

// ContentHeight returns the total height of all rows.
func (s *ScrollContainer) ContentHeight() float32 {
	return float32(len(s.children)) * s.RowHeight
}

// MaxScroll returns the largest valid offset.
func (s *ScrollContainer) MaxScroll() float32 {
	return maxf(0, s.ContentHeight()-s.Rect.H)
}

// ScrollOffset returns the current offset in [0, MaxScroll()].
func (s *ScrollContainer) ScrollOffset() float32 {
	return s.offset
}

// SetScrollOffset sets the offset, clamped to [0, MaxScroll()].
func (s *ScrollContainer) SetScrollOffset(offset float32) {
	s.offset = offset
	s.clamp()
}

// ScrollBy moves the offset by delta, clamped to [0, MaxScroll()].
func (s *ScrollContainer) ScrollBy(delta float32) {
	s.SetScrollOffset(s.offset + delta)
}

// ScrollTo scrolls the least distance that shows row i in full.
func (s *ScrollContainer) ScrollTo(i int) {
	if i < 0 || i >= len(s.children) {
		return
	}
	s.SetScrollOffset(scrollToRow(i, s.RowHeight, s.Rect.H, s.offset))
}

// window returns the rows intersecting the viewport.
func (s *ScrollContainer) window() (first, last int) {
	return visibleRows(len(s.children), s.RowHeight, s.Rect.H, s.offset)
}

func (s *ScrollContainer) clamp() {
	s.offset = clampf(s.offset, 0, s.MaxScroll())
}

// OnMouseScrolled scrolls one row per wheel step while the pointer is over the container.
func (s *ScrollContainer) OnMouseScrolled(x, y, delta float32) bool {
	if !s.hit(x, y) {
		return false
	}
	s.ScrollBy(-delta * s.RowHeight)
	guiLogger.Debug("scroll", "title", s.Title, "offset", s.offset, "max", s.MaxScroll())
	return true
}

// OnMouseClicked forwards the click, translated into content space, to the first
// child whose bounds contain it. Clicks outside the viewport are not consumed.
func (s *ScrollContainer) OnMouseClicked(x, y float32, button MouseButton) bool {
	if !s.hit(x, y) {
		return false
	}
	cy := y + s.offset
	first, last := s.window()
	for _, w := range s.children[first:last] {
		if !w.Visible() || !w.Contains(x, cy) {
			continue
		}
		if h, ok := w.(ClickHandler); ok {
			return h.OnMouseClicked(x, cy, button)
		}
		return false
	}
	return false
}

// Render draws the visible rows clipped to the viewport, then the scrollbar.
func (s *ScrollContainer) Render(p Painter, mouse Vec2) {
	if s.Hidden {
		return
	}
	r := s.Rect
	p.AddRect(r.X, r.Y, r.W, r.H, s.Style.BackgroundColor)

	p.PushClipRect(r.X, r.Y, r.X+r.W, r.Y+r.H)
	content := offsetPainter{Painter: p, dy: -s.offset}
	contentMouse := mouse.Add(Vec2{Y: s.offset})
	if !s.Contains(mouse.X, mouse.Y) {
		contentMouse = Vec2{X: -1e9, Y: -1e9}
	}
	view := Rect{X: r.X, Y: r.Y + s.offset, W: r.W, H: r.H}
	first, last := s.window()
	for _, w := range s.children[first:last] {
		if w.Visible() && w.Bounds().Intersects(view) {
			w.Render(content, contentMouse)
		}
	}
	p.PopClipRect()

	s.renderScrollbar(p)
}

func (s *ScrollContainer) renderScrollbar(p Painter) {
	content := s.ContentHeight()
	r := s.Rect
	if content <= r.H || s.Style.ScrollbarSize <= 0 {
		return
	}
	barW := s.Style.ScrollbarSize
	barX := r.X + r.W - barW
	thumbH := maxf(barW, r.H*r.H/content)
	thumbY := r.Y
	if maxScroll := s.MaxScroll(); maxScroll > 0 {
		thumbY += (s.offset / maxScroll) * (r.H - thumbH)
	}
	p.AddRect(barX, r.Y, barW, r.H, s.Style.ScrollbarBgColor)
	p.AddRect(barX, thumbY, barW, thumbH, s.Style.ScrollbarGrabColor)
}
