package gui

// Widget is a positioned rectangle that can be hit-tested and rendered.
// Behavior beyond that is opted into through the handler interfaces below.
type Widget interface {
	Bounds() Rect
	// Contains reports whether (x, y) lies in [x, x+w) × [y, y+h).
	Contains(x, y float32) bool
	Visible() bool
	SetPosition(x, y float32)
	// Render draws the widget from its current fields. mouse is the pointer
	// position in the same coordinate space as Bounds.
	Render(p Painter, mouse Vec2)
}

// ClickHandler is implemented by widgets that react to mouse clicks.
// It returns true when the click was consumed.
type ClickHandler interface {
	OnMouseClicked(x, y float32, button MouseButton) bool
}

// ScrollHandler is implemented by widgets that react to the mouse wheel.
// delta is positive when the wheel moves away from the user.
type ScrollHandler interface {
	OnMouseScrolled(x, y, delta float32) bool
}

// KeyHandler is implemented by widgets that react to key presses.
type KeyHandler interface {
	OnKeyPressed(key Key) bool
}

// CharHandler is implemented by widgets that accept typed text.
type CharHandler interface {
	OnCharTyped(r rune) bool
}

// Box is the base every widget is composed from: a top-left anchor, a size,
// an optional title, a visibility flag and the style it renders with.
type Box struct {
	Rect   Rect
	Title  string
	Hidden bool
	Style  Style
}

// NewBox creates a box at (x, y) with the given size and DefaultStyle.
func NewBox(x, y, w, h float32, title string) Box {
	return Box{Rect: Rect{X: x, Y: y, W: w, H: h}, Title: title, Style: DefaultStyle()}
}

// Bounds returns the widget rectangle.
func (b *Box) Bounds() Rect { return b.Rect }

// Contains implements Widget.
func (b *Box) Contains(x, y float32) bool {
	return b.Rect.Contains(Vec2{X: x, Y: y})
}

// Visible implements Widget.
func (b *Box) Visible() bool { return !b.Hidden }

// SetPosition moves the top-left corner.
func (b *Box) SetPosition(x, y float32) {
	b.Rect.X = x
	b.Rect.Y = y
}

// hit reports whether a click at (x, y) should reach this box.
func (b *Box) hit(x, y float32) bool {
	return !b.Hidden && b.Contains(x, y)
}

// Render draws a plain background panel with the title.
func (b *Box) Render(p Painter, mouse Vec2) {
	if b.Hidden {
		return
	}
	b.renderFrame(p, b.Style.BackgroundColor)
	b.renderTitle(p, b.Style.TextColor)
}

func (b *Box) renderFrame(p Painter, fill uint32) {
	r := b.Rect
	p.AddRect(r.X, r.Y, r.W, r.H, fill)
	if b.Style.BorderSize > 0 {
		p.AddRectOutline(r.X, r.Y, r.W, r.H, b.Style.BorderColor, b.Style.BorderSize)
	}
}

func (b *Box) renderTitle(p Painter, color uint32) {
	if b.Title == "" {
		return
	}
	size := p.MeasureText(b.Title)
	p.AddText(b.Rect.X+SpaceXS, b.Rect.Y+(b.Rect.H-size.Y)/2, b.Title, color)
}
