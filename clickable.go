package gui

// Clickable is a widget that dispatches clicks inside its bounds to a callback.
//
// Usage:
//
//	next := gui.NewClickable(gui.NewBox(x, y, 13, 13, ">"), func(gui.MouseButton) {
//	    browser.PageUp()
//	})
type Clickable struct {
	Box
	// OnClick receives the button of every consumed click. nil is a no-op.
	OnClick func(button MouseButton)
	// Feedback plays the click sound. nil is silent.
	Feedback *Feedback
}

// NewClickable creates a clickable over box.
func NewClickable(box Box, onClick func(MouseButton)) *Clickable {
	return &Clickable{Box: box, OnClick: onClick}
}

// OnMouseClicked consumes the click iff (x, y) is inside the widget.
func (c *Clickable) OnMouseClicked(x, y float32, button MouseButton) bool {
	if !c.hit(x, y) {
		return false
	}
	c.Feedback.Click()
	if c.OnClick != nil {
		c.OnClick(button)
	}
	return true
}

// Render draws the frame, highlighted while hovered, and the centered title.
func (c *Clickable) Render(p Painter, mouse Vec2) {
	if c.Hidden {
		return
	}
	fill := c.Style.BackgroundColor
	if c.Contains(mouse.X, mouse.Y) {
		fill = c.Style.HoveredColor
	}
	c.renderFrame(p, fill)
	if c.Title != "" {
		size := p.MeasureText(c.Title)
		p.AddText(CenterText(p, c.Rect, c.Title), c.Rect.Y+(c.Rect.H-size.Y)/2, c.Title, c.Style.TextColor)
	}
}
