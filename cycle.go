package gui

import "fmt"

// Cycle is a clickable holding an index in [0, size).
// A primary click advances the index, any other button steps it back, wrapping at both ends.
type Cycle struct {
	Box
	size  int
	index int

	// Labels, when set, are shown next to the title for the current index.
	Labels []string
	// OnCycle receives the settled index once per consumed click.
	OnCycle  func(index int)
	Feedback *Feedback
}

// NewCycle creates a cycle of the given size. size below 1 is raised to 1.
func NewCycle(box Box, size int, onCycle func(int)) *Cycle {
	c := &Cycle{Box: box, OnCycle: onCycle}
	c.SetSize(size)
	return c
}

// Index returns the current index.
func (c *Cycle) Index() int { return c.index }

// Size returns the number of positions.
func (c *Cycle) Size() int { return c.size }

// SetSize changes the number of positions, keeping the index in range.
func (c *Cycle) SetSize(size int) {
	if size < 1 {
		size = 1
	}
	c.size = size
	if c.index >= size {
		c.index = size - 1
	}
}

// SetIndex moves to index without invoking OnCycle. Out-of-range values are clamped.
func (c *Cycle) SetIndex(index int) {
	switch {
	case index < 0:
		c.index = 0
	case index >= c.size:
		c.index = c.size - 1
	default:
		c.index = index
	}
}

// OnMouseClicked steps the index if (x, y) is inside the widget.
func (c *Cycle) OnMouseClicked(x, y float32, button MouseButton) bool {
	if !c.hit(x, y) {
		return false
	}
	step := -1
	if button.Primary() {
		step = 1
	}
	c.index += step
	if c.index < 0 {
		c.index = c.size - 1
	} else if c.index >= c.size {
		c.index = 0
	}
	c.Feedback.Click()
	if c.OnCycle != nil {
		c.OnCycle(c.index)
	}
	return true
}

// Label returns the text shown for the current index.
func (c *Cycle) Label() string {
	if c.index < len(c.Labels) {
		if c.Title == "" {
			return c.Labels[c.index]
		}
		return fmt.Sprintf("%s: %s", c.Title, c.Labels[c.index])
	}
	return c.Title
}

// Render draws the frame, highlighted while hovered, and the current label.
func (c *Cycle) Render(p Painter, mouse Vec2) {
	if c.Hidden {
		return
	}
	fill := c.Style.BackgroundColor
	if c.Contains(mouse.X, mouse.Y) {
		fill = c.Style.HoveredColor
	}
	c.renderFrame(p, fill)
	label := c.Label()
	size := p.MeasureText(label)
	p.AddText(c.Rect.X+SpaceXS, c.Rect.Y+(c.Rect.H-size.Y)/2, label, c.Style.TextColor)
}
