package gui

// Toggle is a clickable with a persistent on/off state.
// Every consumed click flips the state, whatever the button, and then calls OnToggle.
// How it renders is a function of the state alone.
type Toggle struct {
	Box
	on bool

	// OnToggle receives the new state after each flip.
	OnToggle func(on bool)
	Feedback *Feedback
}

// NewToggle creates a toggle over box with the initial state on.
func NewToggle(box Box, on bool, onToggle func(bool)) *Toggle {
	return &Toggle{Box: box, on: on, OnToggle: onToggle}
}

// On returns the current state.
func (t *Toggle) On() bool { return t.on }

// SetOn sets the state without invoking OnToggle. Use it to mirror state owned elsewhere.
func (t *Toggle) SetOn(on bool) { t.on = on }

// OnMouseClicked flips the state if (x, y) is inside the widget.
func (t *Toggle) OnMouseClicked(x, y float32, button MouseButton) bool {
	if !t.hit(x, y) {
		return false
	}
	t.on = !t.on
	t.Feedback.Click()
	if t.OnToggle != nil {
		t.OnToggle(t.on)
	}
	return true
}

// Render draws the enabled fill and a border while on, the plain background while off.
func (t *Toggle) Render(p Painter, mouse Vec2) {
	if t.Hidden {
		return
	}
	r := t.Rect
	if t.on {
		p.AddRect(r.X, r.Y, r.W, r.H, t.Style.EnabledColor)
		p.AddRectOutline(r.X, r.Y, r.W, r.H, t.Style.BorderColor, t.Style.BorderSize)
	} else {
		p.AddRect(r.X, r.Y, r.W, r.H, t.Style.BackgroundColor)
	}
	t.renderTitle(p, t.Style.TextColor)
}
