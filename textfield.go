package gui

import "unicode"

// TextField is a single-line text input. It takes keyboard input only while focused;
// a click inside focuses it.
type TextField struct {
	Box
	text    []rune
	focused bool

	// Placeholder is drawn while the field is empty.
	Placeholder string
	// MaxLength limits the text length in runes (0 = unlimited).
	MaxLength int
	// OnChange receives the text after every edit that changed it.
	OnChange func(text string)
}

// NewTextField creates an empty, unfocused text field.
func NewTextField(box Box, onChange func(string)) *TextField {
	return &TextField{Box: box, OnChange: onChange}
}

// Text returns the current text.
func (f *TextField) Text() string { return string(f.text) }

// SetText replaces the text without invoking OnChange.
func (f *TextField) SetText(text string) { f.text = []rune(text) }

// Focused reports whether the field receives keyboard input.
func (f *TextField) Focused() bool { return f.focused }

// SetFocused focuses or unfocuses the field.
func (f *TextField) SetFocused(focused bool) { f.focused = focused }

// OnMouseClicked focuses the field when clicked inside.
func (f *TextField) OnMouseClicked(x, y float32, button MouseButton) bool {
	if !f.hit(x, y) {
		return false
	}
	f.focused = true
	return true
}

// OnCharTyped appends printable runes while focused.
func (f *TextField) OnCharTyped(r rune) bool {
	if !f.focused || !unicode.IsPrint(r) {
		return false
	}
	if f.MaxLength > 0 && len(f.text) >= f.MaxLength {
		return true
	}
	f.text = append(f.text, r)
	f.changed()
	return true
}

// OnKeyPressed handles editing keys while focused.
// The caret always sits at the end of the text, so there is no rune after it:
// Backspace deletes the last rune and Delete clears the whole field instead of
// deleting forward. Enter and Escape unfocus.
func (f *TextField) OnKeyPressed(key Key) bool {
	if !f.focused {
		return false
	}
	switch key {
	case KeyBackspace:
		if len(f.text) > 0 {
			f.text = f.text[:len(f.text)-1]
			f.changed()
		}
		return true
	case KeyDelete:
		if len(f.text) > 0 {
			f.text = f.text[:0]
			f.changed()
		}
		return true
	case KeyEnter, KeyEscape:
		f.focused = false
		return true
	}
	return false
}

func (f *TextField) changed() {
	if f.OnChange != nil {
		f.OnChange(string(f.text))
	}
}

// Render draws the field, the text or placeholder, and a caret while focused.
func (f *TextField) Render(p Painter, mouse Vec2) {
	if f.Hidden {
		return
	}
	r := f.Rect
	p.AddRect(r.X, r.Y, r.W, r.H, ColorBlack)
	border := f.Style.TextDisabledColor
	if f.focused {
		border = f.Style.BorderColor
	}
	p.AddRectOutline(r.X, r.Y, r.W, r.H, border, f.Style.BorderSize)

	text, color := string(f.text), f.Style.TextColor
	if len(f.text) == 0 && !f.focused {
		text, color = f.Placeholder, f.Style.TextDisabledColor
	}
	size := p.MeasureText(text)
	tx := r.X + SpaceXS
	ty := r.Y + (r.H-size.Y)/2

	end := r.Max()
	p.PushClipRect(r.X, r.Y, end.X, end.Y)
	p.AddText(tx, ty, text, color)
	if f.focused {
		p.AddText(tx+size.X, ty, "_", f.Style.TextColor)
	}
	p.PopClipRect()
}
