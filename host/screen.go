package host

import (
	"errors"
	"sort"

	gui "github.com/go-theft-auto/modkit"
)

// ErrUnknownScreen is returned by Open for names without a registered factory.
var ErrUnknownScreen = errors.New("screen not registered")

// Screen is a full-display widget tree that takes input while it is open.
//
// Usage (custom screen):
//
//	type Help struct{ gui.Box }
//
//	func (h *Help) OnMouseClicked(x, y float32, b gui.MouseButton) bool { return false }
//	func (h *Help) OnKeyPressed(key gui.Key) bool                     { return false }
//	func (h *Help) OnCharTyped(r rune) bool                           { return false }
//
//	bridge.RegisterScreen("help", func(display gui.Vec2) host.Screen {
//	    return &Help{Box: gui.NewBox(0, 0, display.X, display.Y, "Help")}
//	})
type Screen interface {
	// Render draws the screen. mouse is the pointer position in display space.
	Render(p gui.Painter, mouse gui.Vec2)
	OnMouseClicked(x, y float32, button gui.MouseButton) bool
	OnKeyPressed(key gui.Key) bool
	OnCharTyped(r rune) bool
}

// Scroller is implemented by screens that react to the mouse wheel.
type Scroller interface {
	OnMouseScrolled(x, y, delta float32) bool
}

// Resizer is implemented by screens that lay themselves out for the display size.
type Resizer interface {
	Resize(display gui.Vec2)
}

// Closer is implemented by screens that need to run code when closed,
// such as persisting settings.
type Closer interface {
	OnClose()
}

// ScreenFactory builds a fresh screen for the current display size.
type ScreenFactory func(display gui.Vec2) Screen

// screenRegistry stores screen factories by name.
type screenRegistry map[string]ScreenFactory

func (r screenRegistry) names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
