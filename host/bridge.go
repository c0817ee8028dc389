// Package host adapts a host application's event stream to a capability
// registry and the currently open screen.
//
// A backend owns the window or terminal and calls the Bridge handlers from its
// single event thread. The Bridge never blocks and never starts goroutines.
package host

import (
	"fmt"
	"log/slog"

	gui "github.com/go-theft-auto/modkit"
	"github.com/go-theft-auto/modkit/capability"
)

// Bridge fans host events out to the capability registry, the open screen and
// the keybind table.
type Bridge struct {
	registry *capability.Registry
	keys     *Keybinds
	screens  screenRegistry

	screen     Screen
	screenName string

	mouse   gui.Vec2
	display gui.Vec2
	logger  *slog.Logger
}

// BridgeOption configures a Bridge.
type BridgeOption func(*Bridge)

// WithDisplay sets the initial display size.
func WithDisplay(width, height float32) BridgeOption {
	return func(b *Bridge) { b.display = gui.Vec2{X: width, Y: height} }
}

// WithBridgeLogger sets the bridge logger.
func WithBridgeLogger(logger *slog.Logger) BridgeOption {
	return func(b *Bridge) { b.logger = logger }
}

// NewBridge creates a bridge dispatching to registry.
func NewBridge(registry *capability.Registry, opts ...BridgeOption) *Bridge {
	b := &Bridge{
		registry: registry,
		screens:  make(screenRegistry),
		logger:   gui.NewLogger("host"),
	}
	b.keys = NewKeybinds(b.ScreenOpen)
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Registry returns the capability registry.
func (b *Bridge) Registry() *capability.Registry { return b.registry }

// Keybinds returns the hotkey table consulted after the open screen.
func (b *Bridge) Keybinds() *Keybinds { return b.keys }

// Mouse returns the last known pointer position.
func (b *Bridge) Mouse() gui.Vec2 { return b.mouse }

// Display returns the display size.
func (b *Bridge) Display() gui.Vec2 { return b.display }

// RegisterScreen registers a screen factory under name, replacing any previous one.
func (b *Bridge) RegisterScreen(name string, factory ScreenFactory) {
	b.screens[name] = factory
}

// Screens returns the registered screen names in sorted order.
func (b *Bridge) Screens() []string {
	return b.screens.names()
}

// Open builds the named screen and gives it input, closing the current one first.
func (b *Bridge) Open(name string) error {
	factory, ok := b.screens[name]
	if !ok {
		return fmt.Errorf("open %q: %w", name, ErrUnknownScreen)
	}
	b.Close()
	b.screen = factory(b.display)
	b.screenName = name
	b.logger.Debug("screen opened", "name", name)
	return nil
}

// Toggle opens the named screen, or closes it if it is the one already open.
func (b *Bridge) Toggle(name string) error {
	if b.screenName == name && b.screen != nil {
		b.Close()
		return nil
	}
	return b.Open(name)
}

// Close closes the open screen, if any.
func (b *Bridge) Close() {
	if b.screen == nil {
		return
	}
	if c, ok := b.screen.(Closer); ok {
		c.OnClose()
	}
	b.logger.Debug("screen closed", "name", b.screenName)
	b.screen = nil
	b.screenName = ""
}

// Screen returns the open screen and its name.
func (b *Bridge) Screen() (Screen, string) { return b.screen, b.screenName }

// ScreenOpen reports whether a screen has input.
func (b *Bridge) ScreenOpen() bool { return b.screen != nil }

// Resize records the display size and relays it to the open screen.
func (b *Bridge) Resize(width, height float32) {
	b.display = gui.Vec2{X: width, Y: height}
	if r, ok := b.screen.(Resizer); ok {
		r.Resize(b.display)
	}
}

// OnTick dispatches a host tick to every capability.
func (b *Bridge) OnTick() {
	b.registry.DispatchTick()
}

// OnRenderOverlay draws capability overlays, then the open screen on top.
func (b *Bridge) OnRenderOverlay(p gui.Painter, dt float32) {
	b.registry.DispatchRenderOverlay(p, dt)
	if b.screen != nil {
		b.screen.Render(p, b.mouse)
	}
}

// OnRenderWorld dispatches a world render pass to every capability.
func (b *Bridge) OnRenderWorld(ctx capability.WorldContext, dt float32) {
	b.registry.DispatchRenderWorld(ctx, dt)
}

// OnMouseMoved records the pointer position used for hover.
func (b *Bridge) OnMouseMoved(x, y float32) {
	b.mouse = gui.Vec2{X: x, Y: y}
}

// OnMouseClicked forwards a click to the open screen.
func (b *Bridge) OnMouseClicked(x, y float32, button gui.MouseButton) bool {
	b.mouse = gui.Vec2{X: x, Y: y}
	if b.screen == nil {
		return false
	}
	return b.screen.OnMouseClicked(x, y, button)
}

// OnMouseScrolled forwards the wheel to the open screen if it scrolls.
func (b *Bridge) OnMouseScrolled(x, y, delta float32) bool {
	b.mouse = gui.Vec2{X: x, Y: y}
	if s, ok := b.screen.(Scroller); ok {
		return s.OnMouseScrolled(x, y, delta)
	}
	return false
}

// OnKeyPressed gives the key to the open screen, then to the keybinds.
// Escape closes the open screen unless the screen consumed it.
func (b *Bridge) OnKeyPressed(key gui.Key) bool {
	if b.screen != nil {
		if b.screen.OnKeyPressed(key) {
			return true
		}
		if key == gui.KeyEscape {
			b.Close()
			return true
		}
	}
	return b.keys.Handle(key)
}

// OnCharTyped forwards typed text to the open screen.
func (b *Bridge) OnCharTyped(r rune) bool {
	if b.screen == nil {
		return false
	}
	return b.screen.OnCharTyped(r)
}
