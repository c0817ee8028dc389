package capability

import (
	gui "github.com/go-theft-auto/modkit"
)

// Base is the embeddable Disabled/Enabled state machine. Embedders override
// the tick and render hooks they need; enable/disable behavior is supplied
// through options because an embedded method cannot call back into its embedder.
//
// Usage:
//
//	type Fullbright struct {
//	    capability.Base
//	}
//
//	f := &Fullbright{}
//	f.Base = capability.NewBase("fullbright", "Fullbright", capability.CategoryRender,
//	    capability.OnEnable(f.save), capability.OnDisable(f.restore))
type Base struct {
	command  string
	name     string
	category Category
	enabled  bool

	onEnable  func()
	onDisable func()
}

// BaseOption configures a Base.
type BaseOption func(*Base)

// OnEnable sets the hook run on every Disabled -> Enabled transition.
func OnEnable(fn func()) BaseOption {
	return func(b *Base) { b.onEnable = fn }
}

// OnDisable sets the hook run on every Enabled -> Disabled transition.
func OnDisable(fn func()) BaseOption {
	return func(b *Base) { b.onDisable = fn }
}

// NewBase creates a disabled capability state.
func NewBase(command, name string, category Category, opts ...BaseOption) Base {
	b := Base{command: command, name: name, category: category}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b *Base) Command() string    { return b.command }
func (b *Base) Name() string       { return b.name }
func (b *Base) Category() Category { return b.category }
func (b *Base) Enabled() bool      { return b.enabled }

// Toggle flips the state, then runs the matching hook.
// Hooks may run many times over a session and must not assume a clean state.
func (b *Base) Toggle() {
	b.enabled = !b.enabled
	if b.enabled {
		if b.onEnable != nil {
			b.onEnable()
		}
		return
	}
	if b.onDisable != nil {
		b.onDisable()
	}
}

// SetEnabled toggles only when enabled differs from the current state.
func (b *Base) SetEnabled(enabled bool) {
	if b.enabled != enabled {
		b.Toggle()
	}
}

func (b *Base) OnTick()                                    {}
func (b *Base) OnRenderOverlay(p gui.Painter, dt float32)  {}
func (b *Base) OnRenderWorld(ctx WorldContext, dt float32) {}
