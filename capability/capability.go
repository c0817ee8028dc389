// Package capability holds the toggleable behaviors ("mods") a host session runs
// and the registry that dispatches host events to them.
package capability

import (
	gui "github.com/go-theft-auto/modkit"
)

// Category groups capabilities on the mods screen.
type Category int

const (
	CategoryMovement Category = iota
	CategoryCombat
	CategoryRender
	CategoryESP
	CategoryTracers
	CategoryGUI
	CategoryMisc
	categoryCount
)

var categoryNames = [categoryCount]string{
	CategoryMovement: "Movement",
	CategoryCombat:   "Combat",
	CategoryRender:   "Render",
	CategoryESP:      "ESP",
	CategoryTracers:  "Tracers",
	CategoryGUI:      "GUI",
	CategoryMisc:     "Misc",
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, categoryCount)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

func (c Category) String() string {
	if c < 0 || c >= categoryCount {
		return "Unknown"
	}
	return categoryNames[c]
}

// WorldContext is handed to world-space render hooks.
type WorldContext interface {
	// Painter draws in screen space on top of the world.
	Painter() gui.Painter
	// Project maps a world position to the screen. ok is false when the
	// position is not visible.
	Project(x, y, z float64) (screen gui.Vec2, ok bool)
}

// Capability is a toggleable unit of behavior. Its identity is Command.
//
// The tick and render hooks run on every host event whether or not the
// capability is enabled; implementations gate on Enabled themselves.
// A hook that panics is not recovered.
type Capability interface {
	Command() string
	Name() string
	Category() Category
	Enabled() bool

	// Toggle flips the state and runs the enable or disable hook once.
	Toggle()
	// SetEnabled toggles only if the state differs.
	SetEnabled(enabled bool)

	OnTick()
	OnRenderOverlay(p gui.Painter, dt float32)
	OnRenderWorld(ctx WorldContext, dt float32)
}

// Reloader is implemented by capabilities that cache state derived from
// settings and must rebuild it when those settings change.
type Reloader interface {
	Reload()
}
