// Package mods holds the built-in capabilities of the demo host.
package mods

import (
	"fmt"
	"log/slog"

	gui "github.com/go-theft-auto/modkit"
	"github.com/go-theft-auto/modkit/capability"
	"github.com/go-theft-auto/modkit/catalog"
)

// Block is a block placed in the demo world.
type Block struct {
	Key     string
	X, Y, Z float64
}

// Xray highlights the world blocks whose key is in its active set.
// The highlighted set is derived from the active set and rebuilt by Reload.
type Xray struct {
	capability.Base

	active catalog.ActiveSet
	world  []Block
	logger *slog.Logger

	visible []Block
}

// NewXray creates the xray capability over the blocks of world.
func NewXray(active catalog.ActiveSet, world []Block) *Xray {
	x := &Xray{
		active: active,
		world:  world,
		logger: gui.NewLogger("xray"),
	}
	x.Base = capability.NewBase("xray", "Xray", capability.CategoryRender,
		capability.OnEnable(x.Reload))
	x.Reload()
	return x
}

// Reload rebuilds the highlighted block list from the active set.
func (x *Xray) Reload() {
	x.visible = x.visible[:0]
	for _, b := range x.world {
		if x.active.IsItemActive(b.Key) {
			x.visible = append(x.visible, b)
		}
	}
	x.logger.Debug("xray reloaded", "visible", len(x.visible), "world", len(x.world))
}

// Visible returns the highlighted blocks.
func (x *Xray) Visible() []Block { return x.visible }

// OnRenderWorld outlines every highlighted block that projects on screen.
func (x *Xray) OnRenderWorld(ctx capability.WorldContext, dt float32) {
	if !x.Enabled() || ctx == nil {
		return
	}
	p := ctx.Painter()
	for _, b := range x.visible {
		s, ok := ctx.Project(b.X, b.Y, b.Z)
		if !ok {
			continue
		}
		p.AddRectOutline(s.X-3, s.Y-3, 6, 6, gui.ColorCyan, 1)
	}
}

// OnRenderOverlay shows the highlight count.
func (x *Xray) OnRenderOverlay(p gui.Painter, dt float32) {
	if !x.Enabled() {
		return
	}
	p.AddText(gui.SpaceMD, gui.SpaceMD, fmt.Sprintf("Xray: %d blocks", len(x.visible)), gui.ColorCyan)
}

// DemoWorld scatters the catalog's blocks on a square grid, one per cell.
func DemoWorld(cat *catalog.Catalog, spacing float64) []Block {
	items := cat.Items()
	side := 1
	for side*side < len(items) {
		side++
	}
	world := make([]Block, 0, len(items))
	for i, it := range items {
		col, row := i%side, i/side
		world = append(world, Block{
			Key: it.Key,
			X:   (float64(col) - float64(side)/2) * spacing,
			Z:   (float64(row) - float64(side)/2) * spacing,
		})
	}
	return world
}
