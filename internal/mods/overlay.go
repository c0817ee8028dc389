package mods

import (
	"fmt"

	gui "github.com/go-theft-auto/modkit"
	"github.com/go-theft-auto/modkit/capability"
)

// Corner is an overlay anchor, cycled from the settings screen.
type Corner int

const (
	CornerTopLeft Corner = iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight
	cornerCount
)

// CornerLabels are the display names of every Corner, in order.
var CornerLabels = []string{"Top Left", "Top Right", "Bottom Left", "Bottom Right"}

// CornerCount is the number of corners.
const CornerCount = int(cornerCount)

// IntSettings reads and writes integer settings.
type IntSettings interface {
	Int(name string) int
	SetInt(name string, value int)
}

// anchor returns the top-left of a w×h block placed in corner c of display.
func anchor(c Corner, display gui.Vec2, w, h float32) gui.Vec2 {
	m := gui.SpaceMD
	switch c {
	case CornerTopRight:
		return gui.Vec2{X: display.X - w - m, Y: m}
	case CornerBottomLeft:
		return gui.Vec2{X: m, Y: display.Y - h - m}
	case CornerBottomRight:
		return gui.Vec2{X: display.X - w - m, Y: display.Y - h - m}
	default:
		return gui.Vec2{X: m, Y: m}
	}
}

// FPS shows a smoothed frame rate.
type FPS struct {
	capability.Base
	display func() gui.Vec2
	fps     float32
}

// NewFPS creates the frame rate overlay. display returns the current display size.
func NewFPS(display func() gui.Vec2) *FPS {
	return &FPS{
		Base:    capability.NewBase("fps", "FPS", capability.CategoryGUI),
		display: display,
	}
}

// Rate returns the smoothed frames per second.
func (f *FPS) Rate() float32 { return f.fps }

// OnRenderOverlay updates the estimate every frame and draws it while enabled.
func (f *FPS) OnRenderOverlay(p gui.Painter, dt float32) {
	if dt > 0 {
		inst := 1 / dt
		if f.fps == 0 {
			f.fps = inst
		} else {
			f.fps += (inst - f.fps) * 0.1
		}
	}
	if !f.Enabled() {
		return
	}
	text := fmt.Sprintf("%.0f fps", f.fps)
	size := p.MeasureText(text)
	pos := anchor(CornerBottomRight, f.display(), size.X, size.Y)
	p.AddText(pos.X, pos.Y, text, gui.ColorYellow)
}

// ModList lists the enabled capabilities in the configured corner.
type ModList struct {
	capability.Base
	registry *capability.Registry
	settings IntSettings
	display  func() gui.Vec2
	key      string
}

// NewModList creates the enabled-capability list. The corner is read from the
// integer setting named cornerKey.
func NewModList(registry *capability.Registry, settings IntSettings, cornerKey string, display func() gui.Vec2) *ModList {
	return &ModList{
		Base:     capability.NewBase("modlist", "Mod List", capability.CategoryGUI),
		registry: registry,
		settings: settings,
		display:  display,
		key:      cornerKey,
	}
}

// Lines returns the names of the enabled capabilities in registry order.
func (m *ModList) Lines() []string {
	var lines []string
	for _, c := range m.registry.All() {
		if c.Enabled() && c != capability.Capability(m) {
			lines = append(lines, c.Name())
		}
	}
	return lines
}

// OnRenderOverlay draws the list while enabled.
func (m *ModList) OnRenderOverlay(p gui.Painter, dt float32) {
	if !m.Enabled() {
		return
	}
	lines := m.Lines()
	if len(lines) == 0 {
		return
	}
	var w float32
	for _, l := range lines {
		w = max(w, p.MeasureText(l).X)
	}
	lineH := p.MeasureText("M").Y + gui.SpaceXS
	corner := Corner(m.settings.Int(m.key))
	if corner < 0 || corner >= cornerCount {
		corner = CornerTopLeft
	}
	pos := anchor(corner, m.display(), w, lineH*float32(len(lines)))
	for i, l := range lines {
		p.AddText(pos.X, pos.Y+float32(i)*lineH, l, gui.ColorWhite)
	}
}

// Fullbright raises gamma while enabled and restores the previous value after.
type Fullbright struct {
	capability.Base
	settings IntSettings
	key      string
	saved    int
}

// FullbrightGamma is the gamma percentage applied while enabled.
const FullbrightGamma = 1600

// NewFullbright creates the capability over the integer setting named gammaKey.
func NewFullbright(settings IntSettings, gammaKey string) *Fullbright {
	f := &Fullbright{settings: settings, key: gammaKey}
	f.Base = capability.NewBase("fullbright", "Fullbright", capability.CategoryRender,
		capability.OnEnable(f.raise),
		capability.OnDisable(f.restore))
	return f
}

func (f *Fullbright) raise() {
	// Re-enabling without a disable must not save the raised value.
	if cur := f.settings.Int(f.key); cur != FullbrightGamma {
		f.saved = cur
	}
	f.settings.SetInt(f.key, FullbrightGamma)
}

func (f *Fullbright) restore() {
	if f.saved == 0 {
		return
	}
	f.settings.SetInt(f.key, f.saved)
}
