// Package screens builds the demo host's screens from gui widgets.
package screens

import (
	gui "github.com/go-theft-auto/modkit"
	"github.com/go-theft-auto/modkit/capability"
	"github.com/go-theft-auto/modkit/internal/mods"
	"github.com/go-theft-auto/modkit/settings"
)

const (
	columnWidth float32 = 100
	rowHeight   float32 = 12
	columnGap   float32 = 6
	headerY     float32 = 30
)

// Deps are the session objects the screens bind to.
type Deps struct {
	Registry *capability.Registry
	Settings *settings.Store
	Feedback *gui.Feedback
	Style    gui.Style
	// OpenXray opens the xray block browser.
	OpenXray func()
}

// capToggle mirrors a capability's state in a toggle.
type capToggle struct {
	*gui.Toggle
	c capability.Capability
}

// Mods lists every capability by category, one scrollable column per category,
// with the GUI settings on the bottom row.
type Mods struct {
	gui.Box
	deps Deps

	columns []*gui.ScrollContainer
	toggles []capToggle
	sound   *gui.Toggle
	corner  *gui.Cycle
	xray    *gui.Clickable

	// widgets in dispatch and render order
	widgets []gui.Widget
}

// NewMods builds the mods screen for display.
func NewMods(deps Deps, display gui.Vec2) *Mods {
	m := &Mods{deps: deps}
	m.Resize(display)
	return m
}

// Resize rebuilds the layout for a new display size.
func (m *Mods) Resize(display gui.Vec2) {
	d := m.deps
	m.Box = gui.NewBox(0, 0, display.X, display.Y, "Mods")
	m.Style = d.Style
	m.columns, m.toggles, m.widgets = nil, nil, nil

	maxH := display.Y - headerY - 3*rowHeight
	x := gui.SpaceMD
	for _, cat := range capability.Categories() {
		caps := d.Registry.ByCategory(cat)
		if len(caps) == 0 {
			continue
		}
		h := min(float32(len(caps))*rowHeight, maxH)
		col := gui.NewScrollContainer(m.box(x, headerY+rowHeight, columnWidth, h, cat.String()), rowHeight)
		for _, c := range caps {
			t := gui.NewToggle(m.box(0, 0, columnWidth, rowHeight, c.Name()), c.Enabled(), func(bool) { c.Toggle() })
			t.Feedback = d.Feedback
			col.Add(t)
			m.toggles = append(m.toggles, capToggle{Toggle: t, c: c})
		}
		m.columns = append(m.columns, col)
		m.widgets = append(m.widgets, col)
		x += columnWidth + columnGap
	}

	bottom := display.Y - rowHeight - gui.SpaceMD
	m.sound = gui.NewToggle(m.box(gui.SpaceMD, bottom, columnWidth, rowHeight, "Sound"), d.Settings.Bool(gui.SettingSound), func(on bool) {
		d.Settings.SetBool(gui.SettingSound, on)
	})
	m.sound.Feedback = d.Feedback

	m.corner = gui.NewCycle(m.box(gui.SpaceMD+columnWidth+columnGap, bottom, 2*columnWidth, rowHeight, "Overlay"), mods.CornerCount, func(i int) {
		d.Settings.SetInt(settings.KeyOverlayCorner, i)
	})
	m.corner.Labels = mods.CornerLabels
	m.corner.SetIndex(d.Settings.Int(settings.KeyOverlayCorner))
	m.corner.Feedback = d.Feedback

	m.xray = gui.NewClickable(m.box(gui.SpaceMD+3*(columnWidth+columnGap), bottom, columnWidth, rowHeight, "Xray Blocks"), func(gui.MouseButton) {
		if d.OpenXray != nil {
			d.OpenXray()
		}
	})
	m.xray.Feedback = d.Feedback

	m.widgets = append(m.widgets, m.sound, m.corner, m.xray)
}

func (m *Mods) box(x, y, w, h float32, title string) gui.Box {
	b := gui.NewBox(x, y, w, h, title)
	b.Style = m.deps.Style
	return b
}

// Columns returns the category columns in display order.
func (m *Mods) Columns() []*gui.ScrollContainer { return m.columns }

// Render syncs every toggle with its capability, then draws the widgets.
func (m *Mods) Render(p gui.Painter, mouse gui.Vec2) {
	for _, t := range m.toggles {
		t.SetOn(t.c.Enabled())
	}
	for _, col := range m.columns {
		r := col.Bounds()
		title := gui.TruncateText(p, col.Title, r.W-2*gui.SpaceXS)
		p.AddRect(r.X, r.Y-rowHeight, r.W, rowHeight, m.Style.BorderColor)
		p.AddText(gui.CenterText(p, gui.Rect{X: r.X, W: r.W}, title), r.Y-rowHeight+gui.SpaceXS, title, gui.ColorBlack)
	}
	for _, w := range m.widgets {
		w.Render(p, mouse)
	}
}

// OnMouseClicked gives the click to the first widget that consumes it.
func (m *Mods) OnMouseClicked(x, y float32, button gui.MouseButton) bool {
	for _, w := range m.widgets {
		if h, ok := w.(gui.ClickHandler); ok && h.OnMouseClicked(x, y, button) {
			return true
		}
	}
	return false
}

// OnMouseScrolled scrolls the column under the pointer.
func (m *Mods) OnMouseScrolled(x, y, delta float32) bool {
	for _, col := range m.columns {
		if col.OnMouseScrolled(x, y, delta) {
			return true
		}
	}
	return false
}

func (m *Mods) OnKeyPressed(key gui.Key) bool { return false }
func (m *Mods) OnCharTyped(r rune) bool       { return false }
