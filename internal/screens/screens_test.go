package screens_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gui "github.com/go-theft-auto/modkit"
	"github.com/go-theft-auto/modkit/capability"
	"github.com/go-theft-auto/modkit/internal/mods"
	"github.com/go-theft-auto/modkit/internal/screens"
	"github.com/go-theft-auto/modkit/settings"
)

type nopPainter struct{}

func (nopPainter) AddRect(x, y, w, h float32, color uint32)                           {}
func (nopPainter) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {}
func (nopPainter) AddIcon(x, y, w, h float32, textureID uint32, fallback string)      {}
func (nopPainter) AddText(x, y float32, text string, color uint32)                    {}
func (nopPainter) MeasureText(text string) gui.Vec2                                   { return gui.Vec2{X: float32(len(text)) * 7, Y: 13} }
func (nopPainter) PushClipRect(x1, y1, x2, y2 float32)                                {}
func (nopPainter) PopClipRect()                                                       {}

var display = gui.Vec2{X: 640, Y: 480}

func newDeps(t *testing.T) (screens.Deps, *mods.Fullbright, *int) {
	t.Helper()
	store := settings.New()
	reg := capability.NewRegistry()
	bright := mods.NewFullbright(store, settings.KeyGamma)
	reg.MustRegister(bright, mods.NewFPS(func() gui.Vec2 { return display }))

	opened := 0
	return screens.Deps{
		Registry: reg,
		Settings: store,
		Style:    gui.DefaultStyle(),
		OpenXray: func() { opened++ },
	}, bright, &opened
}

func TestModsColumnsPerCategory(t *testing.T) {
	deps, _, _ := newDeps(t)
	m := screens.NewMods(deps, display)

	require.Len(t, m.Columns(), 2)
	assert.Equal(t, "Render", m.Columns()[0].Title)
	assert.Equal(t, "GUI", m.Columns()[1].Title)
}

func TestModsToggleClickTogglesCapability(t *testing.T) {
	deps, bright, _ := newDeps(t)
	m := screens.NewMods(deps, display)

	row := m.Columns()[0].Children()[0].Bounds()
	require.True(t, m.OnMouseClicked(row.X+1, row.Y+1, gui.MouseButtonLeft))
	assert.True(t, bright.Enabled())

	// A capability toggled elsewhere is mirrored on the next frame.
	bright.Toggle()
	m.Render(nopPainter{}, gui.Vec2{})
	assert.False(t, m.Columns()[0].Children()[0].(*gui.Toggle).On())
}

func TestModsSettingsRow(t *testing.T) {
	deps, _, opened := newDeps(t)
	m := screens.NewMods(deps, display)
	y := display.Y - 12 - gui.SpaceMD + 1

	// sound toggle
	require.True(t, m.OnMouseClicked(gui.SpaceMD+1, y, gui.MouseButtonLeft))
	assert.False(t, deps.Settings.Bool(gui.SettingSound))

	// overlay corner cycle, backwards wraps to the last corner
	require.True(t, m.OnMouseClicked(gui.SpaceMD+110, y, gui.MouseButtonRight))
	assert.Equal(t, mods.CornerCount-1, deps.Settings.Int(settings.KeyOverlayCorner))

	// xray button
	require.True(t, m.OnMouseClicked(gui.SpaceMD+3*106+1, y, gui.MouseButtonLeft))
	assert.Equal(t, 1, *opened)

	assert.False(t, m.OnMouseClicked(600, 5, gui.MouseButtonLeft))
}

func TestXrayResizeAndClose(t *testing.T) {
	deps, _, _ := newDeps(t)
	store := deps.Settings
	closed := false

	x := screens.NewXray(mods.BlockCatalog(), store.ActiveSet("xray"), deps, display, nil, func() { closed = true })
	before := x.Layout().PerPage()

	x.Resize(gui.Vec2{X: 1280, Y: 960})
	assert.Greater(t, x.Layout().PerPage(), before)
	assert.Equal(t, 0, x.Page())

	x.OnClose()
	assert.True(t, closed)
}
