package app_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gui "github.com/go-theft-auto/modkit"
	"github.com/go-theft-auto/modkit/internal/app"
	"github.com/go-theft-auto/modkit/internal/mods"
	"github.com/go-theft-auto/modkit/internal/screens"
	"github.com/go-theft-auto/modkit/settings"
)

type nopPainter struct{ texts []string }

func (p *nopPainter) AddRect(x, y, w, h float32, color uint32)                           {}
func (p *nopPainter) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {}
func (p *nopPainter) AddIcon(x, y, w, h float32, textureID uint32, fallback string)      {}
func (p *nopPainter) AddText(x, y float32, text string, color uint32)                    { p.texts = append(p.texts, text) }
func (p *nopPainter) MeasureText(text string) gui.Vec2                                   { return gui.Vec2{X: float32(len(text)) * 7, Y: 13} }
func (p *nopPainter) PushClipRect(x1, y1, x2, y2 float32)                                {}
func (p *nopPainter) PopClipRect()                                                       {}

type clickSounder struct{ n int }

func (s *clickSounder) PlayClick() { s.n++ }

func TestNewInMemory(t *testing.T) {
	a, err := app.New(app.Options{})
	require.NoError(t, err)

	assert.Equal(t, 4, a.Registry.Len())
	for _, cmd := range []string{"xray", "fps", "modlist", "fullbright"} {
		_, ok := a.Registry.Get(cmd)
		assert.True(t, ok, cmd)
	}
	assert.Equal(t, gui.Vec2{X: 1280, Y: 720}, a.Bridge.Display())
	assert.Equal(t, []string{app.ScreenMods, app.ScreenXray}, a.Bridge.Screens())
	assert.NoError(t, a.Save())
}

func TestKeybinds(t *testing.T) {
	a, err := app.New(app.Options{})
	require.NoError(t, err)

	assert.True(t, a.Bridge.OnKeyPressed(gui.KeyF2))
	assert.True(t, a.Xray.Enabled())

	assert.True(t, a.Bridge.OnKeyPressed(gui.KeyInsert))
	_, name := a.Bridge.Screen()
	assert.Equal(t, app.ScreenMods, name)

	assert.False(t, a.Bridge.OnKeyPressed(gui.KeyF2), "capability hotkeys are blocked while a screen is open")
	assert.True(t, a.Xray.Enabled())

	assert.True(t, a.Bridge.OnKeyPressed(gui.KeyInsert))
	assert.False(t, a.Bridge.ScreenOpen())
}

func TestXrayBrowserTogglesAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modkit.toml")
	sounder := &clickSounder{}
	a, err := app.New(app.Options{ConfigPath: path, Sounder: sounder})
	require.NoError(t, err)

	before := len(a.Xray.Visible())
	require.Equal(t, len(mods.DefaultXrayBlocks), before)

	require.NoError(t, a.Bridge.Open(app.ScreenXray))
	for _, r := range "coal" {
		a.Bridge.OnCharTyped(r)
	}

	// First cell of the filtered grid is coal_ore.
	screen, _ := a.Bridge.Screen()
	xray, ok := screen.(*screens.Xray)
	require.True(t, ok)
	require.Equal(t, "coal_ore", xray.View().Visible[0].Key)
	cell := xray.Layout().Cell(0)
	require.True(t, a.Bridge.OnMouseClicked(cell.X+1, cell.Y+1, gui.MouseButtonLeft))

	assert.Len(t, a.Xray.Visible(), before+1, "item click reloads xray")
	assert.True(t, a.Settings.ActiveSet(app.ScreenXray).IsItemActive("coal_ore"))

	// The grid click unfocused the search, so Escape closes the browser and saves.
	assert.True(t, a.Bridge.OnKeyPressed(gui.KeyEscape))
	assert.False(t, a.Bridge.ScreenOpen())

	reloaded, err := settings.Load(path)
	require.NoError(t, err)
	assert.True(t, reloaded.ActiveSet(app.ScreenXray).IsItemActive("coal_ore"))
}

func TestFrame(t *testing.T) {
	a, err := app.New(app.Options{})
	require.NoError(t, err)
	require.NoError(t, a.Registry.Toggle("xray"))

	var p nopPainter
	a.Frame(&p, 0.016)
	assert.Contains(t, p.texts, "Xray: 6 blocks")
}
