package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gui "github.com/go-theft-auto/modkit"
	"github.com/go-theft-auto/modkit/catalog"
)

// gridLayout is a 4x4 grid of 18px cells with no inset, 16 items per page.
var gridLayout = catalog.Layout{
	Bounds:   gui.Rect{X: 100, Y: 100, W: 72, H: 72},
	CellW:    18,
	CellH:    18,
	IconSize: 16,
}

// cellCenter returns the pointer position over visible index i of gridLayout.
func cellCenter(i int) (float32, float32) {
	c := gridLayout.Cell(i)
	return c.X + c.W/2, c.Y + c.H/2
}

func newBrowser(t *testing.T, n int, active memSet, opts ...catalog.BrowserOption) *catalog.Browser {
	t.Helper()
	b := catalog.NewBrowser(catalog.New(numbered(n)), active, gridLayout, opts...)
	require.Equal(t, 16, b.Layout().PerPage())
	return b
}

func TestBrowserInitialView(t *testing.T) {
	b := newBrowser(t, 40, memSet{})

	assert.Equal(t, 0, b.Page())
	assert.Equal(t, 3, b.PageCount())
	assert.Len(t, b.View().Visible, 16)
	assert.Empty(t, b.SearchText())
	assert.False(t, b.EnabledOnly())
}

func TestBrowserPagingClamps(t *testing.T) {
	b := newBrowser(t, 40, memSet{})

	b.PageDown()
	assert.Equal(t, 0, b.Page(), "PageDown at page 0 is a no-op")

	b.PageUp()
	b.PageUp()
	assert.Equal(t, 2, b.Page())
	assert.Equal(t, []string{"item32", "item33", "item34", "item35", "item36", "item37", "item38", "item39"}, keys(b.View().Visible))

	b.PageUp()
	assert.Equal(t, 2, b.Page(), "PageUp at the last page is a no-op")

	b.PageDown()
	assert.Equal(t, 1, b.Page())
}

func TestBrowserScenarioBSearchResetsPage(t *testing.T) {
	var items []catalog.Item
	for _, k := range []string{"oak_log", "oak_planks", "oak_door", "oak_fence", "oak_stairs", "oak_slab"} {
		items = append(items, catalog.Item{Key: k})
	}
	items = append(items, numbered(40)...)
	b := catalog.NewBrowser(catalog.New(items), memSet{}, gridLayout)

	b.PageUp()
	b.PageUp()
	require.Equal(t, 2, b.Page())

	b.SetSearchText("oak")
	assert.Equal(t, 0, b.Page())
	assert.Equal(t, 1, b.PageCount())
	assert.Len(t, b.View().Visible, 6)
}

func TestBrowserTypingFilters(t *testing.T) {
	b := newBrowser(t, 40, memSet{})
	b.PageUp()

	for _, r := range "item3" {
		assert.True(t, b.OnCharTyped(r), "search starts focused")
	}
	assert.Equal(t, "item3", b.SearchText())
	assert.Equal(t, 0, b.Page())
	assert.Len(t, b.View().Filtered, 10)

	b.OnKeyPressed(gui.KeyBackspace)
	assert.Equal(t, "item", b.SearchText())
	assert.Len(t, b.View().Filtered, 40)
}

func TestBrowserScenarioCItemClickToggles(t *testing.T) {
	active := memSet{}
	reloads := 0
	b := newBrowser(t, 40, active, catalog.WithReload(func() { reloads++ }))
	b.PageUp()

	x, y := cellCenter(3)
	assert.True(t, b.OnMouseClicked(x, y, gui.MouseButtonLeft))
	assert.True(t, active["item19"])
	assert.Equal(t, 1, b.Page(), "page is kept when the filter did not change")

	assert.True(t, b.OnMouseClicked(x, y, gui.MouseButtonLeft))
	assert.False(t, active["item19"])
	assert.Equal(t, 2, reloads)
}

func TestBrowserItemClickIgnoresSecondaryButton(t *testing.T) {
	active := memSet{}
	b := newBrowser(t, 40, active)

	x, y := cellCenter(0)
	assert.False(t, b.OnMouseClicked(x, y, gui.MouseButtonRight))
	assert.False(t, active["item00"])
}

func TestBrowserClickOutsideItems(t *testing.T) {
	active := memSet{}
	b := newBrowser(t, 20, active)
	b.PageUp() // 4 items on page 1

	x, y := cellCenter(5)
	assert.False(t, b.OnMouseClicked(x, y, gui.MouseButtonLeft), "empty cell")
	assert.False(t, b.OnMouseClicked(500, 500, gui.MouseButtonLeft), "outside panel")
	assert.False(t, b.ToggleItemAt(10, 10))
	assert.Empty(t, active)
}

func TestBrowserScenarioDEnabledOnly(t *testing.T) {
	active := memSet{"item03": true, "item50": true, "item97": true}
	b := newBrowser(t, 100, active)
	b.PageUp()

	b.SetEnabledOnly(true)
	assert.True(t, b.EnabledOnly())
	assert.Equal(t, 0, b.Page())
	assert.Equal(t, 1, b.PageCount())
	assert.Equal(t, []string{"item03", "item50", "item97"}, keys(b.View().Visible))

	// Deactivating an item in enabled-only mode removes it from the view.
	x, y := cellCenter(1)
	require.True(t, b.OnMouseClicked(x, y, gui.MouseButtonLeft))
	assert.Equal(t, []string{"item03", "item97"}, keys(b.View().Visible))
}

func TestBrowserRefreshAfterExternalChange(t *testing.T) {
	active := memSet{}
	b := newBrowser(t, 40, active)
	b.SetEnabledOnly(true)
	assert.Zero(t, b.PageCount())
	assert.Empty(t, b.View().Visible)

	active["item10"] = true
	b.Refresh()
	assert.Equal(t, []string{"item10"}, keys(b.View().Visible))
}

func TestBrowserHeaderWidgets(t *testing.T) {
	b := newBrowser(t, 40, memSet{})
	cx := gridLayout.Bounds.X + gridLayout.Bounds.W/2
	top := gridLayout.Bounds.Y

	// next button
	require.True(t, b.OnMouseClicked(cx+80, top-10, gui.MouseButtonLeft))
	assert.Equal(t, 1, b.Page())

	// previous button
	require.True(t, b.OnMouseClicked(cx-85, top-10, gui.MouseButtonLeft))
	assert.Equal(t, 0, b.Page())

	// enabled-only toggle
	require.True(t, b.OnMouseClicked(cx-165, top-10, gui.MouseButtonLeft))
	assert.True(t, b.EnabledOnly())
	assert.Zero(t, b.PageCount())
}

func TestBrowserWheelAndKeysPage(t *testing.T) {
	b := newBrowser(t, 40, memSet{})
	x, y := cellCenter(0)

	assert.True(t, b.OnMouseScrolled(x, y, -1))
	assert.Equal(t, 1, b.Page())
	assert.False(t, b.OnMouseScrolled(0, 0, -1))

	// Clicking the grid unfocuses the search so arrows reach the browser.
	b.OnMouseClicked(x, y, gui.MouseButtonMiddle)
	assert.True(t, b.OnKeyPressed(gui.KeyRight))
	assert.Equal(t, 2, b.Page())
	assert.True(t, b.OnKeyPressed(gui.KeyLeft))
	assert.Equal(t, 1, b.Page())

	assert.True(t, b.OnKeyPressed(gui.KeyPageDown))
	assert.Equal(t, 0, b.Page())
	assert.True(t, b.OnKeyPressed(gui.KeyPageDown), "first page still consumes the key")
	assert.Equal(t, 0, b.Page())
	assert.True(t, b.OnKeyPressed(gui.KeyPageUp))
	assert.Equal(t, 1, b.Page())
	assert.False(t, b.OnCharTyped('x'), "unfocused search ignores typing")
}

func TestBrowserTooltipFitsPanel(t *testing.T) {
	cat := catalog.New([]catalog.Item{{Key: "deepslate_diamond_ore", Name: "Deepslate Diamond Ore"}})
	b := catalog.NewBrowser(cat, memSet{}, gridLayout)

	var p painter
	x, y := cellCenter(0)
	b.Render(&p, gui.Vec2{X: x, Y: y})

	assert.Contains(t, p.texts, "Deepslat..", "tooltip is cut to the 72px panel")
	assert.NotContains(t, p.texts, "Deepslate Diamond Ore")
}

func TestBrowserRenderHighlights(t *testing.T) {
	active := memSet{"item01": true}
	b := newBrowser(t, 40, active)

	var p painter
	x, y := cellCenter(2)
	b.Render(&p, gui.Vec2{X: x, Y: y})

	assert.Len(t, p.icons, 16)
	assert.Equal(t, 2, p.outlinesAt(gridLayout.Cell(1), gridLayout.Cell(2)), "one active and one hovered cell")
	assert.Contains(t, p.texts, "item02", "hover shows a tooltip")
	assert.Contains(t, p.texts, "1/3")

	var idle painter
	b.Render(&idle, gui.Vec2{})
	assert.NotContains(t, idle.texts, "item02")
}

// painter records what the browser draws.
type painter struct {
	icons    []string
	texts    []string
	outlines []gui.Rect
}

func (p *painter) AddRect(x, y, w, h float32, color uint32) {}
func (p *painter) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	p.outlines = append(p.outlines, gui.Rect{X: x, Y: y, W: w, H: h})
}
func (p *painter) AddIcon(x, y, w, h float32, textureID uint32, fallback string) {
	p.icons = append(p.icons, fallback)
}
func (p *painter) AddText(x, y float32, text string, color uint32) { p.texts = append(p.texts, text) }
func (p *painter) MeasureText(text string) gui.Vec2                { return gui.Vec2{X: float32(len(text)) * 7, Y: 13} }
func (p *painter) PushClipRect(x1, y1, x2, y2 float32)             {}
func (p *painter) PopClipRect()                                    {}

func (p *painter) outlinesAt(cells ...gui.Rect) int {
	n := 0
	for _, o := range p.outlines {
		for _, c := range cells {
			if o == c {
				n++
			}
		}
	}
	return n
}
