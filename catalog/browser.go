package catalog

import (
	"fmt"
	"log/slog"

	gui "github.com/go-theft-auto/modkit"
)

// Header widget geometry, relative to the panel's top edge and horizontal center.
const (
	searchWidth  float32 = 150
	searchHeight float32 = 12
	arrowSize    float32 = 13
	toggleWidth  float32 = 80
	toggleHeight float32 = 10

	maxTooltipWidth float32 = 200
)

// Browser is the catalog screen widget: a search field, previous/next page
// buttons, an enabled-only toggle and a grid of item cells.
//
// Any change of the search text, the enabled-only flag or the active set
// re-derives the view and returns to page 0. Paging only re-slices the current view.
type Browser struct {
	gui.Box

	catalog *Catalog
	active  ActiveSet
	layout  Layout

	search      *gui.TextField
	prev        *gui.Clickable
	next        *gui.Clickable
	enabledOnly *gui.Toggle

	view   View
	reload func()
	logger *slog.Logger
}

// BrowserOption configures a Browser.
type BrowserOption func(*Browser)

// WithReload sets the function called after an item's membership changed,
// typically the owning capability's Reload.
func WithReload(fn func()) BrowserOption {
	return func(b *Browser) { b.reload = fn }
}

// WithFeedback plays click feedback on the header widgets.
func WithFeedback(f *gui.Feedback) BrowserOption {
	return func(b *Browser) {
		b.prev.Feedback = f
		b.next.Feedback = f
		b.enabledOnly.Feedback = f
	}
}

// WithStyle sets the style of the panel and its header widgets.
func WithStyle(style gui.Style) BrowserOption {
	return func(b *Browser) {
		b.Style = style
		b.search.Style = style
		b.prev.Style = style
		b.next.Style = style
		b.enabledOnly.Style = style
	}
}

// WithBrowserLogger sets the browser logger.
func WithBrowserLogger(logger *slog.Logger) BrowserOption {
	return func(b *Browser) { b.logger = logger }
}

// NewBrowser creates a browser over cat showing page 0 with an empty, focused search.
func NewBrowser(cat *Catalog, active ActiveSet, layout Layout, opts ...BrowserOption) *Browser {
	b := &Browser{
		Box:     gui.NewBox(layout.Bounds.X, layout.Bounds.Y, layout.Bounds.W, layout.Bounds.H, ""),
		catalog: cat,
		active:  active,
		logger:  gui.NewLogger("catalog"),
	}
	b.Style.BackgroundColor = gui.ColorIndigo

	b.search = gui.NewTextField(gui.NewBox(0, 0, searchWidth, searchHeight, ""), b.setSearch)
	b.search.Placeholder = "Search..."
	b.search.SetFocused(true)
	b.prev = gui.NewClickable(gui.NewBox(0, 0, arrowSize, arrowSize, "◀"), func(gui.MouseButton) { b.PageDown() })
	b.next = gui.NewClickable(gui.NewBox(0, 0, arrowSize, arrowSize, "▶"), func(gui.MouseButton) { b.PageUp() })
	b.enabledOnly = gui.NewToggle(gui.NewBox(0, 0, toggleWidth, toggleHeight, "Enabled Only"), false, func(bool) { b.rederive() })

	for _, opt := range opts {
		opt(b)
	}
	b.SetLayout(layout)
	return b
}

// SetLayout moves and resizes the browser. The view is re-derived at page 0
// since the page size may have changed.
func (b *Browser) SetLayout(layout Layout) {
	b.layout = layout
	b.Rect = layout.Bounds

	r := layout.Bounds
	cx := r.X + float32(int(r.W)/2)
	b.search.SetPosition(cx-searchWidth/2, r.Y-15)
	b.prev.SetPosition(cx-89, r.Y-16)
	b.next.SetPosition(cx+76, r.Y-16)
	b.enabledOnly.SetPosition(cx-170, r.Y-15)
	b.rederive()
}

// SetPosition moves the browser, keeping its size.
func (b *Browser) SetPosition(x, y float32) {
	b.SetLayout(b.layout.Moved(x, y))
}

// Layout returns the current grid layout.
func (b *Browser) Layout() Layout { return b.layout }

// View returns the current derived view.
func (b *Browser) View() View { return b.view }

// Page returns the current page index.
func (b *Browser) Page() int { return b.view.Page }

// PageCount returns the number of pages of the current view.
func (b *Browser) PageCount() int { return b.view.PageCount }

// SearchText returns the current search text.
func (b *Browser) SearchText() string { return b.search.Text() }

// SetSearchText replaces the search text and returns to page 0.
func (b *Browser) SetSearchText(text string) {
	b.search.SetText(text)
	b.rederive()
}

func (b *Browser) setSearch(string) { b.rederive() }

// EnabledOnly reports whether only active items are shown.
func (b *Browser) EnabledOnly() bool { return b.enabledOnly.On() }

// SetEnabledOnly sets the enabled-only filter and returns to page 0.
func (b *Browser) SetEnabledOnly(on bool) {
	b.enabledOnly.SetOn(on)
	b.rederive()
}

// Refresh re-derives the view after the active set changed outside the browser.
func (b *Browser) Refresh() { b.rederive() }

func (b *Browser) rederive() {
	b.view = DeriveView(b.catalog.Items(), b.search.Text(), b.enabledOnly.On(), b.active, 0, b.layout.PerPage())
	b.logger.Debug("view derived",
		"search", b.search.Text(),
		"enabledOnly", b.enabledOnly.On(),
		"filtered", len(b.view.Filtered),
		"pages", b.view.PageCount)
}

// PageUp moves to the next page. It is a no-op on the last page.
func (b *Browser) PageUp() {
	if b.view.Page < b.view.PageCount-1 {
		b.view = b.view.WithPage(b.view.Page+1, b.view.PerPage)
	}
}

// PageDown moves to the previous page. It is a no-op on page 0.
func (b *Browser) PageDown() {
	if b.view.Page > 0 {
		b.view = b.view.WithPage(b.view.Page-1, b.view.PerPage)
	}
}

// ToggleItemAt flips the active membership of the visible item under (x, y)
// and signals a reload. It reports whether an item was hit.
func (b *Browser) ToggleItemAt(x, y float32) bool {
	i, ok := b.layout.IndexAt(x, y)
	if !ok {
		return false
	}
	item, ok := b.view.ItemAt(i)
	if !ok || b.active == nil {
		return false
	}

	on := !b.active.IsItemActive(item.Key)
	b.active.SetItemActive(item.Key, on)
	b.logger.Debug("item toggled", "key", item.Key, "active", on)

	// The active set only feeds the filter in enabled-only mode.
	if b.enabledOnly.On() {
		b.rederive()
	}
	if b.reload != nil {
		b.reload()
	}
	return true
}

// OnMouseClicked routes the click to the header widgets first, then the grid.
// Grid cells toggle with the primary button only.
func (b *Browser) OnMouseClicked(x, y float32, button gui.MouseButton) bool {
	if b.Hidden {
		return false
	}
	if b.search.OnMouseClicked(x, y, button) {
		return true
	}
	for _, h := range []gui.ClickHandler{b.prev, b.next, b.enabledOnly} {
		if h.OnMouseClicked(x, y, button) {
			return true
		}
	}
	if !b.Contains(x, y) {
		return false
	}
	b.search.SetFocused(false)
	if !button.Primary() {
		return false
	}
	return b.ToggleItemAt(x, y)
}

// OnMouseScrolled pages with the wheel while the pointer is over the panel.
func (b *Browser) OnMouseScrolled(x, y, delta float32) bool {
	if b.Hidden || !b.Contains(x, y) {
		return false
	}
	if delta < 0 {
		b.PageUp()
	} else if delta > 0 {
		b.PageDown()
	}
	return true
}

// OnKeyPressed forwards editing keys to the search field. PageUp and Right move to
// the next page, PageDown and Left to the previous one.
func (b *Browser) OnKeyPressed(key gui.Key) bool {
	if b.search.OnKeyPressed(key) {
		return true
	}
	switch key {
	case gui.KeyPageUp, gui.KeyRight:
		b.PageUp()
		return true
	case gui.KeyPageDown, gui.KeyLeft:
		b.PageDown()
		return true
	}
	return false
}

// OnCharTyped forwards typed text to the search field.
func (b *Browser) OnCharTyped(r rune) bool {
	return b.search.OnCharTyped(r)
}

// Render draws the panel, the visible cells, the header and a tooltip for the
// hovered item. Active and hovered highlights are independent.
func (b *Browser) Render(p gui.Painter, mouse gui.Vec2) {
	if b.Hidden {
		return
	}
	r := b.Rect
	p.AddRect(r.X, r.Y, r.W, r.H, b.Style.BackgroundColor)

	hovered := -1
	if i, ok := b.layout.IndexAt(mouse.X, mouse.Y); ok && i < len(b.view.Visible) {
		hovered = i
	}

	for i, item := range b.view.Visible {
		c := b.layout.Cell(i)
		if b.active != nil && b.active.IsItemActive(item.Key) {
			p.AddRect(c.X, c.Y, c.W, c.H, gui.WithAlpha(b.Style.EnabledColor, 0.5))
			p.AddRectOutline(c.X, c.Y, c.W, c.H, gui.ColorWhite, 1)
		}
		if i == hovered {
			p.AddRect(c.X, c.Y, c.W, c.H, gui.WithAlpha(b.Style.HoveredColor, 0.5))
			p.AddRectOutline(c.X, c.Y, c.W, c.H, gui.ColorWhite, 1)
		}
		p.AddIcon(c.X, c.Y, c.W, c.H, item.Icon, item.Label())
	}

	b.search.Render(p, mouse)
	b.prev.Render(p, mouse)
	b.next.Render(p, mouse)
	b.enabledOnly.Render(p, mouse)

	pages := fmt.Sprintf("%d/%d", b.view.Page+1, max(b.view.PageCount, 1))
	p.AddText(r.X+r.W-p.MeasureText(pages).X-gui.SpaceXS, r.Y-13, pages, b.Style.TextColor)

	if hovered >= 0 {
		b.renderTooltip(p, mouse, b.view.Visible[hovered].Label())
	}
}

func (b *Browser) renderTooltip(p gui.Painter, mouse gui.Vec2, text string) {
	text = gui.TruncateText(p, text, min(b.Rect.W, maxTooltipWidth))
	size := p.MeasureText(text)
	x, y := mouse.X+12, mouse.Y-12
	pad := gui.SpaceSM
	p.AddRect(x-pad, y-pad, size.X+2*pad, size.Y+2*pad, gui.RGBA(16, 0, 16, 240))
	p.AddRectOutline(x-pad, y-pad, size.X+2*pad, size.Y+2*pad, b.Style.BorderColor, 1)
	p.AddText(x, y, text, b.Style.TextColor)
}
