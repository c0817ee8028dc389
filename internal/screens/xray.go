package screens

import (
	gui "github.com/go-theft-auto/modkit"
	"github.com/go-theft-auto/modkit/catalog"
)

// Xray is the block browser screen.
type Xray struct {
	*catalog.Browser
	onClose func()
}

// NewXray builds the block browser for display. reload runs after every item
// toggle; onClose runs when the screen closes.
func NewXray(cat *catalog.Catalog, active catalog.ActiveSet, deps Deps, display gui.Vec2, reload, onClose func()) *Xray {
	b := catalog.NewBrowser(cat, active, catalog.LayoutFor(display),
		catalog.WithReload(reload),
		catalog.WithStyle(browserStyle(deps.Style)),
		catalog.WithFeedback(deps.Feedback))
	return &Xray{Browser: b, onClose: onClose}
}

func browserStyle(s gui.Style) gui.Style {
	s.BackgroundColor = gui.ColorIndigo
	return s
}

// Resize lays the browser out for a new display size.
func (x *Xray) Resize(display gui.Vec2) {
	x.SetLayout(catalog.LayoutFor(display))
}

// OnClose implements host.Closer.
func (x *Xray) OnClose() {
	if x.onClose != nil {
		x.onClose()
	}
}
