package gui

// Renderer is the interface for rendering GUI draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI drives frames for GPU backends: it hands a pooled DrawList to the
// frame's draw function and passes the result to the Renderer.
type GUI struct {
	renderer  Renderer
	fontScale float32
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithFontScale scales the atlas font.
func WithFontScale(scale float32) GUIOption {
	return func(g *GUI) { g.fontScale = scale }
}

// New creates a new GUI instance.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer:  renderer,
		fontScale: 1,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Frame builds one frame. draw receives the frame's Painter; everything it adds
// is rendered in order once it returns, so later primitives land on top.
func (g *GUI) Frame(draw func(p Painter)) error {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.FontTexture = g.renderer.FontTextureID()
	dl.FontScale = g.fontScale

	draw(dl)

	return g.renderer.Render(dl)
}

// Resize notifies the GUI of a display size change.
func (g *GUI) Resize(width, height int) {
	g.renderer.Resize(width, height)
}
