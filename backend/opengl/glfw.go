package opengl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/go-theft-auto/modkit"
	"github.com/go-theft-auto/modkit/host"
)

// Config describes the host window.
type Config struct {
	Title         string
	Width, Height int
	// TickRate is the host tick frequency in Hz.
	TickRate int
}

// Run opens a window and drives bridge until the window closes or ctx is done.
// frame draws one frame through the GUI painter. Run must be called from the
// main OS thread.
func Run(ctx context.Context, cfg Config, bridge *host.Bridge, frame func(p gui.Painter, dt float32)) error {
	logger := gui.NewLogger("opengl")

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fw, fh := window.GetFramebufferSize()
	renderer, err := NewRenderer(fw, fh)
	if err != nil {
		return err
	}
	defer renderer.Delete()

	ui := gui.New(renderer)
	input := NewInputAdapter(window, bridge)
	input.OnResize = ui.Resize
	bridge.Resize(float32(fw), float32(fh))
	logger.Info("window open", "title", cfg.Title, "width", fw, "height", fh, "gl", gl.GoStr(gl.GetString(gl.VERSION)))

	ticker := host.NewTicker(cfg.TickRate)
	last := time.Now()
	for !window.ShouldClose() {
		if ctx.Err() != nil {
			logger.Info("context done, closing window")
			return nil
		}
		glfw.PollEvents()

		now := time.Now()
		dt := now.Sub(last)
		last = now
		ticker.Run(bridge, dt)

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := ui.Frame(func(p gui.Painter) { frame(p, float32(dt.Seconds())) }); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}
		window.SwapBuffers()
	}
	return nil
}

// EventHandler receives translated window events. *host.Bridge implements it.
type EventHandler interface {
	OnMouseMoved(x, y float32)
	OnMouseClicked(x, y float32, button gui.MouseButton) bool
	OnMouseScrolled(x, y, delta float32) bool
	OnKeyPressed(key gui.Key) bool
	OnCharTyped(r rune) bool
	Resize(width, height float32)
}

// InputAdapter forwards GLFW callbacks to an EventHandler in framebuffer
// pixels.
type InputAdapter struct {
	window  *glfw.Window
	handler EventHandler
	// OnResize is called with the new framebuffer size after the handler.
	OnResize func(width, height int)
}

// NewInputAdapter installs the window callbacks.
func NewInputAdapter(window *glfw.Window, handler EventHandler) *InputAdapter {
	a := &InputAdapter{window: window, handler: handler}
	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	window.SetFramebufferSizeCallback(a.framebufferSizeCallback)
	return a
}

// cursor returns the pointer in framebuffer pixels.
func (a *InputAdapter) cursor() (float32, float32) {
	x, y := a.window.GetCursorPos()
	return a.toFramebuffer(x, y)
}

func (a *InputAdapter) toFramebuffer(x, y float64) (float32, float32) {
	ww, wh := a.window.GetSize()
	fw, fh := a.window.GetFramebufferSize()
	if ww == 0 || wh == 0 {
		return float32(x), float32(y)
	}
	return float32(x * float64(fw) / float64(ww)), float32(y * float64(fh) / float64(wh))
}

func (a *InputAdapter) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}
	if k := guiKey(key); k != gui.KeyNone {
		a.handler.OnKeyPressed(k)
	}
}

func (a *InputAdapter) charCallback(_ *glfw.Window, r rune) {
	a.handler.OnCharTyped(r)
}

func (a *InputAdapter) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	b, ok := guiMouseButton(button)
	if !ok {
		return
	}
	x, y := a.cursor()
	a.handler.OnMouseClicked(x, y, b)
}

func (a *InputAdapter) scrollCallback(_ *glfw.Window, _, yoff float64) {
	x, y := a.cursor()
	a.handler.OnMouseScrolled(x, y, float32(yoff))
}

func (a *InputAdapter) cursorPosCallback(_ *glfw.Window, x, y float64) {
	a.handler.OnMouseMoved(a.toFramebuffer(x, y))
}

func (a *InputAdapter) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	a.handler.Resize(float32(width), float32(height))
	if a.OnResize != nil {
		a.OnResize(width, height)
	}
}

var glfwKeys = map[glfw.Key]gui.Key{
	glfw.KeyTab:       gui.KeyTab,
	glfw.KeyLeft:      gui.KeyLeft,
	glfw.KeyRight:     gui.KeyRight,
	glfw.KeyUp:        gui.KeyUp,
	glfw.KeyDown:      gui.KeyDown,
	glfw.KeyPageUp:    gui.KeyPageUp,
	glfw.KeyPageDown:  gui.KeyPageDown,
	glfw.KeyHome:      gui.KeyHome,
	glfw.KeyEnd:       gui.KeyEnd,
	glfw.KeyInsert:    gui.KeyInsert,
	glfw.KeyDelete:    gui.KeyDelete,
	glfw.KeyBackspace: gui.KeyBackspace,
	glfw.KeySpace:     gui.KeySpace,
	glfw.KeyEnter:     gui.KeyEnter,
	glfw.KeyKPEnter:   gui.KeyEnter,
	glfw.KeyEscape:    gui.KeyEscape,
	glfw.KeyF1:        gui.KeyF1,
	glfw.KeyF2:        gui.KeyF2,
	glfw.KeyF3:        gui.KeyF3,
	glfw.KeyF4:        gui.KeyF4,
	glfw.KeyF5:        gui.KeyF5,
	glfw.KeyF6:        gui.KeyF6,
	glfw.KeyF7:        gui.KeyF7,
	glfw.KeyF8:        gui.KeyF8,
	glfw.KeyF9:        gui.KeyF9,
	glfw.KeyF10:       gui.KeyF10,
	glfw.KeyF11:       gui.KeyF11,
	glfw.KeyF12:       gui.KeyF12,
}

// guiKey maps a GLFW key; unmapped keys return gui.KeyNone.
func guiKey(key glfw.Key) gui.Key {
	return glfwKeys[key]
}

func guiMouseButton(button glfw.MouseButton) (gui.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return gui.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return gui.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return gui.MouseButtonMiddle, true
	}
	return 0, false
}
