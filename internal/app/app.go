// Package app wires one modkit session: settings, capabilities, the block
// catalog and the host bridge. Backends drive it through Bridge and Frame.
package app

import (
	"errors"
	"fmt"
	"log/slog"

	gui "github.com/go-theft-auto/modkit"
	"github.com/go-theft-auto/modkit/capability"
	"github.com/go-theft-auto/modkit/catalog"
	"github.com/go-theft-auto/modkit/host"
	"github.com/go-theft-auto/modkit/internal/mods"
	"github.com/go-theft-auto/modkit/internal/screens"
	"github.com/go-theft-auto/modkit/settings"
)

// Screen names.
const (
	ScreenMods = "mods"
	ScreenXray = "xray"
)

// Options configures New.
type Options struct {
	// ConfigPath is the settings file. Empty keeps settings in memory.
	ConfigPath string
	// Sounder plays click feedback. nil is silent.
	Sounder gui.Sounder
	// StrictRegistration rejects duplicate capability commands.
	StrictRegistration bool
}

// App is the context object of one session.
type App struct {
	Settings *settings.Store
	Config   settings.Config
	Registry *capability.Registry
	Catalog  *catalog.Catalog
	Bridge   *host.Bridge
	Xray     *mods.Xray

	feedback *gui.Feedback
	logger   *slog.Logger
}

// New loads settings and builds the session.
func New(opts Options) (*App, error) {
	store := settings.New()
	if opts.ConfigPath != "" {
		var err error
		if store, err = settings.Load(opts.ConfigPath); err != nil {
			return nil, err
		}
	}
	store.SetDefaultItems(ScreenXray, mods.DefaultXrayBlocks)

	cfg, err := store.Config()
	if err != nil {
		return nil, err
	}

	a := &App{
		Settings: store,
		Config:   cfg,
		Catalog:  mods.BlockCatalog(),
		logger:   gui.NewLogger("app"),
	}
	a.feedback = &gui.Feedback{Settings: store, Sounder: opts.Sounder}
	a.Registry = capability.NewRegistry(capability.WithStrictRegistration(opts.StrictRegistration))
	a.Bridge = host.NewBridge(a.Registry, host.WithDisplay(float32(cfg.Window.Width), float32(cfg.Window.Height)))

	if err := a.registerMods(); err != nil {
		return nil, err
	}
	a.registerScreens()
	a.registerKeybinds()
	return a, nil
}

func (a *App) registerMods() error {
	display := a.Bridge.Display
	a.Xray = mods.NewXray(a.Settings.ActiveSet(ScreenXray), mods.DemoWorld(a.Catalog, 1))
	for _, c := range []capability.Capability{
		a.Xray,
		mods.NewFPS(display),
		mods.NewModList(a.Registry, a.Settings, settings.KeyOverlayCorner, display),
		mods.NewFullbright(a.Settings, settings.KeyGamma),
	} {
		if err := a.Registry.Register(c); err != nil {
			return fmt.Errorf("register builtin mods: %w", err)
		}
	}
	return nil
}

func (a *App) deps() screens.Deps {
	return screens.Deps{
		Registry: a.Registry,
		Settings: a.Settings,
		Feedback: a.feedback,
		Style:    gui.StyleFromSettings(a.Settings),
		OpenXray: func() { a.open(ScreenXray) },
	}
}

func (a *App) registerScreens() {
	a.Bridge.RegisterScreen(ScreenMods, func(display gui.Vec2) host.Screen {
		return screens.NewMods(a.deps(), display)
	})
	a.Bridge.RegisterScreen(ScreenXray, func(display gui.Vec2) host.Screen {
		return screens.NewXray(a.Catalog, a.Settings.ActiveSet(ScreenXray), a.deps(), display,
			func() { a.Registry.Reload(a.Xray.Command()) },
			func() { a.save() })
	})
}

func (a *App) registerKeybinds() {
	k := a.Bridge.Keybinds()
	k.Register("toggle mods screen", gui.KeyInsert, func() { a.toggle(ScreenMods) })
	k.RegisterBlocked("toggle xray", gui.KeyF2, func() { a.toggleCapability("xray") })
	k.RegisterBlocked("toggle fullbright", gui.KeyF3, func() { a.toggleCapability("fullbright") })
	k.RegisterBlocked("toggle fps", gui.KeyF4, func() { a.toggleCapability("fps") })
	k.RegisterBlocked("toggle mod list", gui.KeyF5, func() { a.toggleCapability("modlist") })
}

func (a *App) open(name string) {
	if err := a.Bridge.Open(name); err != nil {
		a.logger.Error("open screen", "name", name, "err", err)
	}
}

func (a *App) toggle(name string) {
	if err := a.Bridge.Toggle(name); err != nil {
		a.logger.Error("toggle screen", "name", name, "err", err)
	}
}

func (a *App) toggleCapability(command string) {
	if err := a.Registry.Toggle(command); err != nil {
		a.logger.Error("toggle capability", "command", command, "err", err)
	}
}

func (a *App) save() {
	if err := a.Save(); err != nil {
		a.logger.Error("save settings", "err", err)
	}
}

// Save writes the settings file. In-memory sessions have nothing to save.
func (a *App) Save() error {
	err := a.Settings.Save()
	if errors.Is(err, settings.ErrNoPath) {
		return nil
	}
	return err
}

// World returns the world context for a frame drawn through p.
func (a *App) World(p gui.Painter) capability.WorldContext {
	d := a.Bridge.Display()
	return host.FlatWorld{
		P:      p,
		Center: gui.Vec2{X: d.X / 2, Y: d.Y / 2},
		Scale:  min(d.X, d.Y) / 24,
		Bounds: gui.Rect{W: d.X, H: d.Y},
	}
}

// Frame renders one frame: the world pass, then overlays and the open screen.
func (a *App) Frame(p gui.Painter, dt float32) {
	a.Bridge.OnRenderWorld(a.World(p), dt)
	a.Bridge.OnRenderOverlay(p, dt)
}
