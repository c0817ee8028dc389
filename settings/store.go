// Package settings is the settings and persistence collaborator: feature flags,
// palette colors and the active item sets, backed by a viper config file.
//
// A Store is not safe for concurrent use. Every reader and writer runs on the
// host event thread; a host that delivers events from several threads must add
// a lock around the Store before sharing it.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	gui "github.com/go-theft-auto/modkit"
)

// EnvPrefix is the prefix of environment overrides, e.g. MODKIT_GUI_SOUND=false.
const EnvPrefix = "MODKIT"

// Setting names owned by this package. Widget-facing names live in the gui package.
const (
	KeyOverlayCorner = "overlay.corner"
	KeyGamma         = "fullbright.gamma"
	KeyWindowWidth   = "window.width"
	KeyWindowHeight  = "window.height"
	KeyWindowTitle   = "window.title"
	KeyTickRate      = "tick_rate"
)

// ErrNoPath is returned by Save for a store that was not loaded from a file.
var ErrNoPath = errors.New("settings: no config path")

var defaults = map[string]any{
	gui.SettingSound:    true,
	gui.ColorEnabled:    "#0080FF80",
	gui.ColorForeground: "#6E6E6E80",
	gui.ColorBackground: "#141414C8",
	gui.ColorBorder:     "#FFFFFF",
	gui.ColorText:       "#FFFFFF",
	KeyOverlayCorner:    0,
	KeyGamma:            100,
	KeyWindowWidth:      1280,
	KeyWindowHeight:     720,
	KeyWindowTitle:      "modkit",
	KeyTickRate:         20,
}

// Store reads and writes settings. Malformed values read as their default.
type Store struct {
	v      *viper.Viper
	path   string
	logger *slog.Logger
	sets   map[string]*ActiveSet
}

// New returns an in-memory store holding only the defaults and environment overrides.
func New() *Store {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Store{
		v:      v,
		logger: gui.NewLogger("settings"),
		sets:   make(map[string]*ActiveSet),
	}
}

// Load reads the config file at path. A missing file is not an error; Save creates it.
// The format follows the extension (toml, yaml, json) and defaults to toml.
func Load(path string) (*Store, error) {
	s := New()
	s.path = path
	s.v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		s.v.SetConfigType("toml")
	}

	if err := s.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read settings %s: %w", path, err)
		}
		s.logger.Debug("settings file missing, using defaults", "path", path)
	}
	return s, nil
}

// Path returns the file the store was loaded from.
func (s *Store) Path() string { return s.path }

// Bool returns a flag, or its default if the stored value is not a boolean.
func (s *Store) Bool(name string) bool {
	b, err := cast.ToBoolE(s.v.Get(name))
	if err != nil {
		s.malformed(name, err)
		b, _ = cast.ToBoolE(defaults[name])
	}
	return b
}

// SetBool stores a flag.
func (s *Store) SetBool(name string, value bool) {
	s.v.Set(name, value)
}

// Int returns an integer setting, or its default if the stored value is not a number.
func (s *Store) Int(name string) int {
	n, err := cast.ToIntE(s.v.Get(name))
	if err != nil {
		s.malformed(name, err)
		n, _ = cast.ToIntE(defaults[name])
	}
	return n
}

// SetInt stores an integer setting.
func (s *Store) SetInt(name string, value int) {
	s.v.Set(name, value)
}

// String returns a string setting.
func (s *Store) String(name string) string {
	return s.v.GetString(name)
}

// Color returns a packed gui color stored as "#RRGGBB" or "#RRGGBBAA".
// Malformed values read as the default; unknown names read as transparent.
func (s *Store) Color(name string) uint32 {
	c, err := ParseColor(s.v.GetString(name))
	if err != nil {
		s.malformed(name, err)
		def, _ := defaults[name].(string)
		c, _ = ParseColor(def)
	}
	return c
}

// SetColor stores a packed gui color.
func (s *Store) SetColor(name string, c uint32) {
	s.v.Set(name, FormatColor(c))
}

func (s *Store) malformed(name string, err error) {
	if s.v.IsSet(name) {
		s.logger.Warn("malformed setting, using default", "name", name, "err", err)
	}
}

// Save writes every setting to the file the store was loaded from.
func (s *Store) Save() error {
	if s.path == "" {
		return ErrNoPath
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir settings dir: %w", err)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	s.logger.Debug("settings saved", "path", s.path)
	return nil
}

// Config is the startup configuration of a session.
type Config struct {
	Window   WindowConfig `mapstructure:"window"`
	TickRate int          `mapstructure:"tick_rate"`
}

// WindowConfig holds host window settings.
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// Config unmarshals the startup configuration.
func (s *Store) Config() (Config, error) {
	var c Config
	if err := s.v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.TickRate <= 0 {
		c.TickRate = defaults[KeyTickRate].(int)
	}
	return c, nil
}
