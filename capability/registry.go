package capability

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	gui "github.com/go-theft-auto/modkit"
)

var (
	// ErrNotFound is returned for commands that are not registered.
	ErrNotFound = errors.New("capability not found")
	// ErrDuplicateCommand is returned by Register in strict mode when the command is taken.
	ErrDuplicateCommand = errors.New("capability command already registered")
)

// Registry is the keyed set of capabilities for one session.
// It is not safe for concurrent use; every call happens on the host event thread.
type Registry struct {
	byCommand map[string]Capability
	sorted    []Capability // nil when stale
	strict    bool
	logger    *slog.Logger
}

// RegistryOption configures the Registry.
type RegistryOption func(*Registry)

// WithStrictRegistration rejects re-registration of a command instead of replacing the entry.
func WithStrictRegistration(strict bool) RegistryOption {
	return func(r *Registry) {
		r.strict = strict
	}
}

// WithLogger sets the registry logger.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		byCommand: make(map[string]Capability),
		logger:    gui.NewLogger("capability"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds c under its command. An existing entry with the same command is
// replaced unless the registry is strict, in which case ErrDuplicateCommand is returned.
func (r *Registry) Register(c Capability) error {
	if c == nil {
		return errors.New("register capability: nil")
	}
	cmd := c.Command()
	if cmd == "" {
		return fmt.Errorf("register %q: empty command", c.Name())
	}
	if prev, exists := r.byCommand[cmd]; exists {
		if r.strict {
			return fmt.Errorf("register %q: %w", cmd, ErrDuplicateCommand)
		}
		r.logger.Warn("capability replaced", "command", cmd, "old", prev.Name(), "new", c.Name())
	}
	r.byCommand[cmd] = c
	r.sorted = nil
	r.logger.Debug("capability registered", "command", cmd, "category", c.Category())
	return nil
}

// MustRegister is like Register but panics on error. Use it for built-in sets.
func (r *Registry) MustRegister(caps ...Capability) {
	for _, c := range caps {
		if err := r.Register(c); err != nil {
			panic(err)
		}
	}
}

// Len returns the number of registered capabilities.
func (r *Registry) Len() int {
	return len(r.byCommand)
}

// All returns every capability ordered by display name, ties broken by command.
// The slice is shared; callers must not modify it.
func (r *Registry) All() []Capability {
	if r.sorted == nil {
		r.sorted = make([]Capability, 0, len(r.byCommand))
		for _, c := range r.byCommand {
			r.sorted = append(r.sorted, c)
		}
		sort.Slice(r.sorted, func(i, j int) bool {
			a, b := r.sorted[i], r.sorted[j]
			if a.Name() != b.Name() {
				return a.Name() < b.Name()
			}
			return a.Command() < b.Command()
		})
	}
	return r.sorted
}

// Get looks up a capability by command.
func (r *Registry) Get(command string) (Capability, bool) {
	c, ok := r.byCommand[command]
	return c, ok
}

// ByCategory returns the capabilities in category, in All order.
func (r *Registry) ByCategory(category Category) []Capability {
	var out []Capability
	for _, c := range r.All() {
		if c.Category() == category {
			out = append(out, c)
		}
	}
	return out
}

// Toggle flips the capability registered under command.
func (r *Registry) Toggle(command string) error {
	c, ok := r.Get(command)
	if !ok {
		return fmt.Errorf("toggle %q: %w", command, ErrNotFound)
	}
	c.Toggle()
	r.logger.Debug("capability toggled", "command", command, "enabled", c.Enabled())
	return nil
}

// Reload asks the capability under command to rebuild its derived state.
// It reports whether the capability exists and implements Reloader.
func (r *Registry) Reload(command string) bool {
	c, ok := r.Get(command)
	if !ok {
		return false
	}
	rl, ok := c.(Reloader)
	if ok {
		rl.Reload()
	}
	return ok
}

// Suggest returns the registered command closest to input by edit distance,
// for "did you mean" hints. ok is false when nothing is reasonably close.
func (r *Registry) Suggest(input string) (command string, ok bool) {
	input = strings.ToLower(input)
	best := -1
	for _, c := range r.All() {
		d := levenshtein.ComputeDistance(input, strings.ToLower(c.Command()))
		if best < 0 || d < best {
			best, command = d, c.Command()
		}
	}
	if best < 0 || best > maxSuggestDistance(len(input)) {
		return "", false
	}
	return command, true
}

func maxSuggestDistance(n int) int {
	if d := n / 3; d > 2 {
		return d
	}
	return 2
}

// DispatchTick calls OnTick on every capability, enabled or not, in All order.
func (r *Registry) DispatchTick() {
	for _, c := range r.All() {
		c.OnTick()
	}
}

// DispatchRenderOverlay calls OnRenderOverlay on every capability in All order.
func (r *Registry) DispatchRenderOverlay(p gui.Painter, dt float32) {
	for _, c := range r.All() {
		c.OnRenderOverlay(p, dt)
	}
}

// DispatchRenderWorld calls OnRenderWorld on every capability in All order.
func (r *Registry) DispatchRenderWorld(ctx WorldContext, dt float32) {
	for _, c := range r.All() {
		c.OnRenderWorld(ctx, dt)
	}
}
