package host

import (
	gui "github.com/go-theft-auto/modkit"
)

// KeyHandler is called when a binding's key is pressed.
type KeyHandler func()

// KeyCondition returns true if the binding can run.
type KeyCondition func() bool

// Binding holds a registered hotkey with its handler.
type Binding struct {
	Name      string       // Binding name for debugging
	Key       gui.Key      // Key that triggers the handler
	Handler   KeyHandler   // Called when the key is pressed
	Condition KeyCondition // Optional: must return true to run (nil = always)
	Blocked   bool         // Skipped while a screen is open
}

// Keybinds maps hotkeys to handlers.
// Use it for global shortcuts such as toggling a capability or opening a screen.
type Keybinds struct {
	bindings   []Binding
	screenOpen func() bool
}

// NewKeybinds creates an empty table. screenOpen reports whether a screen
// currently has input; it may be nil.
func NewKeybinds(screenOpen func() bool) *Keybinds {
	return &Keybinds{
		bindings:   make([]Binding, 0, 16),
		screenOpen: screenOpen,
	}
}

// Register adds a binding that always runs.
func (k *Keybinds) Register(name string, key gui.Key, handler KeyHandler) {
	k.bindings = append(k.bindings, Binding{Name: name, Key: key, Handler: handler})
}

// RegisterWithCondition adds a binding that runs only while condition returns true.
func (k *Keybinds) RegisterWithCondition(name string, key gui.Key, handler KeyHandler, condition KeyCondition) {
	k.bindings = append(k.bindings, Binding{Name: name, Key: key, Handler: handler, Condition: condition})
}

// RegisterBlocked adds a binding that does not run while a screen is open.
func (k *Keybinds) RegisterBlocked(name string, key gui.Key, handler KeyHandler) {
	k.bindings = append(k.bindings, Binding{Name: name, Key: key, Handler: handler, Blocked: true})
}

// Handle runs the first binding for key that is allowed to run.
// Returns true if a handler ran.
func (k *Keybinds) Handle(key gui.Key) bool {
	for i := range k.bindings {
		b := &k.bindings[i]
		if b.Key != key || b.Handler == nil {
			continue
		}
		if b.Blocked && k.screenOpen != nil && k.screenOpen() {
			continue
		}
		if b.Condition != nil && !b.Condition() {
			continue
		}
		b.Handler()
		return true
	}
	return false
}

// Bindings returns the registered bindings in registration order.
func (k *Keybinds) Bindings() []Binding {
	return k.bindings
}

// Unregister removes a binding by name.
func (k *Keybinds) Unregister(name string) {
	for i, b := range k.bindings {
		if b.Name == name {
			k.bindings = append(k.bindings[:i], k.bindings[i+1:]...)
			return
		}
	}
}

// Clear removes all bindings.
func (k *Keybinds) Clear() {
	k.bindings = k.bindings[:0]
}
