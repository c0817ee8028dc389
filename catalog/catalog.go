// Package catalog implements the paginated, filterable item browser.
//
// A Catalog is built once and never changes. What the browser shows is a View
// derived from the catalog, the search text, the enabled-only flag and the
// active set; DeriveView is a pure function and can be tested without any UI.
//
// The active set is owned by the settings collaborator. Everything here runs on
// the host event thread; a multi-threaded host must synchronize the ActiveSet
// implementation it passes in.
package catalog

import (
	"sort"
	"strings"
)

// Item is one selectable catalog entry.
type Item struct {
	// Key is the sort, search and identity key.
	Key string
	// Name is the display name shown in tooltips.
	Name string
	// Icon is a backend texture id; 0 draws the first letter of Name instead.
	Icon uint32
	// Ref is the host object the item stands for.
	Ref any
}

// Label returns Name, or Key when the item has no display name.
func (it Item) Label() string {
	if it.Name != "" {
		return it.Name
	}
	return it.Key
}

// ActiveSet answers and changes membership of catalog items by key.
type ActiveSet interface {
	IsItemActive(key string) bool
	SetItemActive(key string, active bool)
}

// Catalog is an immutable item sequence, sorted and unique by key.
type Catalog struct {
	items []Item
}

type options struct {
	exclude []func(Item) bool
}

// Option configures New.
type Option func(*options)

// Exclude drops every item for which pred returns true.
func Exclude(pred func(Item) bool) Option {
	return func(o *options) { o.exclude = append(o.exclude, pred) }
}

// ExcludeKeyContaining drops items whose key contains substr, case-insensitively.
func ExcludeKeyContaining(substr string) Option {
	substr = strings.ToLower(substr)
	return Exclude(func(it Item) bool {
		return strings.Contains(strings.ToLower(it.Key), substr)
	})
}

// New sorts items by key and drops duplicates, keeping the first occurrence.
// The input slice is not modified.
func New(items []Item, opts ...Option) *Catalog {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	out := make([]Item, 0, len(items))
	for _, it := range items {
		if !excluded(it, o.exclude) {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	uniq := out[:0]
	for i, it := range out {
		if i > 0 && it.Key == out[i-1].Key {
			continue
		}
		uniq = append(uniq, it)
	}
	return &Catalog{items: uniq}
}

func excluded(it Item, preds []func(Item) bool) bool {
	for _, pred := range preds {
		if pred(it) {
			return true
		}
	}
	return false
}

// Items returns the catalog in key order. The slice must not be modified.
func (c *Catalog) Items() []Item { return c.items }

// Len returns the number of items.
func (c *Catalog) Len() int { return len(c.items) }

// Lookup finds an item by key.
func (c *Catalog) Lookup(key string) (Item, bool) {
	i := sort.Search(len(c.items), func(i int) bool { return c.items[i].Key >= key })
	if i < len(c.items) && c.items[i].Key == key {
		return c.items[i], true
	}
	return Item{}, false
}
