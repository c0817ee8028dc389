package settings

import (
	"slices"

	"github.com/spf13/cast"
)

// ActiveSet is a named set of catalog item keys stored under "<name>.items".
type ActiveSet struct {
	store *Store
	key   string
	keys  []string // sorted
}

// ActiveSet returns the set called name. Repeated calls return the same set.
func (s *Store) ActiveSet(name string) *ActiveSet {
	if set, ok := s.sets[name]; ok {
		return set
	}
	key := name + ".items"
	keys, err := cast.ToStringSliceE(s.v.Get(key))
	if err != nil {
		s.malformed(key, err)
		keys = nil
	}
	keys = slices.Clone(keys)
	slices.Sort(keys)
	keys = slices.Compact(keys)

	set := &ActiveSet{store: s, key: key, keys: keys}
	s.sets[name] = set
	return set
}

// SetDefaultItems sets the items a set starts with when nothing is stored.
// Call it before the first ActiveSet call for name.
func (s *Store) SetDefaultItems(name string, keys []string) {
	s.v.SetDefault(name+".items", keys)
}

// IsItemActive reports whether key is in the set.
func (a *ActiveSet) IsItemActive(key string) bool {
	_, found := slices.BinarySearch(a.keys, key)
	return found
}

// SetItemActive adds or removes key and writes the set back to the store.
func (a *ActiveSet) SetItemActive(key string, active bool) {
	i, found := slices.BinarySearch(a.keys, key)
	switch {
	case active && !found:
		a.keys = slices.Insert(a.keys, i, key)
	case !active && found:
		a.keys = slices.Delete(a.keys, i, i+1)
	default:
		return
	}
	a.store.v.Set(a.key, slices.Clone(a.keys))
}

// Keys returns the active keys in sorted order.
func (a *ActiveSet) Keys() []string {
	return slices.Clone(a.keys)
}

// Len returns the number of active keys.
func (a *ActiveSet) Len() int { return len(a.keys) }
