package catalog_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gui "github.com/go-theft-auto/modkit"
	"github.com/go-theft-auto/modkit/catalog"
)

// memSet is an in-memory ActiveSet.
type memSet map[string]bool

func (m memSet) IsItemActive(key string) bool          { return m[key] }
func (m memSet) SetItemActive(key string, active bool) { m[key] = active }

// numbered returns n items keyed item00, item01, ... in catalog order.
func numbered(n int) []catalog.Item {
	items := make([]catalog.Item, n)
	for i := range items {
		items[i] = catalog.Item{Key: fmt.Sprintf("item%02d", i)}
	}
	return items
}

func keys(items []catalog.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Key
	}
	return out
}

func TestNewSortsAndDedupes(t *testing.T) {
	cat := catalog.New([]catalog.Item{
		{Key: "stone", Name: "Stone"},
		{Key: "dirt", Name: "Dirt"},
		{Key: "air", Name: "Air"},
		{Key: "stone", Name: "Other Stone"},
		{Key: "cave_air"},
	}, catalog.ExcludeKeyContaining("AIR"))

	require.Equal(t, []string{"dirt", "stone"}, keys(cat.Items()))
	assert.Equal(t, "Stone", cat.Items()[1].Name, "first occurrence wins")

	it, ok := cat.Lookup("dirt")
	assert.True(t, ok)
	assert.Equal(t, "Dirt", it.Label())

	_, ok = cat.Lookup("gravel")
	assert.False(t, ok)
}

func TestItemLabelFallsBackToKey(t *testing.T) {
	assert.Equal(t, "gravel", catalog.Item{Key: "gravel"}.Label())
}

func TestDeriveViewScenarioA(t *testing.T) {
	items := catalog.New(numbered(40)).Items()

	v := catalog.DeriveView(items, "", false, nil, 0, 16)
	assert.Equal(t, 3, v.PageCount)
	assert.Equal(t, 0, v.Page)
	assert.Equal(t, keys(items[0:16]), keys(v.Visible))

	v = v.WithPage(2, 16)
	assert.Equal(t, 2, v.Page)
	assert.Len(t, v.Visible, 8)
	assert.Equal(t, keys(items[32:40]), keys(v.Visible))
}

func TestDeriveViewCaseInsensitiveSearch(t *testing.T) {
	var items []catalog.Item
	for _, k := range []string{
		"oak_log", "OAK_PLANKS", "dark_oak_log", "oak_door", "Stripped_Oak_Wood", "oak_leaves",
		"birch_log", "spruce_log", "stone", "cloak",
	} {
		items = append(items, catalog.Item{Key: k})
	}
	cat := catalog.New(items)

	v := catalog.DeriveView(cat.Items(), "Oak", false, nil, 0, 16)
	assert.Len(t, v.Filtered, 7)
	for _, it := range v.Filtered {
		assert.Contains(t, []string{
			"OAK_PLANKS", "Stripped_Oak_Wood", "cloak", "dark_oak_log", "oak_door", "oak_leaves", "oak_log",
		}, it.Key)
	}
}

func TestDeriveViewEnabledOnly(t *testing.T) {
	items := numbered(100)
	active := memSet{"item07": true, "item42": true, "item99": true, "unknown": true}

	v := catalog.DeriveView(items, "", true, active, 0, 16)
	assert.Equal(t, 1, v.PageCount)
	assert.Equal(t, []string{"item07", "item42", "item99"}, keys(v.Visible))

	v = catalog.DeriveView(items, "4", true, active, 0, 16)
	assert.Equal(t, []string{"item42"}, keys(v.Filtered))

	v = catalog.DeriveView(items, "", true, nil, 0, 16)
	assert.Empty(t, v.Filtered, "no active set means nothing is active")
}

func TestDeriveViewPagination(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		perPage   int
		page      int
		wantCount int
		wantPage  int
		wantLen   int
	}{
		{"empty", 0, 16, 0, 0, 0, 0},
		{"empty clamps page", 0, 16, 3, 0, 0, 0},
		{"exact fill", 32, 16, 1, 2, 1, 16},
		{"partial last page", 33, 16, 2, 3, 2, 1},
		{"page past end clamps", 20, 16, 9, 2, 1, 4},
		{"negative page clamps", 20, 16, -1, 2, 0, 16},
		{"zero per page", 20, 0, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := catalog.DeriveView(numbered(tt.n), "", false, nil, tt.page, tt.perPage)
			assert.Equal(t, tt.wantCount, v.PageCount)
			assert.Equal(t, tt.wantPage, v.Page)
			assert.Len(t, v.Visible, tt.wantLen)
		})
	}
}

func TestViewItemAt(t *testing.T) {
	v := catalog.DeriveView(numbered(20), "", false, nil, 1, 16)

	it, ok := v.ItemAt(3)
	require.True(t, ok)
	assert.Equal(t, "item19", it.Key)

	_, ok = v.ItemAt(4)
	assert.False(t, ok)
	_, ok = v.ItemAt(-1)
	assert.False(t, ok)
}

func TestLayout(t *testing.T) {
	l := catalog.LayoutFor(gui.Vec2{X: 640, Y: 480})

	assert.Equal(t, gui.Rect{X: 32, Y: 44, W: 576, H: 374}, l.Bounds)
	assert.Equal(t, 32, l.Columns())
	assert.Equal(t, 20, l.Rows())
	assert.Equal(t, 640, l.PerPage())

	o := l.Origin()
	assert.Equal(t, gui.Vec2{X: 34, Y: 49}, o)

	tests := []struct {
		name   string
		x, y   float32
		want   int
		wantOK bool
	}{
		{"first cell", o.X, o.Y, 0, true},
		{"second column", o.X + 18, o.Y + 17.9, 1, true},
		{"second row", o.X + 1, o.Y + 18, 32, true},
		{"inset strip above grid", o.X, l.Bounds.Y + 1, 0, false},
		{"outside panel", 0, 0, 0, false},
		{"right edge of panel", l.Bounds.X + l.Bounds.W, o.Y, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.IndexAt(tt.x, tt.y)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}

	c := l.Cell(33)
	assert.Equal(t, gui.Rect{X: 34 + 18, Y: 49 + 18, W: 16, H: 16}, c)

	moved := l.Moved(0, 0)
	assert.Equal(t, l.Bounds.W, moved.Bounds.W)
	assert.Zero(t, moved.Bounds.X)
}
