package catalog

import "strings"

// View is the filtered, paged window of a catalog.
type View struct {
	// Filtered holds the items matching the search and enabled-only filters, in catalog order.
	Filtered []Item
	// PageCount is ceil(len(Filtered) / PerPage), 0 when nothing matches.
	PageCount int
	// Page is in [0, PageCount), or 0 when PageCount is 0.
	Page    int
	PerPage int
	// Visible is the slice of Filtered on Page.
	Visible []Item
}

// DeriveView filters items and cuts out one page.
//
// An item matches when its key contains search, ignoring case; with enabledOnly
// it must also be in active. page is clamped into range. Callers reset page to 0
// whenever search, enabledOnly or the active set changed.
func DeriveView(items []Item, search string, enabledOnly bool, active ActiveSet, page, perPage int) View {
	needle := strings.ToLower(search)
	filtered := make([]Item, 0, len(items))
	for _, it := range items {
		if needle != "" && !strings.Contains(strings.ToLower(it.Key), needle) {
			continue
		}
		if enabledOnly && (active == nil || !active.IsItemActive(it.Key)) {
			continue
		}
		filtered = append(filtered, it)
	}
	return View{Filtered: filtered}.WithPage(page, perPage)
}

// WithPage returns v showing page without re-filtering. page is clamped into range.
func (v View) WithPage(page, perPage int) View {
	v.PerPage = perPage
	v.PageCount = 0
	if perPage > 0 {
		v.PageCount = (len(v.Filtered) + perPage - 1) / perPage
	}

	switch {
	case v.PageCount == 0:
		page = 0
	case page < 0:
		page = 0
	case page >= v.PageCount:
		page = v.PageCount - 1
	}
	v.Page = page

	v.Visible = nil
	if v.PageCount > 0 {
		start := page * perPage
		end := min(start+perPage, len(v.Filtered))
		v.Visible = v.Filtered[start:end:end]
	}
	return v
}

// ItemAt returns the visible item at index i.
func (v View) ItemAt(i int) (Item, bool) {
	if i < 0 || i >= len(v.Visible) {
		return Item{}, false
	}
	return v.Visible[i], true
}
