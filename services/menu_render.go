package services

import "sort"

// The sentinel group for items whose category binding is missing.
const UncategorizedLabel = "Uncategorized"

// MenuItemView is the flat row shape the public renderer works with: the item
// plus its category name and the category's display order, denormalized at read
// time from the menu's category bindings.
type MenuItemView struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"image_url,omitempty"`
	CategoryID   uint    `json:"menu_category_id"`
	CategoryName string  `json:"category_name"`
	OrderIndex   int     `json:"order_index"`
}

type MenuGroup struct {
	CategoryName string         `json:"category_name"`
	Items        []MenuItemView `json:"items"`
}

// GroupMenuItems turns a flat item list into ordered (category, items) groups.
//
// One pass accumulates items per category name, keeping the order they arrived
// in. Each category's position comes from the order_index of the first item seen
// in it; rows in the same category are expected to agree, and first-seen wins if
// they don't. Categories then sort by that index ascending, with ties keeping
// encounter order. Every input item lands in exactly one group and an empty
// input yields an empty (non-nil) slice, so callers can always range over it.
func GroupMenuItems(items []MenuItemView) []MenuGroup {
	byName := make(map[string][]MenuItemView)
	orderOf := make(map[string]int)
	var names []string

	for _, it := range items {
		name := it.CategoryName
		if name == "" {
			name = UncategorizedLabel
		}
		if _, seen := byName[name]; !seen {
			names = append(names, name)
			orderOf[name] = it.OrderIndex
		}
		byName[name] = append(byName[name], it)
	}

	sort.SliceStable(names, func(i, j int) bool {
		return orderOf[names[i]] < orderOf[names[j]]
	})

	groups := make([]MenuGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, MenuGroup{CategoryName: name, Items: byName[name]})
	}
	return groups
}
