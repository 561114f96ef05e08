package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(name, category string, order int) MenuItemView {
	return MenuItemView{Name: name, CategoryName: category, OrderIndex: order}
}

func TestGroupMenuItemsEmpty(t *testing.T) {
	got := GroupMenuItems(nil)
	require.NotNil(t, got)
	assert.Empty(t, got)

	assert.Empty(t, GroupMenuItems([]MenuItemView{}))
}

func TestGroupMenuItemsOrdersByCategoryIndex(t *testing.T) {
	items := []MenuItemView{
		item("Flan", "Desserts", 3),
		item("Soda", "Drinks", 1),
		item("Tacos", "Mains", 2),
	}
	got := GroupMenuItems(items)

	require.Len(t, got, 3)
	assert.Equal(t, "Drinks", got[0].CategoryName)
	assert.Equal(t, "Mains", got[1].CategoryName)
	assert.Equal(t, "Desserts", got[2].CategoryName)
}

func TestGroupMenuItemsPreservesItemOrderWithinCategory(t *testing.T) {
	items := []MenuItemView{
		item("Tacos", "Mains", 1),
		item("Soda", "Drinks", 0),
		item("Salad", "Mains", 1),
	}
	got := GroupMenuItems(items)

	require.Len(t, got, 2)
	assert.Equal(t, "Drinks", got[0].CategoryName)
	require.Len(t, got[0].Items, 1)
	assert.Equal(t, "Soda", got[0].Items[0].Name)

	assert.Equal(t, "Mains", got[1].CategoryName)
	require.Len(t, got[1].Items, 2)
	assert.Equal(t, "Tacos", got[1].Items[0].Name)
	assert.Equal(t, "Salad", got[1].Items[1].Name)
}

func TestGroupMenuItemsCompleteness(t *testing.T) {
	items := []MenuItemView{
		item("a", "X", 2), item("b", "Y", 1), item("c", "X", 2),
		item("d", "Z", 0), item("e", "Y", 1), item("f", "Z", 0),
		item("g", "X", 2),
	}
	got := GroupMenuItems(items)

	total := 0
	seen := map[string]bool{}
	for _, g := range got {
		total += len(g.Items)
		for _, it := range g.Items {
			assert.False(t, seen[it.Name], "item %s appeared twice", it.Name)
			seen[it.Name] = true
		}
	}
	assert.Equal(t, len(items), total)
}

func TestGroupMenuItemsTiesKeepEncounterOrder(t *testing.T) {
	items := []MenuItemView{
		item("a", "Second Seen", 5),
		item("b", "Also Five", 5),
		item("c", "First", 1),
	}
	got := GroupMenuItems(items)

	require.Len(t, got, 3)
	assert.Equal(t, "First", got[0].CategoryName)
	assert.Equal(t, "Second Seen", got[1].CategoryName)
	assert.Equal(t, "Also Five", got[2].CategoryName)
}

func TestGroupMenuItemsUncategorizedFallback(t *testing.T) {
	items := []MenuItemView{
		item("Mystery Dish", "", 0),
		item("Tacos", "Mains", 1),
	}
	got := GroupMenuItems(items)

	require.Len(t, got, 2)
	assert.Equal(t, UncategorizedLabel, got[0].CategoryName)
}

func TestGroupMenuItemsFirstSeenIndexWins(t *testing.T) {
	// rows disagreeing on their category's index: the first encountered decides
	items := []MenuItemView{
		item("a", "Mains", 9),
		item("b", "Drinks", 1),
		item("c", "Mains", 0),
	}
	got := GroupMenuItems(items)

	require.Len(t, got, 2)
	assert.Equal(t, "Drinks", got[0].CategoryName)
	assert.Equal(t, "Mains", got[1].CategoryName)
}
