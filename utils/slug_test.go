package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenuSlug(t *testing.T) {
	s := MenuSlug("Lunch & Dinner Menu!")
	assert.True(t, strings.HasPrefix(s, "lunch-dinner-menu-"), "got %q", s)

	// two menus with the same name get distinct slugs
	assert.NotEqual(t, MenuSlug("Lunch"), MenuSlug("Lunch"))
}

func TestMenuSlugEmptyName(t *testing.T) {
	s := MenuSlug("!!!")
	assert.True(t, strings.HasPrefix(s, "menu-"), "got %q", s)
}
