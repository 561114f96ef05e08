package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// MenuSlug builds a public URL segment from a menu name plus a short random
// suffix so two restaurants can both call a menu "Lunch".
func MenuSlug(name string) string {
	base := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	base = strings.Trim(base, "-")
	if base == "" {
		base = "menu"
	}
	return fmt.Sprintf("%s-%s", base, uuid.NewString()[:8])
}
