package schedule

import (
	"strings"

	"github.com/gosimple/slug"
)

// SlugMaxLength matches the length the console prepopulates up to.
const SlugMaxLength = 50

// Slugify derives a URL-safe identifier from a calendar name.
// Non-Latin names are transliterated.
func Slugify(name string) string {
	s := slug.Make(name)
	if len(s) > SlugMaxLength {
		s = strings.TrimRight(s[:SlugMaxLength], "-")
	}
	return s
}
