// Package slug derives URL-safe identifiers from display names.
package slug

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	invalidChars = regexp.MustCompile(`[^\w\s-]`)
	separators   = regexp.MustCompile(`[\s_-]+`)
	edgeHyphens  = regexp.MustCompile(`^-+|-+$`)
	validSlug    = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// Generate converts text into a lowercase hyphen-separated slug. It never
// fails; input with no usable characters yields an empty string.
func Generate(text string) string {
	s := strings.TrimSpace(strings.ToLower(text))
	s = invalidChars.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	return edgeHyphens.ReplaceAllString(s, "")
}

// MakeUnique returns base unchanged if it does not collide with existing,
// otherwise base-1, base-2, ... for the first free suffix. The caller is
// expected to have loaded the full slug set for the entity type; the database
// unique constraint remains the authoritative guard against races.
func MakeUnique(base string, existing []string) string {
	taken := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		taken[s] = struct{}{}
	}

	if _, ok := taken[base]; !ok {
		return base
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
	}
}

// IsValid reports whether a caller-supplied slug is acceptable: lowercase
// alphanumeric runs separated by single hyphens, no leading or trailing hyphen.
func IsValid(s string) bool {
	return validSlug.MatchString(s)
}
