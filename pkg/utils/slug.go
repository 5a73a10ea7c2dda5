package utils

import (
	"regexp"
	"strings"
)

var (
	slugStrip    = regexp.MustCompile(`[^a-z0-9 -]+`)
	slugCollapse = regexp.MustCompile(`[ -]+`)
)

// GenerateSlug turns a title like "$5 Hawker Voucher" into "5-hawker-voucher".
// Runs of spaces and hyphens collapse to a single hyphen so edited titles
// still produce clean slugs.
func GenerateSlug(input string) string {
	slug := strings.ToLower(input)
	slug = slugStrip.ReplaceAllString(slug, "")
	slug = slugCollapse.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
