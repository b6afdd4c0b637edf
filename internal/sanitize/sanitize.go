// Package sanitize cleans user-submitted text before it is stored.
// Contact messages may later be displayed, so all markup is stripped and
// HTML-significant characters are escaped to prevent stored XSS.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// policy strips every element; only escaped text content survives.
var policy = bluemonday.StrictPolicy()

// Clean trims surrounding whitespace, removes all markup and escapes
// HTML-significant characters in the remaining text.
func Clean(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}
