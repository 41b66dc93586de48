package utils

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

// Comments render as plain text, so strip all markup rather than allowing a
// UGC subset.
var sanitizer = bluemonday.StrictPolicy()

// Sanitize removes any HTML from user-supplied text to prevent XSS. The
// policy entity-encodes its output, so the entities are decoded again to
// keep plain text like apostrophes and ampersands byte-identical; only the
// tag stripping survives.
func Sanitize(input string) string {
	return html.UnescapeString(sanitizer.Sanitize(input))
}
