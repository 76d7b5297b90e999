// Package sanitizer sanitizes HTML mail bodies.
//
// Message bodies come from an external rich-text editor and from foreign
// inbound mail (when quoting into a reply or forward skeleton), so every
// body that re-enters the engine goes through Body before it is embedded
// or previewed. PlainText strips all markup, for list previews and the
// text/plain alternative of outgoing mail.
package sanitizer

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	bodyPolicy  *bluemonday.Policy
	plainPolicy *bluemonday.Policy
	initOnce    sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// Mirrors the rich-text editor's toolbar: headings, basic emphasis,
		// lists, links, and the quote structure reply bodies rely on.
		bodyPolicy = bluemonday.NewPolicy()
		bodyPolicy.AllowStandardURLs()
		bodyPolicy.AllowElements(
			"h1", "h2",
			"p", "br",
			"strong", "b", "em", "i", "u", "s",
			"ul", "ol", "li",
			"blockquote",
		)
		bodyPolicy.AllowAttrs("href").OnElements("a")
		bodyPolicy.RequireNoFollowOnLinks(true)

		plainPolicy = bluemonday.StrictPolicy()
	})
}

// Body sanitizes an HTML mail body, keeping only the markup the rich-text
// editor can produce. Scripts, event handlers, and javascript: URLs are
// stripped.
func Body(s string) string {
	initPolicies()
	return bodyPolicy.Sanitize(s)
}

// PlainText strips all HTML, returning the text content only.
func PlainText(s string) string {
	initPolicies()
	return strings.TrimSpace(plainPolicy.Sanitize(s))
}
