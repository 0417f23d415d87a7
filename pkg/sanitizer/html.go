// Package sanitizer neutralizes untrusted HTML before it is embedded in a
// server-rendered page. The HTML policy is tuned to the markup the markdown
// renderer produces, so rendered visitor content passes through unchanged
// while script injection does not.
package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var htmlPolicy = sync.OnceValue(func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.AllowElements(
		"p", "br", "hr",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"strong", "b", "em", "i",
		"ul", "ol", "li",
		"code", "pre", "blockquote",
	)
	p.AllowAttrs("href").OnElements("a")
	p.RequireNoFollowOnLinks(true)
	return p
})

var textPolicy = sync.OnceValue(bluemonday.StrictPolicy)

// HTML keeps the formatting tags markdown rendering emits (paragraphs,
// headings, emphasis, lists, code, blockquotes, links) and strips everything
// else: scripts, event handlers, javascript: URLs, styles, frames.
// Links gain rel="nofollow".
func HTML(s string) string {
	return htmlPolicy().Sanitize(s)
}

// Text strips all markup, leaving plain text.
func Text(s string) string {
	return textPolicy().Sanitize(s)
}
