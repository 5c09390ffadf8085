// Package sanitizer provides HTML sanitization helpers on top of
// bluemonday, with two prebuilt policies: strict (text only) and basic
// formatting for user-generated content.
package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	ugcPolicy    *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		ugcPolicy = bluemonday.NewPolicy()
		ugcPolicy.AllowStandardURLs()
		ugcPolicy.AllowElements(
			"p", "br",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
		ugcPolicy.AllowAttrs("href").OnElements("a")
		ugcPolicy.RequireNoFollowOnLinks(true)
	})
}

// StripTags removes all HTML, returning plain text.
func StripTags(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// SanitizeHTML keeps basic formatting tags (p, a, strong, em, lists,
// code) and strips everything dangerous: scripts, event handlers,
// javascript: URLs. Use for user-generated content.
func SanitizeHTML(s string) string {
	initPolicies()
	return ugcPolicy.Sanitize(s)
}

// SanitizeWith applies a custom bluemonday policy. A nil policy returns
// the input unchanged.
func SanitizeWith(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
