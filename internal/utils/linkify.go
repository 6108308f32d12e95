package utils

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	urlPattern = regexp.MustCompile(`(?i)(https?://[\w\-._~:/?#\[\]@!$&'()*+,;=%]+)|(www\.[\w\-._~:/?#\[\]@!$&'()*+,;=%]+)`)
	policy     = bluemonday.UGCPolicy()
)

func init() {
	// Force links to open in new tab
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	// Add noopener or noreferrer and follow security best practices
	policy.RequireNoReferrerOnLinks(true)
}

// LinkifyContent turns bare URLs in comment text into anchors and sanitizes
// the result. Comment content is stored raw; this runs at read time.
func LinkifyContent(text string) string {
	if text == "" {
		return ""
	}

	html := urlPattern.ReplaceAllStringFunc(text, func(u string) string {
		href := u
		if !strings.HasPrefix(strings.ToLower(href), "http") {
			href = "http://" + href
		}
		return `<a href="` + href + `">` + u + `</a>`
	})

	return string(policy.SanitizeBytes([]byte(html)))
}
