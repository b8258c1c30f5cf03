package menu

import (
	"net/http"
	"strings"
)

// wantsJSON reports whether the request selected JSON output via the
// format query parameter.
func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.URL.Query().Get("format"), "json")
}

// wantsHTML reports whether the client looks like a browser rather than
// curl. Only the help page has an HTML variant.
func wantsHTML(r *http.Request) bool {
	ua := r.UserAgent()
	for _, browser := range []string{"Chrome", "Safari", "Mozilla"} {
		if strings.Contains(ua, browser) {
			return true
		}
	}
	return false
}
