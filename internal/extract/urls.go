package extract

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	twitterURLPattern = regexp.MustCompile(`https?://(?:www\.)?(?:twitter\.com|x\.com)/[^\s\)]+`)
	trailingPunct     = regexp.MustCompile(`[.,;!?'")\]]+$`)
)

// TwitterURL finds the first Twitter/X profile link in text, canonicalized
// to the https://x.com/<username> form. Returns "" when none is present or
// the link carries no username.
func TwitterURL(text string) string {
	raw := twitterURLPattern.FindString(text)
	if raw == "" {
		return ""
	}
	return CanonicalTwitterURL(trailingPunct.ReplaceAllString(raw, ""))
}

// CanonicalTwitterURL normalizes any twitter.com or x.com profile link to
// https://x.com/<username>, discarding query strings and fragments.
func CanonicalTwitterURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	if host != "twitter.com" && host != "x.com" {
		return ""
	}
	username := strings.Trim(u.Path, "/")
	if i := strings.IndexByte(username, '/'); i >= 0 {
		username = username[:i]
	}
	if username == "" {
		return ""
	}
	return "https://x.com/" + username
}

// IsLinkedInProfile reports whether raw points at a LinkedIn member or
// company page.
func IsLinkedInProfile(raw string) bool {
	return strings.Contains(strings.ToLower(raw), "linkedin.com/")
}

// IsCrunchbasePerson reports whether raw points at a Crunchbase person page.
func IsCrunchbasePerson(raw string) bool {
	return strings.Contains(strings.ToLower(raw), "crunchbase.com/person/")
}

// MediumSearchURL builds the Medium search page for a person's name. Medium
// has no stable per-author URL scheme, so the search page is the durable
// entry point.
func MediumSearchURL(name string) string {
	return "https://medium.com/search?q=" + strings.ReplaceAll(url.QueryEscape(name), "+", "%20")
}
