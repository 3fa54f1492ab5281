package enhance

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Hosts and brand sites that show up in search results but never are the
// company's own website.
var websiteSkipDomains = []string{
	"wikipedia.org", "linkedin.com", "twitter.com", "x.com", "youtube.com",
	"reddit.com", "gov", "edu", "yahoo.com", "finance.yahoo.com",
	"bloomberg.com", "marketwatch.com", "sec.gov", "crunchbase.com",
	"instagram.com", "facebook.com", "tiktok.com", "westfield.com",
	"directory.", "yellowpages.", "yelp.com", "britannica.com",
	"whitepinecounty.net", "cityoflavista.org", ".org/", ".au/", ".eu/",
	"foursquare-europe.org",
}

// Subpages and storefronts to skip in favor of the main corporate site.
var websiteSkipPaths = []string{
	"/careers", "/about-us", "/jobs", "/investor", "/news", "/quote/",
	"store.", "shop.", "/store", "/shop", "/retail", "/search", "/app/",
	"/facebook-app", "/productUniverse", "?srsltid=", "?sort=",
}

// Title words that mark a same-named band, mall, or municipality.
var websiteSkipTitles = []string{
	"band", "music", "mall", "directory", "listing", "store location",
	"city of", "county", "government",
}

// websiteFallbacks covers well-known companies when search quota runs out.
var websiteFallbacks = map[string]string{
	"paypal":    "https://www.paypal.com",
	"palantir":  "https://www.palantir.com",
	"meta":      "https://www.meta.com",
	"facebook":  "https://www.facebook.com",
	"spacex":    "https://www.spacex.com",
	"stripe":    "https://stripe.com",
	"twitter":   "https://twitter.com",
	"github":    "https://github.com",
	"pinterest": "https://www.pinterest.com",
	"coinbase":  "https://www.coinbase.com",
	"tesla":     "https://www.tesla.com",
	"netflix":   "https://www.netflix.com",
	"uber":      "https://www.uber.com",
	"airbnb":    "https://www.airbnb.com",
	"linkedin":  "https://www.linkedin.com",
	"microsoft": "https://www.microsoft.com",
	"google":    "https://www.google.com",
	"apple":     "https://www.apple.com",
	"amazon":    "https://www.amazon.com",
}

// cleanCompanyName strips legal suffixes that pollute search queries.
func cleanCompanyName(name string) string {
	for _, suffix := range []string{" Inc.", " LLC", " Corp.", " Ltd."} {
		name = strings.ReplaceAll(name, suffix, "")
	}
	return name
}

// websiteQueries builds the search waterfall for a company website. Tesla
// needs disambiguation from the inventor and the band.
func websiteQueries(name string) []string {
	clean := cleanCompanyName(name)
	if strings.Contains(strings.ToLower(clean), "tesla") {
		return []string{
			`"Tesla" electric car official website`,
			`"Tesla Motors" official website`,
			`"Tesla Inc" corporate website`,
		}
	}
	domain := strings.ToLower(strings.ReplaceAll(clean, " ", ""))
	return []string{
		fmt.Sprintf("%q official website", clean),
		fmt.Sprintf("%q corporate website", clean),
		fmt.Sprintf("site:%s.com", domain),
		fmt.Sprintf("%q company website", name),
		fmt.Sprintf("%q", name),
	}
}

// Website finds the company's own site, preferring corporate domains over
// directories, subpages, and unrelated same-named entities.
func (e *Enhancer) Website(ctx context.Context, name string) (string, error) {
	for _, query := range websiteQueries(name) {
		resp, err := e.searchWeb(ctx, query)
		if err != nil {
			return "", err
		}
		if resp.QuotaExceeded {
			zap.L().Warn("search quota exhausted during website lookup",
				zap.String("company", name))
			return fallbackWebsite(name), nil
		}
		for i, r := range resp.Results {
			if i >= 5 {
				break
			}
			if acceptableWebsite(r.URL, r.Title) {
				return r.URL, nil
			}
		}
	}
	return fallbackWebsite(name), nil
}

func acceptableWebsite(rawURL, title string) bool {
	lowerURL := strings.ToLower(rawURL)
	lowerTitle := strings.ToLower(title)
	for _, d := range websiteSkipDomains {
		if strings.Contains(lowerURL, d) {
			return false
		}
	}
	for _, p := range websiteSkipPaths {
		if strings.Contains(lowerURL, strings.ToLower(p)) {
			return false
		}
	}
	for _, w := range websiteSkipTitles {
		if strings.Contains(lowerTitle, w) {
			return false
		}
	}
	return strings.Contains(rawURL, ".com") ||
		strings.Contains(rawURL, ".org") ||
		strings.Contains(rawURL, ".net")
}

func fallbackWebsite(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	for key, site := range websiteFallbacks {
		if strings.Contains(lower, key) {
			return site
		}
	}
	return ""
}
