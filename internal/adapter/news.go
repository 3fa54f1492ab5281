package adapter

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/investor-research/internal/extract"
	"github.com/sells-group/investor-research/internal/model"
	"github.com/sells-group/investor-research/pkg/tavily"
)

const defaultNewsLimit = 5

// newsSkipDomains are hosts that never carry a news article.
var newsSkipDomains = []string{
	"twitter.com", "x.com", "linkedin.com", "facebook.com",
	"instagram.com", "youtube.com", "wikipedia.org",
	"crunchbase.com", "github.com", "reddit.com",
}

// newsSourceNames maps a capitalized domain label to its publication name.
var newsSourceNames = map[string]string{
	"Techcrunch":      "TechCrunch",
	"Wsj":             "Wall Street Journal",
	"Nytimes":         "New York Times",
	"Forbes":          "Forbes",
	"Bloomberg":       "Bloomberg",
	"Reuters":         "Reuters",
	"Cnbc":            "CNBC",
	"Theverge":        "The Verge",
	"Wired":           "Wired",
	"Venturebeat":     "VentureBeat",
	"Axios":           "Axios",
	"Businessinsider": "Business Insider",
	"Fortune":         "Fortune",
	"Marketwatch":     "MarketWatch",
	"Seekingalpha":    "Seeking Alpha",
	"Benzinga":        "Benzinga",
	"Techradar":       "TechRadar",
	"Engadget":        "Engadget",
	"Arstechnica":     "Ars Technica",
	"Theinformation":  "The Information",
}

var (
	explicitDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4})`),
		regexp.MustCompile(`(?i)((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{1,2},?\s+\d{4})`),
		regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`),
		regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})`),
	}
	todayPattern     = regexp.MustCompile(`(?i)\btoday\b`)
	yesterdayPattern = regexp.MustCompile(`(?i)\byesterday\b`)
	daysAgoPattern   = regexp.MustCompile(`(?i)(\d+)\s+days?\s+ago`)
	hoursAgoPattern  = regexp.MustCompile(`(?i)(\d+)\s+hours?\s+ago`)
)

// News fetches recent news coverage of the investor. Curated items serve
// the quick-access investors; live results come from search with social
// and directory hosts filtered out.
func (a *Adapter) News(ctx context.Context, name string, limit int) ([]model.NewsItem, error) {
	if limit <= 0 {
		limit = defaultNewsLimit
	}
	if IsQuickAccess(name) {
		items := KnownNews(name)
		if len(items) > limit {
			items = items[:limit]
		}
		return items, nil
	}

	query := fmt.Sprintf("%q news latest announcements investments", name)
	// Over-fetch so skip-list filtering still fills the limit.
	resp, err := a.searchWeb(ctx, query, tavily.WithMaxResults(limit*2))
	if err != nil {
		zap.L().Warn("news search failed",
			zap.String("investor", name), zap.Error(err))
		return nil, nil
	}
	if resp.QuotaExceeded {
		items := KnownNews(name)
		if len(items) > limit {
			items = items[:limit]
		}
		return items, nil
	}

	var items []model.NewsItem
	for _, r := range resp.Results {
		if hostMatchesAny(r.URL, newsSkipDomains) {
			continue
		}
		items = append(items, model.NewsItem{
			Title:   r.Title,
			Excerpt: cleanExcerpt(r.Content, 200),
			Source:  newsSource(r.URL),
			Date:    newsDate(r.Content),
			URL:     r.URL,
			Content: r.Content,
		})
		if len(items) >= limit {
			break
		}
	}
	if len(items) == 0 {
		items = KnownNews(name)
		if len(items) > limit {
			items = items[:limit]
		}
	}
	return items, nil
}

// newsSource derives a publication name from the article URL.
func newsSource(rawURL string) string {
	domain := strings.TrimPrefix(rawURL, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	domain = strings.TrimPrefix(domain, "www.")
	if idx := strings.IndexByte(domain, '/'); idx >= 0 {
		domain = domain[:idx]
	}
	label := domain
	if idx := strings.IndexByte(label, '.'); idx >= 0 {
		label = label[:idx]
	}
	if label == "" {
		return "News Source"
	}
	label = cases.Title(language.English).String(strings.ToLower(label))
	if mapped, ok := newsSourceNames[label]; ok {
		return mapped
	}
	return label
}

// newsDate pulls a human-readable date out of article content, preferring
// explicit dates over relative phrasing.
func newsDate(content string) string {
	for _, p := range explicitDatePatterns {
		if m := p.FindStringSubmatch(content); m != nil {
			return m[1]
		}
	}
	if todayPattern.MatchString(content) {
		return "Today"
	}
	if yesterdayPattern.MatchString(content) {
		return "Yesterday"
	}
	if m := daysAgoPattern.FindStringSubmatch(content); m != nil {
		return m[1] + " days ago"
	}
	if m := hoursAgoPattern.FindStringSubmatch(content); m != nil {
		return m[1] + " hours ago"
	}
	return extract.DateUnknown
}
