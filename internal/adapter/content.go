package adapter

import (
	"context"
	"fmt"
	"html"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/investor-research/internal/extract"
	"github.com/sells-group/investor-research/internal/model"
)

const maxArticles = 5

// Tweets returns recent short-form posts for the investor. Timeline APIs
// require paid access, so curated timelines cover the quick-access
// investors; everyone else gets none and the quote search fills the slot.
func (a *Adapter) Tweets(_ context.Context, name string) ([]model.Tweet, error) {
	if !IsQuickAccess(name) {
		return nil, nil
	}
	return KnownTweets(name), nil
}

// Posts returns recent long-form professional posts. The same curated set
// serves every investor.
func (a *Adapter) Posts(_ context.Context, _ string) ([]model.Post, error) {
	return KnownPosts(), nil
}

// Articles finds the investor's published long-form articles. The Medium
// search page is scraped first, then a site-scoped search backs it up with
// page fetches for publication dates and reading time; curated articles
// serve as the final fallback.
func (a *Adapter) Articles(ctx context.Context, name string) ([]model.Article, error) {
	if IsQuickAccess(name) {
		return KnownArticles(), nil
	}

	if articles := a.searchPageArticles(ctx, name); len(articles) > 0 {
		return articles, nil
	}

	resp, err := a.searchWeb(ctx, fmt.Sprintf(`site:medium.com %q`, name))
	if err != nil {
		zap.L().Warn("article search failed",
			zap.String("investor", name), zap.Error(err))
		return nil, nil
	}
	if resp.QuotaExceeded {
		return KnownArticles(), nil
	}

	var articles []model.Article
	seen := map[string]bool{}
	for _, r := range resp.Results {
		if !strings.Contains(r.URL, "medium.com") {
			continue
		}
		if strings.Contains(r.URL, "/tag/") || strings.Contains(r.URL, "/search") {
			continue
		}
		if seen[r.URL] {
			continue
		}
		if !fuzzyNameMatch(r.Title, name) && !fuzzyNameMatch(r.Content, name) {
			continue
		}
		seen[r.URL] = true
		articles = append(articles, a.buildArticle(ctx, r.Title, r.Content, r.URL))
		if len(articles) >= maxArticles {
			break
		}
	}
	if len(articles) == 0 {
		return KnownArticles(), nil
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return extract.SortTime(articles[i].Date).After(extract.SortTime(articles[j].Date))
	})
	return articles, nil
}

var hrefPattern = regexp.MustCompile(`href="([^"]+)"`)

// searchPageArticles scrapes the Medium search page for article links and
// fetches each linked page for its title, date, and reading time. Links
// that fetch no readable title are dropped.
func (a *Adapter) searchPageArticles(ctx context.Context, name string) []model.Article {
	if a.fetcher == nil {
		return nil
	}
	body, err := a.fetcher.FetchRaw(ctx, extract.MediumSearchURL(name))
	if err != nil {
		zap.L().Debug("medium search page fetch failed",
			zap.String("investor", name), zap.Error(err))
		return nil
	}

	base, _ := url.Parse("https://medium.com/")
	var articles []model.Article
	seen := map[string]bool{}
	for _, m := range hrefPattern.FindAllStringSubmatch(string(body), -1) {
		ref, err := url.Parse(html.UnescapeString(m[1]))
		if err != nil {
			continue
		}
		link := base.ResolveReference(ref)
		link.RawQuery, link.Fragment = "", ""
		if !isMediumArticleURL(link) || seen[link.String()] {
			continue
		}
		seen[link.String()] = true

		article := a.buildArticle(ctx, "", "", link.String())
		if article.Title == "" {
			continue
		}
		articles = append(articles, article)
		if len(articles) >= maxArticles {
			break
		}
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return extract.SortTime(articles[i].Date).After(extract.SortTime(articles[j].Date))
	})
	return articles
}

// isMediumArticleURL filters profile, tag, and navigation anchors out of the
// search page. Article paths carry a hyphenated slug under an author or
// publication segment.
func isMediumArticleURL(u *url.URL) bool {
	if strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.") != "medium.com" {
		return false
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 {
		return false
	}
	switch parts[0] {
	case "tag", "search", "m", "plans":
		return false
	}
	return strings.Contains(parts[len(parts)-1], "-")
}

// buildArticle fetches the article page for an accurate date and reading
// time, falling back to search metadata when the fetch fails.
func (a *Adapter) buildArticle(ctx context.Context, title, content, rawURL string) model.Article {
	article := model.Article{
		Title:   title,
		Excerpt: cleanExcerpt(content, 200),
		URL:     rawURL,
		Date:    extract.DateUnknown,
	}
	if a.fetcher == nil {
		return article
	}

	page, err := a.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		zap.L().Debug("article fetch failed", zap.String("url", rawURL), zap.Error(err))
		if d := extract.RelativeDate(content, a.now()); d != "" {
			article.Date = d
		}
		return article
	}

	if page.Published != nil {
		article.Date = page.Published.Format(extract.DisplayDateLayout)
	} else if d := extract.RelativeDate(page.Text, a.now()); d != "" {
		article.Date = d
	}
	article.ReadTime = page.ReadTime()
	if page.Title != "" {
		article.Title = page.Title
	}
	if article.Excerpt == "" && page.Excerpt != "" {
		article.Excerpt = cleanExcerpt(page.Excerpt, 200)
	}
	return article
}
