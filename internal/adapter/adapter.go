// Package adapter gathers investor material from outside sources: web
// search, Wikipedia, article pages, and the language model. Each source
// degrades to curated fallback data so a research run always produces a
// usable payload.
package adapter

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/sells-group/investor-research/internal/scrape"
	"github.com/sells-group/investor-research/pkg/anthropic"
	"github.com/sells-group/investor-research/pkg/imagehost"
	"github.com/sells-group/investor-research/pkg/tavily"
	"github.com/sells-group/investor-research/pkg/wikipedia"
)

// Options wires an Adapter's external clients and tuning knobs.
type Options struct {
	Search  tavily.Client
	LLM     anthropic.Client
	Wiki    wikipedia.Client
	Images  imagehost.Client
	Fetcher *scrape.Fetcher

	// Model is the language model used for portfolio extraction.
	Model string

	// SearchesPerSecond throttles all outbound search calls through one
	// shared token bucket. Zero means 2 rps.
	SearchesPerSecond float64

	// Now supplies the clock for relative date resolution.
	Now func() time.Time
}

// Adapter aggregates per-source lookups behind a shared rate limiter.
type Adapter struct {
	search  tavily.Client
	llm     anthropic.Client
	wiki    wikipedia.Client
	images  imagehost.Client
	fetcher *scrape.Fetcher
	limiter *rate.Limiter
	model   string
	now     func() time.Time
}

// New creates an Adapter from Options.
func New(opts Options) *Adapter {
	rps := opts.SearchesPerSecond
	if rps <= 0 {
		rps = 2
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	model := opts.Model
	if model == "" {
		model = "claude-sonnet-4-5-20250929"
	}
	return &Adapter{
		search:  opts.Search,
		llm:     opts.LLM,
		wiki:    opts.Wiki,
		images:  opts.Images,
		fetcher: opts.Fetcher,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		model:   model,
		now:     now,
	}
}

// searchWeb runs one rate-limited search. Quota exhaustion is passed
// through on the response, not as an error.
func (a *Adapter) searchWeb(ctx context.Context, query string, opts ...tavily.SearchOption) (*tavily.SearchResponse, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "adapter: rate limiter")
	}
	return a.search.Search(ctx, query, opts...)
}

// suffixPattern matches common business entity suffixes for fuzzy name matching.
var suffixPattern = regexp.MustCompile(`(?i),?\s*(inc\.?|llc\.?|ltd\.?|co\.?|corp\.?|corporation|company|llp|lp|pllc|pc|p\.?c\.?)$`)

// normalizeName strips business suffixes and lowercases the name.
func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	stripped := suffixPattern.ReplaceAllString(name, "")
	stripped = strings.TrimSpace(stripped)
	return strings.ToLower(stripped)
}

// fuzzyNameMatch checks whether text mentions the name, ignoring case and
// entity suffixes.
func fuzzyNameMatch(text, name string) bool {
	if text == "" || name == "" {
		return false
	}
	normalized := normalizeName(name)
	if normalized == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), normalized)
}

var (
	urlInTextPattern = regexp.MustCompile(`https?://\S+`)
	whitespaceRun    = regexp.MustCompile(`\s+`)
)

// cleanExcerpt collapses whitespace, drops inline URLs, and truncates at a
// word boundary near maxLen.
func cleanExcerpt(text string, maxLen int) string {
	text = urlInTextPattern.ReplaceAllString(text, "")
	text = strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
	if len(text) <= maxLen {
		return text
	}
	cut := text[:maxLen]
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "..."
}

// hostMatchesAny reports whether the URL's host or path contains any of the
// given fragments. Used for skip lists.
func hostMatchesAny(rawURL string, fragments []string) bool {
	lower := strings.ToLower(rawURL)
	for _, f := range fragments {
		if strings.Contains(lower, f) {
			return true
		}
	}
	return false
}
