// Package scrape fetches web pages and reduces them to readable article
// text, with per-host circuit breaking so one unresponsive site cannot
// stall a whole research run.
package scrape

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
	"github.com/rotisserie/eris"

	"github.com/sells-group/investor-research/internal/resilience"
)

// maxBodyBytes caps how much of a page is read. Article pages past this
// size are ads and tracking scripts, not prose.
const maxBodyBytes = 512 * 1024

// wordsPerMinute is the assumed reading speed for read-time estimates.
const wordsPerMinute = 220

// Article is the readable core of a fetched page.
type Article struct {
	Title     string
	Byline    string
	Excerpt   string
	Text      string
	SiteName  string
	Published *time.Time
	WordCount int
}

// ReadTime formats the article's length as "N min read", never below one
// minute.
func (a *Article) ReadTime() string {
	minutes := a.WordCount / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// Fetcher retrieves article pages over plain HTTP. Hosts that repeatedly
// fail trip a circuit breaker and are skipped for the rest of the window.
type Fetcher struct {
	client   *http.Client
	breakers *resilience.ServiceBreakers
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(f *Fetcher) {
		f.client = hc
	}
}

// WithBreakerConfig overrides the per-host circuit breaker settings.
func WithBreakerConfig(cfg resilience.CircuitBreakerConfig) Option {
	return func(f *Fetcher) {
		f.breakers = resilience.NewServiceBreakers(cfg)
	}
}

// NewFetcher creates a Fetcher with sensible defaults.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		breakers: resilience.NewServiceBreakers(resilience.DefaultCircuitBreakerConfig()),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads targetURL and extracts its readable article content.
func (f *Fetcher) Fetch(ctx context.Context, targetURL string) (*Article, error) {
	parsed, err := url.Parse(targetURL)
	if err != nil {
		return nil, eris.Wrap(err, "scrape: parse url")
	}

	breaker := f.breakers.Get(parsed.Hostname())
	return resilience.ExecuteVal(ctx, breaker, func(ctx context.Context) (*Article, error) {
		return f.fetch(ctx, parsed)
	})
}

// FetchRaw downloads targetURL and returns the page body without article
// extraction. Block detection and the per-host breaker still apply. Used
// for index pages such as search results, where the links matter and the
// prose does not.
func (f *Fetcher) FetchRaw(ctx context.Context, targetURL string) ([]byte, error) {
	parsed, err := url.Parse(targetURL)
	if err != nil {
		return nil, eris.Wrap(err, "scrape: parse url")
	}

	breaker := f.breakers.Get(parsed.Hostname())
	return resilience.ExecuteVal(ctx, breaker, func(ctx context.Context) ([]byte, error) {
		return f.fetchBody(ctx, parsed)
	})
}

func (f *Fetcher) fetch(ctx context.Context, parsed *url.URL) (*Article, error) {
	body, err := f.fetchBody(ctx, parsed)
	if err != nil {
		return nil, err
	}

	parsedArticle, err := readability.FromReader(bytes.NewReader(body), parsed)
	if err != nil {
		return nil, eris.Wrap(err, "scrape: extract article")
	}

	text := strings.TrimSpace(parsedArticle.TextContent)
	return &Article{
		Title:     strings.TrimSpace(parsedArticle.Title),
		Byline:    parsedArticle.Byline,
		Excerpt:   strings.TrimSpace(parsedArticle.Excerpt),
		Text:      text,
		SiteName:  parsedArticle.SiteName,
		Published: parsedArticle.PublishedTime,
		WordCount: len(strings.Fields(text)),
	}, nil
}

func (f *Fetcher) fetchBody(ctx context.Context, parsed *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "scrape: create request")
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; ResearchBot/1.0)")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "scrape: fetch")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, eris.Wrap(err, "scrape: read body")
	}

	if blocked, kind := detectBlock(resp, body); blocked {
		return nil, eris.Errorf("scrape: blocked (%s)", kind)
	}
	if resp.StatusCode >= 400 {
		return nil, eris.Errorf("scrape: status %d", resp.StatusCode)
	}
	if len(body) < 100 {
		return nil, eris.New("scrape: empty page")
	}
	return body, nil
}

// detectBlock checks a response for anti-bot protection markers. Blocked
// pages count as failures toward the host's circuit breaker.
func detectBlock(resp *http.Response, body []byte) (bool, string) {
	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusServiceUnavailable {
		if resp.Header.Get("cf-ray") != "" || resp.Header.Get("server") == "cloudflare" {
			return true, "cloudflare"
		}
	}

	lower := strings.ToLower(string(body))
	if strings.Contains(lower, "checking your browser") || strings.Contains(lower, "cf-browser-verification") {
		return true, "cloudflare"
	}
	if strings.Contains(lower, "captcha") {
		return true, "captcha"
	}
	return false, ""
}
