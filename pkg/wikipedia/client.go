// Package wikipedia provides a client for the Wikipedia REST page summary
// endpoint, used to source portrait thumbnails for well-known people.
package wikipedia

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://en.wikipedia.org/api/rest_v1"

// Client fetches page summaries from the Wikipedia REST API.
type Client interface {
	Summary(ctx context.Context, title string) (*Summary, error)
}

// Summary is the subset of the page summary payload we consume.
type Summary struct {
	Title     string `json:"title"`
	Extract   string `json:"extract"`
	Thumbnail *Image `json:"thumbnail"`
}

// Image is a thumbnail or original image reference.
type Image struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Wikipedia REST client. The API needs no credentials.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *httpClient) Summary(ctx context.Context, title string) (*Summary, error) {
	// The summary endpoint addresses pages by underscore-joined title.
	slug := url.PathEscape(strings.ReplaceAll(strings.TrimSpace(title), " ", "_"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/page/summary/"+slug, nil)
	if err != nil {
		return nil, eris.Wrap(err, "wikipedia: create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "wikipedia: send request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "wikipedia: read response")
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, eris.Errorf("wikipedia: no page for %q", title)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("wikipedia: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var summary Summary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, eris.Wrap(err, "wikipedia: unmarshal response")
	}

	return &summary, nil
}

var thumbWidthPattern = regexp.MustCompile(`/\d+px-`)

// UpscaleThumbnail rewrites a thumbnail URL to request an 800px rendition.
// URLs without a width segment are returned unchanged.
func UpscaleThumbnail(source string) string {
	return thumbWidthPattern.ReplaceAllString(source, "/800px-")
}
