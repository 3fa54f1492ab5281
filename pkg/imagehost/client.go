// Package imagehost uploads remote images to a Cloudinary-style media CDN
// using unsigned uploads, returning a stable hosted URL.
package imagehost

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://api.cloudinary.com/v1_1"

// Client mirrors remote images into hosted storage.
type Client interface {
	Upload(ctx context.Context, sourceURL, publicID string) (*UploadResult, error)
}

// UploadResult is the subset of the upload response we consume.
type UploadResult struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
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
	cloudName    string
	uploadPreset string
	baseURL      string
	http         *http.Client
}

// NewClient creates an image hosting client for the given cloud and unsigned
// upload preset.
func NewClient(cloudName, uploadPreset string, opts ...Option) Client {
	c := &httpClient{
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
		baseURL:      defaultBaseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *httpClient) Upload(ctx context.Context, sourceURL, publicID string) (*UploadResult, error) {
	form := url.Values{}
	form.Set("file", sourceURL)
	form.Set("upload_preset", c.uploadPreset)
	form.Set("public_id", publicID)

	endpoint := c.baseURL + "/" + c.cloudName + "/image/upload"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, eris.Wrap(err, "imagehost: create request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "imagehost: send request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "imagehost: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("imagehost: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var result UploadResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, eris.Wrap(err, "imagehost: unmarshal response")
	}

	return &result, nil
}

// SanitizePublicID converts a display name to a stable public ID segment:
// lowercase with spaces and hyphens folded to underscores.
func SanitizePublicID(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "_")
	return strings.ReplaceAll(s, "-", "_")
}
