package wikipedia

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/page/summary/Peter_Thiel", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Summary{
			Title:   "Peter Thiel",
			Extract: "Peter Andreas Thiel is an entrepreneur and venture capitalist.",
			Thumbnail: &Image{
				Source: "https://upload.wikimedia.org/wikipedia/commons/thumb/a/a0/Peter_Thiel.jpg/320px-Peter_Thiel.jpg",
				Width:  320,
				Height: 400,
			},
		})
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	got, err := client.Summary(context.Background(), "Peter Thiel")

	require.NoError(t, err)
	assert.Equal(t, "Peter Thiel", got.Title)
	require.NotNil(t, got.Thumbnail)
	assert.Equal(t, 320, got.Thumbnail.Width)
}

func TestSummary_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"title":"Not found."}`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.Summary(context.Background(), "Nobody At All")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no page")
}

func TestUpscaleThumbnail(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"https://upload.wikimedia.org/a/a0/x.jpg/800px-x.jpg",
		UpscaleThumbnail("https://upload.wikimedia.org/a/a0/x.jpg/320px-x.jpg"))
	assert.Equal(t,
		"https://upload.wikimedia.org/a/a0/x.jpg",
		UpscaleThumbnail("https://upload.wikimedia.org/a/a0/x.jpg"))
}
