package adapter

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sells-group/investor-research/internal/model"
	"github.com/sells-group/investor-research/pkg/anthropic"
	"github.com/sells-group/investor-research/pkg/tavily"
	"github.com/sells-group/investor-research/pkg/wikipedia"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

// fakeSearch returns the response whose key is a substring of the query.
type fakeSearch struct {
	mu        sync.Mutex
	responses map[string]*tavily.SearchResponse
	fallback  *tavily.SearchResponse
	err       error
	queries   []string
}

func (f *fakeSearch) Search(_ context.Context, query string, _ ...tavily.SearchOption) (*tavily.SearchResponse, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for key, resp := range f.responses {
		if strings.Contains(query, key) {
			return resp, nil
		}
	}
	if f.fallback != nil {
		return f.fallback, nil
	}
	return &tavily.SearchResponse{Query: query}, nil
}

// fakeLLM replies with a fixed text block.
type fakeLLM struct {
	reply string
	err   error
	calls int
}

func (f *fakeLLM) CreateMessage(_ context.Context, _ anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &anthropic.MessageResponse{
		Content: []anthropic.ContentBlock{{Type: "text", Text: f.reply}},
	}, nil
}

// fakeWiki serves one summary for any title.
type fakeWiki struct {
	summary *wikipedia.Summary
	err     error
}

func (f *fakeWiki) Summary(_ context.Context, _ string) (*wikipedia.Summary, error) {
	return f.summary, f.err
}

func newTestAdapter(search tavily.Client, llm anthropic.Client, wiki wikipedia.Client) *Adapter {
	return New(Options{
		Search:            search,
		LLM:               llm,
		Wiki:              wiki,
		SearchesPerSecond: 10_000,
		Now:               func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) },
	})
}

func quotaResponse() *tavily.SearchResponse {
	return &tavily.SearchResponse{QuotaExceeded: true}
}

func TestProfile_CuratedWins(t *testing.T) {
	search := &fakeSearch{}
	a := newTestAdapter(search, nil, nil)

	p, err := a.Profile(context.Background(), "Cathie Wood")
	require.NoError(t, err)
	assert.Equal(t, "ARK Invest", p.Firm)
	assert.Empty(t, search.queries, "curated profiles must not search")
}

func TestProfile_LiveDiscovery(t *testing.T) {
	search := &fakeSearch{responses: map[string]*tavily.SearchResponse{
		"LinkedIn": {Results: []tavily.SearchResult{
			{URL: "https://www.linkedin.com/in/jane-investor", Title: "Jane Investor | LinkedIn"},
		}},
		"Twitter": {Results: []tavily.SearchResult{
			{URL: "https://example.com", Content: "follow her at https://twitter.com/janeinvests for takes"},
		}},
		"Crunchbase": {Results: []tavily.SearchResult{
			{URL: "https://www.crunchbase.com/person/jane-investor"},
		}},
		"venture capital firm website": {Results: []tavily.SearchResult{
			{URL: "https://www.janecapital.com/team"},
		}},
	}}
	a := newTestAdapter(search, nil, nil)

	p, err := a.Profile(context.Background(), "Jane Investor")
	require.NoError(t, err)

	assert.Equal(t, "https://www.linkedin.com/in/jane-investor", p.ProfileURLs["linkedin"])
	assert.Equal(t, "https://x.com/janeinvests", p.ProfileURLs["twitter"])
	assert.Equal(t, "https://www.crunchbase.com/person/jane-investor", p.ProfileURLs["crunchbase"])
	assert.Equal(t, "https://www.janecapital.com", p.ProfileURLs["firm"])
	assert.Equal(t, "https://medium.com/search?q=Jane%20Investor", p.ProfileURLs["medium"])
	assert.Equal(t, "Janecapital", p.Firm)
	assert.Equal(t, "Investor", p.Title)
	assert.Contains(t, p.Image, "ui-avatars.com")
	assert.Contains(t, p.Image, "Jane+Investor")
}

func TestProfile_QuotaFallsBackToDefault(t *testing.T) {
	search := &fakeSearch{fallback: quotaResponse()}
	a := newTestAdapter(search, nil, nil)

	p, err := a.Profile(context.Background(), "Jane Investor")
	require.NoError(t, err)
	assert.Equal(t, "Sample Ventures", p.Firm)
}

func TestProfile_WikipediaImage(t *testing.T) {
	search := &fakeSearch{responses: map[string]*tavily.SearchResponse{
		"venture capital firm website": {Results: []tavily.SearchResult{
			{URL: "https://www.janecapital.com"},
		}},
	}}
	wiki := &fakeWiki{summary: &wikipedia.Summary{
		Title: "Jane Investor",
		Thumbnail: &wikipedia.Image{
			Source: "https://upload.wikimedia.org/wikipedia/commons/thumb/a/ab/Jane.jpg/320px-Jane.jpg",
		},
	}}
	a := newTestAdapter(search, nil, wiki)

	p, err := a.Profile(context.Background(), "Jane Investor")
	require.NoError(t, err)
	assert.Contains(t, p.Image, "/800px-Jane.jpg")
}

func TestInferFirmAndTitle(t *testing.T) {
	tests := []struct {
		name      string
		firmURL   string
		wantFirm  string
		wantTitle string
	}{
		{"Peter Thiel", "", "Founders Fund", "Investor"},
		{"Mark Cuban", "", "Mark Cuban Companies", "Investor"},
		{"Someone at Andreessen Horowitz", "", "Andreessen Horowitz (a16z)", "Investor"},
		{"Jane Investor", "https://www.acmefund.com", "Acmefund", "Investor"},
		{"Jane Investor", "", "", "Investor"},
	}
	for _, tt := range tests {
		p := profileWithFirmURL(tt.name, tt.firmURL)
		assert.Equal(t, tt.wantFirm, p.Firm, tt.name)
		assert.Equal(t, tt.wantTitle, p.Title, tt.name)
	}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "acme", normalizeName("Acme, Inc."))
	assert.Equal(t, "acme widgets", normalizeName("Acme Widgets LLC"))
	assert.Equal(t, "acme", normalizeName("  ACME  "))
}

func TestFuzzyNameMatch(t *testing.T) {
	assert.True(t, fuzzyNameMatch("A profile of Jane Investor and her fund", "Jane Investor"))
	assert.True(t, fuzzyNameMatch("ACME shares surged", "Acme, Inc."))
	assert.False(t, fuzzyNameMatch("unrelated text", "Jane Investor"))
	assert.False(t, fuzzyNameMatch("", "Jane Investor"))
}

func TestCleanExcerpt(t *testing.T) {
	long := strings.Repeat("lorem ipsum dolor ", 30)
	got := cleanExcerpt(long, 100)
	assert.LessOrEqual(t, len(got), 104)
	assert.True(t, strings.HasSuffix(got, "..."))

	got = cleanExcerpt("read   more at https://example.com/a  today", 200)
	assert.Equal(t, "read more at today", got)
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `[{"a":1}]`, StripCodeFences("```json\n[{\"a\":1}]\n```"))
	assert.Equal(t, `[{"a":1}]`, StripCodeFences("```\n[{\"a\":1}]\n```"))
	assert.Equal(t, `[{"a":1}]`, StripCodeFences(`[{"a":1}]`))
}

func profileWithFirmURL(name, firmURL string) model.Profile {
	p := model.Profile{Name: name, ProfileURLs: map[string]string{}}
	if firmURL != "" {
		p.ProfileURLs["firm"] = firmURL
	}
	inferFirmAndTitle(name, &p)
	return p
}
