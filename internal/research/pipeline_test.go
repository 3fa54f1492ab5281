package research

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sells-group/investor-research/internal/adapter"
	"github.com/sells-group/investor-research/internal/model"
	"github.com/sells-group/investor-research/pkg/anthropic"
	"github.com/sells-group/investor-research/pkg/tavily"
	"github.com/sells-group/investor-research/pkg/wikipedia"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

type fakeSearch struct {
	mu      sync.Mutex
	resp    *tavily.SearchResponse
	err     error
	queries []string
}

func (f *fakeSearch) Search(_ context.Context, query string, _ ...tavily.SearchOption) (*tavily.SearchResponse, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if f.resp != nil {
		return f.resp, nil
	}
	return &tavily.SearchResponse{Query: query}, nil
}

type fakeLLM struct {
	mu      sync.Mutex
	reply   string
	err     error
	calls   int
	lastReq anthropic.MessageRequest
}

func (f *fakeLLM) CreateMessage(_ context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	f.mu.Lock()
	f.calls++
	f.lastReq = req
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &anthropic.MessageResponse{
		Content: []anthropic.ContentBlock{{Type: "text", Text: f.reply}},
	}, nil
}

type fakeWiki struct{}

func (fakeWiki) Summary(context.Context, string) (*wikipedia.Summary, error) {
	return nil, errors.New("not found")
}

const insightsReply = "```json\n" + `{
  "investment_themes": ["Contrarian bets", "Deep tech"],
  "sector_focus": ["Fintech", "Defense"],
  "stage_preference": "Early stage",
  "recent_deals": [{"company": "Anduril", "details": "Series E lead"}],
  "investment_thesis": "Back founders with secrets.",
  "notable_quotes": ["Competition is for losers."],
  "icebreakers": ["Ask about zero to one."]
}` + "\n```"

func newTestPipeline(search tavily.Client, llm anthropic.Client) *Pipeline {
	a := adapter.New(adapter.Options{
		Search:            search,
		LLM:               llm,
		Wiki:              fakeWiki{},
		SearchesPerSecond: 10_000,
		Now:               func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) },
	})
	return NewPipeline(a, nil)
}

func TestRun_QuickAccessInvestor(t *testing.T) {
	search := &fakeSearch{}
	llm := &fakeLLM{reply: insightsReply}
	p := newTestPipeline(search, llm)

	result, err := p.Run(context.Background(), "Peter Thiel")
	require.NoError(t, err)

	assert.Equal(t, "Founders Fund", result.Profile.Firm)
	assert.Len(t, result.Portfolio, 8)
	assert.Len(t, result.News, 3)
	assert.Len(t, result.MediumArticles, 3)
	assert.Equal(t, []string{"Contrarian bets", "Deep tech"}, result.Insights.InvestmentThemes)
	assert.Equal(t, "Early stage", result.Insights.StagePreference)

	// Curated data covers every category; no live search and the only
	// LLM call is insights.
	assert.Equal(t, 1, llm.calls)
	assert.Empty(t, search.queries)
}

func TestRun_QuoteSearchRunsWithoutTimeline(t *testing.T) {
	search := &fakeSearch{}
	p := newTestPipeline(search, &fakeLLM{reply: insightsReply})

	_, err := p.Run(context.Background(), "Jane Investor")
	require.NoError(t, err)

	quoteQueries := 0
	for _, q := range search.queries {
		if strings.Contains(q, `"said" "investing" quote`) ||
			strings.Contains(q, "interview quotes venture capital") {
			quoteQueries++
		}
	}
	assert.Equal(t, 2, quoteQueries)
}

func TestRun_SearchErrorsDegradeToFallbacks(t *testing.T) {
	search := &fakeSearch{err: errors.New("search unavailable")}
	p := newTestPipeline(search, &fakeLLM{reply: insightsReply})

	result, err := p.Run(context.Background(), "Jane Investor")
	require.NoError(t, err)

	assert.Equal(t, "Jane Investor", result.Profile.Name)
	// Every degraded category is an empty array, never null.
	assert.NotNil(t, result.Portfolio)
	assert.Empty(t, result.Portfolio)
	assert.NotNil(t, result.MediumArticles)
	assert.Empty(t, result.MediumArticles)
	assert.NotNil(t, result.News)
	assert.Empty(t, result.News)
}

func TestRun_InsightsErrorIsFatal(t *testing.T) {
	search := &fakeSearch{}
	llm := &fakeLLM{err: errors.New("invalid api key")}
	p := newTestPipeline(search, llm)

	result, err := p.Run(context.Background(), "Peter Thiel")
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestRun_QuotaEverywhereStillProducesResult(t *testing.T) {
	search := &fakeSearch{resp: &tavily.SearchResponse{QuotaExceeded: true}}
	llm := &fakeLLM{reply: insightsReply}
	p := newTestPipeline(search, llm)

	result, err := p.Run(context.Background(), "Jane Investor")
	require.NoError(t, err)

	assert.NotEmpty(t, result.Profile.Firm)
	assert.NotEmpty(t, result.Portfolio)
	assert.NotEmpty(t, result.News)
	assert.NotEmpty(t, result.MediumArticles)
}

func TestGenerateInsights_SendsCachedSystemPrompt(t *testing.T) {
	llm := &fakeLLM{reply: insightsReply}
	p := newTestPipeline(&fakeSearch{}, llm)

	_, err := p.generateInsights(context.Background(), insightsInput{
		Profile: model.Profile{Name: "Jane Investor", Firm: "Jane Capital"},
	})
	require.NoError(t, err)

	require.Len(t, llm.lastReq.System, 1)
	assert.Contains(t, llm.lastReq.System[0].Text, "research analyst")
	require.NotNil(t, llm.lastReq.System[0].CacheControl)
	assert.Equal(t, "5m", llm.lastReq.System[0].CacheControl.TTL)
}

func TestGenerateInsights_CapsQuotesAtFive(t *testing.T) {
	reply := `{"investment_themes":[],"sector_focus":[],"stage_preference":"","recent_deals":[],` +
		`"investment_thesis":"","notable_quotes":["1","2","3","4","5","6","7"],"icebreakers":[]}`
	p := newTestPipeline(&fakeSearch{}, &fakeLLM{reply: reply})

	insights, err := p.generateInsights(context.Background(), insightsInput{})
	require.NoError(t, err)
	assert.Len(t, insights.NotableQuotes, 5)
}

func TestGenerateInsights_RejectsNonJSON(t *testing.T) {
	p := newTestPipeline(&fakeSearch{}, &fakeLLM{reply: "I cannot produce JSON today."})

	_, err := p.generateInsights(context.Background(), insightsInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse insights response")
}

func TestBuildInsightsPrompt(t *testing.T) {
	prompt := buildInsightsPrompt(insightsInput{
		Profile: model.Profile{Name: "Jane Investor", Firm: "Jane Capital"},
		Portfolio: []model.PortfolioCompany{
			{Name: "Acme", Sector: "Robotics", Stage: "Series A", Description: "Industrial robots"},
		},
		Tweets: []model.Tweet{{Text: "Great founders ship."}},
		News:   []model.NewsItem{{Title: "Jane raises fund", Content: "A new $200M vehicle."}},
	})

	assert.Contains(t, prompt, "investor Jane Investor from Jane Capital")
	assert.Contains(t, prompt, "- Acme (Robotics, Series A): Industrial robots")
	assert.Contains(t, prompt, "Great founders ship.")
	assert.Contains(t, prompt, "Jane raises fund: A new $200M vehicle.")
	assert.Contains(t, prompt, `"recent_deals" (array of objects with "company" and "details" strings)`)
	assert.Contains(t, prompt, "No LinkedIn posts available")
	assert.Contains(t, prompt, "No Medium articles available")
}

func TestSummarizeStatements(t *testing.T) {
	tweets := []model.Tweet{{Text: "tweet one"}, {Text: "tweet two"}}
	quotes := []model.Quote{{Text: "quote one"}}

	assert.Equal(t, "tweet one\ntweet two", summarizeStatements(tweets, quotes))
	assert.Equal(t, "quote one", summarizeStatements(nil, quotes))
	assert.Equal(t, "No recent tweets available", summarizeStatements(nil, nil))
}

func TestSummarizePortfolio_CapsAtTen(t *testing.T) {
	companies := make([]model.PortfolioCompany, 14)
	for i := range companies {
		companies[i] = model.PortfolioCompany{Name: "Co", Sector: "S", Stage: "Seed"}
	}
	out := summarizePortfolio(companies)
	assert.Equal(t, 10, strings.Count(out, "\n")+1)
}
