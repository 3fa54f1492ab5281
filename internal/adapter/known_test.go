package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsQuickAccess(t *testing.T) {
	assert.True(t, IsQuickAccess("Marc Andreessen"))
	assert.True(t, IsQuickAccess("Cathie Wood"))
	assert.False(t, IsQuickAccess("marc andreessen"))
	assert.False(t, IsQuickAccess("Jane Investor"))
}

func TestKnownProfile(t *testing.T) {
	for _, name := range QuickAccessNames {
		p, ok := KnownProfile(name)
		require.True(t, ok, name)
		assert.Equal(t, name, p.Name)
		assert.NotEmpty(t, p.Firm, name)
		assert.NotEmpty(t, p.Bio, name)
		assert.NotEmpty(t, p.ProfileURLs["firm"], name)
	}

	_, ok := KnownProfile("Jane Investor")
	assert.False(t, ok)
}

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile("Jane Investor")
	assert.Equal(t, "Jane Investor", p.Name)
	assert.Equal(t, "Sample Ventures", p.Firm)
	assert.Equal(t, "General Partner", p.Title)
	assert.Equal(t, "https://sampleventures.com", p.ProfileURLs["firm"])
}

func TestKnownPortfolio_SubstringMatch(t *testing.T) {
	companies, ok := KnownPortfolio("Peter Thiel")
	require.True(t, ok)
	assert.Len(t, companies, 8)

	// Matching is by substring so honorifics still resolve.
	companies, ok = KnownPortfolio("Mr. Peter Thiel of Founders Fund")
	require.True(t, ok)
	assert.Len(t, companies, 8)

	_, ok = KnownPortfolio("Jane Investor")
	assert.False(t, ok)
}

func TestKnownPortfolio_PrivateCompanyURLs(t *testing.T) {
	companies, ok := KnownPortfolio("Peter Thiel")
	require.True(t, ok)

	for _, c := range companies {
		if c.Name == "SpaceX" {
			assert.Equal(t, "SPAX.PVT", c.StockSymbol)
			assert.Equal(t, "https://finance.yahoo.com/quote/SPAX.PVT/", c.YahooFinanceURL)
		}
		if c.Name == "Palantir" {
			assert.Equal(t, "PLTR", c.StockSymbol)
			assert.Equal(t, "https://finance.yahoo.com/quote/PLTR", c.YahooFinanceURL)
		}
	}
}

func TestQuotaFallbackPortfolio(t *testing.T) {
	companies := QuotaFallbackPortfolio("Peter Thiel")
	require.Len(t, companies, 5)
	assert.Equal(t, "PayPal", companies[0].Name)

	companies = QuotaFallbackPortfolio("Marc Andreessen")
	require.Len(t, companies, 5)

	companies = QuotaFallbackPortfolio("Jane Investor")
	require.Len(t, companies, 3)
	assert.Equal(t, "TechCorp", companies[0].Name)
}

func TestDefaultPortfolio(t *testing.T) {
	companies := DefaultPortfolio()
	require.Len(t, companies, 3)
	assert.Equal(t, "TechStartup Inc", companies[0].Name)
	assert.Empty(t, companies[0].Website)
}

func TestKnownTweets(t *testing.T) {
	assert.Len(t, KnownTweets("Marc Andreessen"), 8)
	assert.Len(t, KnownTweets("Mark Cuban"), 5)
	assert.Len(t, KnownTweets("Jane Investor"), 3)
}

func TestKnownPostsAndArticles(t *testing.T) {
	posts := KnownPosts()
	require.Len(t, posts, 3)
	assert.Equal(t, 1234, posts[2].Reactions)

	articles := KnownArticles()
	require.Len(t, articles, 3)
	assert.Equal(t, "The End of Software as We Know It", articles[0].Title)
	assert.Equal(t, "8 min", articles[0].ReadTime)
}

func TestKnownNews_Curated(t *testing.T) {
	items := KnownNews("Marc Andreessen")
	require.Len(t, items, 5)
	assert.Equal(t, "TechCrunch", items[0].Source)
	assert.NotEmpty(t, items[0].Content)
}

func TestKnownNews_TemplateInterpolation(t *testing.T) {
	items := KnownNews("Jane Investor")
	require.Len(t, items, 5)
	assert.Contains(t, items[0].Title, "Jane Investor")
	assert.Equal(t, "Today", items[0].Date)
	assert.Equal(t, "VentureBeat", items[4].Source)
}
