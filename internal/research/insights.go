package research

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/investor-research/internal/adapter"
	"github.com/sells-group/investor-research/internal/model"
)

const (
	maxInsightCompanies = 10
	maxInsightTweets    = 20
	maxInsightPosts     = 5
	maxInsightArticles  = 5
	maxInsightNews      = 5
)

// insightsSystemPrompt is identical for every investor, so it rides in a
// cached system block and repeated runs reuse the prefix.
const insightsSystemPrompt = `You are a venture capital research analyst. You synthesize gathered material about an investor into structured findings. Reply with a single JSON object only, no prose and no code fences.`

// insightsInput carries everything the insights prompt draws on.
type insightsInput struct {
	Profile   model.Profile
	Portfolio []model.PortfolioCompany
	Tweets    []model.Tweet
	Quotes    []model.Quote
	Posts     []model.Post
	Articles  []model.Article
	News      []model.NewsItem
}

// generateInsights asks the language model to synthesize themes, thesis,
// quotes, and icebreakers from the gathered material.
func (p *Pipeline) generateInsights(ctx context.Context, in insightsInput) (*model.Insights, error) {
	raw, err := p.adapter.CompleteWithSystem(ctx, insightsSystemPrompt, buildInsightsPrompt(in))
	if err != nil {
		return nil, eris.Wrap(err, "research: generate insights")
	}

	var insights model.Insights
	if err := json.Unmarshal([]byte(adapter.StripCodeFences(raw)), &insights); err != nil {
		return nil, eris.Wrap(err, "research: parse insights response")
	}
	if len(insights.NotableQuotes) > 5 {
		insights.NotableQuotes = insights.NotableQuotes[:5]
	}
	insights.Normalize()
	return &insights, nil
}

func buildInsightsPrompt(in insightsInput) string {
	name := in.Profile.Name

	var b strings.Builder
	fmt.Fprintf(&b, "Based on the following information about investor %s from %s:\n\n", name, in.Profile.Firm)

	b.WriteString("Portfolio Companies:\n")
	b.WriteString(summarizePortfolio(in.Portfolio))
	b.WriteString("\n\nRecent Tweets:\n")
	b.WriteString(summarizeStatements(in.Tweets, in.Quotes))
	b.WriteString("\n\nLinkedIn Posts:\n")
	b.WriteString(summarizePosts(in.Posts))
	b.WriteString("\n\nMedium Articles:\n")
	b.WriteString(summarizeArticles(in.Articles))
	b.WriteString("\n\nRecent News:\n")
	b.WriteString(summarizeNews(in.News))

	fmt.Fprintf(&b, `

Please generate:
1. Investment themes (3-5 key themes)
2. Sector focus areas
3. Preferred investment stage
4. Last 3-5 notable recent deals
5. Investment thesis summary
6. Notable quotes - Look for actual quotes said BY %[1]s in the provided content.
   Return MAXIMUM 5 most meaningful quotes. These should be:
   - Direct quotes with quotation marks where %[1]s is speaking
   - Statements that start with "%[1]s said", "%[1]s stated", "According to %[1]s"
   - Tweets if they contain meaningful investment philosophy
   - Interview excerpts where %[1]s is quoted
   Do NOT include: headlines, article titles, descriptions ABOUT the investor, or paraphrased content.
   Prioritize quotes that reveal investment philosophy, strategy, or insights.
   If no direct quotes are found, return an empty list.
7. 5 conversation icebreakers

Return ONLY a JSON object with these fields:
"investment_themes" (array of strings), "sector_focus" (array of strings),
"stage_preference" (string), "recent_deals" (array of objects with "company" and "details" strings),
"investment_thesis" (string), "notable_quotes" (array of strings), "icebreakers" (array of strings).`, name)

	return b.String()
}

func summarizePortfolio(companies []model.PortfolioCompany) string {
	if len(companies) == 0 {
		return "No portfolio data available"
	}
	if len(companies) > maxInsightCompanies {
		companies = companies[:maxInsightCompanies]
	}
	lines := make([]string, 0, len(companies))
	for _, c := range companies {
		lines = append(lines, fmt.Sprintf("- %s (%s, %s): %s", c.Name, c.Sector, c.Stage, c.Description))
	}
	return strings.Join(lines, "\n")
}

// summarizeStatements prefers tweets and falls back to searched quotes when
// the investor has no timeline.
func summarizeStatements(tweets []model.Tweet, quotes []model.Quote) string {
	if len(tweets) > 0 {
		if len(tweets) > maxInsightTweets {
			tweets = tweets[:maxInsightTweets]
		}
		lines := make([]string, 0, len(tweets))
		for _, t := range tweets {
			lines = append(lines, t.Text)
		}
		return strings.Join(lines, "\n")
	}
	if len(quotes) > 0 {
		if len(quotes) > maxInsightTweets {
			quotes = quotes[:maxInsightTweets]
		}
		lines := make([]string, 0, len(quotes))
		for _, q := range quotes {
			lines = append(lines, q.Text)
		}
		return strings.Join(lines, "\n")
	}
	return "No recent tweets available"
}

func summarizePosts(posts []model.Post) string {
	if len(posts) == 0 {
		return "No LinkedIn posts available"
	}
	if len(posts) > maxInsightPosts {
		posts = posts[:maxInsightPosts]
	}
	lines := make([]string, 0, len(posts))
	for _, p := range posts {
		lines = append(lines, p.Content)
	}
	return strings.Join(lines, "\n")
}

func summarizeArticles(articles []model.Article) string {
	if len(articles) == 0 {
		return "No Medium articles available"
	}
	if len(articles) > maxInsightArticles {
		articles = articles[:maxInsightArticles]
	}
	lines := make([]string, 0, len(articles))
	for _, a := range articles {
		lines = append(lines, fmt.Sprintf("%s: %s", a.Title, a.Excerpt))
	}
	return strings.Join(lines, "\n")
}

func summarizeNews(news []model.NewsItem) string {
	if len(news) == 0 {
		return "No recent news available"
	}
	if len(news) > maxInsightNews {
		news = news[:maxInsightNews]
	}
	lines := make([]string, 0, len(news))
	for _, n := range news {
		lines = append(lines, fmt.Sprintf("%s: %s", n.Title, n.Content))
	}
	return strings.Join(lines, "\n")
}
