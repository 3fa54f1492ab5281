// Package model defines the core data types shared across the research pipeline.
package model

// Profile describes an investor's identity across platforms.
type Profile struct {
	Name        string            `json:"name"`
	Firm        string            `json:"firm"`
	Title       string            `json:"title"`
	Bio         string            `json:"bio"`
	ProfileURLs map[string]string `json:"profile_urls"`
	Image       string            `json:"profile_image"`
}

// Profile URL map keys.
const (
	PlatformTwitter    = "twitter"
	PlatformLinkedIn   = "linkedin"
	PlatformCrunchbase = "crunchbase"
	PlatformMedium     = "medium"
	PlatformFirm       = "firm"
)

// PortfolioCompany is a single company in an investor's portfolio. The last
// three fields are filled by the enhancement stage; everything else comes
// from discovery and must survive enhancement untouched.
type PortfolioCompany struct {
	Name            string  `json:"name"`
	Sector          string  `json:"sector"`
	Stage           string  `json:"stage"`
	InvestmentDate  string  `json:"investment_date"`
	Description     string  `json:"description"`
	InvestmentValue float64 `json:"investment_value"`
	Website         string  `json:"website"`
	StockSymbol     string  `json:"stock_symbol"`
	YahooFinanceURL string  `json:"yahoo_finance_url"`
}

// Tweet is a single short-form post by the investor.
type Tweet struct {
	Text     string `json:"text"`
	Date     string `json:"date"`
	Likes    int    `json:"likes"`
	Retweets int    `json:"retweets"`
}

// Post is a long-form social post by the investor.
type Post struct {
	Content   string `json:"content"`
	Date      string `json:"date"`
	Reactions int    `json:"reactions"`
}

// Article is a published article about (or by) the investor.
type Article struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Excerpt  string `json:"excerpt"`
	Date     string `json:"date"`
	ReadTime string `json:"read_time"`
	Claps    int    `json:"claps,omitempty"`
}

// NewsItem is a recent news article mentioning the investor. Content holds
// the raw search snippet and feeds the insights prompt; it is omitted from
// API responses when empty.
type NewsItem struct {
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Source  string `json:"source"`
	Date    string `json:"date"`
	URL     string `json:"url"`
	Content string `json:"content,omitempty"`
}

// Quote is a direct statement attributed to the investor, used in place of
// tweets when none are available.
type Quote struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// Insights is the LLM-generated summary of an investor's strategy.
type Insights struct {
	InvestmentThemes []string            `json:"investment_themes"`
	SectorFocus      []string            `json:"sector_focus"`
	StagePreference  string              `json:"stage_preference"`
	RecentDeals      []map[string]string `json:"recent_deals"`
	InvestmentThesis string              `json:"investment_thesis"`
	NotableQuotes    []string            `json:"notable_quotes"`
	Icebreakers      []string            `json:"icebreakers"`
}

// Result is the complete output of a research run.
type Result struct {
	Profile        Profile            `json:"profile"`
	Portfolio      []PortfolioCompany `json:"portfolio"`
	Insights       Insights           `json:"insights"`
	MediumArticles []Article          `json:"medium_articles"`
	News           []NewsItem         `json:"news"`
}

// Normalize replaces nil slices with empty ones so list fields always
// serialize as JSON arrays, never null.
func (r *Result) Normalize() {
	if r.Portfolio == nil {
		r.Portfolio = []PortfolioCompany{}
	}
	if r.MediumArticles == nil {
		r.MediumArticles = []Article{}
	}
	if r.News == nil {
		r.News = []NewsItem{}
	}
	r.Insights.Normalize()
	if r.Profile.ProfileURLs == nil {
		r.Profile.ProfileURLs = map[string]string{}
	}
}

// Normalize replaces nil slices with empty ones.
func (i *Insights) Normalize() {
	if i.InvestmentThemes == nil {
		i.InvestmentThemes = []string{}
	}
	if i.SectorFocus == nil {
		i.SectorFocus = []string{}
	}
	if i.RecentDeals == nil {
		i.RecentDeals = []map[string]string{}
	}
	if i.NotableQuotes == nil {
		i.NotableQuotes = []string{}
	}
	if i.Icebreakers == nil {
		i.Icebreakers = []string{}
	}
}
