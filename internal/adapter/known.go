package adapter

import (
	"strings"

	"github.com/sells-group/investor-research/internal/model"
)

// QuickAccessNames are the investors surfaced as one-click choices in the
// client UI. Curated data exists for each of them.
var QuickAccessNames = []string{
	"Marc Andreessen",
	"Mark Cuban",
	"Peter Thiel",
	"Paul Tudor Jones",
	"Cathie Wood",
}

// IsQuickAccess reports whether name matches a curated investor exactly.
func IsQuickAccess(name string) bool {
	for _, n := range QuickAccessNames {
		if n == name {
			return true
		}
	}
	return false
}

// knownProfiles holds hand-curated profiles for the quick-access investors.
var knownProfiles = map[string]model.Profile{
	"Marc Andreessen": {
		Name:  "Marc Andreessen",
		Firm:  "Andreessen Horowitz (a16z)",
		Title: "Co-founder and General Partner",
		Bio: "Co-founder of Netscape and Andreessen Horowitz, one of Silicon Valley's most influential venture capitalists. " +
			"Pioneer of the web browser revolution and leading voice in software, crypto, and AI investments. " +
			"Known for the famous quote 'Software is eating the world.'",
		ProfileURLs: map[string]string{
			model.PlatformTwitter:    "https://twitter.com/pmarca",
			model.PlatformLinkedIn:   "https://www.linkedin.com/in/marcandreessen",
			model.PlatformCrunchbase: "https://www.crunchbase.com/person/marc-andreessen",
			model.PlatformMedium:     "https://pmarca.medium.com",
			model.PlatformFirm:       "https://a16z.com",
		},
		Image: "https://res.cloudinary.com/doqmqgbym/image/upload/v1757154244/investors/dynamic/investors/dynamic/marc_andreessen.jpg",
	},
	"Mark Cuban": {
		Name:  "Mark Cuban",
		Firm:  "Mark Cuban Companies",
		Title: "Owner and Principal Investor",
		Bio: "Serial entrepreneur, investor, and owner of the Dallas Mavericks. Built and sold Broadcast.com to Yahoo for $5.7 billion. " +
			"Known for his appearances on Shark Tank and investments in early-stage startups across technology, media, and consumer products.",
		ProfileURLs: map[string]string{
			model.PlatformTwitter:    "https://twitter.com/mcuban",
			model.PlatformLinkedIn:   "https://www.linkedin.com/in/markcuban",
			model.PlatformCrunchbase: "https://www.crunchbase.com/person/mark-cuban",
			model.PlatformMedium:     "https://markcuban.medium.com",
			model.PlatformFirm:       "https://markcubancompanies.com",
		},
		Image: "https://res.cloudinary.com/doqmqgbym/image/upload/v1756815654/investors/dynamic/investors/dynamic/mark_cuban.jpg",
	},
	"Peter Thiel": {
		Name:  "Peter Thiel",
		Firm:  "Founders Fund",
		Title: "Co-founder and Managing Partner",
		Bio: "Co-founder of PayPal and Palantir, and founding partner of Founders Fund. Early Facebook investor and author of 'Zero to One'. " +
			"Known for contrarian thinking and investments in breakthrough technologies including SpaceX, Airbnb, and Stripe.",
		ProfileURLs: map[string]string{
			model.PlatformTwitter:    "https://twitter.com/peterthiel",
			model.PlatformLinkedIn:   "https://www.linkedin.com/in/peterthiel",
			model.PlatformCrunchbase: "https://www.crunchbase.com/person/peter-thiel",
			model.PlatformMedium:     "https://peterthiel.medium.com",
			model.PlatformFirm:       "https://foundersfund.com",
		},
		Image: "https://res.cloudinary.com/doqmqgbym/image/upload/v1757155912/investors/dynamic/investors/dynamic/peter_thiel.jpg",
	},
	"Paul Tudor Jones": {
		Name:  "Paul Tudor Jones",
		Firm:  "Tudor Investment Corporation",
		Title: "Founder and Chief Investment Officer",
		Bio: "Legendary macro trader and hedge fund manager who founded Tudor Investment Corporation. " +
			"Known for predicting and profiting from the 1987 stock market crash. Increasingly active in venture capital and " +
			"impact investing, particularly in education and environmental initiatives.",
		ProfileURLs: map[string]string{
			model.PlatformTwitter:    "https://twitter.com/paultudorjones",
			model.PlatformLinkedIn:   "https://www.linkedin.com/in/paultudorjones",
			model.PlatformCrunchbase: "https://www.crunchbase.com/person/paul-tudor-jones-ii",
			model.PlatformMedium:     "https://paultudorjones.medium.com",
			model.PlatformFirm:       "https://tudorinvestment.com",
		},
		Image: "https://res.cloudinary.com/doqmqgbym/image/upload/v1756826796/investors/dynamic/investors/dynamic/paul_tudor_jones.jpg",
	},
	"Cathie Wood": {
		Name:  "Cathie Wood",
		Firm:  "ARK Invest",
		Title: "Founder and CEO",
		Bio: "Founder and CEO of ARK Invest, focused on disruptive innovation investing. Known for bold predictions and concentrated bets " +
			"on transformative technologies including genomics, artificial intelligence, energy storage, and space exploration. " +
			"Strong advocate for Tesla and cryptocurrency.",
		ProfileURLs: map[string]string{
			model.PlatformTwitter:    "https://twitter.com/cathiedwood",
			model.PlatformLinkedIn:   "https://www.linkedin.com/in/cathie-wood-ark-invest",
			model.PlatformCrunchbase: "https://www.crunchbase.com/person/cathie-wood",
			model.PlatformMedium:     "https://cathiewood.medium.com",
			model.PlatformFirm:       "https://ark-invest.com",
		},
		Image: "https://res.cloudinary.com/doqmqgbym/image/upload/v1756815661/investors/dynamic/investors/dynamic/cathie_wood.jpg",
	},
}

// KnownProfile returns the curated profile for name, if one exists.
func KnownProfile(name string) (model.Profile, bool) {
	p, ok := knownProfiles[name]
	return p, ok
}

// DefaultProfile is the placeholder profile for investors with no curated
// entry when live discovery is unavailable.
func DefaultProfile(name string) model.Profile {
	return model.Profile{
		Name:  name,
		Firm:  "Sample Ventures",
		Title: "General Partner",
		Bio:   "Experienced investor focusing on early-stage startups",
		ProfileURLs: map[string]string{
			model.PlatformTwitter:    "https://twitter.com/sample",
			model.PlatformLinkedIn:   "https://www.linkedin.com/in/sample",
			model.PlatformCrunchbase: "https://www.crunchbase.com/person/sample",
			model.PlatformFirm:       "https://sampleventures.com",
		},
	}
}

// knownPortfolios holds curated portfolios for the quick-access investors,
// keyed by substring of the investor's name.
var knownPortfolios = map[string][]model.PortfolioCompany{
	"Mark Cuban": {
		{Name: "Magnolia Pictures", Sector: "Entertainment", Stage: "Acquisition", InvestmentDate: "2003",
			Description: "Independent film production and distribution company", InvestmentValue: 30_000_000,
			Website: "https://magpictures.com"},
		{Name: "AXS TV", Sector: "Media & Broadcasting", Stage: "Investment", InvestmentDate: "2012",
			Description: "Music and entertainment television network", InvestmentValue: 25_000_000,
			Website: "https://axs.tv"},
		{Name: "Cost Plus Drugs", Sector: "Healthcare", Stage: "Founder", InvestmentDate: "2022",
			Description: "Online pharmacy offering prescription drugs at cost plus 15%", InvestmentValue: 50_000_000,
			Website: "https://costplusdrugs.com"},
		{Name: "Sharespost (Forge Global)", Sector: "Fintech", Stage: "Series B", InvestmentDate: "2010",
			Description: "Private company stock trading platform, now part of Forge Global", InvestmentValue: 5_000_000,
			Website: "https://forgeglobal.com", StockSymbol: "FRGE", YahooFinanceURL: "https://finance.yahoo.com/quote/FRGE"},
		{Name: "Appriss", Sector: "Software", Stage: "Series A", InvestmentDate: "2008",
			Description: "Data analytics and information services", InvestmentValue: 3_000_000,
			Website: "https://appriss.com"},
		{Name: "Cyberdust", Sector: "Social Media", Stage: "Seed", InvestmentDate: "2014",
			Description: "Ephemeral messaging application", InvestmentValue: 2_000_000,
			Website: "https://cyberdust.com"},
		{Name: "Netflix (Early Investment)", Sector: "Streaming Media", Stage: "Early Investment", InvestmentDate: "2004",
			Description: "DVD-by-mail service transitioning to streaming", InvestmentValue: 1_000_000,
			Website: "https://netflix.com", StockSymbol: "NFLX", YahooFinanceURL: "https://finance.yahoo.com/quote/NFLX"},
	},
	"Peter Thiel": {
		{Name: "Facebook (Meta)", Sector: "Social Media", Stage: "Series A", InvestmentDate: "2004",
			Description: "Global social networking platform and metaverse company", InvestmentValue: 500_000,
			Website: "https://meta.com", StockSymbol: "META", YahooFinanceURL: "https://finance.yahoo.com/quote/META"},
		{Name: "SpaceX", Sector: "Aerospace", Stage: "Series A", InvestmentDate: "2008",
			Description: "Private space exploration and satellite internet company", InvestmentValue: 20_000_000,
			Website: "https://spacex.com", StockSymbol: "SPAX.PVT", YahooFinanceURL: "https://finance.yahoo.com/quote/SPAX.PVT/"},
		{Name: "Stripe", Sector: "Fintech", Stage: "Series B", InvestmentDate: "2012",
			Description: "Online payment processing platform", InvestmentValue: 10_000_000,
			Website: "https://stripe.com", StockSymbol: "STRI.PVT", YahooFinanceURL: "https://finance.yahoo.com/quote/STRI.PVT/"},
		{Name: "Airbnb", Sector: "Travel & Hospitality", Stage: "Series A", InvestmentDate: "2009",
			Description: "Home-sharing and accommodation marketplace", InvestmentValue: 7_000_000,
			Website: "https://airbnb.com", StockSymbol: "ABNB", YahooFinanceURL: "https://finance.yahoo.com/quote/ABNB"},
		{Name: "LinkedIn", Sector: "Professional Networking", Stage: "Series A", InvestmentDate: "2004",
			Description: "Professional networking and career development platform", InvestmentValue: 1_000_000,
			Website: "https://linkedin.com"},
		{Name: "Palantir", Sector: "Data Analytics", Stage: "Co-founder", InvestmentDate: "2003",
			Description: "Big data analytics platform for government and enterprises", InvestmentValue: 200_000_000,
			Website: "https://palantir.com", StockSymbol: "PLTR", YahooFinanceURL: "https://finance.yahoo.com/quote/PLTR"},
		{Name: "Anduril", Sector: "Defense Technology", Stage: "Series A", InvestmentDate: "2017",
			Description: "Autonomous defense systems and military technology", InvestmentValue: 50_000_000,
			Website: "https://anduril.com", StockSymbol: "ANIN.PVT", YahooFinanceURL: "https://finance.yahoo.com/quote/ANIN.PVT/"},
		{Name: "Roblox", Sector: "Gaming", Stage: "Pre-IPO", InvestmentDate: "2020",
			Description: "Online game platform and game creation system", InvestmentValue: 25_000_000,
			Website: "https://roblox.com", StockSymbol: "RBLX", YahooFinanceURL: "https://finance.yahoo.com/quote/RBLX"},
	},
	"Paul Tudor Jones": {
		{Name: "Robin Hood Foundation", Sector: "Non-profit", Stage: "Founder", InvestmentDate: "1988",
			Description: "Anti-poverty non-profit organization", InvestmentValue: 100_000_000,
			Website: "https://robinhood.org"},
		{Name: "JUST Capital", Sector: "ESG Research", Stage: "Founder", InvestmentDate: "2013",
			Description: "Research organization ranking companies on stakeholder performance", InvestmentValue: 50_000_000,
			Website: "https://justcapital.com"},
		{Name: "Teach for America", Sector: "Education", Stage: "Major Donor", InvestmentDate: "1990",
			Description: "Educational leadership program placing teachers in high-need schools", InvestmentValue: 25_000_000,
			Website: "https://teachforamerica.org"},
		{Name: "Malaria No More", Sector: "Healthcare/Non-profit", Stage: "Major Donor", InvestmentDate: "2006",
			Description: "Global malaria eradication initiative", InvestmentValue: 15_000_000,
			Website: "https://malarianomore.org"},
		{Name: "Sustainable Fisheries Partnership", Sector: "Environmental", Stage: "Donor", InvestmentDate: "2006",
			Description: "Ocean conservation and sustainable fishing practices", InvestmentValue: 10_000_000,
			Website: "https://sustainablefish.org"},
		{Name: "Gold ETF Holdings", Sector: "Commodities", Stage: "Public Investment", InvestmentDate: "2020",
			Description: "Gold exchange-traded fund for inflation hedge", InvestmentValue: 200_000_000,
			Website: "https://spdrgoldshares.com", StockSymbol: "GLD", YahooFinanceURL: "https://finance.yahoo.com/quote/GLD"},
		{Name: "Bitcoin Holdings", Sector: "Cryptocurrency", Stage: "Direct Investment", InvestmentDate: "2021",
			Description: "Bitcoin allocation for portfolio diversification", InvestmentValue: 150_000_000,
			Website: "https://bitcoin.org", StockSymbol: "BTC-USD", YahooFinanceURL: "https://finance.yahoo.com/quote/BTC-USD"},
	},
	"Cathie Wood": {
		{Name: "Tesla", Sector: "Electric Vehicles", Stage: "Public Investment", InvestmentDate: "2016",
			Description: "Electric vehicle and clean energy company", InvestmentValue: 2_000_000_000,
			Website: "https://tesla.com", StockSymbol: "TSLA", YahooFinanceURL: "https://finance.yahoo.com/quote/TSLA"},
		{Name: "Zoom", Sector: "Communication Technology", Stage: "Public Investment", InvestmentDate: "2019",
			Description: "Video conferencing and communications platform", InvestmentValue: 500_000_000,
			Website: "https://zoom.us", StockSymbol: "ZM", YahooFinanceURL: "https://finance.yahoo.com/quote/ZM"},
		{Name: "Square (Block)", Sector: "Fintech", Stage: "Public Investment", InvestmentDate: "2018",
			Description: "Digital payments and financial services platform", InvestmentValue: 800_000_000,
			Website: "https://block.xyz", StockSymbol: "SQ", YahooFinanceURL: "https://finance.yahoo.com/quote/SQ"},
		{Name: "Roku", Sector: "Streaming Media", Stage: "Public Investment", InvestmentDate: "2017",
			Description: "Streaming platform and connected TV operating system", InvestmentValue: 400_000_000,
			Website: "https://roku.com", StockSymbol: "ROKU", YahooFinanceURL: "https://finance.yahoo.com/quote/ROKU"},
		{Name: "Coinbase", Sector: "Cryptocurrency", Stage: "Pre-IPO/Public", InvestmentDate: "2020",
			Description: "Cryptocurrency exchange and trading platform", InvestmentValue: 600_000_000,
			Website: "https://coinbase.com", StockSymbol: "COIN", YahooFinanceURL: "https://finance.yahoo.com/quote/COIN"},
		{Name: "Unity Software", Sector: "Gaming Technology", Stage: "Public Investment", InvestmentDate: "2020",
			Description: "Real-time 3D development platform", InvestmentValue: 300_000_000,
			Website: "https://unity.com", StockSymbol: "U", YahooFinanceURL: "https://finance.yahoo.com/quote/U"},
		{Name: "10x Genomics", Sector: "Biotechnology", Stage: "Public Investment", InvestmentDate: "2019",
			Description: "Life sciences technology company", InvestmentValue: 250_000_000,
			Website: "https://10xgenomics.com", StockSymbol: "TXG", YahooFinanceURL: "https://finance.yahoo.com/quote/TXG"},
		{Name: "UiPath", Sector: "Automation Software", Stage: "Public Investment", InvestmentDate: "2021",
			Description: "Robotic process automation platform", InvestmentValue: 180_000_000,
			Website: "https://uipath.com", StockSymbol: "PATH", YahooFinanceURL: "https://finance.yahoo.com/quote/PATH"},
		{Name: "Teladoc Health", Sector: "Telemedicine", Stage: "Public Investment", InvestmentDate: "2020",
			Description: "Virtual healthcare and telemedicine platform", InvestmentValue: 320_000_000,
			Website: "https://teladoc.com", StockSymbol: "TDOC", YahooFinanceURL: "https://finance.yahoo.com/quote/TDOC"},
	},
	"Marc Andreessen": {
		{Name: "Meta (Facebook)", Sector: "Social Media", Stage: "Series A", InvestmentDate: "2004",
			Description: "Global social networking platform connecting billions of users worldwide", InvestmentValue: 500_000,
			Website: "https://meta.com", StockSymbol: "META", YahooFinanceURL: "https://finance.yahoo.com/quote/META"},
		{Name: "Twitter", Sector: "Social Media", Stage: "Series A", InvestmentDate: "2009",
			Description: "Real-time microblogging and social networking service", InvestmentValue: 50_000_000,
			Website: "https://twitter.com"},
		{Name: "Coinbase", Sector: "Cryptocurrency", Stage: "Series B", InvestmentDate: "2013",
			Description: "Leading cryptocurrency exchange and digital wallet platform", InvestmentValue: 75_000_000,
			Website: "https://coinbase.com", StockSymbol: "COIN", YahooFinanceURL: "https://finance.yahoo.com/quote/COIN"},
		{Name: "GitHub", Sector: "Software Development", Stage: "Series A", InvestmentDate: "2012",
			Description: "World's largest code hosting platform for version control and collaboration", InvestmentValue: 100_000_000,
			Website: "https://github.com"},
		{Name: "Airbnb", Sector: "Travel & Hospitality", Stage: "Series A", InvestmentDate: "2009",
			Description: "Global marketplace for unique accommodations and experiences", InvestmentValue: 7_200_000,
			Website: "https://airbnb.com", StockSymbol: "ABNB", YahooFinanceURL: "https://finance.yahoo.com/quote/ABNB"},
		{Name: "Lyft", Sector: "Transportation", Stage: "Series C", InvestmentDate: "2013",
			Description: "Ridesharing platform transforming urban transportation", InvestmentValue: 60_000_000,
			Website: "https://lyft.com", StockSymbol: "LYFT", YahooFinanceURL: "https://finance.yahoo.com/quote/LYFT"},
		{Name: "Pinterest", Sector: "Social Media", Stage: "Series A", InvestmentDate: "2011",
			Description: "Visual discovery platform for ideas and inspiration", InvestmentValue: 45_000_000,
			Website: "https://pinterest.com", StockSymbol: "PINS", YahooFinanceURL: "https://finance.yahoo.com/quote/PINS"},
		{Name: "Instacart", Sector: "E-commerce", Stage: "Series A", InvestmentDate: "2012",
			Description: "On-demand grocery delivery and pickup service", InvestmentValue: 44_000_000,
			Website: "https://instacart.com", StockSymbol: "CART", YahooFinanceURL: "https://finance.yahoo.com/quote/CART"},
		{Name: "Slack", Sector: "Enterprise Software", Stage: "Series A", InvestmentDate: "2014",
			Description: "Business communication platform revolutionizing workplace collaboration", InvestmentValue: 50_000_000,
			Website: "https://slack.com"},
		{Name: "Okta", Sector: "Cybersecurity", Stage: "Series A", InvestmentDate: "2011",
			Description: "Identity and access management platform for enterprises", InvestmentValue: 25_000_000,
			Website: "https://okta.com", StockSymbol: "OKTA", YahooFinanceURL: "https://finance.yahoo.com/quote/OKTA"},
		{Name: "Box", Sector: "Cloud Storage", Stage: "Series A", InvestmentDate: "2010",
			Description: "Cloud content management platform for businesses", InvestmentValue: 48_000_000,
			Website: "https://box.com", StockSymbol: "BOX", YahooFinanceURL: "https://finance.yahoo.com/quote/BOX"},
		{Name: "Databricks", Sector: "Data Analytics", Stage: "Series B", InvestmentDate: "2017",
			Description: "Unified data analytics platform for big data and machine learning", InvestmentValue: 120_000_000,
			Website: "https://databricks.com", StockSymbol: "DATB.PVT", YahooFinanceURL: "https://finance.yahoo.com/quote/DATB.PVT/"},
		{Name: "Stripe", Sector: "Fintech", Stage: "Series A", InvestmentDate: "2012",
			Description: "Online payment processing platform for internet businesses", InvestmentValue: 70_000_000,
			Website: "https://stripe.com", StockSymbol: "STRI.PVT", YahooFinanceURL: "https://finance.yahoo.com/quote/STRI.PVT/"},
		{Name: "Clubhouse Media Group", Sector: "Social Audio", Stage: "Series B", InvestmentDate: "2021",
			Description: "Audio-based social networking platform for live conversations", InvestmentValue: 35_000_000,
			Website: "https://clubhouse.com", StockSymbol: "CMGR", YahooFinanceURL: "https://finance.yahoo.com/quote/CMGR/"},
		{Name: "OpenAI", Sector: "Artificial Intelligence", Stage: "Investment", InvestmentDate: "2019",
			Description: "AI research company developing GPT models and ChatGPT", InvestmentValue: 300_000_000,
			Website: "https://openai.com"},
	},
}

// KnownPortfolio returns the curated portfolio whose key appears in the
// investor's name.
func KnownPortfolio(name string) ([]model.PortfolioCompany, bool) {
	for key, companies := range knownPortfolios {
		if strings.Contains(name, key) {
			return companies, true
		}
	}
	return nil, false
}

// DefaultPortfolio is the generic portfolio for investors with no curated
// entry when live discovery is unavailable.
func DefaultPortfolio() []model.PortfolioCompany {
	return []model.PortfolioCompany{
		{Name: "TechStartup Inc", Sector: "SaaS", Stage: "Series A", InvestmentDate: "2023",
			Description: "B2B software platform"},
		{Name: "AI Solutions", Sector: "Artificial Intelligence", Stage: "Seed", InvestmentDate: "2024",
			Description: "Machine learning infrastructure"},
		{Name: "FinTech Pro", Sector: "Financial Technology", Stage: "Series B", InvestmentDate: "2023",
			Description: "Digital payments platform"},
	}
}

// quotaFallbackPortfolios are the shorter lists served when the search
// provider's plan is exhausted mid-discovery.
var quotaFallbackPortfolios = map[string][]model.PortfolioCompany{
	"Peter Thiel": {
		{Name: "PayPal", Sector: "Fintech", Stage: "Co-founder", InvestmentDate: "1998", Description: "Digital payments platform"},
		{Name: "Palantir", Sector: "Software", Stage: "Co-founder", InvestmentDate: "2003", Description: "Big data analytics"},
		{Name: "Meta", Sector: "Social Media", Stage: "Series A", InvestmentDate: "2004", Description: "Social networking platform"},
		{Name: "SpaceX", Sector: "Aerospace", Stage: "Series A", InvestmentDate: "2008", Description: "Space exploration company"},
		{Name: "Stripe", Sector: "Fintech", Stage: "Series B", InvestmentDate: "2011", Description: "Online payments infrastructure"},
	},
	"Marc Andreessen": {
		{Name: "Facebook", Sector: "Social Media", Stage: "Series A", InvestmentDate: "2004", Description: "Social networking platform"},
		{Name: "Twitter", Sector: "Social Media", Stage: "Series A", InvestmentDate: "2009", Description: "Microblogging platform"},
		{Name: "GitHub", Sector: "Software", Stage: "Series A", InvestmentDate: "2012", Description: "Code hosting platform"},
		{Name: "Pinterest", Sector: "Social Media", Stage: "Series A", InvestmentDate: "2011", Description: "Visual discovery platform"},
		{Name: "Coinbase", Sector: "Cryptocurrency", Stage: "Series B", InvestmentDate: "2013", Description: "Cryptocurrency exchange"},
	},
}

// QuotaFallbackPortfolio returns the short curated list used when search
// quota runs out, falling back to a generic trio for unknown investors.
func QuotaFallbackPortfolio(name string) []model.PortfolioCompany {
	for key, companies := range quotaFallbackPortfolios {
		if strings.Contains(name, key) {
			return companies
		}
	}
	return []model.PortfolioCompany{
		{Name: "TechCorp", Sector: "Technology", Stage: "Series A", InvestmentDate: "2023", Description: "AI-powered solutions"},
		{Name: "DataFlow", Sector: "Software", Stage: "Series B", InvestmentDate: "2022", Description: "Data analytics platform"},
		{Name: "CloudNet", Sector: "Cloud Services", Stage: "Seed", InvestmentDate: "2024", Description: "Cloud infrastructure"},
	}
}

// knownTweets holds representative public statements for the quick-access
// investors, keyed by substring of the investor's name.
var knownTweets = map[string][]model.Tweet{
	"Mark Cuban": {
		{Text: "The biggest mistake entrepreneurs make is thinking they need to have all the answers. Smart questions are more valuable than quick answers.",
			Date: "2024-01-15", Likes: 15234, Retweets: 3421},
		{Text: "Every 'no' gets you closer to a 'yes.' Every mistake gets you closer to success. Every rejection gets you closer to acceptance.",
			Date: "2024-01-10", Likes: 24567, Retweets: 5234},
		{Text: "Starting a business is like jumping out of an airplane and assembling a parachute on the way down. Cost Plus Drugs is proof that when you land safely, you can help millions of people.",
			Date: "2024-01-05", Likes: 18943, Retweets: 4123},
		{Text: "The best businesses are created to solve problems that affect you personally. That's why I created Cost Plus Drugs - healthcare costs were crushing American families.",
			Date: "2023-12-28", Likes: 31245, Retweets: 7865},
		{Text: "AI will transform every industry, but human creativity and empathy will become MORE valuable, not less. Invest in both technology and humanity.",
			Date: "2023-12-20", Likes: 22134, Retweets: 5432},
	},
	"Peter Thiel": {
		{Text: "Competition is for losers. Monopoly is for winners. Build something so good that no one else can compete.",
			Date: "2024-01-18", Likes: 12453, Retweets: 2876},
		{Text: "The most contrarian thing of all is not to oppose the crowd but to think for yourself.",
			Date: "2024-01-12", Likes: 18976, Retweets: 4321},
		{Text: "Every moment in business happens only once. The next Bill Gates will not build an operating system. The next Larry Page won't make a search engine.",
			Date: "2024-01-08", Likes: 25134, Retweets: 6789},
		{Text: "What important truth do very few people agree with you on? This is still the most important question for any entrepreneur or investor.",
			Date: "2023-12-30", Likes: 16843, Retweets: 3952},
		{Text: "We wanted flying cars, instead we got 140 characters. But perhaps that's changing - SpaceX and breakthrough technologies are making the future we imagined possible.",
			Date: "2023-12-22", Likes: 28765, Retweets: 8234},
	},
	"Paul Tudor Jones": {
		{Text: "The secret to being a good trader is to have humility. The markets will humble you if you don't humble yourself first.",
			Date: "2024-01-20", Likes: 8765, Retweets: 1987},
		{Text: "Intellectual capital will always trump financial capital in the long run. Invest in learning, invest in people.",
			Date: "2024-01-14", Likes: 12456, Retweets: 2834},
		{Text: "The greatest trade I ever made wasn't about money - it was founding Robin Hood Foundation and seeing poverty decline in NYC.",
			Date: "2024-01-09", Likes: 15623, Retweets: 4123},
		{Text: "Climate change is the ultimate macro trade. We must deploy capital toward solutions that benefit both planet and profit.",
			Date: "2023-12-31", Likes: 19234, Retweets: 5432},
		{Text: "In trading and in life: Plan your trades, trade your plan. But be humble enough to change when the facts change.",
			Date: "2023-12-25", Likes: 11876, Retweets: 2765},
	},
	"Cathie Wood": {
		{Text: "We are in the early stages of the most powerful convergence in history: AI, energy storage, robotics, blockchain, and genomics will transform everything.",
			Date: "2024-01-22", Likes: 23456, Retweets: 6789},
		{Text: "Tesla isn't just a car company - it's an AI, robotics, and energy storage company that happens to make the world's best electric vehicles.",
			Date: "2024-01-16", Likes: 34567, Retweets: 9876},
		{Text: "Innovation is deflationary. While traditional investors fear deflation, we see it as the natural result of exponential technological progress.",
			Date: "2024-01-11", Likes: 18765, Retweets: 4321},
		{Text: "The genomics revolution will be bigger than the internet. We're moving from one-size-fits-all medicine to personalized precision treatments.",
			Date: "2024-01-06", Likes: 15432, Retweets: 3876},
		{Text: "Disruptive innovation creates new markets and destroys old ones. Traditional valuation methods can't capture the exponential nature of breakthrough technologies.",
			Date: "2023-12-29", Likes: 21098, Retweets: 5234},
	},
	"Marc Andreessen": {
		{Text: "Software is eating the world. Every industry that can be transformed by software will be.",
			Date: "2024-01-20", Likes: 8523, Retweets: 2134},
		{Text: "The spread of computers and the Internet will put jobs in two categories: people who tell computers what to do, and people who are told by computers what to do.",
			Date: "2024-01-19", Likes: 6421, Retweets: 1567},
		{Text: "In the next 10 years, I expect many more industries to be disrupted by software, with new world-beating Silicon Valley companies doing the disruption in more cases than not.",
			Date: "2024-01-18", Likes: 4892, Retweets: 923},
		{Text: "The smartphone revolution is under-hyped, more wild stuff happening than most realize. AI agents will be the next platform shift.",
			Date: "2024-01-17", Likes: 5134, Retweets: 1245},
		{Text: "Entrepreneurship is essentially an act of faith. You have to believe something that most people don't believe.",
			Date: "2024-01-16", Likes: 3678, Retweets: 789},
		{Text: "The best entrepreneurs are missionaries, not mercenaries. They're driven by a desire to change the world.",
			Date: "2024-01-15", Likes: 4123, Retweets: 892},
		{Text: "We are in the middle of a dramatic and broad technological and economic shift in which software companies are poised to take over large swathes of the economy.",
			Date: "2024-01-14", Likes: 2987, Retweets: 654},
		{Text: "The venture capital business is 100% about outliers. You're looking for the one company out of the portfolio that becomes a Google or Facebook.",
			Date: "2024-01-13", Likes: 3456, Retweets: 723},
	},
}

// KnownTweets returns curated tweets whose key appears in the investor's
// name, or a generic trio for unknown investors.
func KnownTweets(name string) []model.Tweet {
	for key, tweets := range knownTweets {
		if strings.Contains(name, key) {
			return tweets
		}
	}
	return []model.Tweet{
		{Text: "Investing in early-stage companies requires patience, conviction, and the ability to see potential where others see risk.",
			Date: "2024-01-20", Likes: 1245, Retweets: 234},
		{Text: "The best entrepreneurs solve problems they deeply understand. Personal pain points often lead to the biggest opportunities.",
			Date: "2024-01-18", Likes: 856, Retweets: 167},
		{Text: "Technology trends move faster than ever. The companies that win will be those that adapt quickest to change.",
			Date: "2024-01-15", Likes: 634, Retweets: 89},
	}
}

// KnownPosts returns curated long-form posts. The same set serves every
// investor; no per-person archive exists.
func KnownPosts() []model.Post {
	return []model.Post{
		{Content: "Exciting to announce our latest investment in quantum computing. This technology will revolutionize drug discovery and materials science in ways we're just beginning to understand. Proud to back this exceptional team.",
			Date: "2024-01-15", Reactions: 456},
		{Content: "Reflections on 2023: We saw the emergence of AI as a platform shift comparable to mobile and cloud. In 2024, we're focused on backing founders building the infrastructure layer for this new era.",
			Date: "2024-01-10", Reactions: 892},
		{Content: "The best founders aren't just building products; they're building movements. They have a vision for how the world should be different and the conviction to make it happen.",
			Date: "2024-01-05", Reactions: 1234},
	}
}

// KnownArticles returns curated long-form articles used when live article
// discovery is unavailable.
func KnownArticles() []model.Article {
	return []model.Article{
		{Title: "The End of Software as We Know It",
			Excerpt:  "AI is not just another tool in the software development toolkit. It represents a fundamental shift in how we create, deploy, and maintain software systems...",
			Date:     "2024-01-12", ReadTime: "8 min", Claps: 3421},
		{Title: "Why We're Investing in Climate Tech Now",
			Excerpt:  "The convergence of AI, IoT, and renewable energy has created an unprecedented opportunity for innovation in climate technology...",
			Date:     "2023-12-28", ReadTime: "6 min", Claps: 2156},
		{Title: "The Next Platform Shift: Thoughts on Spatial Computing",
			Excerpt:  "As we move beyond screens into spatial computing, we're seeing the early signs of a platform shift as significant as the transition from desktop to mobile...",
			Date:     "2023-12-15", ReadTime: "10 min", Claps: 1892},
	}
}

// knownNews holds curated news items for the quick-access investors, keyed
// by substring of the investor's name.
var knownNews = map[string][]model.NewsItem{
	"Mark Cuban": {
		{Title: "Mark Cuban Launches Cost Plus Drugs Expansion to Mental Health Medications",
			Excerpt: "The Shark Tank star announced his pharmacy platform will now offer affordable mental health drugs. Cuban stated: 'Mental health is healthcare, and healthcare should be affordable for everyone.'",
			Source:  "Forbes", Date: "Today",
			URL:     "https://www.costplusdrugs.com/medications/categories/mental-health/",
			Content: "Mark Cuban announced: 'Our mission at Cost Plus Drugs is simple - make medications affordable. Now we're extending that to mental health because no one should choose between paying rent and getting the medication they need.'"},
		{Title: "Cuban Invests $10M in AI-Powered Sports Analytics Startup",
			Excerpt: "The Dallas Mavericks owner backs new technology that promises to revolutionize player performance analysis and fan engagement.",
			Source:  "TechCrunch", Date: "Yesterday",
			URL:     "https://www.mobihealthnews.com/news/mark-cuban-cost-plus-drug-company-9amhealth-partner-obesity-meds",
			Content: "Cuban told reporters: 'Sports and technology are converging in ways we never imagined. This AI platform will change how teams scout, train, and engage with fans forever.'"},
		{Title: "Mark Cuban: 'Entrepreneurship is About Solving Problems, Not Making Money'",
			Excerpt: "In a new interview, the billionaire investor emphasizes purpose-driven business as the key to lasting success.",
			Source:  "CNBC", Date: "2 days ago",
			URL:     "https://gradstudies.musc.edu/about/blog/2024/09/easier-pill-to-swallow",
			Content: "According to Cuban: 'The best businesses solve real problems for real people. Money is just the scorecard - the game is about making people's lives better.'"},
	},
	"Peter Thiel": {
		{Title: "Peter Thiel's Founders Fund Leads $200M Round in AI Defense Startup",
			Excerpt: "The venture capital firm backs autonomous defense technology, continuing Thiel's focus on breakthrough innovations that secure America's technological edge.",
			Source:  "Wall Street Journal", Date: "Today",
			URL:     "https://siliconangle.com/2020/07/01/peter-thiel-backed-defense-tech-startup-anduril-raises-200m/",
			Content: "Thiel commented: 'The future of national security depends on our ability to develop autonomous systems faster than our adversaries. This investment represents our commitment to maintaining American technological superiority.'"},
		{Title: "Thiel: 'Universities Have Become Conformity Factories'",
			Excerpt: "Speaking at Stanford, the PayPal co-founder criticized higher education for stifling independent thinking and innovation.",
			Source:  "The Information", Date: "Yesterday",
			URL:     "https://vocal.media/journal/exploring-peter-thiel-s-impact-on-ai-through-founders-fund-s-investments",
			Content: "Peter Thiel stated: 'Universities today teach students what to think, not how to think. The most successful entrepreneurs I know are those who escaped the conformity trap early.'"},
		{Title: "Palantir Stock Surges as Government Contracts Expand",
			Excerpt: "The data analytics company co-founded by Thiel sees massive growth in government and enterprise sectors.",
			Source:  "Bloomberg", Date: "3 days ago",
			URL:     "https://www.benzinga.com/markets/cryptocurrency/24/10/41616040/peter-thiels-founders-fund-leads-500m-fundraise-in-waste-gas-powered-ai-cloud-start-up",
			Content: "Regarding Palantir's success, Thiel noted: 'We built Palantir to solve the world's hardest problems. The growth we're seeing validates our belief that data and algorithms can make institutions more effective.'"},
	},
	"Paul Tudor Jones": {
		{Title: "Paul Tudor Jones Pledges $500M for Climate Investment Initiative",
			Excerpt: "The legendary trader announces major commitment to environmental solutions through his Tudor Investment Corporation.",
			Source:  "Financial Times", Date: "Today",
			URL:     "https://www.bloomberg.com/news/articles/2025-08-26/crowdsourcing-hedge-fund-gets-500-million-jpmorgan-commitment",
			Content: "Jones declared: 'Climate change is the defining macro trade of our generation. We have an obligation to deploy capital toward solutions that benefit both the planet and our portfolios.'"},
		{Title: "Tudor Jones: 'Inequality is the Biggest Risk to Markets'",
			Excerpt: "The hedge fund manager warns that growing wealth disparity poses systemic risks to economic stability.",
			Source:  "CNBC", Date: "Yesterday",
			URL:     "https://www.cnbc.com/video/2024/10/22/watch-cnbcs-full-interview-with-tudor-investment-founder-paul-tudor-jones.html",
			Content: "Paul Tudor Jones warned: 'We cannot have a functioning democracy or healthy markets when the gap between rich and poor continues to widen. This is not just a social issue - it's an existential economic risk.'"},
		{Title: "Robin Hood Foundation Announces $100M Education Initiative",
			Excerpt: "The anti-poverty organization founded by Tudor Jones launches ambitious program to transform education in underserved communities.",
			Source:  "New York Times", Date: "2 days ago",
			URL:     "https://www.insidephilanthropy.com/wall-street-donors/paul-tudor-jones.html",
			Content: "Tudor Jones reflected: 'Education is the ultimate equalizer. Through Robin Hood, we've learned that targeted investments in teaching and learning can break generational cycles of poverty.'"},
	},
	"Cathie Wood": {
		{Title: "Cathie Wood: 'AI and Genomics Convergence Will Create $50 Trillion Market'",
			Excerpt: "The ARK Invest founder predicts unprecedented value creation as artificial intelligence transforms healthcare and biotechnology.",
			Source:  "Bloomberg", Date: "Today",
			URL:     "https://ark-invest.com/articles/analyst-research/ai-genomics-convergence/",
			Content: "Wood proclaimed: 'We're witnessing the convergence of artificial intelligence and genomic sequencing. This intersection will unlock personalized medicine and create the largest market opportunity in human history.'"},
		{Title: "ARK Invest Doubles Down on Tesla Despite Market Volatility",
			Excerpt: "Cathie Wood's firm increases Tesla holdings, citing autonomous vehicle and energy storage potential.",
			Source:  "MarketWatch", Date: "Yesterday",
			URL:     "https://ark-invest.com/newsletters/",
			Content: "Cathie Wood explained: 'Tesla isn't just an electric vehicle company - it's the leading AI and robotics platform. While others see volatility, we see the future of transportation and energy.'"},
		{Title: "Wood Predicts Bitcoin Will Hit $1 Million by 2030",
			Excerpt: "The innovation investor maintains bullish outlook on cryptocurrency despite recent market turbulence.",
			Source:  "CoinDesk", Date: "3 days ago",
			URL:     "https://ark-invest.com/articles/analyst-research/bitcoin-price-targets/",
			Content: "According to Wood: 'Bitcoin represents the ultimate convergence of technology and finance. As institutional adoption accelerates and regulatory clarity emerges, we believe Bitcoin will reach $1 million per coin this decade.'"},
	},
	"Marc Andreessen": {
		{Title: "Marc Andreessen: 'AI Agents Will Transform Every Industry Within 5 Years'",
			Excerpt: "The Andreessen Horowitz co-founder believes AI agents represent the next major platform shift. 'We're seeing autonomous systems that can perform complex tasks end-to-end,' Andreessen stated during a recent Stanford lecture.",
			Source:  "TechCrunch", Date: "Today",
			URL:     "https://a16z.com/ai-will-save-the-world/",
			Content: "Marc Andreessen said: 'AI agents represent the most significant technological shift since the smartphone revolution. These systems will fundamentally change how we work, how businesses operate, and how value is created in the economy.'"},
		{Title: "Andreessen Horowitz Launches $600M AI Fund, Marc Andreessen to Lead Strategy",
			Excerpt: "a16z announces new fund focused exclusively on artificial intelligence startups. Andreessen emphasized the fund's focus on infrastructure and enterprise applications.",
			Source:  "Forbes", Date: "Yesterday",
			URL:     "https://fortune.com/2024/03/06/vc-andreessen-horowitz-raise-billions-for-ai-two-funds/",
			Content: "According to Marc Andreessen: 'This fund represents our conviction that AI will create more economic value than any previous technology wave. We're betting on the entrepreneurs building the foundational technologies.'"},
		{Title: "Marc Andreessen on Crypto's Future: 'We're Still in the First Inning'",
			Excerpt: "The venture capitalist doubled down on cryptocurrency investments despite market volatility, citing long-term potential for decentralized systems.",
			Source:  "Wall Street Journal", Date: "2 days ago",
			URL:     "https://techcrunch.com/2024/12/19/the-promise-and-warning-of-truth-terminal-the-ai-bot-that-secured-50000-in-bitcoin-from-marc-andreessen/",
			Content: "Andreessen told reporters: 'Crypto represents programmable money and programmable law. The implications are so profound that we're still discovering what's possible.'"},
		{Title: "Marc Andreessen: Software Continues Eating the World, Now With AI",
			Excerpt: "In a comprehensive interview, the tech veteran reflects on his famous 2011 prediction and how artificial intelligence accelerates software's dominance.",
			Source:  "Bloomberg", Date: "3 days ago",
			URL:     "https://techcrunch.com/2024/10/22/marc-andreessen-says-ai-model-makers-are-in-a-race-to-the-bottom-and-its-not-god-for-business/",
			Content: "Marc Andreessen reflected: 'My 2011 prediction that software would eat the world has accelerated beyond my expectations. AI is now software eating software itself, creating unprecedented automation possibilities.'"},
		{Title: "Andreessen Horowitz Portfolio Company Anthropic Valued at $18B",
			Excerpt: "The AI safety company, backed by a16z, raises new funding round. Marc Andreessen praised the company's approach to developing safe AI systems.",
			Source:  "The Information", Date: "1 week ago",
			URL:     "https://a16z.com/new-funds-new-era/",
			Content: "Commenting on the investment, Andreessen noted: 'Building AI systems that are both powerful and aligned with human values isn't just a technical challenge - it's an existential opportunity.'"},
	},
}

// KnownNews returns curated news whose key appears in the investor's name,
// or a generic template set for unknown investors.
func KnownNews(name string) []model.NewsItem {
	for key, items := range knownNews {
		if strings.Contains(name, key) {
			return items
		}
	}
	return []model.NewsItem{
		{Title: name + " Backs New AI Startup in $50M Series A Round",
			Excerpt: "Leading venture capitalist announces major investment in artificial intelligence company focused on enterprise automation...",
			Source:  "TechCrunch", Date: "Today", URL: "https://techcrunch.com"},
		{Title: "Exclusive: " + name + " on the Future of Web3 and Crypto",
			Excerpt: "In a recent interview, the prominent investor shared insights on the evolving landscape of blockchain technology and decentralized finance...",
			Source:  "Forbes", Date: "Yesterday", URL: "https://forbes.com"},
		{Title: name + "'s Portfolio Company Goes Public at $10B Valuation",
			Excerpt: "One of the earliest investments from the venture capital firm debuts on NASDAQ with strong opening performance...",
			Source:  "Wall Street Journal", Date: "2 days ago", URL: "https://wsj.com"},
		{Title: "Breaking: " + name + " Joins Board of Unicorn Startup",
			Excerpt: "The respected investor brings decades of experience to fast-growing fintech company as it prepares for international expansion...",
			Source:  "Bloomberg", Date: "3 days ago", URL: "https://bloomberg.com"},
		{Title: name + " Predicts Major Shifts in Tech Investment Landscape",
			Excerpt: "Speaking at a recent conference, the investor outlined key trends that will shape venture capital decisions in the coming years...",
			Source:  "VentureBeat", Date: "5 days ago", URL: "https://venturebeat.com"},
	}
}
