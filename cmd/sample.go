package main

import (
	"github.com/sells-group/investor-research/internal/model"
)

// sampleResult is the static demo payload served at /mock so frontends can
// develop against a realistic response without burning API quota.
func sampleResult() *model.Result {
	result := &model.Result{
		Profile: model.Profile{
			Name:  "Marc Andreessen",
			Title: "Co-founder & General Partner",
			Firm:  "Andreessen Horowitz",
			Bio: "Marc Andreessen is a prominent venture capitalist and co-founder of Andreessen Horowitz. " +
				"He previously co-created the highly influential Mosaic Internet browser and co-founded Netscape. " +
				"Known for his 'software is eating the world' thesis, he has invested in and advised many successful " +
				"technology companies including Facebook, Twitter, GitHub, Pinterest, and Airbnb.",
			Image: "https://res.cloudinary.com/doqmqgbym/image/upload/v1756815192/investors/investors/marc_andreessen.jpg",
			ProfileURLs: map[string]string{
				model.PlatformTwitter:    "https://twitter.com/pmarca",
				model.PlatformLinkedIn:   "https://www.linkedin.com/in/pmarca",
				model.PlatformCrunchbase: "https://www.crunchbase.com/person/marc-andreessen",
				model.PlatformMedium:     "https://medium.com/@pmarca",
				model.PlatformFirm:       "https://a16z.com",
			},
		},
		Portfolio: []model.PortfolioCompany{
			{Name: "Facebook", Sector: "Social Media", Stage: "Series B", InvestmentDate: "2007",
				Description: "Leading social networking platform connecting billions of users worldwide",
				Website:     "https://www.facebook.com", StockSymbol: "META",
				YahooFinanceURL: "https://finance.yahoo.com/quote/META"},
			{Name: "GitHub", Sector: "Developer Tools", Stage: "Series A", InvestmentDate: "2012",
				Description: "World's largest platform for software development and version control",
				Website:     "https://github.com", StockSymbol: "MSFT",
				YahooFinanceURL: "https://finance.yahoo.com/quote/MSFT"},
			{Name: "Airbnb", Sector: "Travel & Hospitality", Stage: "Series B", InvestmentDate: "2011",
				Description: "Online marketplace for lodging and tourism experiences",
				Website:     "https://www.airbnb.com", StockSymbol: "ABNB",
				YahooFinanceURL: "https://finance.yahoo.com/quote/ABNB"},
			{Name: "Coinbase", Sector: "Cryptocurrency", Stage: "Series C", InvestmentDate: "2013",
				Description: "Digital currency exchange platform",
				Website:     "https://www.coinbase.com", StockSymbol: "COIN",
				YahooFinanceURL: "https://finance.yahoo.com/quote/COIN"},
			{Name: "Slack", Sector: "Enterprise Software", Stage: "Series A", InvestmentDate: "2014",
				Description: "Business communication platform",
				Website:     "https://slack.com", StockSymbol: "CRM",
				YahooFinanceURL: "https://finance.yahoo.com/quote/CRM"},
			{Name: "Instacart", Sector: "E-commerce", Stage: "Series A", InvestmentDate: "2013",
				Description: "Online grocery delivery and pickup service",
				Website:     "https://www.instacart.com", StockSymbol: "CART",
				YahooFinanceURL: "https://finance.yahoo.com/quote/CART"},
			{Name: "Pinterest", Sector: "Social Media", Stage: "Series C", InvestmentDate: "2012",
				Description: "Visual discovery and idea platform",
				Website:     "https://www.pinterest.com", StockSymbol: "PINS",
				YahooFinanceURL: "https://finance.yahoo.com/quote/PINS"},
			{Name: "Okta", Sector: "Enterprise Software", Stage: "Series B", InvestmentDate: "2011",
				Description: "Identity and access management platform",
				Website:     "https://www.okta.com", StockSymbol: "OKTA",
				YahooFinanceURL: "https://finance.yahoo.com/quote/OKTA"},
			{Name: "Roblox", Sector: "Gaming", Stage: "Series D", InvestmentDate: "2018",
				Description: "Online gaming platform and game creation system",
				Website:     "https://www.roblox.com", StockSymbol: "RBLX",
				YahooFinanceURL: "https://finance.yahoo.com/quote/RBLX"},
			{Name: "Clubhouse", Sector: "Social Media", Stage: "Series B", InvestmentDate: "2021",
				Description: "Audio-based social networking app",
				Website:     "https://www.clubhouse.com"},
		},
		Insights: model.Insights{
			InvestmentThemes: []string{
				"Software is Eating the World",
				"Consumer Internet Platforms",
				"Enterprise SaaS",
				"Crypto & Web3",
				"AI & Machine Learning",
			},
			InvestmentThesis: "Marc Andreessen focuses on transformative technology companies that have the potential " +
				"to disrupt traditional industries. His investment philosophy centers on the belief that software " +
				"companies can achieve massive scale with minimal marginal costs, leading to unprecedented market opportunities.",
			SectorFocus: []string{
				"Enterprise Software (30%)",
				"Social Media & Consumer (25%)",
				"Cryptocurrency & Blockchain (20%)",
				"Developer Tools & Infrastructure (15%)",
				"E-commerce & Marketplaces (10%)",
			},
			NotableQuotes: []string{
				"Software is eating the world, and we're only at the beginning of this transformation.",
				"The spread of computers and the Internet will put jobs in two categories: people who tell computers what to do, and people who are told by computers what to do.",
				"In the startup world, you're either a genius or an idiot. You're never just an ordinary guy trying to get through the day.",
				"The biggest risk is not taking any risk. In a world that's changing really quickly, the only strategy that is guaranteed to fail is not taking risks.",
			},
		},
		MediumArticles: []model.Article{
			{Title: "Why Software Is Eating the World",
				Excerpt:  "More and more major businesses and industries are being run on software and delivered as online services...",
				Date:     "Aug 20, 2011", ReadTime: "12 min read",
				URL:   "https://a16z.com/2011/08/20/why-software-is-eating-the-world/",
				Claps: 15000},
			{Title: "The Future of AI and Its Impact on Society",
				Excerpt:  "Artificial intelligence is poised to transform every industry and aspect of human life...",
				Date:     "Mar 15, 2024", ReadTime: "8 min read", URL: "#", Claps: 8500},
			{Title: "Building the Next Generation of Tech Companies",
				Excerpt:  "Lessons learned from investing in hundreds of startups over the past decade...",
				Date:     "Jan 10, 2024", ReadTime: "15 min read", URL: "#", Claps: 12000},
		},
		News: []model.NewsItem{
			{Title: "Andreessen Horowitz Raises $7.2B for New Funds",
				Excerpt: "The venture capital firm announces its largest fundraise to date, with plans to invest in AI, biotech, and crypto startups...",
				Source:  "TechCrunch", Date: "Today", URL: "https://techcrunch.com"},
			{Title: "Marc Andreessen on the AI Revolution",
				Excerpt: "In an exclusive interview, the prominent investor shares his thoughts on artificial intelligence and its potential impact...",
				Source:  "Forbes", Date: "Yesterday", URL: "https://forbes.com"},
			{Title: "a16z Portfolio Company Goes Public at $10B Valuation",
				Excerpt: "Another successful exit for Andreessen Horowitz as their portfolio company debuts on NASDAQ...",
				Source:  "Wall Street Journal", Date: "2 days ago", URL: "https://wsj.com"},
			{Title: "Breaking: Marc Andreessen Joins Board of AI Unicorn",
				Excerpt: "The respected investor brings decades of experience to fast-growing artificial intelligence company...",
				Source:  "Bloomberg", Date: "3 days ago", URL: "https://bloomberg.com"},
			{Title: "Andreessen Predicts Major Shifts in Tech Landscape",
				Excerpt: "Speaking at a recent conference, Marc Andreessen outlined key trends that will shape venture capital...",
				Source:  "VentureBeat", Date: "5 days ago", URL: "https://venturebeat.com"},
		},
	}
	result.Normalize()
	return result
}
