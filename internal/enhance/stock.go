package enhance

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/investor-research/internal/extract"
)

// stockFallbacks covers well-known companies when search quota runs out.
// An empty ticker marks a known private company.
var stockFallbacks = map[string]string{
	"paypal":    "PYPL",
	"palantir":  "PLTR",
	"meta":      "META",
	"facebook":  "META",
	"stripe":    "", // private
	"twitter":   "TWTR",
	"github":    "MSFT", // owned by Microsoft
	"pinterest": "PINS",
	"coinbase":  "COIN",
	"tesla":     "TSLA",
	"netflix":   "NFLX",
	"uber":      "UBER",
	"airbnb":    "ABNB",
	"linkedin":  "MSFT", // owned by Microsoft
	"microsoft": "MSFT",
	"google":    "GOOGL",
	"apple":     "AAPL",
	"amazon":    "AMZN",
}

// YahooFinanceURL builds the quote page URL for a ticker.
func YahooFinanceURL(ticker string) string {
	if ticker == "" {
		return ""
	}
	return "https://finance.yahoo.com/quote/" + ticker
}

// Stock finds the company's ticker symbol, if public, along with its quote
// page URL. Both are empty for private or unrecognized companies.
func (e *Enhancer) Stock(ctx context.Context, name string) (string, string, error) {
	queries := []string{
		fmt.Sprintf("%q NYSE NASDAQ stock ticker", name),
		fmt.Sprintf("%q stock symbol ticker", name),
	}
	for _, query := range queries {
		resp, err := e.searchWeb(ctx, query)
		if err != nil {
			return "", "", err
		}
		if resp.QuotaExceeded {
			zap.L().Warn("search quota exhausted during stock lookup",
				zap.String("company", name))
			ticker := fallbackTicker(name)
			return ticker, YahooFinanceURL(ticker), nil
		}
		for i, r := range resp.Results {
			if i >= 5 {
				break
			}
			if ticker := extract.Ticker(r.Content + " " + r.Title); ticker != "" {
				return ticker, YahooFinanceURL(ticker), nil
			}
		}
	}
	ticker := fallbackTicker(name)
	return ticker, YahooFinanceURL(ticker), nil
}

func fallbackTicker(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	for key, ticker := range stockFallbacks {
		if strings.Contains(lower, key) {
			// Empty means known private, so stop looking.
			return ticker
		}
	}
	return ""
}
