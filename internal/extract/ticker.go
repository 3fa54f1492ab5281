// Package extract provides regex-based field extraction from search result
// text: stock tickers, publication dates, and platform profile URLs.
package extract

import (
	"regexp"
	"strings"
)

// tickerPatterns are tried in order of reliability. Each pattern captures a
// candidate symbol in group 1.
var tickerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\(([A-Za-z]{1,5})\)`),
	regexp.MustCompile(`(?i)NYSE:\s*([A-Za-z]{1,5})`),
	regexp.MustCompile(`(?i)NASDAQ:\s*([A-Za-z]{1,5})`),
	regexp.MustCompile(`(?i)Ticker:\s*([A-Za-z]{1,5})`),
	regexp.MustCompile(`(?i)Symbol:\s*([A-Za-z]{1,5})`),
	regexp.MustCompile(`(?i)quote/([A-Za-z]{1,5})`),
	regexp.MustCompile(`(?i)trades\s+as\s+([A-Za-z]{1,5})`),
	regexp.MustCompile(`(?i)ticker\s+symbol\s+([A-Za-z]{1,5})`),
	regexp.MustCompile(`(?i)stock\s+symbol\s+([A-Za-z]{1,5})`),
}

// tickerStoplist holds uppercase words that match the ticker shape but are
// never symbols (common English words, exchange names, known artifacts).
var tickerStoplist = map[string]struct{}{
	"THE": {}, "AND": {}, "FOR": {}, "ARE": {}, "WITH": {}, "ALSO": {},
	"THIS": {}, "THAT": {}, "FROM": {}, "WILL": {}, "CAN": {}, "HAS": {},
	"BUT": {}, "NOT": {}, "ALL": {}, "ANY": {}, "ITS": {}, "WAS": {},
	"HER": {}, "HIS": {}, "OUR": {}, "YOU": {}, "SHE": {}, "HIM": {},
	"NYSE": {}, "NASDAQ": {}, "SEARC": {}, "XFLT": {},
}

// Ticker scans text for a stock ticker symbol using an ordered waterfall of
// patterns. Candidates must be 2-5 uppercase letters, not stoplisted, and
// not a URL fragment. When several candidates appear, the most frequent one
// wins; ties go to the earliest first occurrence.
func Ticker(text string) string {
	counts := map[string]int{}
	firstSeen := map[string]int{}
	order := 0

	for _, pat := range tickerPatterns {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			ticker := strings.ToUpper(m[1])
			if !validTicker(ticker) {
				continue
			}
			counts[ticker]++
			if _, ok := firstSeen[ticker]; !ok {
				firstSeen[ticker] = order
				order++
			}
		}
	}

	best := ""
	for ticker, n := range counts {
		if best == "" {
			best = ticker
			continue
		}
		if n > counts[best] || (n == counts[best] && firstSeen[ticker] < firstSeen[best]) {
			best = ticker
		}
	}
	return best
}

func validTicker(ticker string) bool {
	if len(ticker) < 2 || len(ticker) > 5 {
		return false
	}
	if _, stopped := tickerStoplist[ticker]; stopped {
		return false
	}
	return !strings.HasPrefix(ticker, "HTTP")
}
