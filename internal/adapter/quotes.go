package adapter

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sells-group/investor-research/internal/model"
)

const maxQuoteChars = 500

// quoteQueries target pages likely to carry direct statements. Only the
// first two run.
func quoteQueries(name string) []string {
	return []string{
		fmt.Sprintf(`%q "said" "investing" quote`, name),
		fmt.Sprintf(`%q interview quotes venture capital`, name),
		fmt.Sprintf(`%q famous quotes technology`, name),
	}
}

// Quotes searches the web for direct statements by the investor. It runs
// only when no short-form posts were found, so search budget stays small.
func (a *Adapter) Quotes(ctx context.Context, name string) ([]model.Quote, error) {
	var quotes []model.Quote
	for _, query := range quoteQueries(name)[:2] {
		resp, err := a.searchWeb(ctx, query)
		if err != nil {
			zap.L().Warn("quote search failed", zap.String("query", query), zap.Error(err))
			continue
		}
		if resp.QuotaExceeded {
			break
		}
		for i, r := range resp.Results {
			if i >= 3 {
				break
			}
			if r.Content == "" {
				continue
			}
			text := r.Content
			if len(text) > maxQuoteChars {
				text = text[:maxQuoteChars]
			}
			quotes = append(quotes, model.Quote{Text: text, Source: "web"})
		}
	}
	return quotes, nil
}
