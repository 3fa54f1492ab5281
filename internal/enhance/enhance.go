// Package enhance fills in portfolio company links that discovery leaves
// blank: the corporate website, the stock ticker, and the quote page URL.
// Those three fields are the only ones it writes.
package enhance

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/sells-group/investor-research/internal/model"
	"github.com/sells-group/investor-research/pkg/tavily"
)

// enhanceConcurrency bounds parallel company enhancements; each company
// issues several searches through the shared limiter.
const enhanceConcurrency = 4

// Enhancer looks up company links through web search.
type Enhancer struct {
	search  tavily.Client
	limiter *rate.Limiter
}

// New creates an Enhancer. searchesPerSecond <= 0 defaults to 2.
func New(search tavily.Client, searchesPerSecond float64) *Enhancer {
	if searchesPerSecond <= 0 {
		searchesPerSecond = 2
	}
	return &Enhancer{
		search:  search,
		limiter: rate.NewLimiter(rate.Limit(searchesPerSecond), 1),
	}
}

func (e *Enhancer) searchWeb(ctx context.Context, query string) (*tavily.SearchResponse, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "enhance: rate limiter")
	}
	return e.search.Search(ctx, query)
}

// Company fills the link fields of a single company in place. Fields that
// already carry a value are left alone.
func (e *Enhancer) Company(ctx context.Context, c *model.PortfolioCompany) error {
	if c.Name == "" {
		return nil
	}
	if c.Website == "" {
		site, err := e.Website(ctx, c.Name)
		if err != nil {
			return err
		}
		c.Website = site
	}
	if c.StockSymbol == "" {
		symbol, yahooURL, err := e.Stock(ctx, c.Name)
		if err != nil {
			return err
		}
		c.StockSymbol = symbol
		if c.YahooFinanceURL == "" {
			c.YahooFinanceURL = yahooURL
		}
	}
	return nil
}

// Portfolio enhances every company concurrently. Per-company failures are
// logged and skipped; the portfolio itself always comes back.
func (e *Enhancer) Portfolio(ctx context.Context, companies []model.PortfolioCompany) []model.PortfolioCompany {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(enhanceConcurrency)

	for i := range companies {
		c := &companies[i]
		g.Go(func() error {
			if err := e.Company(ctx, c); err != nil {
				zap.L().Warn("company enhancement failed",
					zap.String("company", c.Name), zap.Error(err))
			}
			return nil
		})
	}
	// Errors never propagate, so Wait only observes ctx cancellation.
	_ = g.Wait()
	return companies
}
