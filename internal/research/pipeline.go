// Package research orchestrates a full investor research run: profile
// resolution, portfolio discovery, content aggregation, news, and model
// generated insights, assembled into a single result payload.
package research

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/investor-research/internal/adapter"
	"github.com/sells-group/investor-research/internal/enhance"
	"github.com/sells-group/investor-research/internal/model"
)

// Pipeline runs investor research end to end.
type Pipeline struct {
	adapter  *adapter.Adapter
	enhancer *enhance.Enhancer

	// NewsLimit caps news items in the result. Zero means 5.
	NewsLimit int
}

// NewPipeline wires a Pipeline from its adapters. enhancer may be nil to
// skip link enhancement.
func NewPipeline(a *adapter.Adapter, e *enhance.Enhancer) *Pipeline {
	return &Pipeline{adapter: a, enhancer: e, NewsLimit: 5}
}

// Run researches one investor. Profile resolution and insights generation
// are required; every other source degrades to curated or empty data.
func (p *Pipeline) Run(ctx context.Context, name string) (*model.Result, error) {
	start := time.Now()
	log := zap.L().With(zap.String("investor", name))
	log.Info("starting research run")

	profile, err := timed(log, "profile", func() (model.Profile, error) {
		return p.adapter.Profile(ctx, name)
	})
	if err != nil {
		return nil, eris.Wrap(err, "research: resolve profile")
	}

	var (
		portfolio []model.PortfolioCompany
		tweets    []model.Tweet
		posts     []model.Post
		articles  []model.Article
		news      []model.NewsItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var perr error
		portfolio, perr = timed(log, "portfolio", func() ([]model.PortfolioCompany, error) {
			return p.discoverPortfolio(gctx, name, profile.Firm)
		})
		if perr != nil {
			log.Warn("portfolio discovery failed", zap.Error(perr))
			portfolio = nil
		}
		return nil
	})
	g.Go(func() error {
		var terr error
		tweets, terr = p.adapter.Tweets(gctx, name)
		if terr != nil {
			log.Warn("tweet aggregation failed", zap.Error(terr))
			tweets, terr = nil, nil
		}
		posts, terr = p.adapter.Posts(gctx, name)
		if terr != nil {
			log.Warn("post aggregation failed", zap.Error(terr))
			posts, terr = nil, nil
		}
		articles, terr = timed(log, "articles", func() ([]model.Article, error) {
			return p.adapter.Articles(gctx, name)
		})
		if terr != nil {
			log.Warn("article aggregation failed", zap.Error(terr))
			articles = nil
		}
		return nil
	})
	g.Go(func() error {
		var nerr error
		news, nerr = timed(log, "news", func() ([]model.NewsItem, error) {
			return p.adapter.News(gctx, name, p.NewsLimit)
		})
		if nerr != nil {
			log.Warn("news fetch failed", zap.Error(nerr))
			news = nil
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Quote search runs only when no timeline material exists, keeping
	// search spend off the common path.
	var quotes []model.Quote
	if len(tweets) == 0 {
		quotes, err = p.adapter.Quotes(ctx, name)
		if err != nil {
			log.Warn("quote search failed", zap.Error(err))
			quotes = nil
		}
	}

	insights, err := timed(log, "insights", func() (*model.Insights, error) {
		return p.generateInsights(ctx, insightsInput{
			Profile:   profile,
			Portfolio: portfolio,
			Tweets:    tweets,
			Quotes:    quotes,
			Posts:     posts,
			Articles:  articles,
			News:      news,
		})
	})
	if err != nil {
		return nil, err
	}

	result := &model.Result{
		Profile:        profile,
		Portfolio:      portfolio,
		Insights:       *insights,
		MediumArticles: articles,
		News:           news,
	}
	result.Normalize()

	log.Info("research run complete",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("portfolio", len(result.Portfolio)),
		zap.Int("articles", len(result.MediumArticles)),
		zap.Int("news", len(result.News)))
	return result, nil
}

// discoverPortfolio resolves the portfolio and enhances live-discovered
// companies with website and stock links. Curated portfolios already carry
// their links, so they skip enhancement.
func (p *Pipeline) discoverPortfolio(ctx context.Context, name, firm string) ([]model.PortfolioCompany, error) {
	companies, err := p.adapter.Portfolio(ctx, name, firm)
	if err != nil {
		return nil, err
	}
	if _, curated := adapter.KnownPortfolio(name); curated || p.enhancer == nil {
		return companies, nil
	}
	return p.enhancer.Portfolio(ctx, companies), nil
}

// timed wraps a phase with duration logging.
func timed[T any](log *zap.Logger, phase string, fn func() (T, error)) (T, error) {
	start := time.Now()
	v, err := fn()
	if err != nil {
		log.Warn("phase failed", zap.String("phase", phase),
			zap.Duration("elapsed", time.Since(start)), zap.Error(err))
		return v, err
	}
	log.Debug("phase complete", zap.String("phase", phase),
		zap.Duration("elapsed", time.Since(start)))
	return v, err
}
