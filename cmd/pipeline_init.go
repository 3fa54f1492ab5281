package main

import (
	"net/http"
	"time"

	"github.com/sells-group/investor-research/internal/adapter"
	"github.com/sells-group/investor-research/internal/enhance"
	"github.com/sells-group/investor-research/internal/research"
	"github.com/sells-group/investor-research/internal/resilience"
	"github.com/sells-group/investor-research/internal/scrape"
	anthropicpkg "github.com/sells-group/investor-research/pkg/anthropic"
	"github.com/sells-group/investor-research/pkg/imagehost"
	"github.com/sells-group/investor-research/pkg/tavily"
	"github.com/sells-group/investor-research/pkg/wikipedia"
)

// initPipeline wires all API clients and builds the research Pipeline.
func initPipeline(mode string) (*research.Pipeline, error) {
	if err := cfg.Validate(mode); err != nil {
		return nil, err
	}

	searchClient := tavily.NewClient(cfg.Search.Key, tavily.WithBaseURL(cfg.Search.BaseURL))
	anthropicClient := anthropicpkg.NewClient(cfg.Anthropic.Key)
	wikiClient := wikipedia.NewClient(wikipedia.WithBaseURL(cfg.Wikipedia.BaseURL))

	// Image rehosting is optional; without it profile images keep their
	// source URLs.
	var imageClient imagehost.Client
	if cfg.ImageHost.CloudName != "" {
		imageClient = imagehost.NewClient(cfg.ImageHost.CloudName, cfg.ImageHost.UploadPreset)
	}

	fetcher := scrape.NewFetcher(
		scrape.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.Scrape.TimeoutSecs) * time.Second}),
		scrape.WithBreakerConfig(resilience.FromCircuitConfig(cfg.Scrape.FailureThreshold, cfg.Scrape.ResetTimeoutSecs)),
	)

	adp := adapter.New(adapter.Options{
		Search:            searchClient,
		LLM:               anthropicClient,
		Wiki:              wikiClient,
		Images:            imageClient,
		Fetcher:           fetcher,
		Model:             cfg.Anthropic.Model,
		SearchesPerSecond: cfg.Search.RequestsPerSecond,
	})
	enhancer := enhance.New(searchClient, cfg.Search.RequestsPerSecond)

	p := research.NewPipeline(adp, enhancer)
	if cfg.Research.NewsLimit > 0 {
		p.NewsLimit = cfg.Research.NewsLimit
	}
	return p, nil
}
