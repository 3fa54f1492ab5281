package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/investor-research/internal/model"
	"github.com/sells-group/investor-research/internal/resilience"
	"github.com/sells-group/investor-research/pkg/anthropic"
)

const (
	maxPortfolioCompanies = 15
	maxEvidenceChars      = 4000
	maxEvidenceBlocks     = 2
)

// portfolioQueries builds the search waterfall for portfolio discovery.
func portfolioQueries(name, firm string) []string {
	if firm == "" {
		firm = name
	}
	return []string{
		fmt.Sprintf("%q invested in funded backed companies", name),
		fmt.Sprintf("%q portfolio companies list", firm),
		fmt.Sprintf("%s investments startup companies", name),
		fmt.Sprintf("site:crunchbase.com %q investments", name),
		fmt.Sprintf("%q recent investments 2023 2024", firm),
	}
}

// Portfolio resolves the investor's portfolio. Curated lists win; otherwise
// companies are extracted from search evidence by the language model, with
// a short fallback list when search quota runs out.
func (a *Adapter) Portfolio(ctx context.Context, name, firm string) ([]model.PortfolioCompany, error) {
	if companies, ok := KnownPortfolio(name); ok {
		zap.L().Debug("using curated portfolio",
			zap.String("investor", name), zap.Int("companies", len(companies)))
		return companies, nil
	}

	blocks, quota, err := a.gatherPortfolioEvidence(ctx, name, firm)
	if err != nil {
		return nil, err
	}
	if quota {
		zap.L().Warn("search quota exhausted during portfolio discovery",
			zap.String("investor", name))
		return QuotaFallbackPortfolio(name), nil
	}
	if len(blocks) == 0 {
		return DefaultPortfolio(), nil
	}

	companies, err := a.extractCompanies(ctx, name, blocks)
	if err != nil {
		zap.L().Warn("portfolio extraction failed, using generic fallback",
			zap.String("investor", name), zap.Error(err))
		return DefaultPortfolio(), nil
	}
	if len(companies) == 0 {
		return DefaultPortfolio(), nil
	}
	return dedupeCompanies(companies), nil
}

// gatherPortfolioEvidence runs the query waterfall and formats each result
// as a titled evidence block.
func (a *Adapter) gatherPortfolioEvidence(ctx context.Context, name, firm string) ([]string, bool, error) {
	var blocks []string
	for _, query := range portfolioQueries(name, firm) {
		resp, err := a.searchWeb(ctx, query)
		if err != nil {
			return nil, false, eris.Wrap(err, "adapter: portfolio search")
		}
		if resp.QuotaExceeded {
			return nil, true, nil
		}
		for i, r := range resp.Results {
			if i >= 5 {
				break
			}
			blocks = append(blocks, fmt.Sprintf("Title: %s\nContent: %s\nURL: %s", r.Title, r.Content, r.URL))
		}
	}
	return blocks, false, nil
}

// extractCompanies asks the language model to pull structured companies out
// of the strongest evidence blocks.
func (a *Adapter) extractCompanies(ctx context.Context, name string, blocks []string) ([]model.PortfolioCompany, error) {
	if len(blocks) > maxEvidenceBlocks {
		blocks = blocks[:maxEvidenceBlocks]
	}
	evidence := strings.Join(blocks, "\n\n")
	if len(evidence) > maxEvidenceChars {
		evidence = evidence[:maxEvidenceChars]
	}

	prompt := fmt.Sprintf(`Based on the following search results about %s's investments, extract a list of portfolio companies.

Search results:
%s

Return ONLY a JSON array of objects with these fields:
- "name": the company name
- "sector": industry sector
- "stage": investment stage (Seed, Series A, etc.)
- "date": investment year if known
- "description": one-line description
- "investment_value": estimated amount in USD as a number, or 0 if unknown

Only include companies you are confident %s actually invested in. Return an empty array if none are found.`, name, evidence, name)

	raw, err := a.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var parsed []struct {
		Name            string  `json:"name"`
		Sector          string  `json:"sector"`
		Stage           string  `json:"stage"`
		Date            string  `json:"date"`
		Description     string  `json:"description"`
		InvestmentValue float64 `json:"investment_value"`
	}
	if err := json.Unmarshal([]byte(StripCodeFences(raw)), &parsed); err != nil {
		return nil, eris.Wrap(err, "adapter: parse portfolio response")
	}

	companies := make([]model.PortfolioCompany, 0, len(parsed))
	for _, p := range parsed {
		// Placeholder names mean the model echoed the template back.
		if p.Name == "Actual Company Name" || len(p.Name) <= 2 {
			continue
		}
		companies = append(companies, model.PortfolioCompany{
			Name:            p.Name,
			Sector:          p.Sector,
			Stage:           p.Stage,
			InvestmentDate:  p.Date,
			Description:     p.Description,
			InvestmentValue: p.InvestmentValue,
		})
		if len(companies) >= maxPortfolioCompanies {
			break
		}
	}
	return companies, nil
}

// Complete sends a single-user-turn prompt to the language model, retrying
// only on rate limits, and returns the concatenated text reply.
func (a *Adapter) Complete(ctx context.Context, prompt string) (string, error) {
	return a.complete(ctx, nil, prompt)
}

// CompleteWithSystem is Complete with a fixed system prompt attached as a
// cached block, so repeated runs share the prompt prefix across investors.
func (a *Adapter) CompleteWithSystem(ctx context.Context, system, prompt string) (string, error) {
	return a.complete(ctx, anthropic.BuildCachedSystemBlocks(system), prompt)
}

func (a *Adapter) complete(ctx context.Context, system []anthropic.SystemBlock, prompt string) (string, error) {
	cfg := resilience.RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: time.Second,
		MaxBackoff:     30 * time.Second,
		Multiplier:     2,
		ShouldRetry:    resilience.IsRateLimited,
		OnRetry:        resilience.RetryLogger("anthropic", "create_message"),
	}
	resp, err := resilience.DoVal(ctx, cfg, func(ctx context.Context) (*anthropic.MessageResponse, error) {
		return a.llm.CreateMessage(ctx, anthropic.MessageRequest{
			Model:     a.model,
			MaxTokens: 2048,
			System:    system,
			Messages: []anthropic.Message{
				{Role: "user", Content: prompt},
			},
		})
	})
	if err != nil {
		return "", err
	}
	resp.Usage.LogCost(a.model, "extraction")
	return resp.Text(), nil
}

// StripCodeFences removes a surrounding markdown code fence, which models
// sometimes wrap around JSON replies despite instructions.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// dedupeCompanies drops later entries whose normalized name repeats.
func dedupeCompanies(companies []model.PortfolioCompany) []model.PortfolioCompany {
	seen := make(map[string]bool, len(companies))
	out := companies[:0]
	for _, c := range companies {
		key := normalizeName(c.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}
