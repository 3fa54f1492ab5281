package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/investor-research/internal/extract"
	"github.com/sells-group/investor-research/internal/model"
	"github.com/sells-group/investor-research/pkg/wikipedia"
)

// firmKeywords mark search results that likely point at an investment
// firm's own website.
var firmKeywords = []string{"ventures", "capital", "partners", "fund", "invest", "companies"}

// Profile resolves an investor profile. Curated entries win; otherwise the
// profile is assembled from live searches, with a generic placeholder when
// search quota is exhausted before anything useful was found.
func (a *Adapter) Profile(ctx context.Context, name string) (model.Profile, error) {
	if p, ok := KnownProfile(name); ok {
		zap.L().Debug("using curated profile", zap.String("investor", name))
		return p, nil
	}
	return a.discoverProfile(ctx, name)
}

func (a *Adapter) discoverProfile(ctx context.Context, name string) (model.Profile, error) {
	profile := model.Profile{
		Name:        name,
		ProfileURLs: map[string]string{},
	}

	quota := false
	quota = a.findSocialURLs(ctx, name, &profile) || quota
	quota = a.findFirmSite(ctx, name, &profile) || quota

	inferFirmAndTitle(name, &profile)
	profile.ProfileURLs[model.PlatformMedium] = extract.MediumSearchURL(name)

	if quota && profile.Firm == "" {
		zap.L().Warn("search quota exhausted during profile discovery",
			zap.String("investor", name))
		return DefaultProfile(name), nil
	}

	profile.Bio = fmt.Sprintf("%s is an investor", name)
	if profile.Firm != "" {
		profile.Bio = fmt.Sprintf("%s is %s %s at %s",
			name, article(profile.Title), strings.ToLower(profile.Title), profile.Firm)
	}
	profile.Image = a.resolveImage(ctx, name)
	return profile, nil
}

// findSocialURLs locates LinkedIn, Twitter, and Crunchbase profile links.
// Returns true if any search hit the quota ceiling.
func (a *Adapter) findSocialURLs(ctx context.Context, name string, profile *model.Profile) bool {
	quota := false

	resp, err := a.searchWeb(ctx, fmt.Sprintf("%q LinkedIn", name))
	if err == nil && resp.QuotaExceeded {
		quota = true
	}
	if err == nil && !resp.QuotaExceeded {
		for _, r := range resp.Results {
			if extract.IsLinkedInProfile(r.URL) {
				profile.ProfileURLs[model.PlatformLinkedIn] = r.URL
				break
			}
		}
	}

	resp, err = a.searchWeb(ctx, fmt.Sprintf("%q Twitter", name))
	if err == nil && resp.QuotaExceeded {
		quota = true
	}
	if err == nil && !resp.QuotaExceeded {
		for _, r := range resp.Results {
			if u := extract.TwitterURL(r.URL + " " + r.Content); u != "" {
				profile.ProfileURLs[model.PlatformTwitter] = u
				break
			}
		}
	}

	resp, err = a.searchWeb(ctx, fmt.Sprintf("%q Crunchbase", name))
	if err == nil && resp.QuotaExceeded {
		quota = true
	}
	if err == nil && !resp.QuotaExceeded {
		for _, r := range resp.Results {
			if extract.IsCrunchbasePerson(r.URL) {
				profile.ProfileURLs[model.PlatformCrunchbase] = r.URL
				break
			}
		}
	}

	return quota
}

// findFirmSite looks for the investor's firm website. Returns true if the
// search hit the quota ceiling.
func (a *Adapter) findFirmSite(ctx context.Context, name string, profile *model.Profile) bool {
	resp, err := a.searchWeb(ctx, fmt.Sprintf("%q venture capital firm website", name))
	if err != nil {
		return false
	}
	if resp.QuotaExceeded {
		return true
	}
	for _, r := range resp.Results {
		parsed, perr := url.Parse(r.URL)
		if perr != nil || parsed.Host == "" {
			continue
		}
		host := strings.ToLower(parsed.Host)
		for _, kw := range firmKeywords {
			if strings.Contains(host, kw) {
				profile.ProfileURLs[model.PlatformFirm] = fmt.Sprintf("%s://%s", parsed.Scheme, parsed.Host)
				return false
			}
		}
	}
	return false
}

// inferFirmAndTitle fills Firm and Title from the discovered firm URL and
// a handful of recognizable name patterns.
func inferFirmAndTitle(name string, profile *model.Profile) {
	lower := strings.ToLower(name)
	firmURL := strings.ToLower(profile.ProfileURLs[model.PlatformFirm])

	switch {
	case strings.Contains(firmURL, "a16z") || strings.Contains(lower, "andreessen horowitz"):
		profile.Firm = "Andreessen Horowitz (a16z)"
	case strings.Contains(firmURL, "foundersfund") || strings.Contains(lower, "peter thiel"):
		profile.Firm = "Founders Fund"
	case strings.Contains(lower, "mark cuban"):
		profile.Firm = "Mark Cuban Companies"
	case firmURL != "":
		if parsed, err := url.Parse(profile.ProfileURLs[model.PlatformFirm]); err == nil {
			profile.Firm = firmNameFromHost(parsed.Host)
		}
	}

	switch {
	case strings.Contains(lower, "co-founder"):
		profile.Title = "Co-founder and General Partner"
	case strings.Contains(lower, "founder"):
		profile.Title = "Founder"
	case strings.Contains(lower, "partner"):
		profile.Title = "Partner"
	case strings.Contains(lower, "owner"):
		profile.Title = "Owner and Investor"
	default:
		profile.Title = "Investor"
	}
}

// firmNameFromHost turns "www.sequoiacap.com" into "Sequoiacap".
func firmNameFromHost(host string) string {
	host = strings.TrimPrefix(strings.ToLower(host), "www.")
	if idx := strings.IndexByte(host, '.'); idx > 0 {
		host = host[:idx]
	}
	if host == "" {
		return ""
	}
	return strings.ToUpper(host[:1]) + host[1:]
}

// resolveImage finds a portrait for the investor. The Wikipedia thumbnail
// is rehosted when an image host is configured; otherwise a generated
// avatar serves as the fallback.
func (a *Adapter) resolveImage(ctx context.Context, name string) string {
	if a.wiki != nil {
		summary, err := a.wiki.Summary(ctx, name)
		if err == nil && summary.Thumbnail != nil && summary.Thumbnail.Source != "" {
			source := wikipedia.UpscaleThumbnail(summary.Thumbnail.Source)
			if a.images != nil {
				publicID := "investors/dynamic/" + sanitizeImageID(name)
				result, uerr := a.images.Upload(ctx, source, publicID)
				if uerr == nil && result.SecureURL != "" {
					return result.SecureURL
				}
				zap.L().Warn("image rehost failed, using source URL",
					zap.String("investor", name), zap.Error(uerr))
			}
			return source
		}
	}
	return avatarURL(name)
}

// avatarURL builds a deterministic initials avatar for investors without a
// discoverable photo.
func avatarURL(name string) string {
	encoded := strings.ReplaceAll(strings.TrimSpace(name), " ", "+")
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&size=300&background=4A90E2&color=fff&bold=true", encoded)
}

func sanitizeImageID(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	lower = strings.ReplaceAll(lower, " ", "_")
	return strings.ReplaceAll(lower, "-", "_")
}

// article picks "a" or "an" for a title word.
func article(title string) string {
	if title == "" {
		return "a"
	}
	switch title[0] {
	case 'A', 'E', 'I', 'O', 'U', 'a', 'e', 'i', 'o', 'u':
		return "an"
	}
	return "a"
}
