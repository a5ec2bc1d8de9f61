package search

import (
	"net/url"
	"sort"
	"strings"

	"github.com/abhindeves/fake-news-detector/internal/model"
)

// AuthorityClassifier classifies evidence sources into authority tiers.
// Classification only orders evidence for display and prompting; it never
// feeds into the verdict itself.
type AuthorityClassifier struct {
	primaryMap   map[string]bool
	secondaryMap map[string]bool
}

// defaultPrimaryDomains are official and academic sources
var defaultPrimaryDomains = []string{
	"nasa.gov", "who.int", "un.org", "europa.eu", "nih.gov", "cdc.gov",
	"nature.com", "science.org", "arxiv.org",
}

// defaultSecondaryDomains are encyclopedias and major news publishers
var defaultSecondaryDomains = []string{
	"wikipedia.org", "britannica.com", "reuters.com", "apnews.com",
	"bbc.com", "bbc.co.uk", "nytimes.com", "theguardian.com",
	"washingtonpost.com", "aljazeera.com", "snopes.com", "factcheck.org",
	"politifact.com",
}

// NewAuthorityClassifier creates a classifier with the default domain lists
func NewAuthorityClassifier() *AuthorityClassifier {
	c := &AuthorityClassifier{
		primaryMap:   make(map[string]bool),
		secondaryMap: make(map[string]bool),
	}
	for _, domain := range defaultPrimaryDomains {
		c.primaryMap[domain] = true
	}
	for _, domain := range defaultSecondaryDomains {
		c.secondaryMap[domain] = true
	}
	return c
}

// Classify classifies a URL into an authority tier
func (c *AuthorityClassifier) Classify(rawURL string) model.AuthorityTier {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return model.TierTertiary
	}

	host := parsed.Hostname()

	if matchesDomain(host, c.primaryMap) {
		return model.TierPrimary
	}
	if matchesDomain(host, c.secondaryMap) {
		return model.TierSecondary
	}

	// Common TLDs that indicate official or academic authority
	if strings.HasSuffix(host, ".gov") || strings.HasSuffix(host, ".edu") ||
		strings.HasSuffix(host, ".ac.uk") {
		return model.TierPrimary
	}

	return model.TierTertiary
}

// matchesDomain checks host against a domain set, including subdomains
// (e.g., en.wikipedia.org matches wikipedia.org)
func matchesDomain(host string, domains map[string]bool) bool {
	if domains[host] {
		return true
	}
	for domain := range domains {
		if strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

// SortByAuthority orders evidence best-first: primary, secondary, tertiary,
// unknown. The sort is stable, so search-result order is preserved within a
// tier.
func SortByAuthority(items []model.EvidenceItem) []model.EvidenceItem {
	sort.SliceStable(items, func(i, j int) bool {
		return tierRank(items[i].Authority) < tierRank(items[j].Authority)
	})
	return items
}

func tierRank(t model.AuthorityTier) int {
	switch t {
	case model.TierPrimary:
		return 0
	case model.TierSecondary:
		return 1
	case model.TierTertiary:
		return 2
	default:
		return 3
	}
}
