package model

// EvidenceItem represents one web search hit gathered for an assumption
type EvidenceItem struct {
	Title     string        `json:"title"`               // Result title
	URL       string        `json:"url"`                 // Full absolute URL
	Snippet   string        `json:"snippet"`             // Short content excerpt from the search backend
	Host      string        `json:"host,omitempty"`      // Domain name
	Authority AuthorityTier `json:"authority,omitempty"` // Source authority classification
	Enriched  bool          `json:"enriched,omitempty"`  // Whether the snippet was replaced by fetched page text
}

// EvidenceSet maps each assumption to its gathered evidence, in search-result
// order. An assumption whose fetch failed maps to an empty slice, never to a
// missing key. Immutable after the gathering phase completes.
type EvidenceSet map[Assumption][]EvidenceItem

// AuthorityTier represents the classification of source authority
type AuthorityTier int

const (
	TierUnknown   AuthorityTier = 0 // Not yet classified
	TierPrimary   AuthorityTier = 1 // Government, academic, official documents
	TierSecondary AuthorityTier = 2 // Encyclopedias, major publishers, reputable media
	TierTertiary  AuthorityTier = 3 // Blogs, personal websites, content farms
)

func (t AuthorityTier) String() string {
	switch t {
	case TierPrimary:
		return "primary"
	case TierSecondary:
		return "secondary"
	case TierTertiary:
		return "tertiary"
	default:
		return "unknown"
	}
}
