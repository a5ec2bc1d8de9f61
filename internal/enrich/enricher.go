package enrich

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode"

	"github.com/abhindeves/fake-news-detector/internal/model"
	"github.com/abhindeves/fake-news-detector/internal/util"
	"github.com/abhindeves/fake-news-detector/internal/worker"
	"golang.org/x/net/html"
)

// Enricher replaces short search snippets with longer excerpts fetched from
// the evidence pages themselves. Fetches respect robots.txt and per-host rate
// limits; any failure leaves the original snippet untouched.
type Enricher struct {
	httpClient *http.Client
	robots     *util.RobotsChecker
	limiter    *worker.Limiter
	userAgent  string
	maxBytes   int64
	maxExcerpt int
}

// NewEnricher creates a new enricher from configuration
func NewEnricher(cfg model.EnrichConfig) *Enricher {
	return &Enricher{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		robots:     util.NewRobotsChecker(util.NormalizeUserAgent(cfg.UserAgent), cfg.Timeout),
		limiter:    worker.NewLimiter(1.0, 2),
		userAgent:  cfg.UserAgent,
		maxBytes:   cfg.MaxBodyBytes,
		maxExcerpt: cfg.MaxExcerpt,
	}
}

type enrichOutcome struct {
	item model.EvidenceItem
	err  error
}

func (o enrichOutcome) Err() error { return o.err }

// EnrichSet fetches page text for every evidence item in the set,
// concurrently across items. The returned set has the same keys and ordering;
// items whose fetch failed are carried over unchanged.
func (e *Enricher) EnrichSet(ctx context.Context, set model.EvidenceSet) model.EvidenceSet {
	type slot struct {
		assumption model.Assumption
		index      int
	}

	var tasks []worker.Task
	var slots []slot
	for assumption, items := range set {
		for i, item := range items {
			it := item
			tasks = append(tasks, worker.TaskFunc(func(ctx context.Context) worker.Outcome {
				enriched, err := e.enrichItem(ctx, it)
				if err != nil {
					return enrichOutcome{item: it, err: err}
				}
				return enrichOutcome{item: enriched}
			}))
			slots = append(slots, slot{assumption: assumption, index: i})
		}
	}

	outcomes := worker.NewPool(4).Run(ctx, tasks)

	enriched := make(model.EvidenceSet, len(set))
	for assumption, items := range set {
		copied := make([]model.EvidenceItem, len(items))
		copy(copied, items)
		enriched[assumption] = copied
	}
	for i, outcome := range outcomes {
		o, ok := outcome.(enrichOutcome)
		if !ok || o.err != nil {
			continue
		}
		s := slots[i]
		enriched[s.assumption][s.index] = o.item
	}

	return enriched
}

// enrichItem fetches one evidence page and swaps its snippet for an excerpt
func (e *Enricher) enrichItem(ctx context.Context, item model.EvidenceItem) (model.EvidenceItem, error) {
	allowed, crawlDelay, err := e.robots.CanFetch(ctx, item.URL)
	if err != nil {
		return item, err
	}
	if !allowed {
		return item, fmt.Errorf("disallowed by robots.txt: %s", item.URL)
	}

	if err := e.limiter.WaitWithDelay(ctx, item.URL, crawlDelay); err != nil {
		return item, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, item.URL, nil)
	if err != nil {
		return item, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return item, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return item, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, e.maxBytes))
	if err != nil {
		return item, fmt.Errorf("read body: %w", err)
	}

	excerpt := Excerpt(string(body), e.maxExcerpt)
	if excerpt == "" {
		return item, fmt.Errorf("no visible text: %s", item.URL)
	}

	item.Snippet = excerpt
	item.Enriched = true
	return item, nil
}

// Excerpt parses HTML and returns up to limit characters of visible text
func Excerpt(htmlContent string, limit int) string {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return ""
	}

	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if buf.Len() > limit {
			return
		}
		if n.Type == html.ElementNode {
			// Skip non-content elements
			switch n.Data {
			case "script", "style", "noscript", "iframe", "nav", "footer", "header":
				return
			}
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	text := strings.TrimSpace(buf.String())
	if len(text) <= limit {
		return text
	}

	// Cut at a word boundary
	cut := limit
	for cut > 0 && !unicode.IsSpace(rune(text[cut-1])) {
		cut--
	}
	if cut == 0 {
		cut = limit
	}
	return strings.TrimSpace(text[:cut])
}
