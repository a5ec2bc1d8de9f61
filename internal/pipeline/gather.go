package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhindeves/fake-news-detector/internal/cache"
	"github.com/abhindeves/fake-news-detector/internal/model"
	"github.com/abhindeves/fake-news-detector/internal/search"
	"github.com/abhindeves/fake-news-detector/internal/worker"
)

// Gatherer fetches web evidence for every assumption concurrently. A failed
// fetch for one assumption degrades to an empty evidence slice and never
// aborts the others.
type Gatherer struct {
	provider   search.Provider
	cache      cache.Cache // nil disables caching
	pool       *worker.Pool
	maxResults int
}

// NewGatherer creates a new evidence gatherer. queryCache may be nil.
func NewGatherer(provider search.Provider, queryCache cache.Cache, workers, maxResults int) *Gatherer {
	if maxResults <= 0 {
		maxResults = 5
	}
	return &Gatherer{
		provider:   provider,
		cache:      queryCache,
		pool:       worker.NewPool(workers),
		maxResults: maxResults,
	}
}

type gatherOutcome struct {
	assumption model.Assumption
	items      []model.EvidenceItem
	err        error
}

func (o gatherOutcome) Err() error { return o.err }

// Gather launches one fetch per assumption and joins them all. The returned
// set always has exactly one entry per assumption; failures are logged and
// leave an empty slice.
func (g *Gatherer) Gather(ctx context.Context, assumptions []model.Assumption) model.EvidenceSet {
	tasks := make([]worker.Task, len(assumptions))
	for i, assumption := range assumptions {
		a := assumption
		tasks[i] = worker.TaskFunc(func(ctx context.Context) worker.Outcome {
			items, err := g.fetchOne(ctx, a)
			return gatherOutcome{assumption: a, items: items, err: err}
		})
	}

	outcomes := g.pool.Run(ctx, tasks)

	set := make(model.EvidenceSet, len(assumptions))
	for i, assumption := range assumptions {
		set[assumption] = []model.EvidenceItem{}

		o, ok := outcomes[i].(gatherOutcome)
		if !ok {
			// Task never started: the run was cancelled
			fmt.Fprintf(os.Stderr, "Warning: evidence fetch cancelled for %q\n", assumption)
			continue
		}
		if o.err != nil {
			fmt.Fprintf(os.Stderr, "Warning: evidence fetch failed for %q: %v\n", assumption, o.err)
			continue
		}
		if o.items != nil {
			set[assumption] = o.items
		}
	}

	return set
}

// fetchOne queries the search backend for one assumption, consulting the
// cache first
func (g *Gatherer) fetchOne(ctx context.Context, assumption model.Assumption) ([]model.EvidenceItem, error) {
	query := string(assumption)
	key := cache.QueryKey(g.provider.Name(), query)

	if g.cache != nil {
		if data, found := g.cache.Get(key); found {
			var items []model.EvidenceItem
			if err := json.Unmarshal(data, &items); err == nil {
				return items, nil
			}
			// Corrupt entry: drop it and fall through to a live fetch
			_ = g.cache.Delete(key)
		}
	}

	items, err := g.provider.Search(ctx, query, g.maxResults)
	if err != nil {
		return nil, err
	}

	if g.cache != nil {
		if data, err := json.Marshal(items); err == nil {
			_ = g.cache.Set(key, data, 0)
		}
	}

	return items, nil
}
