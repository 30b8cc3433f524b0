package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/HugoBiegas/Veille-technologique/internal/article"
	"github.com/HugoBiegas/Veille-technologique/internal/config"
)

// Document is the published per-niche JSON contract.
type Document struct {
	LastUpdated string        `json:"last_updated"`
	Total       int           `json:"total_articles"`
	Articles    []article.Raw `json:"articles"`
}

type Fetcher interface {
	Fetch(ctx context.Context, source config.Source) ([]article.Article, error)
}

// HTTPFetcher retrieves one niche's document and normalizes its records.
type HTTPFetcher struct {
	client *http.Client
}

func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{client: &http.Client{Timeout: 20 * time.Second}}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, source config.Source) ([]article.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", source.Niche, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", source.Niche, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", source.Niche, resp.StatusCode)
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing %s document: %w", source.Niche, err)
	}

	niche, err := article.ParseNiche(source.Niche)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", source.Niche, err)
	}

	articles := make([]article.Article, 0, len(doc.Articles))
	for _, raw := range doc.Articles {
		a, ok := article.Normalize(raw, niche)
		if !ok {
			continue
		}
		articles = append(articles, a)
	}
	return articles, nil
}

// Result carries the merged articles of one aggregation cycle. Failures
// are per-niche diagnostics, never a reason to abort: an all-sources
// failure is just an empty result.
type Result struct {
	Articles []article.Article
	Failures []error
}

// FetchAll retrieves every configured source concurrently. A retrieval or
// parse failure for one niche is logged and downgraded to an empty
// contribution for that niche.
func FetchAll(ctx context.Context, fetcher Fetcher, sources []config.Source) Result {
	var (
		mu     sync.Mutex
		result Result
		wg     sync.WaitGroup
	)

	for _, src := range sources {
		wg.Add(1)
		go func(s config.Source) {
			defer wg.Done()
			articles, err := fetcher.Fetch(ctx, s)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Warn("source unavailable", "niche", s.Niche, "err", err)
				result.Failures = append(result.Failures, err)
				return
			}
			result.Articles = append(result.Articles, articles...)
		}(src)
	}

	wg.Wait()
	return result
}
