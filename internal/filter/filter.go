// Package filter applies user criteria to an in-memory article
// collection. Apply is pure: its input is never reordered or mutated.
package filter

import (
	"sort"
	"strings"

	"github.com/HugoBiegas/Veille-technologique/internal/article"
)

type SortKey string

const (
	SortDate      SortKey = "date"
	SortRelevance SortKey = "relevance"
	SortSource    SortKey = "source"
)

// Criteria is the current filter/sort state. Owned by the view
// controller; mutated only by explicit user actions.
type Criteria struct {
	Niche         article.Niche
	Query         string
	SortBy        SortKey
	FavoritesOnly bool
}

func DefaultCriteria() Criteria {
	return Criteria{Niche: article.NicheAll, SortBy: SortDate}
}

// Favorites is the live lookup into the preference store. Reads happen
// at filter time, so a toggle is visible on the very next pass.
type Favorites interface {
	IsFavorite(id string) bool
}

// Apply filters then stably sorts. Stage order is fixed: niche, text,
// favorites, sort. An unrecognized sort key leaves the order untouched.
func Apply(articles []article.Article, c Criteria, favs Favorites) []article.Article {
	out := make([]article.Article, 0, len(articles))
	query := strings.ToLower(strings.TrimSpace(c.Query))

	for _, a := range articles {
		if c.Niche != "" && c.Niche != article.NicheAll && a.Niche != c.Niche {
			continue
		}
		if query != "" && !matches(a, query) {
			continue
		}
		if c.FavoritesOnly && (favs == nil || !favs.IsFavorite(a.ID)) {
			continue
		}
		out = append(out, a)
	}

	switch c.SortBy {
	case SortDate:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Published.After(out[j].Published)
		})
	case SortRelevance:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Score > out[j].Score
		})
	case SortSource:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Source < out[j].Source
		})
	}

	return out
}

// matches reports whether the lowercased query is a substring of the
// title, the description or any keyword.
func matches(a article.Article, query string) bool {
	if strings.Contains(strings.ToLower(a.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Description), query) {
		return true
	}
	for _, k := range a.Keywords {
		if strings.Contains(strings.ToLower(k), query) {
			return true
		}
	}
	return false
}
