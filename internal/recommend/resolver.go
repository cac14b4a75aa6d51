package recommend

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lepinkainen/anisuggest/internal/errors"
	"github.com/lepinkainen/anisuggest/internal/jikan"
)

// searchPageSize bounds the free-text title search.
const searchPageSize = 10

// TitleSearcher is the free-text search slice of the Jikan client.
type TitleSearcher interface {
	SearchAnime(ctx context.Context, query string, limit int) ([]jikan.Anime, error)
}

// Resolver resolves a free-text query to its best-matching title.
type Resolver struct {
	client TitleSearcher
}

// NewResolver creates a Resolver over the given search client.
func NewResolver(client TitleSearcher) *Resolver {
	return &Resolver{client: client}
}

// Resolve returns the first-ranked search result for query verbatim, with
// no re-ranking or fuzzy matching. Zero matches and upstream failures both
// collapse to ErrNotFound; callers cannot tell "no such title" from
// "service unavailable" at this layer.
func (r *Resolver) Resolve(ctx context.Context, query string) (*jikan.Anime, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.ErrNotFound
	}

	results, err := r.client.SearchAnime(ctx, query, searchPageSize)
	if err != nil {
		slog.Error("Title search failed", "query", query, "error", err)
		return nil, errors.ErrNotFound
	}
	if len(results) == 0 {
		return nil, errors.ErrNotFound
	}

	anime := results[0]
	return &anime, nil
}
