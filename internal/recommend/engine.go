// Package recommend implements the genre-overlap recommendation engine.
package recommend

import (
	"context"
	"log/slog"
	"sort"

	"github.com/lepinkainen/anisuggest/internal/jikan"
)

const (
	// maxGenreQueries caps the number of genre-scoped searches per pass.
	maxGenreQueries = 7
	// genrePageSize is the fixed page size of each genre-scoped search.
	genrePageSize = 25
)

// GenreSearcher is the genre-scoped search slice of the Jikan client.
type GenreSearcher interface {
	SearchByGenre(ctx context.Context, genreID, limit int) ([]jikan.Anime, error)
}

// Engine aggregates genre-scoped searches into a ranked recommendation list.
type Engine struct {
	client GenreSearcher
}

// NewEngine creates an Engine over the given search client.
func NewEngine(client GenreSearcher) *Engine {
	return &Engine{client: client}
}

// candidate is the per-title aggregation state for one recommendation pass.
type candidate struct {
	title   string
	overlap int
	score   float64
}

// Recommend issues one genre-scoped search per seed genre id (at most the
// first seven, in caller order) and ranks the aggregated candidates by
// genre overlap, then score, stable with respect to first-sighting order.
// Inter-query pacing is enforced by the client's rate limiter.
//
// A failed genre query degrades the result and never aborts the pass; if
// every query fails the result is empty. The seed title itself is not
// excluded and may legitimately appear in its own recommendations.
func (e *Engine) Recommend(ctx context.Context, seedGenreIDs []int, limit int) []string {
	if len(seedGenreIDs) == 0 || limit < 1 {
		return nil
	}

	seedSet := make(map[int]struct{}, len(seedGenreIDs))
	for _, id := range seedGenreIDs {
		seedSet[id] = struct{}{}
	}

	queries := seedGenreIDs[:min(len(seedGenreIDs), maxGenreQueries)]

	recorded := make(map[int]struct{})
	var candidates []candidate

	for _, genreID := range queries {
		results, err := e.client.SearchByGenre(ctx, genreID, genrePageSize)
		if err != nil {
			slog.Error("Genre query failed", "genre_id", genreID, "error", err)
			continue
		}

		for _, anime := range results {
			// First genre query to surface a title wins; later sightings
			// are skipped, not merged.
			if _, ok := recorded[anime.ID]; ok {
				continue
			}

			// Overlap is computed against the full seed genre set, not just
			// the queried prefix. Genre-scoped membership does not guarantee
			// id-level overlap, so the zero check stays.
			overlap := 0
			for _, id := range anime.GenreIDs() {
				if _, ok := seedSet[id]; ok {
					overlap++
				}
			}
			if overlap == 0 {
				continue
			}

			recorded[anime.ID] = struct{}{}
			candidates = append(candidates, candidate{
				title:   anime.Title,
				overlap: overlap,
				score:   anime.Score,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].overlap != candidates[j].overlap {
			return candidates[i].overlap > candidates[j].overlap
		}
		return candidates[i].score > candidates[j].score
	})

	titles := make([]string, 0, min(len(candidates), limit))
	for _, c := range candidates[:min(len(candidates), limit)] {
		titles = append(titles, c.title)
	}
	return titles
}
