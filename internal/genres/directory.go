// Package genres maintains the process-lifetime genre name to id directory.
package genres

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/lepinkainen/anisuggest/internal/jikan"
)

// Lister fetches the upstream genre list.
type Lister interface {
	ListGenres(ctx context.Context) ([]jikan.Genre, error)
}

// Directory maps case-folded genre names to their upstream ids. It is
// populated at most once per process; a failed populate is not cached,
// so the next call retries the upstream fetch.
type Directory struct {
	lister Lister

	mu        sync.Mutex
	nameToID  map[string]int
	populated bool
}

// NewDirectory creates an unpopulated directory over the given lister.
func NewDirectory(lister Lister) *Directory {
	return &Directory{lister: lister}
}

// Populate fetches the genre list if it has not been fetched yet.
// Useful for warming the directory before the first recommendation.
func (d *Directory) Populate(ctx context.Context) error {
	_, err := d.ensurePopulated(ctx)
	return err
}

// Resolve maps genre names to ids, preserving input order and silently
// dropping names the upstream does not know. When the directory cannot
// be populated it returns nil; callers must treat that as
// "recommendations unavailable", not as zero genres.
func (d *Directory) Resolve(ctx context.Context, names []string) []int {
	mapping, err := d.ensurePopulated(ctx)
	if err != nil {
		slog.Error("Genre directory unavailable", "error", err)
		return nil
	}

	ids := make([]int, 0, len(names))
	for _, name := range names {
		if id, ok := mapping[strings.ToLower(name)]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func (d *Directory) ensurePopulated(ctx context.Context) (map[string]int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.populated {
		return d.nameToID, nil
	}

	list, err := d.lister.ListGenres(ctx)
	if err != nil {
		return nil, err
	}

	mapping := make(map[string]int, len(list))
	for _, g := range list {
		mapping[strings.ToLower(g.Name)] = g.ID
	}

	d.nameToID = mapping
	d.populated = true
	slog.Info("Genre directory populated", "genres", len(mapping))

	return mapping, nil
}
