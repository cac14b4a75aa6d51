package recommend

import (
	"context"
	"fmt"
	"strings"

	"github.com/lepinkainen/anisuggest/internal/genres"
	"github.com/lepinkainen/anisuggest/internal/jikan"
)

// User-facing outcome messages. Success leaves Message empty.
const (
	msgEmptyInput = "Please enter an anime name."
	msgNoGenres   = "Could not find genres for your chosen anime, so no recommendations can be made."
	msgNoMatches  = "Could not find suitable recommendations based on your anime's genres."
)

// Client is the slice of the Jikan API the recommendation service uses.
type Client interface {
	TitleSearcher
	GenreSearcher
	genres.Lister
}

// Result is what the presentation layer renders: the resolved seed title,
// the ranked recommendation list, and a human-readable outcome message.
// Message is empty on full success.
type Result struct {
	Title           *jikan.Anime
	Recommendations []string
	Message         string
}

// Service is the single entry point the presentation layer calls. It wires
// the title resolver, the genre directory and the recommendation engine,
// and never returns an error: every failure mode degrades to a Result with
// a descriptive message.
type Service struct {
	resolver  *Resolver
	directory *genres.Directory
	engine    *Engine
	limit     int
}

// NewService creates a Service over the given client. limit is the number
// of recommendations returned per request.
func NewService(client Client, limit int) *Service {
	if limit < 1 {
		limit = 1
	}
	return &Service{
		resolver:  NewResolver(client),
		directory: genres.NewDirectory(client),
		engine:    NewEngine(client),
		limit:     limit,
	}
}

// WarmGenres populates the genre directory ahead of the first
// recommendation. Failures are tolerated; the directory retries on use.
func (s *Service) WarmGenres(ctx context.Context) error {
	return s.directory.Populate(ctx)
}

// SubmitSeedTitle resolves the seed title, derives its genre ids and
// produces the ranked recommendation list.
func (s *Service) SubmitSeedTitle(ctx context.Context, name string) Result {
	name = strings.TrimSpace(name)
	if name == "" {
		return Result{Message: msgEmptyInput}
	}

	seed, err := s.resolver.Resolve(ctx, name)
	if err != nil {
		// The resolver merges "no such title" and "upstream unavailable"
		// into ErrNotFound; both render the same way.
		return Result{Message: fmt.Sprintf("Could not find details for '%s'. Please try another name.", name)}
	}

	genreNames := seed.GenreNames()
	if len(genreNames) == 0 {
		return Result{Title: seed, Message: msgNoGenres}
	}

	seedGenreIDs := s.directory.Resolve(ctx, genreNames)
	recommendations := s.engine.Recommend(ctx, seedGenreIDs, s.limit)
	if len(recommendations) == 0 {
		return Result{Title: seed, Message: msgNoMatches}
	}

	return Result{Title: seed, Recommendations: recommendations}
}
