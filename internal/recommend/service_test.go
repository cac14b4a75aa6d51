package recommend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/anisuggest/internal/errors"
	"github.com/lepinkainen/anisuggest/internal/jikan"
)

// fakeJikan implements the full Client surface the service needs.
type fakeJikan struct {
	searchResults []jikan.Anime
	searchErr     error

	genreList []jikan.Genre
	listErr   error
	listCalls int

	byGenre    map[int][]jikan.Anime
	byGenreErr error
}

func (f *fakeJikan) SearchAnime(_ context.Context, _ string, _ int) ([]jikan.Anime, error) {
	return f.searchResults, f.searchErr
}

func (f *fakeJikan) ListGenres(_ context.Context) ([]jikan.Genre, error) {
	f.listCalls++
	return f.genreList, f.listErr
}

func (f *fakeJikan) SearchByGenre(_ context.Context, genreID, _ int) ([]jikan.Anime, error) {
	if f.byGenreErr != nil {
		return nil, f.byGenreErr
	}
	return f.byGenre[genreID], nil
}

func seedAnime() jikan.Anime {
	return jikan.Anime{
		ID:    20,
		Title: "Naruto",
		Score: 8.0,
		Genres: []jikan.Genre{
			{ID: 1, Name: "Action"},
			{ID: 2, Name: "Adventure"},
		},
	}
}

func TestSubmitSeedTitleSuccess(t *testing.T) {
	client := &fakeJikan{
		searchResults: []jikan.Anime{seedAnime()},
		genreList:     []jikan.Genre{{ID: 1, Name: "Action"}, {ID: 2, Name: "Adventure"}},
		byGenre: map[int][]jikan.Anime{
			1: {title(10, "Title10", 8.5, 1, 2)},
			2: {title(10, "Title10", 8.5, 1, 2), title(20, "Title20", 7.0, 2)},
		},
	}
	service := NewService(client, 5)

	result := service.SubmitSeedTitle(context.Background(), "naruto")

	require.NotNil(t, result.Title)
	assert.Equal(t, "Naruto", result.Title.Title)
	assert.Equal(t, []string{"Title10", "Title20"}, result.Recommendations)
	assert.Empty(t, result.Message, "success is silent")
}

func TestSubmitSeedTitleEmptyInput(t *testing.T) {
	service := NewService(&fakeJikan{}, 5)

	result := service.SubmitSeedTitle(context.Background(), "   ")

	assert.Nil(t, result.Title)
	assert.Nil(t, result.Recommendations)
	assert.Equal(t, "Please enter an anime name.", result.Message)
}

func TestSubmitSeedTitleNotFound(t *testing.T) {
	service := NewService(&fakeJikan{}, 5)

	result := service.SubmitSeedTitle(context.Background(), "nonexistent show")

	assert.Nil(t, result.Title)
	assert.Nil(t, result.Recommendations)
	assert.Equal(t, "Could not find details for 'nonexistent show'. Please try another name.", result.Message)
}

func TestSubmitSeedTitleUpstreamFailureReadsAsNotFound(t *testing.T) {
	client := &fakeJikan{searchErr: errors.NewHTTPStatusError("http://example.test/anime", 500)}
	service := NewService(client, 5)

	result := service.SubmitSeedTitle(context.Background(), "naruto")

	assert.Nil(t, result.Title)
	assert.Contains(t, result.Message, "Could not find details for 'naruto'")
}

func TestSubmitSeedTitleSeedWithoutGenres(t *testing.T) {
	client := &fakeJikan{searchResults: []jikan.Anime{{ID: 99, Title: "Obscure"}}}
	service := NewService(client, 5)

	result := service.SubmitSeedTitle(context.Background(), "obscure")

	require.NotNil(t, result.Title)
	assert.Nil(t, result.Recommendations)
	assert.Equal(t, "Could not find genres for your chosen anime, so no recommendations can be made.", result.Message)
}

func TestSubmitSeedTitleGenreDirectoryUnavailable(t *testing.T) {
	client := &fakeJikan{
		searchResults: []jikan.Anime{seedAnime()},
		listErr:       errors.NewHTTPStatusError("http://example.test/genres/anime", 503),
	}
	service := NewService(client, 5)

	result := service.SubmitSeedTitle(context.Background(), "naruto")

	require.NotNil(t, result.Title)
	assert.Nil(t, result.Recommendations)
	assert.Equal(t, "Could not find suitable recommendations based on your anime's genres.", result.Message)
}

func TestSubmitSeedTitleNoCandidates(t *testing.T) {
	client := &fakeJikan{
		searchResults: []jikan.Anime{seedAnime()},
		genreList:     []jikan.Genre{{ID: 1, Name: "Action"}, {ID: 2, Name: "Adventure"}},
		byGenreErr:    errors.NewHTTPStatusError("http://example.test/anime", 429),
	}
	service := NewService(client, 5)

	result := service.SubmitSeedTitle(context.Background(), "naruto")

	require.NotNil(t, result.Title)
	assert.Nil(t, result.Recommendations)
	assert.Equal(t, "Could not find suitable recommendations based on your anime's genres.", result.Message)
}

func TestSubmitSeedTitleHonorsLimit(t *testing.T) {
	client := &fakeJikan{
		searchResults: []jikan.Anime{seedAnime()},
		genreList:     []jikan.Genre{{ID: 1, Name: "Action"}, {ID: 2, Name: "Adventure"}},
		byGenre: map[int][]jikan.Anime{
			1: {
				title(10, "A", 9.0, 1),
				title(11, "B", 8.0, 1),
				title(12, "C", 7.0, 1),
			},
		},
	}
	service := NewService(client, 2)

	result := service.SubmitSeedTitle(context.Background(), "naruto")
	assert.Len(t, result.Recommendations, 2)
}

func TestWarmGenresPopulatesDirectoryOnce(t *testing.T) {
	client := &fakeJikan{genreList: []jikan.Genre{{ID: 1, Name: "Action"}}}
	service := NewService(client, 5)

	require.NoError(t, service.WarmGenres(context.Background()))
	require.NoError(t, service.WarmGenres(context.Background()))
	assert.Equal(t, 1, client.listCalls)
}

func TestSubmitSeedTitleMayRecommendTheSeedItself(t *testing.T) {
	seed := seedAnime()
	client := &fakeJikan{
		searchResults: []jikan.Anime{seed},
		genreList:     []jikan.Genre{{ID: 1, Name: "Action"}, {ID: 2, Name: "Adventure"}},
		byGenre: map[int][]jikan.Anime{
			1: {seed},
		},
	}
	service := NewService(client, 5)

	result := service.SubmitSeedTitle(context.Background(), "naruto")

	// No self-exclusion: the seed reappearing as a candidate is documented
	// behavior, not a bug.
	assert.Equal(t, []string{"Naruto"}, result.Recommendations)
}
