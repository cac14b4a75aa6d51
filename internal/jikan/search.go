package jikan

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// SearchAnime performs a free-text title search, returning at most limit
// results in the API's own ranking order.
func (c *Client) SearchAnime(ctx context.Context, query string, limit int) ([]Anime, error) {
	if limit <= 0 {
		limit = 1
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))

	endpoint := fmt.Sprintf("%s/anime?%s", c.baseURL, params.Encode())

	var response struct {
		Data []Anime `json:"data"`
	}

	if err := c.getJSON(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

// SearchByGenre performs a search scoped to a single genre id, with results
// pre-sorted by descending score.
func (c *Client) SearchByGenre(ctx context.Context, genreID, limit int) ([]Anime, error) {
	if limit <= 0 {
		limit = 1
	}

	params := url.Values{}
	params.Set("genres", strconv.Itoa(genreID))
	params.Set("order_by", "score")
	params.Set("sort", "desc")
	params.Set("limit", strconv.Itoa(limit))

	endpoint := fmt.Sprintf("%s/anime?%s", c.baseURL, params.Encode())

	var response struct {
		Data []Anime `json:"data"`
	}

	if err := c.getJSON(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}
