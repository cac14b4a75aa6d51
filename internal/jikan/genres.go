package jikan

import (
	"context"
	"fmt"
)

// ListGenres fetches the full anime genre list from the API.
func (c *Client) ListGenres(ctx context.Context) ([]Genre, error) {
	endpoint := fmt.Sprintf("%s/genres/anime", c.baseURL)

	var response struct {
		Data []Genre `json:"data"`
	}

	if err := c.getJSON(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}
