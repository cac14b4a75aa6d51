package jikan

// Genre is a single genre tag as returned by the API.
type Genre struct {
	ID   int    `json:"mal_id"`
	Name string `json:"name"`
}

// Anime is an immutable snapshot of one title as returned by the API.
type Anime struct {
	ID       int     `json:"mal_id"`
	Title    string  `json:"title"`
	Score    float64 `json:"score"`
	Genres   []Genre `json:"genres"`
	Synopsis string  `json:"synopsis"`
	URL      string  `json:"url"`
	Images   Images  `json:"images"`
}

// Images holds the poster image variants for a title.
type Images struct {
	JPG struct {
		ImageURL      string `json:"image_url"`
		LargeImageURL string `json:"large_image_url"`
	} `json:"jpg"`
}

// GenreIDs returns the title's genre ids in API order.
func (a Anime) GenreIDs() []int {
	ids := make([]int, 0, len(a.Genres))
	for _, g := range a.Genres {
		ids = append(ids, g.ID)
	}
	return ids
}

// GenreNames returns the title's genre names in API order.
func (a Anime) GenreNames() []string {
	names := make([]string, 0, len(a.Genres))
	for _, g := range a.Genres {
		names = append(names, g.Name)
	}
	return names
}

// ImageURL returns the best available poster URL, or "" if none.
func (a Anime) ImageURL() string {
	if a.Images.JPG.LargeImageURL != "" {
		return a.Images.JPG.LargeImageURL
	}
	return a.Images.JPG.ImageURL
}
