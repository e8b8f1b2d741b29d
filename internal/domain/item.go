package domain

// Item is the canonical shape of a catalog title. Catalog payloads with
// alternate field names are mapped onto it by catalog.Normalize.
type Item struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	PosterPath  *string `json:"poster_path"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	GenreIDs    []int   `json:"genre_ids"`
}

// HasRating reports whether the catalog supplied a usable rating.
func (i Item) HasRating() bool {
	return i.VoteAverage != 0
}

// IDSet collects the identifiers of items.
func IDSet(items []Item) map[int64]struct{} {
	set := make(map[int64]struct{}, len(items))
	for _, it := range items {
		set[it.ID] = struct{}{}
	}
	return set
}
