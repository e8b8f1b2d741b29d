package catalog

import (
	"math"
	"strconv"

	"github.com/actuallystonmai/recommendation-engine/internal/domain"
)

// Normalize maps a loosely typed catalog or client payload onto domain.Item.
// Films carry title/release_date, series carry name/first_air_date; missing
// or mistyped fields fall back to neutral values (empty text, rating 0, no
// genres). ok is false only when the payload has no usable identifier.
func Normalize(raw map[string]any) (domain.Item, bool) {
	if raw == nil {
		return domain.Item{}, false
	}
	id, ok := toInt64(raw["id"])
	if !ok || id <= 0 {
		return domain.Item{}, false
	}

	item := domain.Item{
		ID:          id,
		Title:       firstString(raw, "title", "name"),
		Overview:    firstString(raw, "overview"),
		ReleaseDate: firstString(raw, "release_date", "first_air_date"),
		GenreIDs:    []int{},
	}
	if p := firstString(raw, "poster_path"); p != "" {
		item.PosterPath = &p
	}
	if v, ok := raw["vote_average"].(float64); ok && !math.IsNaN(v) {
		item.VoteAverage = v
	}
	if genres, ok := raw["genre_ids"].([]any); ok {
		for _, g := range genres {
			if gid, ok := toInt64(g); ok {
				item.GenreIDs = append(item.GenreIDs, int(gid))
			}
		}
	}
	return item, true
}

// NormalizeAll normalizes a result list, dropping entries without an id.
func NormalizeAll(raws []map[string]any) []domain.Item {
	items := make([]domain.Item, 0, len(raws))
	for _, raw := range raws {
		if it, ok := Normalize(raw); ok {
			items = append(items, it)
		}
	}
	return items
}

func firstString(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := raw[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}
