package service

import (
	"context"
	"strings"

	"github.com/actuallystonmai/recommendation-engine/internal/domain"
)

// PopularMovies returns the catalog's popular listing, or the seed list when
// the catalog is unreachable.
func (s *Service) PopularMovies(ctx context.Context) []domain.Item {
	if items, ok := s.catalog.Popular(ctx); ok {
		return truncate(items, s.opts.Params.ResultLimit)
	}
	return s.opts.Seeds
}

// SearchMovies runs a catalog title search. When the catalog is unreachable
// the seed list is filtered by title instead.
func (s *Service) SearchMovies(ctx context.Context, query string) []domain.Item {
	if items, ok := s.catalog.Search(ctx, query); ok {
		return items
	}

	q := strings.ToLower(query)
	out := []domain.Item{}
	for _, it := range s.opts.Seeds {
		if strings.Contains(strings.ToLower(it.Title), q) {
			out = append(out, it)
		}
	}
	return out
}
