package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/actuallystonmai/recommendation-engine/internal/domain"
	"github.com/actuallystonmai/recommendation-engine/internal/metrics"
)

// fallback answers with the catalog's popular listing, or the bundled seed
// list when the catalog has none. Items in exclude are left out. It cannot
// fail.
func (s *Service) fallback(ctx context.Context, exclude map[int64]struct{}, reason string, log zerolog.Logger) *domain.RecommendationResult {
	metrics.RecommendFallbacks.WithLabelValues(reason).Inc()
	limit := s.opts.Params.ResultLimit

	if popular, ok := s.catalog.Popular(ctx); ok {
		items := truncate(withoutIDs(popular, exclude), limit)
		if len(items) > 0 {
			log.Info().Str("reason", reason).Str("source", string(domain.SourcePopular)).Msg("serving fallback")
			return &domain.RecommendationResult{Items: items, Source: domain.SourcePopular, FallbackReason: reason}
		}
	}

	log.Info().Str("reason", reason).Str("source", string(domain.SourceSeed)).Msg("serving fallback")
	return &domain.RecommendationResult{
		Items:          truncate(withoutIDs(s.opts.Seeds, exclude), limit),
		Source:         domain.SourceSeed,
		FallbackReason: reason,
	}
}

func withoutIDs(items []domain.Item, exclude map[int64]struct{}) []domain.Item {
	out := make([]domain.Item, 0, len(items))
	for _, it := range items {
		if _, ok := exclude[it.ID]; ok {
			continue
		}
		out = append(out, it)
	}
	return out
}

func truncate(items []domain.Item, limit int) []domain.Item {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
