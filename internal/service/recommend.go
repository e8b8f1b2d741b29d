package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/actuallystonmai/recommendation-engine/internal/domain"
	"github.com/actuallystonmai/recommendation-engine/internal/metrics"
	"github.com/actuallystonmai/recommendation-engine/internal/model"
)

// Fallback reasons.
const (
	ReasonNoHistory    = "no_history"
	ReasonNoCandidates = "no_candidates"
	ReasonNoScored     = "no_scored_results"
)

// Recommend ranks unwatched items for userID from the user's watched list.
// It never fails for lack of data: an empty history, an empty candidate pool,
// an unreachable catalog or unreadable store all end in the fallback list.
func (s *Service) Recommend(ctx context.Context, userID string) *domain.RecommendationResult {
	start := time.Now()
	log := s.log.With().
		Str("request_id", uuid.NewString()).
		Str("user_id", userID).
		Logger()

	history, err := s.store.ListItems(ctx, userID, domain.ListWatched)
	if err != nil {
		log.Warn().Err(err).Msg("watched list unavailable, treating as empty")
		history = nil
	}

	result := s.recommend(ctx, history, log)

	metrics.RecommendDuration.WithLabelValues(string(result.Source)).Observe(time.Since(start).Seconds())
	log.Debug().
		Int("history", len(history)).
		Int("results", len(result.Items)).
		Str("source", string(result.Source)).
		Dur("elapsed", time.Since(start)).
		Msg("recommendation computed")
	return result
}

func (s *Service) recommend(ctx context.Context, history []domain.Item, log zerolog.Logger) *domain.RecommendationResult {
	p := s.opts.Params
	exclude := domain.IDSet(history)

	if len(history) == 0 {
		return s.fallback(ctx, exclude, ReasonNoHistory, log)
	}

	historyIDs := make([]int64, len(history))
	for i, it := range history {
		historyIDs[i] = it.ID
	}
	historyCredits := s.fetchCredits(ctx, historyIDs)

	prefs, ok := model.ExtractPreferences(history, historyCredits, p)
	if !ok {
		return s.fallback(ctx, exclude, ReasonNoHistory, log)
	}
	log.Debug().
		Ints("top_categories", prefs.TopCategories).
		Int("top_actors", len(prefs.TopActors)).
		Int("top_directors", len(prefs.TopDirectors)).
		Float64("average_rating", prefs.AverageRating).
		Msg("preferences extracted")

	pool := s.generateCandidates(ctx, prefs, exclude)
	metrics.CandidatePoolSize.Observe(float64(len(pool)))
	if len(pool) == 0 {
		return s.fallback(ctx, exclude, ReasonNoCandidates, log)
	}

	// Pruned candidates never need their credits.
	survivors := make([]domain.Item, 0, len(pool))
	for _, it := range pool {
		if !model.Pruned(it, prefs.AverageRating, p) {
			survivors = append(survivors, it)
		}
	}

	ids := make([]int64, len(survivors))
	for i, it := range survivors {
		ids[i] = it.ID
	}
	credits := s.fetchCredits(ctx, ids)

	scored := make([]model.ScoredCandidate, 0, len(survivors))
	for i, it := range survivors {
		score, ok := model.Score(it, credits[i], prefs, p)
		if !ok {
			continue
		}
		scored = append(scored, model.ScoredCandidate{Item: it, Score: score})
	}
	if len(scored) == 0 {
		return s.fallback(ctx, exclude, ReasonNoScored, log)
	}

	ranked := model.Rank(scored, p.ResultLimit)
	items := make([]domain.Item, len(ranked))
	for i, sc := range ranked {
		items[i] = sc.Item
	}
	return &domain.RecommendationResult{Items: items, Source: domain.SourcePersonalized}
}
