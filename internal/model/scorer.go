package model

import (
	"math"
	"sort"

	"github.com/actuallystonmai/recommendation-engine/internal/domain"
)

// ScoredCandidate pairs a candidate with its composite score.
type ScoredCandidate struct {
	Item  domain.Item
	Score float64
}

// Score computes the composite score of one candidate. It returns false when
// the candidate is pruned for being too far from the user's average rating.
func Score(item domain.Item, credits *domain.Credits, prefs *Preferences, p Params) (float64, bool) {
	if Pruned(item, prefs.AverageRating, p) {
		return 0, false
	}

	category := CategoryScore(item, prefs.CategoryAffinity)
	actor := ActorOverlap(credits, prefs.ActorIDs(), p.CastExamined)
	director := DirectorOverlap(credits, prefs.DirectorIDs(), p.DirectorJob)
	rating := RatingScore(item, prefs.AverageRating, p)

	w := p.Weights
	return w.Category*category + w.Actor*actor + w.Director*director + w.Rating*rating, true
}

// Pruned reports whether a rated item is too far from the average rating.
func Pruned(item domain.Item, avgRating float64, p Params) bool {
	return item.HasRating() && math.Abs(item.VoteAverage-avgRating) > p.RatingPruneThreshold
}

// CategoryScore sums the affinity weights of the item's categories.
func CategoryScore(item domain.Item, affinity map[int]float64) float64 {
	score := 0.0
	for _, g := range item.GenreIDs {
		score += affinity[g]
	}
	return score
}

// RatingScore is 1 at the average rating, falling linearly to 0 at
// RatingScale away. Unrated items get NeutralRatingScore.
func RatingScore(item domain.Item, avgRating float64, p Params) float64 {
	if !item.HasRating() {
		return p.NeutralRatingScore
	}
	return math.Max(0, 1-math.Abs(item.VoteAverage-avgRating)/p.RatingScale)
}

// ActorOverlap compares the first castExamined cast members with the
// favored actors.
func ActorOverlap(credits *domain.Credits, favored map[int64]struct{}, castExamined int) float64 {
	if credits == nil {
		return 0
	}
	cast := credits.Cast
	if len(cast) > castExamined {
		cast = cast[:castExamined]
	}
	return overlap(contributorIDs(cast), favored)
}

// DirectorOverlap compares the candidate's directors with the favored ones.
func DirectorOverlap(credits *domain.Credits, favored map[int64]struct{}, job string) float64 {
	if credits == nil {
		return 0
	}
	return overlap(contributorIDs(credits.CrewWithJob(job)), favored)
}

// overlap is |ids ∩ favored| / min(|ids|, |favored|), 0 if either is empty.
func overlap(ids []int64, favored map[int64]struct{}) float64 {
	if len(ids) == 0 || len(favored) == 0 {
		return 0
	}
	hits := 0
	for _, id := range ids {
		if _, ok := favored[id]; ok {
			hits++
		}
	}
	return float64(hits) / float64(min(len(ids), len(favored)))
}

func contributorIDs(refs []domain.ContributorRef) []int64 {
	ids := make([]int64, len(refs))
	for i, r := range refs {
		ids[i] = r.ID
	}
	return ids
}

// Rank sorts by score descending, keeping insertion order on ties, and
// keeps the first limit entries.
func Rank(scored []ScoredCandidate, limit int) []ScoredCandidate {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
