package seeds

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/actuallystonmai/recommendation-engine/internal/domain"
	"github.com/actuallystonmai/recommendation-engine/internal/logging"
)

const (
	demoWatchedCount   = 5
	demoWatchlistCount = 3
)

// ListWriter overwrites a user's list in the interaction store.
type ListWriter interface {
	ReplaceItems(ctx context.Context, userID string, kind domain.ListKind, items []domain.Item) error
}

// Setup writes a deterministic demo watched list and watchlist for userID,
// drawn from the bundled seed movies. Existing lists of that user are
// replaced.
func Setup(ctx context.Context, store ListWriter, userID string) error {
	rng := rand.New(rand.NewSource(42))
	log := logging.Component("seed")

	movies := DemoMovies()
	perm := rng.Perm(len(movies))

	watched := make([]domain.Item, 0, demoWatchedCount)
	for _, idx := range perm[:demoWatchedCount] {
		watched = append(watched, movies[idx])
	}
	watchlist := make([]domain.Item, 0, demoWatchlistCount)
	for _, idx := range perm[demoWatchedCount : demoWatchedCount+demoWatchlistCount] {
		watchlist = append(watchlist, movies[idx])
	}

	log.Info().Str("user_id", userID).Int("count", len(watched)).Msg("inserting watched list")
	if err := store.ReplaceItems(ctx, userID, domain.ListWatched, watched); err != nil {
		return fmt.Errorf("seed watched: %w", err)
	}

	log.Info().Str("user_id", userID).Int("count", len(watchlist)).Msg("inserting watchlist")
	if err := store.ReplaceItems(ctx, userID, domain.ListWatchlist, watchlist); err != nil {
		return fmt.Errorf("seed watchlist: %w", err)
	}

	log.Info().Msg("seeding complete")
	return nil
}
