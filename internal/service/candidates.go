package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/actuallystonmai/recommendation-engine/internal/catalog"
	"github.com/actuallystonmai/recommendation-engine/internal/domain"
	"github.com/actuallystonmai/recommendation-engine/internal/model"
)

// candidatePool is an insertion-ordered set of items keyed by id. The first
// item added under an id wins.
type candidatePool struct {
	exclude map[int64]struct{}
	seen    map[int64]struct{}
	items   []domain.Item
}

func newCandidatePool(exclude map[int64]struct{}) *candidatePool {
	return &candidatePool{
		exclude: exclude,
		seen:    make(map[int64]struct{}),
	}
}

func (c *candidatePool) add(items ...domain.Item) {
	for _, it := range items {
		if it.ID <= 0 {
			continue
		}
		if _, ok := c.exclude[it.ID]; ok {
			continue
		}
		if _, ok := c.seen[it.ID]; ok {
			continue
		}
		c.seen[it.ID] = struct{}{}
		c.items = append(c.items, it)
	}
}

// generateCandidates assembles the pool from category discovery, favored
// actors' filmographies and favored directors' filmographies, in that order.
// Failed catalog calls contribute nothing.
func (s *Service) generateCandidates(ctx context.Context, prefs *model.Preferences, exclude map[int64]struct{}) []domain.Item {
	var (
		discovered []domain.Item
		actorWorks = make([]*domain.Filmography, len(prefs.TopActors))
		dirWorks   = make([]*domain.Filmography, len(prefs.TopDirectors))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.FetchConcurrency)

	if len(prefs.TopCategories) > 0 {
		g.Go(func() error {
			items, ok := s.catalog.Discover(gctx, catalog.DiscoverQuery{
				CategoryIDs:  prefs.TopCategories,
				MinVoteCount: s.opts.MinVoteCount,
				SortBy:       catalog.SortPopularityDesc,
			})
			if ok {
				discovered = items
			}
			return nil
		})
	}
	for i, actor := range prefs.TopActors {
		g.Go(func() error {
			if f, ok := s.catalog.Filmography(gctx, actor.ID); ok {
				actorWorks[i] = f
			}
			return nil
		})
	}
	for i, director := range prefs.TopDirectors {
		g.Go(func() error {
			if f, ok := s.catalog.Filmography(gctx, director.ID); ok {
				dirWorks[i] = f
			}
			return nil
		})
	}
	_ = g.Wait()

	pool := newCandidatePool(exclude)
	pool.add(discovered...)
	for _, f := range actorWorks {
		if f == nil {
			continue
		}
		cast := f.Cast
		if len(cast) > s.opts.FilmographyLimit {
			cast = cast[:s.opts.FilmographyLimit]
		}
		pool.add(cast...)
	}
	for _, f := range dirWorks {
		pool.add(f.WorksWithJob(s.opts.Params.DirectorJob, s.opts.FilmographyLimit)...)
	}
	return pool.items
}

// fetchCredits resolves credits for every id concurrently. The result is
// aligned with ids; entries are nil where the catalog had nothing.
func (s *Service) fetchCredits(ctx context.Context, ids []int64) []*domain.Credits {
	out := make([]*domain.Credits, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.FetchConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			if c, ok := s.credits.Get(gctx, id); ok {
				out[i] = c
			}
			return nil
		})
	}
	_ = g.Wait()
	return out
}
