package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actuallystonmai/recommendation-engine/internal/catalog"
	"github.com/actuallystonmai/recommendation-engine/internal/domain"
	"github.com/actuallystonmai/recommendation-engine/internal/model"
	"github.com/actuallystonmai/recommendation-engine/seeds"
)

func newTestService(cat *fakeCatalog, credits fakeCredits, store *memoryStore) *Service {
	opts := DefaultOptions()
	opts.FetchConcurrency = 4
	return NewService(cat, credits, store, opts)
}

func TestDefaultOptionsMatchModelDefaults(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, model.DefaultParams(), opts.Params)
	assert.Equal(t, 15, opts.FilmographyLimit)
	assert.Equal(t, 200, opts.MinVoteCount)
	assert.Len(t, opts.Seeds, 12)
}

func TestRecommend_EmptyHistoryServesPopular(t *testing.T) {
	popular := make([]domain.Item, 25)
	for i := range popular {
		popular[i] = movie(int64(i+1), 7)
	}
	cat := &fakeCatalog{popular: popular, popularOK: true}
	svc := newTestService(cat, fakeCredits{}, newMemoryStore())

	res := svc.Recommend(context.Background(), "u1")

	assert.Equal(t, domain.SourcePopular, res.Source)
	assert.Equal(t, ReasonNoHistory, res.FallbackReason)
	assert.Equal(t, ids(popular[:20]), ids(res.Items))
	assert.Nil(t, cat.discoverQuery, "no discovery without history")
}

func TestRecommend_EmptyHistoryCatalogDownServesSeeds(t *testing.T) {
	svc := newTestService(&fakeCatalog{}, fakeCredits{}, newMemoryStore())

	res := svc.Recommend(context.Background(), "u1")

	assert.Equal(t, domain.SourceSeed, res.Source)
	assert.Equal(t, ids(seeds.DemoMovies()), ids(res.Items))
}

func TestRecommend_RatingProximityFilter(t *testing.T) {
	store := newMemoryStore()
	store.watch("u1", movie(1, 8.7, 18))

	x := movie(10, 8.5, 18)
	y := movie(11, 1.0, 99)
	cat := &fakeCatalog{discover: []domain.Item{x, y}, discoverOK: true}
	svc := newTestService(cat, fakeCredits{}, store)

	res := svc.Recommend(context.Background(), "u1")

	assert.Equal(t, domain.SourcePersonalized, res.Source)
	assert.Equal(t, []int64{10}, ids(res.Items))

	require.NotNil(t, cat.discoverQuery)
	assert.Equal(t, []int{18}, cat.discoverQuery.CategoryIDs)
	assert.Equal(t, 200, cat.discoverQuery.MinVoteCount)
	assert.Equal(t, catalog.SortPopularityDesc, cat.discoverQuery.SortBy)
}

func TestRecommend_ExclusionAndDedup(t *testing.T) {
	store := newMemoryStore()
	store.watch("u1", movie(1, 8, 18), movie(2, 8, 18))

	credits := fakeCredits{
		1: castOf(100),
		2: castOf(100),
		5: castOf(100),
		6: castOf(300),
	}
	cat := &fakeCatalog{
		discover:   []domain.Item{movie(5, 8, 18), movie(2, 8, 18)},
		discoverOK: true,
		filmographies: map[int64]*domain.Filmography{
			100: {Cast: []domain.Item{movie(1, 8, 18), movie(5, 8, 18), movie(6, 8, 18), movie(0, 8, 18)}},
		},
	}
	svc := newTestService(cat, credits, store)

	res := svc.Recommend(context.Background(), "u1")

	require.Equal(t, domain.SourcePersonalized, res.Source)
	assert.Equal(t, []int64{5, 6}, ids(res.Items), "actor overlap ranks 5 first; watched and duplicate ids dropped")
	assert.Equal(t, []int64{100}, cat.filmographyCalls)
}

func TestRecommend_FailedFilmographyIsSkipped(t *testing.T) {
	store := newMemoryStore()
	store.watch("u1", movie(1, 8, 18))

	credits := fakeCredits{1: castOf(100, 101)}
	cat := &fakeCatalog{
		discover:   []domain.Item{movie(7, 8, 18)},
		discoverOK: true,
		filmographies: map[int64]*domain.Filmography{
			101: {Cast: []domain.Item{movie(8, 8, 18)}},
		},
	}
	svc := newTestService(cat, credits, store)

	res := svc.Recommend(context.Background(), "u1")

	assert.Equal(t, domain.SourcePersonalized, res.Source)
	assert.ElementsMatch(t, []int64{7, 8}, ids(res.Items))
	assert.ElementsMatch(t, []int64{100, 101}, cat.filmographyCalls)
}

func TestRecommend_DirectorWorksOnly(t *testing.T) {
	store := newMemoryStore()
	store.watch("u1", movie(1, 8))

	credits := fakeCredits{1: {Crew: []domain.ContributorRef{{ID: 200, Name: "director", Job: "Director"}}}}
	cat := &fakeCatalog{
		filmographies: map[int64]*domain.Filmography{
			200: {Crew: []domain.CrewWork{
				{Item: movie(20, 8), Job: "Director"},
				{Item: movie(21, 8), Job: "Producer"},
			}},
		},
	}
	svc := newTestService(cat, credits, store)

	res := svc.Recommend(context.Background(), "u1")

	assert.Equal(t, domain.SourcePersonalized, res.Source)
	assert.Equal(t, []int64{20}, ids(res.Items))
	assert.Nil(t, cat.discoverQuery, "no tags means no discovery")
}

func TestRecommend_ResultLimit(t *testing.T) {
	store := newMemoryStore()
	store.watch("u1", movie(1, 8, 18))

	pool := make([]domain.Item, 30)
	for i := range pool {
		pool[i] = movie(int64(100+i), 8, 18)
	}
	svc := newTestService(&fakeCatalog{discover: pool, discoverOK: true}, fakeCredits{}, store)

	res := svc.Recommend(context.Background(), "u1")

	assert.Equal(t, domain.SourcePersonalized, res.Source)
	assert.Len(t, res.Items, 20)
	assert.Equal(t, ids(pool[:20]), ids(res.Items), "ties keep insertion order")
}

func TestRecommend_NoCandidatesFallbackExcludesWatched(t *testing.T) {
	store := newMemoryStore()
	store.watch("u1", movie(1, 8, 18))

	cat := &fakeCatalog{
		discover:   []domain.Item{},
		discoverOK: true,
		popular:    []domain.Item{movie(1, 8, 18), movie(2, 7, 35)},
		popularOK:  true,
	}
	svc := newTestService(cat, fakeCredits{}, store)

	res := svc.Recommend(context.Background(), "u1")

	assert.Equal(t, domain.SourcePopular, res.Source)
	assert.Equal(t, ReasonNoCandidates, res.FallbackReason)
	assert.Equal(t, []int64{2}, ids(res.Items))
}

func TestRecommend_AllPrunedFallsBack(t *testing.T) {
	store := newMemoryStore()
	store.watch("u1", movie(1, 8.7, 18))

	cat := &fakeCatalog{discover: []domain.Item{movie(3, 2, 18), movie(4, 5, 18)}, discoverOK: true}
	svc := newTestService(cat, fakeCredits{}, store)

	res := svc.Recommend(context.Background(), "u1")

	assert.Equal(t, domain.SourceSeed, res.Source)
	assert.Equal(t, ReasonNoScored, res.FallbackReason)
}

func TestRecommend_CatalogDownExcludesWatchedSeeds(t *testing.T) {
	store := newMemoryStore()
	store.watch("u1", seeds.DemoMovies()[0])
	svc := newTestService(&fakeCatalog{}, fakeCredits{}, store)

	res := svc.Recommend(context.Background(), "u1")

	assert.Equal(t, domain.SourceSeed, res.Source)
	assert.Len(t, res.Items, 11)
	assert.NotContains(t, ids(res.Items), seeds.DemoMovies()[0].ID)
}

func TestRecommend_StoreErrorFallsBack(t *testing.T) {
	store := newMemoryStore()
	store.listErr = errors.New("connection refused")
	svc := newTestService(&fakeCatalog{}, fakeCredits{}, store)

	res := svc.Recommend(context.Background(), "u1")

	assert.Equal(t, domain.SourceSeed, res.Source)
	assert.Equal(t, ReasonNoHistory, res.FallbackReason)
}

func TestRecommend_Idempotent(t *testing.T) {
	store := newMemoryStore()
	store.watch("u1", movie(1, 8, 18, 35), movie(2, 7.5, 18))

	credits := fakeCredits{1: castOf(100), 2: castOf(100, 101), 10: castOf(101), 11: castOf(100)}
	cat := &fakeCatalog{
		discover:   []domain.Item{movie(10, 7.9, 18), movie(11, 6, 35), movie(12, 0, 18)},
		discoverOK: true,
		filmographies: map[int64]*domain.Filmography{
			100: {Cast: []domain.Item{movie(13, 8, 18)}},
			101: {Cast: []domain.Item{movie(10, 7.9, 18), movie(14, 7, 99)}},
		},
	}
	svc := newTestService(cat, credits, store)

	first := svc.Recommend(context.Background(), "u1")
	second := svc.Recommend(context.Background(), "u1")

	assert.Equal(t, domain.SourcePersonalized, first.Source)
	assert.Equal(t, ids(first.Items), ids(second.Items))
	for _, it := range first.Items {
		assert.NotContains(t, []int64{1, 2}, it.ID)
	}
}

func TestPopularMovies(t *testing.T) {
	svc := newTestService(&fakeCatalog{popular: []domain.Item{movie(1, 7)}, popularOK: true}, fakeCredits{}, newMemoryStore())
	assert.Equal(t, []int64{1}, ids(svc.PopularMovies(context.Background())))

	down := newTestService(&fakeCatalog{}, fakeCredits{}, newMemoryStore())
	assert.Len(t, down.PopularMovies(context.Background()), 12)
}

func TestSearchMovies(t *testing.T) {
	svc := newTestService(&fakeCatalog{search: []domain.Item{movie(9, 7)}, searchOK: true}, fakeCredits{}, newMemoryStore())
	assert.Equal(t, []int64{9}, ids(svc.SearchMovies(context.Background(), "anything")))

	down := newTestService(&fakeCatalog{}, fakeCredits{}, newMemoryStore())
	got := down.SearchMovies(context.Background(), "the GODFATHER")
	assert.Equal(t, []int64{238}, ids(got))

	none := down.SearchMovies(context.Background(), "no such title")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestLists(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	svc := newTestService(&fakeCatalog{}, fakeCredits{}, store)

	require.NoError(t, svc.AddItem(ctx, "u1", domain.ListWatchlist, movie(5, 7)))
	require.NoError(t, svc.AddItem(ctx, "u1", domain.ListWatchlist, movie(5, 7)))

	items, err := svc.ListItems(ctx, "u1", domain.ListWatchlist)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, ids(items))

	require.NoError(t, svc.RemoveItem(ctx, "u1", domain.ListWatchlist, 5))
	require.NoError(t, svc.RemoveItem(ctx, "u1", domain.ListWatchlist, 5))
	items, err = svc.ListItems(ctx, "u1", domain.ListWatchlist)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListsValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&fakeCatalog{}, fakeCredits{}, newMemoryStore())

	assert.ErrorIs(t, svc.AddItem(ctx, "u1", domain.ListKind("favorites"), movie(1, 7)), domain.ErrInvalidListKind)
	assert.ErrorIs(t, svc.AddItem(ctx, "u1", domain.ListWatched, domain.Item{Title: "no id"}), domain.ErrInvalidItem)
	assert.ErrorIs(t, svc.RemoveItem(ctx, "u1", domain.ListWatched, 0), domain.ErrInvalidItem)

	_, err := svc.ListItems(ctx, "u1", domain.ListKind("favorites"))
	assert.ErrorIs(t, err, domain.ErrInvalidListKind)
}

func TestListsStoreError(t *testing.T) {
	store := newMemoryStore()
	store.listErr = errors.New("boom")
	svc := newTestService(&fakeCatalog{}, fakeCredits{}, store)

	_, err := svc.ListItems(context.Background(), "u1", domain.ListWatched)
	assert.ErrorContains(t, err, "boom")
}
