package service

import (
	"context"
	"sync"

	"github.com/actuallystonmai/recommendation-engine/internal/catalog"
	"github.com/actuallystonmai/recommendation-engine/internal/domain"
)

type fakeCatalog struct {
	mu sync.Mutex

	popular   []domain.Item
	popularOK bool

	search   []domain.Item
	searchOK bool

	discover      []domain.Item
	discoverOK    bool
	discoverQuery *catalog.DiscoverQuery

	// A contributor missing from the map fails.
	filmographies    map[int64]*domain.Filmography
	filmographyCalls []int64
}

func (f *fakeCatalog) Popular(context.Context) ([]domain.Item, bool) {
	return f.popular, f.popularOK
}

func (f *fakeCatalog) Search(context.Context, string) ([]domain.Item, bool) {
	return f.search, f.searchOK
}

func (f *fakeCatalog) Discover(_ context.Context, q catalog.DiscoverQuery) ([]domain.Item, bool) {
	f.mu.Lock()
	f.discoverQuery = &q
	f.mu.Unlock()
	return f.discover, f.discoverOK
}

func (f *fakeCatalog) Filmography(_ context.Context, id int64) (*domain.Filmography, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filmographyCalls = append(f.filmographyCalls, id)
	film, ok := f.filmographies[id]
	return film, ok
}

// fakeCredits serves credits from a fixed map; missing ids fail.
type fakeCredits map[int64]*domain.Credits

func (f fakeCredits) Get(_ context.Context, id int64) (*domain.Credits, bool) {
	c, ok := f[id]
	return c, ok
}

type memoryStore struct {
	mu      sync.Mutex
	lists   map[string][]domain.Item
	listErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{lists: make(map[string][]domain.Item)}
}

func (m *memoryStore) ListItems(_ context.Context, userID string, kind domain.ListKind) ([]domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]domain.Item{}, m.lists[kind.Key(userID)]...), nil
}

func (m *memoryStore) AddItem(_ context.Context, userID string, kind domain.ListKind, item domain.Item) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := kind.Key(userID)
	for _, it := range m.lists[key] {
		if it.ID == item.ID {
			return false, nil
		}
	}
	m.lists[key] = append(m.lists[key], item)
	return true, nil
}

func (m *memoryStore) RemoveItem(_ context.Context, userID string, kind domain.ListKind, itemID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := kind.Key(userID)
	var kept []domain.Item
	for _, it := range m.lists[key] {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	removed := len(kept) != len(m.lists[key])
	m.lists[key] = kept
	return removed, nil
}

func (m *memoryStore) watch(userID string, items ...domain.Item) {
	m.lists[domain.ListWatched.Key(userID)] = items
}

func movie(id int64, rating float64, genres ...int) domain.Item {
	return domain.Item{ID: id, Title: "movie", VoteAverage: rating, GenreIDs: genres}
}

func castOf(ids ...int64) *domain.Credits {
	c := &domain.Credits{}
	for _, id := range ids {
		c.Cast = append(c.Cast, domain.ContributorRef{ID: id, Name: "actor"})
	}
	return c
}

func ids(items []domain.Item) []int64 {
	out := make([]int64, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
