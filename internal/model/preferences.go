package model

import (
	"sort"

	"github.com/actuallystonmai/recommendation-engine/internal/domain"
)

// ContributorTally counts how often a contributor appears across the
// credits of the user's history.
type ContributorTally struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Preferences summarize a user's history.
type Preferences struct {
	TopCategories []int
	TopActors     []ContributorTally
	TopDirectors  []ContributorTally
	// CategoryAffinity is raw category count divided by the highest count.
	CategoryAffinity map[int]float64
	AverageRating    float64
}

// ActorIDs is the favored-actor set.
func (p *Preferences) ActorIDs() map[int64]struct{} {
	return tallyIDs(p.TopActors)
}

// DirectorIDs is the favored-director set.
func (p *Preferences) DirectorIDs() map[int64]struct{} {
	return tallyIDs(p.TopDirectors)
}

func tallyIDs(tallies []ContributorTally) map[int64]struct{} {
	set := make(map[int64]struct{}, len(tallies))
	for _, t := range tallies {
		set[t.ID] = struct{}{}
	}
	return set
}

// ExtractPreferences derives preferences from the watched items. credits is
// aligned with history by index; a nil entry means no credits were available
// for that item. It returns false for an empty history.
func ExtractPreferences(history []domain.Item, credits []*domain.Credits, p Params) (*Preferences, bool) {
	if len(history) == 0 {
		return nil, false
	}

	categories := newCounter[int]()
	ratingSum := 0.0
	for _, item := range history {
		ratingSum += item.VoteAverage
		for _, g := range item.GenreIDs {
			categories.add(g, "")
		}
	}

	actors := newCounter[int64]()
	directors := newCounter[int64]()
	for _, c := range credits {
		if c == nil {
			continue
		}
		for i, member := range c.Cast {
			if i >= p.CastPerRecord {
				break
			}
			actors.add(member.ID, member.Name)
		}
		for _, member := range c.CrewWithJob(p.DirectorJob) {
			directors.add(member.ID, member.Name)
		}
	}

	prefs := &Preferences{
		CategoryAffinity: normalizeCounts(categories),
		AverageRating:    ratingSum / float64(len(history)),
	}
	for _, t := range categories.top(p.TopCategories) {
		prefs.TopCategories = append(prefs.TopCategories, int(t.ID))
	}
	prefs.TopActors = contributorTallies(actors.top(p.TopActors))
	prefs.TopDirectors = contributorTallies(directors.top(p.TopDirectors))
	return prefs, true
}

// normalizeCounts scales counts so the most frequent key has weight 1.
func normalizeCounts[K int | int64](c *counter[K]) map[int]float64 {
	out := make(map[int]float64, len(c.order))
	highest := 0
	for _, e := range c.entries {
		if e.Count > highest {
			highest = e.Count
		}
	}
	if highest == 0 {
		return out
	}
	for k, e := range c.entries {
		out[int(k)] = float64(e.Count) / float64(highest)
	}
	return out
}

func contributorTallies[K int | int64](in []tallyEntry[K]) []ContributorTally {
	out := make([]ContributorTally, 0, len(in))
	for _, t := range in {
		name := t.Name
		if name == "" {
			name = "Unknown"
		}
		out = append(out, ContributorTally{ID: int64(t.ID), Name: name, Count: t.Count})
	}
	return out
}

type tallyEntry[K int | int64] struct {
	ID    K
	Name  string
	Count int
}

// counter is a tally that remembers first-insertion order so that ties in
// top() keep that order.
type counter[K int | int64] struct {
	order   []K
	entries map[K]*tallyEntry[K]
}

func newCounter[K int | int64]() *counter[K] {
	return &counter[K]{entries: make(map[K]*tallyEntry[K])}
}

func (c *counter[K]) add(id K, name string) {
	if id <= 0 {
		return
	}
	e, ok := c.entries[id]
	if !ok {
		e = &tallyEntry[K]{ID: id}
		c.entries[id] = e
		c.order = append(c.order, id)
	}
	e.Count++
	if e.Name == "" {
		e.Name = name
	}
}

func (c *counter[K]) top(n int) []tallyEntry[K] {
	all := make([]tallyEntry[K], 0, len(c.order))
	for _, id := range c.order {
		all = append(all, *c.entries[id])
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Count > all[j].Count
	})
	if n < len(all) {
		all = all[:n]
	}
	return all
}
