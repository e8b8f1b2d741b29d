package domain

import "fmt"

// ListKind names one of a user's item lists in the interaction store.
type ListKind string

const (
	ListWatched   ListKind = "watched"
	ListWatchlist ListKind = "watchlist"
)

// Valid reports whether k is a known list kind.
func (k ListKind) Valid() bool {
	return k == ListWatched || k == ListWatchlist
}

// Key is the storage key of the user's list, e.g. "watched:<user>".
func (k ListKind) Key(userID string) string {
	return fmt.Sprintf("%s:%s", k, userID)
}
