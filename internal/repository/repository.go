package repository

import (
	"github.com/goccy/go-json"

	"github.com/actuallystonmai/recommendation-engine/internal/domain"
)

const maxTxRetries = 5

func decodeItems(raw []byte) ([]domain.Item, error) {
	if len(raw) == 0 {
		return []domain.Item{}, nil
	}
	var items []domain.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Item{}
	}
	return items, nil
}

// appendUnique adds item unless an item with the same id is present.
func appendUnique(items []domain.Item, item domain.Item) ([]domain.Item, bool) {
	for _, it := range items {
		if it.ID == item.ID {
			return items, false
		}
	}
	return append(items, item), true
}

// removeByID drops every item with the given id.
func removeByID(items []domain.Item, itemID int64) ([]domain.Item, bool) {
	out := make([]domain.Item, 0, len(items))
	for _, it := range items {
		if it.ID != itemID {
			out = append(out, it)
		}
	}
	return out, len(out) != len(items)
}
