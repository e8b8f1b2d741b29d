package service

import (
	"context"
	"fmt"

	"github.com/actuallystonmai/recommendation-engine/internal/domain"
)

func (s *Service) ListItems(ctx context.Context, userID string, kind domain.ListKind) ([]domain.Item, error) {
	if !kind.Valid() {
		return nil, domain.ErrInvalidListKind
	}
	items, err := s.store.ListItems(ctx, userID, kind)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	return items, nil
}

// AddItem stores item on the user's list. Adding an id already on the list
// leaves the list unchanged.
func (s *Service) AddItem(ctx context.Context, userID string, kind domain.ListKind, item domain.Item) error {
	if !kind.Valid() {
		return domain.ErrInvalidListKind
	}
	if item.ID <= 0 {
		return domain.ErrInvalidItem
	}
	added, err := s.store.AddItem(ctx, userID, kind, item)
	if err != nil {
		return fmt.Errorf("add to %s: %w", kind, err)
	}
	s.log.Debug().Str("user_id", userID).Str("list", string(kind)).Int64("item_id", item.ID).Bool("added", added).Msg("list add")
	return nil
}

// RemoveItem drops itemID from the user's list. Unknown ids are ignored.
func (s *Service) RemoveItem(ctx context.Context, userID string, kind domain.ListKind, itemID int64) error {
	if !kind.Valid() {
		return domain.ErrInvalidListKind
	}
	if itemID <= 0 {
		return domain.ErrInvalidItem
	}
	removed, err := s.store.RemoveItem(ctx, userID, kind, itemID)
	if err != nil {
		return fmt.Errorf("remove from %s: %w", kind, err)
	}
	s.log.Debug().Str("user_id", userID).Str("list", string(kind)).Int64("item_id", itemID).Bool("removed", removed).Msg("list remove")
	return nil
}
