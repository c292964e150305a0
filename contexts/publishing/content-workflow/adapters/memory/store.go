package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"archivum/contexts/publishing/content-workflow/domain/entities"
	domainerrors "archivum/contexts/publishing/content-workflow/domain/errors"
	"archivum/contexts/publishing/content-workflow/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	items map[string]entities.ContentItem
}

func NewStore(seed []entities.ContentItem) *Store {
	items := make(map[string]entities.ContentItem, len(seed))
	for _, item := range seed {
		items[item.ItemID] = item
	}
	return &Store{items: items}
}

func (s *Store) CreateContentItem(_ context.Context, item entities.ContentItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[item.ItemID]; exists {
		return domainerrors.ErrInvalidInput
	}
	s.items[item.ItemID] = item
	return nil
}

// UpdateContentItem is a compare-and-swap on the stored state, mirroring the
// conditional write the postgres adapter issues.
func (s *Store) UpdateContentItem(_ context.Context, item entities.ContentItem, expectedState entities.ContentState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, exists := s.items[item.ItemID]
	if !exists {
		return domainerrors.ErrItemNotFound
	}
	if current.State != expectedState {
		return domainerrors.ErrInvalidState
	}
	s.items[item.ItemID] = item
	return nil
}

func (s *Store) GetContentItem(_ context.Context, itemID string) (entities.ContentItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.items[strings.TrimSpace(itemID)]
	if !exists {
		return entities.ContentItem{}, domainerrors.ErrItemNotFound
	}
	return item, nil
}

func (s *Store) ListContentItems(_ context.Context, filter ports.ContentFilter) ([]entities.ContentItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.ContentItem, 0, len(s.items))
	for _, item := range s.items {
		if strings.TrimSpace(filter.AuthorID) != "" && item.AuthorID != strings.TrimSpace(filter.AuthorID) {
			continue
		}
		if filter.Kind != "" && item.Kind != filter.Kind {
			continue
		}
		if filter.State != "" && item.State != filter.State {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return paginate(items, filter.Limit, filter.Offset), nil
}

func (s *Store) ListPendingApproval(_ context.Context, kind entities.ContentKind, limit, offset int) ([]entities.ContentItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.ContentItem, 0, len(s.items))
	for _, item := range s.items {
		if item.State != entities.ContentStatePendingApproval {
			continue
		}
		if kind != "" && item.Kind != kind {
			continue
		}
		items = append(items, item)
	}
	// Oldest submission first.
	sort.Slice(items, func(i, j int) bool {
		return submittedAt(items[i]).Before(submittedAt(items[j]))
	})
	return paginate(items, limit, offset), nil
}

func (s *Store) PurgeStaleDrafts(_ context.Context, before time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := 0
	for id, item := range s.items {
		if item.State != entities.ContentStateDraft {
			continue
		}
		if item.SubmittedAt != nil {
			continue
		}
		if item.UpdatedAt.Before(before) {
			delete(s.items, id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func submittedAt(item entities.ContentItem) time.Time {
	if item.SubmittedAt == nil {
		return time.Time{}
	}
	return *item.SubmittedAt
}

func paginate(items []entities.ContentItem, limit, offset int) []entities.ContentItem {
	if offset > 0 {
		if offset >= len(items) {
			return []entities.ContentItem{}
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
