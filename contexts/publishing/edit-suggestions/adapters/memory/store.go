package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"archivum/contexts/publishing/edit-suggestions/domain/entities"
	domainerrors "archivum/contexts/publishing/edit-suggestions/domain/errors"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	suggestions map[string]entities.EditSuggestion
}

func NewStore(seed []entities.EditSuggestion) *Store {
	suggestions := make(map[string]entities.EditSuggestion, len(seed))
	for _, item := range seed {
		suggestions[item.SuggestionID] = item
	}
	return &Store{suggestions: suggestions}
}

func (s *Store) CreateSuggestion(_ context.Context, suggestion entities.EditSuggestion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.suggestions[suggestion.SuggestionID]; exists {
		return domainerrors.ErrInvalidInput
	}
	s.suggestions[suggestion.SuggestionID] = suggestion
	return nil
}

func (s *Store) GetSuggestion(_ context.Context, suggestionID string) (entities.EditSuggestion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.suggestions[strings.TrimSpace(suggestionID)]
	if !exists {
		return entities.EditSuggestion{}, domainerrors.ErrSuggestionNotFound
	}
	return item, nil
}

// UpdateDecision swaps the row only while the stored decision is pending.
func (s *Store) UpdateDecision(_ context.Context, suggestion entities.EditSuggestion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, exists := s.suggestions[suggestion.SuggestionID]
	if !exists {
		return domainerrors.ErrSuggestionNotFound
	}
	if current.Decision != entities.SuggestionDecisionPending {
		return domainerrors.ErrInvalidState
	}
	s.suggestions[suggestion.SuggestionID] = suggestion
	return nil
}

func (s *Store) ListByItem(_ context.Context, itemID string) ([]entities.EditSuggestion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.EditSuggestion, 0)
	for _, item := range s.suggestions {
		if item.ContentItemID == strings.TrimSpace(itemID) {
			items = append(items, item)
		}
	}
	sortByCreated(items)
	return items, nil
}

func (s *Store) ListPendingForAuthor(_ context.Context, authorID string) ([]entities.EditSuggestion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.EditSuggestion, 0)
	for _, item := range s.suggestions {
		if item.ItemAuthorID == strings.TrimSpace(authorID) && item.Decision == entities.SuggestionDecisionPending {
			items = append(items, item)
		}
	}
	sortByCreated(items)
	return items, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func sortByCreated(items []entities.EditSuggestion) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}
