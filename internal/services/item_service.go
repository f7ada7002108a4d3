// filepath: internal/services/item_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"retrohub/internal/models"
	"retrohub/internal/repository"
)

// MaxItemNameLength bounds demo item names, in characters.
const MaxItemNameLength = 100

var _ ItemService = (*itemService)(nil)

type itemService struct {
	Repo ItemRepository
}

// NewItemService creates a new ItemService.
func NewItemService(repo ItemRepository) *itemService {
	return &itemService{Repo: repo}
}

func (s *itemService) CreateItem(ctx context.Context, name string) (*models.Item, error) {
	if n := utf8.RuneCountInString(name); n == 0 || n > MaxItemNameLength {
		return nil, invalid(fmt.Sprintf("name must be 1..%d chars", MaxItemNameLength))
	}
	item, err := s.Repo.CreateItem(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return item, nil
}

func (s *itemService) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	item, err := s.Repo.GetItem(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("item not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item %d: %w", id, err)
	}
	return item, nil
}
