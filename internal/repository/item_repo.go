// filepath: internal/repository/item_repo.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"retrohub/internal/models"

	"github.com/Masterminds/squirrel"
)

// CreateItem inserts a demo item.
func (s *Repository) CreateItem(ctx context.Context, name string) (*models.Item, error) {
	query, args, err := s.Builder.Insert("items").Columns("name").Values(name).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert query: %w", err)
	}
	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to insert item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Item{ID: id, Name: name}, nil
}

// GetItem returns the item with the given id or ErrNotFound.
func (s *Repository) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	query, args, err := s.Builder.Select("id", "name").
		From("items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	var item models.Item
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&item.ID, &item.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}
