// filepath: internal/repository/retro_repo.go
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"retrohub/internal/models"

	"github.com/Masterminds/squirrel"
)

// RetroFilter restricts ListRetros to an inclusive date range. Nil bounds are open.
type RetroFilter struct {
	From *models.Date
	To   *models.Date
}

// CreateRetro inserts a retro and returns it with its new id.
func (s *Repository) CreateRetro(ctx context.Context, date models.Date, items []models.RetroItem) (*models.Retro, error) {
	itemsJSON, err := encodeItems(items)
	if err != nil {
		return nil, err
	}

	query, args, err := s.Builder.Insert("retros").
		Columns("session_date", "items").
		Values(date, itemsJSON).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert query: %w", err)
	}

	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to insert retro: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.Retro{ID: id, SessionDate: date, Items: nonNilItems(items)}, nil
}

// GetRetro returns the retro with the given id or ErrNotFound.
func (s *Repository) GetRetro(ctx context.Context, id int64) (*models.Retro, error) {
	query, args, err := s.Builder.Select("id", "session_date", "items").
		From("retros").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	retro, err := scanRetro(s.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return retro, err
}

// RetroExists reports whether a retro with the given id is stored.
func (s *Repository) RetroExists(ctx context.Context, id int64) (bool, error) {
	query, args, err := s.Builder.Select("1").
		From("retros").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build select query: %w", err)
	}

	var one int
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListRetros returns retros in insertion order, optionally filtered by date.
func (s *Repository) ListRetros(ctx context.Context, filter RetroFilter) ([]models.Retro, error) {
	q := s.Builder.Select("id", "session_date", "items").
		From("retros").
		OrderBy("id")
	if filter.From != nil {
		q = q.Where(squirrel.GtOrEq{"session_date": *filter.From})
	}
	if filter.To != nil {
		q = q.Where(squirrel.LtOrEq{"session_date": *filter.To})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query retros: %w", err)
	}
	defer rows.Close()

	retros := []models.Retro{}
	for rows.Next() {
		retro, err := scanRetro(rows)
		if err != nil {
			return nil, err
		}
		retros = append(retros, *retro)
	}
	return retros, rows.Err()
}

// UpdateRetro replaces the date and items of an existing retro.
func (s *Repository) UpdateRetro(ctx context.Context, retro *models.Retro) error {
	itemsJSON, err := encodeItems(retro.Items)
	if err != nil {
		return err
	}

	query, args, err := s.Builder.Update("retros").
		Set("session_date", retro.SessionDate).
		Set("items", itemsJSON).
		Where(squirrel.Eq{"id": retro.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update retro: %w", err)
	}
	return requireAffected(res)
}

// DeleteRetro removes a retro. Attachments on disk are not touched.
func (s *Repository) DeleteRetro(ctx context.Context, id int64) error {
	query, args, err := s.Builder.Delete("retros").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete retro: %w", err)
	}
	return requireAffected(res)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRetro(row rowScanner) (*models.Retro, error) {
	var (
		retro     models.Retro
		itemsJSON string
	)
	if err := row.Scan(&retro.ID, &retro.SessionDate, &itemsJSON); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(itemsJSON), &retro.Items); err != nil {
		return nil, fmt.Errorf("failed to decode items of retro %d: %w", retro.ID, err)
	}
	retro.Items = nonNilItems(retro.Items)
	return &retro, nil
}

func encodeItems(items []models.RetroItem) (string, error) {
	b, err := json.Marshal(nonNilItems(items))
	if err != nil {
		return "", fmt.Errorf("failed to encode items: %w", err)
	}
	return string(b), nil
}

func nonNilItems(items []models.RetroItem) []models.RetroItem {
	if items == nil {
		return []models.RetroItem{}
	}
	return items
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
