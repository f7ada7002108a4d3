// filepath: internal/services/retro_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"retrohub/internal/logging"
	"retrohub/internal/models"
	"retrohub/internal/repository"
)

const (
	// MaxRetroItems is the largest number of items a retro may hold.
	MaxRetroItems = 20
	// MaxItemFieldLength bounds every RetroItem field, in characters.
	MaxItemFieldLength = 2048
)

var _ RetroService = (*retroService)(nil)

type retroService struct {
	Repo    RetroRepository
	Auditor Auditor
	now     func() time.Time
}

// NewRetroService creates a new RetroService.
func NewRetroService(repo RetroRepository, auditor Auditor) *retroService {
	return &retroService{Repo: repo, Auditor: auditor, now: time.Now}
}

func (s *retroService) CreateRetro(ctx context.Context, payload models.RetroPayload) (*models.Retro, error) {
	date, items, err := s.validate(payload)
	if err != nil {
		return nil, err
	}

	retro, err := s.Repo.CreateRetro(ctx, date, items)
	if err != nil {
		return nil, fmt.Errorf("failed to create retro: %w", err)
	}

	logging.Log.Infof("Retro %d created for %s", retro.ID, retro.SessionDate)
	s.Auditor.Log(ctx, "retro.create", ActorFrom(ctx), retroResource(retro.ID), map[string]interface{}{
		"session_date": retro.SessionDate.String(),
		"items":        len(retro.Items),
	})
	return retro, nil
}

func (s *retroService) GetRetro(ctx context.Context, id int64) (*models.Retro, error) {
	retro, err := s.Repo.GetRetro(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, retroNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get retro %d: %w", id, err)
	}
	return retro, nil
}

// ListRetros returns retros whose session date lies in [from, to]. Either bound may be nil.
func (s *retroService) ListRetros(ctx context.Context, from, to *models.Date) ([]models.Retro, error) {
	if from != nil && to != nil && from.After(to.Time) {
		return []models.Retro{}, nil
	}
	retros, err := s.Repo.ListRetros(ctx, repository.RetroFilter{From: from, To: to})
	if err != nil {
		return nil, fmt.Errorf("failed to list retros: %w", err)
	}
	return retros, nil
}

func (s *retroService) UpdateRetro(ctx context.Context, id int64, payload models.RetroPayload) (*models.Retro, error) {
	date, items, err := s.validate(payload)
	if err != nil {
		return nil, err
	}

	retro := &models.Retro{ID: id, SessionDate: date, Items: items}
	err = s.Repo.UpdateRetro(ctx, retro)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, retroNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update retro %d: %w", id, err)
	}

	s.Auditor.Log(ctx, "retro.update", ActorFrom(ctx), retroResource(id), map[string]interface{}{
		"session_date": date.String(),
		"items":        len(items),
	})
	return retro, nil
}

func (s *retroService) DeleteRetro(ctx context.Context, id int64) error {
	err := s.Repo.DeleteRetro(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return retroNotFound(id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete retro %d: %w", id, err)
	}

	logging.Log.Infof("Retro %d deleted", id)
	s.Auditor.Log(ctx, "retro.delete", ActorFrom(ctx), retroResource(id), nil)
	return nil
}

// validate checks the payload and returns the date and the trimmed items.
func (s *retroService) validate(payload models.RetroPayload) (models.Date, []models.RetroItem, error) {
	if payload.SessionDate == nil {
		return models.Date{}, nil, invalid("session_date: field required")
	}
	if payload.Items == nil {
		return models.Date{}, nil, invalid("items: field required")
	}
	if len(payload.Items) > MaxRetroItems {
		return models.Date{}, nil, invalid(fmt.Sprintf("items: List should have at most %d items", MaxRetroItems))
	}

	items := make([]models.RetroItem, len(payload.Items))
	for i, item := range payload.Items {
		fields := []struct {
			name  string
			value *string
		}{
			{"what_went_well", &item.WhatWentWell},
			{"to_improve", &item.ToImprove},
			{"actions", &item.Actions},
		}
		for _, f := range fields {
			*f.value = strings.TrimSpace(*f.value)
			if err := checkLength(fmt.Sprintf("items[%d].%s", i, f.name), *f.value); err != nil {
				return models.Date{}, nil, err
			}
		}
		items[i] = item
	}

	today := models.NewDate(s.now())
	if payload.SessionDate.After(today.Time) {
		return models.Date{}, nil, invalid("Session date cannot be in the future")
	}
	return *payload.SessionDate, items, nil
}

func checkLength(field, value string) error {
	n := utf8.RuneCountInString(value)
	if n == 0 {
		return invalid(field + ": String should have at least 1 character")
	}
	if n > MaxItemFieldLength {
		return invalid(fmt.Sprintf("%s: String should have at most %d characters", field, MaxItemFieldLength))
	}
	return nil
}

func retroNotFound(id int64) error {
	return notFound(fmt.Sprintf("Retro with id=%d not found", id))
}

func retroResource(id int64) string {
	return fmt.Sprintf("Retro:%d", id)
}
