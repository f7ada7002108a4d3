// filepath: internal/services/services_test.go
package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"retrohub/internal/config"
	"retrohub/internal/db/migrations"
	"retrohub/internal/models"
	"retrohub/internal/repository"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type auditorMock struct {
	mock.Mock
}

func (m *auditorMock) Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{}) {
	m.Called(ctx, action, actor, resource, details)
}

// newAuditor returns an auditor that accepts any event.
func newAuditor() *auditorMock {
	a := &auditorMock{}
	a.On("Log", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()
	return a
}

// setupIntegrationTest creates a migrated repository backed by a temp file.
func setupIntegrationTest(t *testing.T) *repository.Repository {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Path = filepath.Join(t.TempDir(), "test.db")

	repo, err := repository.NewRepository(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		t.Fatalf("Failed to set goose dialect: %v", err)
	}
	if err := goose.Up(repo.DB, "."); err != nil {
		t.Fatalf("Failed to migrate integration DB: %v", err)
	}
	return repo
}

func date(t *testing.T, s string) *models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return &d
}

func fixedClock(s string) func() time.Time {
	return func() time.Time {
		t, _ := time.Parse(models.DateLayout, s)
		return t.Add(15 * time.Hour)
	}
}
