// filepath: internal/api/handlers/main_test.go
package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"retrohub/internal/config"
	"retrohub/internal/models"
	"retrohub/internal/services"
	"retrohub/internal/storage"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- MOCK AUDITOR ---
type MockAuditor struct {
	mock.Mock
}

var _ services.Auditor = (*MockAuditor)(nil)

func (m *MockAuditor) Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{}) {
	m.Called(ctx, action, actor, resource, details)
}

// --- MOCK INFO SERVICE ---
type MockInfoService struct {
	mock.Mock
}

var _ services.InfoService = (*MockInfoService)(nil)

func (m *MockInfoService) GetInfo() models.Info {
	args := m.Called()
	return args.Get(0).(models.Info)
}

// --- MOCK RETRO SERVICE ---
type MockRetroService struct {
	mock.Mock
}

var _ services.RetroService = (*MockRetroService)(nil)

func (m *MockRetroService) CreateRetro(ctx context.Context, payload models.RetroPayload) (*models.Retro, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Retro), args.Error(1)
}
func (m *MockRetroService) GetRetro(ctx context.Context, id int64) (*models.Retro, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Retro), args.Error(1)
}
func (m *MockRetroService) ListRetros(ctx context.Context, from, to *models.Date) ([]models.Retro, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Retro), args.Error(1)
}
func (m *MockRetroService) UpdateRetro(ctx context.Context, id int64, payload models.RetroPayload) (*models.Retro, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Retro), args.Error(1)
}
func (m *MockRetroService) DeleteRetro(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- MOCK ITEM SERVICE ---
type MockItemService struct {
	mock.Mock
}

var _ services.ItemService = (*MockItemService)(nil)

func (m *MockItemService) CreateItem(ctx context.Context, name string) (*models.Item, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}
func (m *MockItemService) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

// --- MOCK ATTACHMENT SERVICE ---
type MockAttachmentService struct {
	mock.Mock
}

var _ services.AttachmentService = (*MockAttachmentService)(nil)

func (m *MockAttachmentService) SaveAttachment(ctx context.Context, retroID int64, data []byte, declaredType, declaredName string) (*storage.SavedFile, error) {
	args := m.Called(ctx, retroID, data, declaredType, declaredName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.SavedFile), args.Error(1)
}
func (m *MockAttachmentService) MaxFileSize() int64 {
	args := m.Called()
	return args.Get(0).(int64)
}

// testMocks bundles the mocks behind one Handlers instance.
type testMocks struct {
	Retros      *MockRetroService
	Items       *MockItemService
	Attachments *MockAttachmentService
	Auditor     *MockAuditor
}

// setupHandlersTestRouter builds Handlers on mocks and routes them the same
// way the production router does.
func setupHandlersTestRouter(t *testing.T) (*mux.Router, *testMocks) {
	t.Helper()
	m := &testMocks{
		Retros:      new(MockRetroService),
		Items:       new(MockItemService),
		Attachments: new(MockAttachmentService),
		Auditor:     new(MockAuditor),
	}
	infoSvc := new(MockInfoService)

	cfg := &config.Config{SecretKey: "unit-test-secret"}
	h := NewHandlers(infoSvc, m.Retros, m.Items, m.Attachments, m.Auditor, cfg)

	r := mux.NewRouter()
	r.HandleFunc("/secret-info", h.SecretInfo).Methods("GET")
	r.HandleFunc("/items", h.CreateItem).Methods("POST")
	r.HandleFunc("/items/{id}", h.GetItem).Methods("GET")
	r.HandleFunc("/retros", h.CreateRetro).Methods("POST")
	r.HandleFunc("/retros", h.ListRetros).Methods("GET")
	r.HandleFunc("/retros/{id}", h.GetRetro).Methods("GET")
	r.HandleFunc("/retros/{id}", h.UpdateRetro).Methods("PUT")
	r.HandleFunc("/retros/{id}", h.DeleteRetro).Methods("DELETE")
	r.HandleFunc("/retros/{id}/attachments", h.UploadAttachment).Methods("POST")
	return r, m
}

// decodeProblem asserts the RFC 7807 envelope and returns it.
func decodeProblem(t *testing.T, resp *http.Response, status int) Problem {
	t.Helper()
	require.Equal(t, status, resp.StatusCode)
	require.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))
	for _, key := range []string{"type", "title", "status", "detail", "correlation_id"} {
		require.Contains(t, fields, key)
	}

	var p Problem
	require.NoError(t, json.Unmarshal(raw, &p))
	require.Equal(t, status, p.Status)
	require.NotEmpty(t, p.CorrelationID)
	return p
}
