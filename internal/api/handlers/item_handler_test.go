// filepath: internal/api/handlers/item_handler_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"retrohub/internal/models"
	"retrohub/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateItem(t *testing.T) {
	r, m := setupHandlersTestRouter(t)
	m.Items.On("CreateItem", mock.Anything, "widget").Return(&models.Item{ID: 1, Name: "widget"}, nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("POST", "/items?name=widget", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":1,"name":"widget"}`, rr.Body.String())
}

func TestCreateItem_InvalidName(t *testing.T) {
	r, m := setupHandlersTestRouter(t)
	m.Items.On("CreateItem", mock.Anything, "").
		Return(nil, &services.DetailError{Sentinel: services.ErrValidation, Detail: "name must be 1..100 chars"})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("POST", "/items", nil))

	p := decodeProblem(t, rr.Result(), http.StatusUnprocessableEntity)
	assert.Equal(t, "name must be 1..100 chars", p.Detail)
}

func TestGetItem_NotFound(t *testing.T) {
	r, m := setupHandlersTestRouter(t)
	m.Items.On("GetItem", mock.Anything, int64(999)).
		Return(nil, &services.DetailError{Sentinel: services.ErrNotFound, Detail: "item not found"})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/items/999", nil))

	p := decodeProblem(t, rr.Result(), http.StatusNotFound)
	assert.Equal(t, "not_found", p.Title)
	assert.Contains(t, p.Detail, "item not found")
}
