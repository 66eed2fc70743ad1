package get_service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbp-team/booking-platform/internal/service/catalog"
	catalogModels "github.com/sbp-team/booking-platform/internal/service/catalog/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCatalogService struct {
	resp *catalogModels.ServiceResponse
	err  error

	gotID  int64
	called bool
}

func (f *fakeCatalogService) Get(_ context.Context, id int64) (*catalogModels.ServiceResponse, error) {
	f.called = true
	f.gotID = id
	return f.resp, f.err
}

func doRequest(t *testing.T, svc CatalogService, serviceID string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(svc, nopLogger{})
	req := httptest.NewRequest(http.MethodGet, "/api/services/"+serviceID, nil)
	req = mux.SetURLVars(req, map[string]string{"serviceId": serviceID})
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeCatalogService{resp: &catalogModels.ServiceResponse{ID: 7, Name: "Plumbing"}}

	rec := doRequest(t, svc, "7")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), svc.gotID)

	var body struct {
		Service *catalogModels.ServiceResponse `json:"service"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Plumbing", body.Service.Name)
}

func TestHandle_NotFound(t *testing.T) {
	svc := &fakeCatalogService{err: catalog.ErrServiceNotFound}

	rec := doRequest(t, svc, "999")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Service not found.", decodeMessage(t, rec))
}

func TestHandle_NonNumericID(t *testing.T) {
	svc := &fakeCatalogService{}

	rec := doRequest(t, svc, "abc")

	// Нечисловой ID отвечает так же, как несуществующий
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Service not found.", decodeMessage(t, rec))
	assert.False(t, svc.called)
}
