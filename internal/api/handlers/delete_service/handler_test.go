package delete_service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbp-team/booking-platform/internal/validation"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCatalogService struct {
	err error

	gotID  int64
	called bool
}

func (f *fakeCatalogService) Delete(_ context.Context, id int64) error {
	f.called = true
	f.gotID = id
	return f.err
}

func doRequest(t *testing.T, svc CatalogService, serviceID string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(svc, nopLogger{})
	req := httptest.NewRequest(http.MethodDelete, "/api/services/"+serviceID, nil)
	req = mux.SetURLVars(req, map[string]string{"serviceId": serviceID})
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_Deleted(t *testing.T) {
	svc := &fakeCatalogService{}

	rec := doRequest(t, svc, "7")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), svc.gotID)

	var body DeleteServiceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Service deleted successfully", body.Message)
}

func TestHandle_NonNumericID(t *testing.T) {
	svc := &fakeCatalogService{}

	rec := doRequest(t, svc, "abc")

	// Нечисловой ID отвечает так же, как несуществующий
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, svc.called)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Service not found.", body.Message)
}

func TestHandle_ServiceInUse(t *testing.T) {
	svc := &fakeCatalogService{err: validation.Errors{
		"service": {"Cannot delete a service with existing bookings."},
	}}

	rec := doRequest(t, svc, "7")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "The given data was invalid.", body.Message)
	assert.Equal(t, []string{"Cannot delete a service with existing bookings."}, body.Errors["service"])
}
