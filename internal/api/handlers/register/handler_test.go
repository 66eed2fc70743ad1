package register

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authModels "github.com/sbp-team/booking-platform/internal/service/auth/models"
	"github.com/sbp-team/booking-platform/internal/validation"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAuthService struct {
	resp *authModels.AuthResponse
	err  error

	gotReq *authModels.RegisterRequest
}

func (f *fakeAuthService) Register(_ context.Context, req *authModels.RegisterRequest) (*authModels.AuthResponse, error) {
	f.gotReq = req
	return f.resp, f.err
}

func doRequest(t *testing.T, svc AuthService, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(svc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	svc := &fakeAuthService{resp: &authModels.AuthResponse{
		User:  &authModels.UserResponse{ID: 1, Name: "John Doe", Email: "john@example.com", Role: "customer"},
		Token: "opaque-token",
	}}

	rec := doRequest(t, svc, `{
		"name": "John Doe",
		"email": "john@example.com",
		"password": "password123",
		"password_confirmation": "password123"
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Message string                   `json:"message"`
		User    *authModels.UserResponse `json:"user"`
		Token   string                   `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User registered successfully", body.Message)
	assert.Equal(t, "john@example.com", body.User.Email)
	assert.Equal(t, "opaque-token", body.Token)

	// snake_case поля тела дошли до сервиса
	require.NotNil(t, svc.gotReq)
	assert.Equal(t, "password123", svc.gotReq.PasswordConfirmation)
}

func TestHandle_ValidationErrors(t *testing.T) {
	svc := &fakeAuthService{err: validation.Errors{
		"email": {"The email has already been taken."},
	}}

	rec := doRequest(t, svc, `{"name":"John","email":"john@example.com","password":"password123","password_confirmation":"password123"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "The given data was invalid.", body.Message)
	assert.Equal(t, []string{"The email has already been taken."}, body.Errors["email"])
}

func TestHandle_MalformedBody(t *testing.T) {
	svc := &fakeAuthService{}

	rec := doRequest(t, svc, `{"name": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// До сервиса дело не дошло
	assert.Nil(t, svc.gotReq)
}
