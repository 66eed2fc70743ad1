package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeTarget struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
}

var typeMessages = map[string]string{
	"price": "Price must be a number.",
}

func decodeErr(t *testing.T, body string) error {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	var target decodeTarget
	err := DecodeJSON(req, &target)
	require.Error(t, err)
	return err
}

func TestTypeErrors_MistypedField(t *testing.T) {
	err := decodeErr(t, `{"name":"Plumbing","price":"fifty"}`)

	verrs, ok := TypeErrors(err, typeMessages)
	require.True(t, ok)
	assert.Equal(t, []string{"Price must be a number."}, verrs["price"])
}

func TestTypeErrors_UnlistedField(t *testing.T) {
	err := decodeErr(t, `{"name":42}`)

	_, ok := TypeErrors(err, typeMessages)
	assert.False(t, ok)
}

func TestTypeErrors_MalformedJSON(t *testing.T) {
	err := decodeErr(t, `{"name": `)

	// Битое тело остается ошибкой формата запроса, не валидации
	_, ok := TypeErrors(err, typeMessages)
	assert.False(t, ok)
}
