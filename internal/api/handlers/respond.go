package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sbp-team/booking-platform/internal/validation"
)

const (
	msgInternalError    = "Internal server error."
	msgValidationFailed = "The given data was invalid."
)

// DecodeJSON декодирует JSON тело запроса в v
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("handlers: empty request body")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("handlers: decode request body: %w", err)
	}

	return nil
}

// TypeErrors преобразует ошибку типа JSON-поля в пополевые ошибки валидации
// Корректный JSON с полем неверного типа (число строкой и т.п.) считается
// ошибкой валидации, а не битым телом запроса
// Возвращает false, если ошибка не про тип или поле не перечислено в messages
func TypeErrors(err error, messages map[string]string) (validation.Errors, bool) {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return nil, false
	}

	message, ok := messages[typeErr.Field]
	if !ok {
		return nil, false
	}

	return validation.Errors{typeErr.Field: {message}}, true
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v == nil {
		return
	}
	// Тело уже не исправить, если энкодинг упал на середине записи
	_ = json.NewEncoder(w).Encode(v)
}

// errorResponse тело ответа с ошибкой
type errorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// RespondError пишет ответ с произвольным статусом и сообщением
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, errorResponse{Message: message})
}

// RespondBadRequest пишет 400 ответ
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondUnauthorized пишет 401 ответ
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondForbidden пишет 403 ответ
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

// RespondNotFound пишет 404 ответ
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondInternalError пишет 500 ответ
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondValidationErrors пишет 422 ответ с пополевой картой ошибок
func RespondValidationErrors(w http.ResponseWriter, errs validation.Errors) {
	RespondJSON(w, http.StatusUnprocessableEntity, errorResponse{
		Message: msgValidationFailed,
		Errors:  errs,
	})
}
