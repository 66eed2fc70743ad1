package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Errors ошибки валидации по полям запроса
// Сериализуются в тело 422 ответа как {"errors": {"field": ["message", ...]}}
type Errors map[string][]string

// Error реализует интерфейс error
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e[field], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Add добавляет сообщение об ошибке для поля
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Any возвращает true, если есть хотя бы одна ошибка
func (e Errors) Any() bool {
	return len(e) > 0
}

// Достаточно грубая проверка формата email: непустая локальная часть,
// один @, домен с точкой
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsValidEmail проверяет формат email
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
