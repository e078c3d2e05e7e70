// Package validate оборачивает go-playground/validator и регистрирует
// доменные правила (телефон клиента).
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Permissive phone pattern: optional +, then 7-20 digits / separators.
var phoneRe = regexp.MustCompile(`^\+?[\d\s\-().]{7,20}$`)

var instance = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// tag "phone" — формат телефона клиента
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	return v
}

// Struct валидирует структуру по тегам validate и возвращает map поле→сообщение
func Struct(data interface{}) map[string]string {
	err := instance.Struct(data)
	if err == nil {
		return nil
	}

	fieldErrors := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors["_"] = err.Error()
		return fieldErrors
	}

	for _, fe := range validationErrors {
		fieldErrors[fe.Field()] = message(fe)
	}
	return fieldErrors
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "invalid email address"
	case "phone":
		return "invalid phone number"
	case "min":
		return fmt.Sprintf("minimum length is %s", fe.Param())
	case "max":
		return fmt.Sprintf("maximum length is %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("invalid value for %s", fe.Field())
	}
}

// Format собирает map ошибок в одну строку "field: message; ..."
func Format(fieldErrors map[string]string) string {
	parts := make([]string, 0, len(fieldErrors))
	for field, msg := range fieldErrors {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(parts, "; ")
}
