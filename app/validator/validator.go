// Package validator checks request structs with go-playground/validator and converts failures
// into field-level errors with user-facing messages.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError describes the first invalid field of a request.
type ValidationError struct {
	Field   string // json name of the field
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Service validates structs tagged with `validate`.
type Service struct {
	v *validator.Validate
}

// NewService creates a new validation service.
// Besides the built-in tags it supports "accepted", requiring a bool field to be true.
func NewService() *Service {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("accepted", func(fl validator.FieldLevel) bool {
		return fl.Field().Kind() == reflect.Bool && fl.Field().Bool()
	})
	return &Service{v: v}
}

// Struct validates v. Returns *ValidationError for the first invalid field.
func (s *Service) Struct(v any) error {
	err := s.v.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("failed to validate: %w", err)
	}
	fe := verrs[0]
	return &ValidationError{Field: fe.Field(), Message: message(fe)}
}

func message(fe validator.FieldError) string {
	label := humanize(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Invalid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	case "eqfield":
		if strings.EqualFold(fe.Param(), "password") {
			return "Passwords do not match"
		}
		return fmt.Sprintf("%s must match %s", label, strings.ToLower(humanize(fe.Param())))
	case "accepted":
		return "You must agree to the " + strings.ToLower(label)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return label + " is invalid"
	}
}

// humanize turns a camelCase field name into a capitalized phrase, "confirmPassword" -> "Confirm password".
func humanize(name string) string {
	var sb strings.Builder
	for i, r := range name {
		switch {
		case i == 0:
			sb.WriteString(strings.ToUpper(string(r)))
		case r >= 'A' && r <= 'Z':
			sb.WriteByte(' ')
			sb.WriteString(strings.ToLower(string(r)))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
