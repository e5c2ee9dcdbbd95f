// Package validation checks request DTOs against their struct tags before any
// handler logic runs.
package validation

import (
	"errors"
	"strings"

	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/apperr"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates v and converts any failures into a validation error with
// per-field details.
func Struct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Internal("validation failed", err)
	}

	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fieldName(fe)] = message(fe)
	}
	return apperr.Validation("Validation failed", details)
}

func fieldName(fe validator.FieldError) string {
	f := fe.Field()
	if f == "" {
		return fe.StructField()
	}
	// JSON-style lowerCamel field names in error details.
	return strings.ToLower(f[:1]) + f[1:]
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gt":
		return "must be greater than " + fe.Param()
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}
