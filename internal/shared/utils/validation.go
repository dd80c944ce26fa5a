package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"backoffice/internal/shared/errors"
)

// TranslateBindingError converts a gin binding failure into a validation error.
// Binding failures from malformed JSON carry no field detail.
func TranslateBindingError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		var errorMessages []string
		for _, fieldError := range validationErrors {
			errorMessages = append(errorMessages, getFieldErrorMessage(fieldError))
		}
		return errors.NewValidationError(
			strings.Join(errorMessages, "; "),
			validationErrors[0].Field(),
		)
	}
	return errors.NewValidationError("invalid request body")
}

// getFieldErrorMessage returns a user-friendly error message for a field validation error
func getFieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, tag)
	}
}
