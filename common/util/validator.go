package util

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sunthewhat/easy-cred-api/internal/apperror"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// Report fields by their JSON names so callers see the key they sent.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct validates a struct using validator tags
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// ValidatePayload validates a request body and reports the first offending
// field as a validation error.
func ValidatePayload(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperror.Validation("", "Invalid payload")
	}
	first := verrs[0]
	return apperror.Validation(fieldPath(first), "%s", describe(first))
}

// GetValidationErrors formats validation errors into readable messages
func GetValidationErrors(err error) []string {
	var messages []string
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fieldError := range verrs {
			messages = append(messages, describe(fieldError))
		}
	}
	return messages
}

func describe(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return fieldError.Field() + " is required"
	case "email":
		return fieldError.Field() + " must be a valid email"
	case "min":
		return fieldError.Field() + " must be at least " + fieldError.Param() + " characters"
	case "max":
		return fieldError.Field() + " must be at most " + fieldError.Param() + " characters"
	case "url":
		return fieldError.Field() + " must be a valid URL"
	default:
		return fieldError.Field() + " is invalid"
	}
}

// fieldPath drops the root struct name from the namespace:
// "IssuePayload.recipient" becomes "recipient".
func fieldPath(fieldError validator.FieldError) string {
	ns := fieldError.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fieldError.Field()
}
