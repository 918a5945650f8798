// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("supermarket_name", validateSupermarketName)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// Supermarket names come in as user-controlled query parameters. Letters
// (including accents), digits, spaces, apostrophes and hyphens cover every
// chain name we join against.
func validateSupermarketName(fl validator.FieldLevel) bool {
	name := fl.Field().String()

	if len(name) < 1 || len(name) > 100 {
		return false
	}

	matched, _ := regexp.MatchString(`^[\p{L}0-9' -]+$`, name)
	return matched
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "supermarket_name":
		return "Supermarket names may only contain letters, numbers, spaces, apostrophes and hyphens"
	default:
		return e.Field() + " is invalid"
	}
}
