package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors flattens field errors into one client-facing
// message, matching the single {"error": string} body of the API.
func (cv *CustomValidator) FormatValidationErrors(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Validation failed"
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			messages = append(messages, field+" is required")
		case "email":
			messages = append(messages, field+" must be a valid email address")
		case "min":
			messages = append(messages, field+" must be at least "+e.Param()+" characters")
		case "max":
			messages = append(messages, field+" must be at most "+e.Param()+" characters")
		case "oneof":
			messages = append(messages, field+" must be one of: "+e.Param())
		case "gte":
			messages = append(messages, field+" must be greater than or equal to "+e.Param())
		default:
			messages = append(messages, field+" is invalid")
		}
	}

	return strings.Join(messages, "; ")
}
