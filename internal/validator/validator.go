package validator

import (
	"fmt"

	"github.com/cinex/cinema-service/internal/layout"
	"github.com/go-playground/validator/v10"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("pattern", validatePattern)

	return validator
}

func validatePattern(fl validator.FieldLevel) bool {
	_, err := layout.ParsePattern(fl.Field().String())
	return err == nil
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must contain at least %s items", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", err.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "gtfield":
		return fmt.Sprintf("must be after %s", err.Param())
	case "pattern":
		return "must be one of the supported auditorium patterns"
	default:
		return "is invalid"
	}
}
