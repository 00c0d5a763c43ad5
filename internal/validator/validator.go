package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/mattbran/cinema-ticket-service/internal/domain"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("ticket_type", validateTicketType)

	return validator
}

func validateTicketType(fl validator.FieldLevel) bool {
	switch domain.TicketType(fl.Field().String()) {
	case domain.Adult, domain.Child, domain.Infant:
		return true
	}

	return false
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "ticket_type":
		return "must be one of ADULT, CHILD or INFANT"
	default:
		return "is invalid"
	}
}
