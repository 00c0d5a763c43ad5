package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/mattbran/cinema-ticket-service/internal/domain"
	appvalidator "github.com/mattbran/cinema-ticket-service/internal/validator"
)

const ErrInternalServer = "The server encountered a problem and could not process your request"

type ErrorResponse struct {
	Code      string    `json:"code,omitempty"`
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
}

func (app *application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.Error(err.Error(), "method", method, "uri", uri)
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *application) errorResponse(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	resp := ErrorResponse{
		Code:      code,
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, "", ErrInternalServer)
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "The requested resource not found"
	app.errorResponse(w, r, http.StatusNotFound, "", message)
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, "", err.Error())
}

// invalidPurchaseResponse reports a rejected purchase, exposing the violated
// rule's code so callers can branch on it without parsing the message.
func (app *application) invalidPurchaseResponse(w http.ResponseWriter, r *http.Request, purchaseErr *domain.PurchaseError) {
	app.errorResponse(w, r, http.StatusUnprocessableEntity, string(purchaseErr.Code), purchaseErr.Message)
}

func (app *application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		app.serverErrorResponse(w, r, err)
		return
	}

	validationErrors := make([]ValidationError, len(validationErrs))
	for i, v := range validationErrs {
		validationErrors[i] = ValidationError{
			Field: v.Field(),
			Issue: appvalidator.ValidationMessage(v),
		}
	}

	resp := ValidationErrorResponse{
		Message:          "Validation failed",
		ValidationErrors: validationErrors,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
	}

	writeErr := app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if writeErr != nil {
		app.logError(r, writeErr)
		w.WriteHeader(500)
	}
}
