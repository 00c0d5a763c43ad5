package app

import (
	"errors"
	"net/http"

	"github.com/mattbran/cinema-ticket-service/internal/domain"
)

// The DTO layer only checks the request shape (known ticket type strings).
// Account and quantity rules stay in the purchase engine so its error codes
// are what callers see.
type PurchaseRequest struct {
	AccountID int64                `json:"accountId"`
	Tickets   []PurchaseTicketLine `json:"tickets" validate:"omitempty,dive"`
}

type PurchaseTicketLine struct {
	Type     string `json:"type" validate:"required,ticket_type"`
	Quantity int    `json:"quantity"`
}

type PurchaseResponse struct {
	Status string `json:"status"`
}

func (app *application) CreatePurchaseHandler(w http.ResponseWriter, r *http.Request) {
	var req PurchaseRequest

	err := app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	requests := make([]domain.TicketTypeRequest, len(req.Tickets))
	for i, line := range req.Tickets {
		requests[i] = domain.TicketTypeRequest{
			Type:     domain.TicketType(line.Type),
			Quantity: line.Quantity,
		}
	}

	err = app.ticketService.PurchaseTickets(r.Context(), req.AccountID, requests...)
	if err != nil {
		var purchaseErr *domain.PurchaseError
		if errors.As(err, &purchaseErr) {
			app.invalidPurchaseResponse(w, r, purchaseErr)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	resp := PurchaseResponse{
		Status: "completed",
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
