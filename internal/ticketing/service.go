package ticketing

import (
	"context"

	"github.com/mattbran/cinema-ticket-service/internal/domain"
)

// TicketService validates and prices multi-line ticket purchases, then hands
// the computed totals to the payment and seat reservation collaborators.
type TicketService struct {
	payments     domain.PaymentService
	reservations domain.SeatReservationService
}

func NewTicketService(payments domain.PaymentService, reservations domain.SeatReservationService) *TicketService {
	return &TicketService{
		payments:     payments,
		reservations: reservations,
	}
}

// PurchaseTickets validates the purchase in a single pass over the lines,
// aggregating total price and seat count as it goes. Validation fails fast:
// the first violated rule is returned as a *domain.PurchaseError and no
// collaborator is invoked. On a valid purchase the payment service is called
// first, then the reservation service; errors from either propagate to the
// caller as-is.
func (s *TicketService) PurchaseTickets(ctx context.Context, accountID int64, requests ...domain.TicketTypeRequest) error {
	if accountID <= 0 {
		return domain.NewPurchaseError(domain.ErrCodeInvalidAccountID,
			"Invalid AccountId. An AccountId should be greater than zero")
	}

	if len(requests) == 0 {
		return domain.NewPurchaseError(domain.ErrCodeMissingTicketRequest,
			"At least one ticket type request is required")
	}

	var (
		hasAdult         bool
		hasChildOrInfant bool
		totalPrice       int
		totalSeats       int
	)

	for _, request := range requests {
		quantity := request.Quantity

		if quantity < 0 {
			return domain.NewPurchaseError(domain.ErrCodeInvalidTicketQuantity,
				"Invalid ticket quantity: %d", quantity)
		}

		// The cap is compared per line against the seat-consuming running
		// total, not against a grand total of all quantities. Infant lines
		// never advance totalSeats, so the outcome depends on line order.
		if totalSeats+quantity > domain.MaxTicketsPerPurchase {
			return domain.NewPurchaseError(domain.ErrCodeMaxTicketsExceeded,
				"Maximum %d tickets can be purchased at a time", domain.MaxTicketsPerPurchase)
		}

		// Unmapped categories price at zero; the category set is closed, so
		// this is unreachable through the exported types.
		totalPrice += quantity * domain.TicketPrices[request.Type]

		switch request.Type {
		case domain.Adult:
			hasAdult = true
			totalSeats += quantity
		case domain.Child:
			hasChildOrInfant = true
			totalSeats += quantity
		case domain.Infant:
			hasChildOrInfant = true
		}
	}

	if hasChildOrInfant && !hasAdult {
		return domain.NewPurchaseError(domain.ErrCodeMissingAdultTicket,
			"Child or infant tickets cannot be purchased without an adult ticket")
	}

	if err := s.payments.MakePayment(ctx, accountID, totalPrice); err != nil {
		return err
	}

	// There is no compensation here: if the reservation fails after the
	// payment succeeded, the account stays charged with no seats allocated.
	return s.reservations.ReserveSeats(ctx, accountID, totalSeats)
}
