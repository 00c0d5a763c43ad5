package domain

import "context"

// PaymentService is the external payment collaborator. It is invoked at most
// once per purchase attempt, only after validation succeeds.
type PaymentService interface {
	MakePayment(ctx context.Context, accountID int64, amountToPay int) error
}

// SeatReservationService is the external seat booking collaborator. It is
// invoked at most once per purchase attempt, after the payment call.
type SeatReservationService interface {
	ReserveSeats(ctx context.Context, accountID int64, totalSeatsToAllocate int) error
}
