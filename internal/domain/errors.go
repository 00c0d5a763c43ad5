package domain

import "fmt"

// PurchaseErrorCode identifies which single purchase rule was violated.
type PurchaseErrorCode string

const (
	ErrCodeInvalidAccountID      PurchaseErrorCode = "INVALID_ACCOUNT_ID"
	ErrCodeMissingTicketRequest  PurchaseErrorCode = "MISSING_TICKET_REQUEST"
	ErrCodeInvalidTicketQuantity PurchaseErrorCode = "INVALID_TICKET_QUANTITY"
	ErrCodeMaxTicketsExceeded    PurchaseErrorCode = "MAX_TICKETS_EXCEEDED"
	ErrCodeMissingAdultTicket    PurchaseErrorCode = "MISSING_ADULT_TICKET"
)

// PurchaseError is the single failure kind returned for a rejected purchase.
// It carries a machine-checkable code alongside a human-readable message.
type PurchaseError struct {
	Code    PurchaseErrorCode
	Message string
}

func NewPurchaseError(code PurchaseErrorCode, format string, args ...any) *PurchaseError {
	return &PurchaseError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *PurchaseError) Error() string {
	return e.Message
}
