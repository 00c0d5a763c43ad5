package payment

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

// StripeGateway charges accounts through Stripe payment intents.
type StripeGateway struct {
	currency string
}

func NewStripeGateway(currency string) *StripeGateway {
	return &StripeGateway{
		currency: currency,
	}
}

func (s *StripeGateway) MakePayment(ctx context.Context, accountID int64, amountToPay int) error {
	// Ticket prices are whole currency units; Stripe wants the minor unit.
	amountMinor := decimal.NewFromInt(int64(amountToPay)).Mul(decimal.NewFromInt(100)).IntPart()

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(s.currency),
		Metadata: map[string]string{
			"account_id":        strconv.FormatInt(accountID, 10),
			"payment_reference": uuid.New().String(),
		},
	}
	params.Context = ctx

	_, err := paymentintent.New(params)
	return err
}
