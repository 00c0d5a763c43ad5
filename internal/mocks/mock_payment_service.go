package mocks

import (
	"context"

	"github.com/mattbran/cinema-ticket-service/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPaymentService struct {
	mock.Mock
	domain.PaymentService
}

func (m *MockPaymentService) MakePayment(ctx context.Context, accountID int64, amountToPay int) error {
	args := m.Called(ctx, accountID, amountToPay)
	return args.Error(0)
}
