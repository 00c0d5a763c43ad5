package mocks

import (
	"context"

	"github.com/mattbran/cinema-ticket-service/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockSeatReservationService struct {
	mock.Mock
	domain.SeatReservationService
}

func (m *MockSeatReservationService) ReserveSeats(ctx context.Context, accountID int64, totalSeatsToAllocate int) error {
	args := m.Called(ctx, accountID, totalSeatsToAllocate)
	return args.Error(0)
}
