package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mattbran/cinema-ticket-service/internal/mocks"
	"github.com/mattbran/cinema-ticket-service/internal/ticketing"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PurchasesTestSuite struct {
	suite.Suite
	app          *application
	payments     *mocks.MockPaymentService
	reservations *mocks.MockSeatReservationService
}

func (s *PurchasesTestSuite) SetupTest() {
	s.payments = new(mocks.MockPaymentService)
	s.reservations = new(mocks.MockSeatReservationService)

	s.app = newTestApplication(func(a *application) {
		a.ticketService = ticketing.NewTicketService(s.payments, s.reservations)
	})
}

func TestPurchasesSuite(t *testing.T) {
	suite.Run(t, new(PurchasesTestSuite))
}

func (s *PurchasesTestSuite) TestCreatePurchase() {
	tests := []struct {
		name           string
		body           any
		setupMocks     func()
		wantStatus     int
		wantCode       string
		wantErrMessage string
	}{
		{
			name: "should fail when ticket type is unknown",
			body: PurchaseRequest{
				AccountID: 123,
				Tickets:   []PurchaseTicketLine{{Type: "SENIOR", Quantity: 1}},
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be one of ADULT, CHILD or INFANT",
		},
		{
			name: "should fail with engine code when account id is zero",
			body: PurchaseRequest{
				AccountID: 0,
				Tickets:   []PurchaseTicketLine{{Type: "ADULT", Quantity: 2}},
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "INVALID_ACCOUNT_ID",
		},
		{
			name:       "should fail with engine code when no tickets are sent",
			body:       PurchaseRequest{AccountID: 123},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "MISSING_TICKET_REQUEST",
		},
		{
			name: "should fail with engine code when quantity is negative",
			body: PurchaseRequest{
				AccountID: 123,
				Tickets:   []PurchaseTicketLine{{Type: "CHILD", Quantity: -1}},
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "INVALID_TICKET_QUANTITY",
		},
		{
			name: "should fail with engine code when no adult accompanies a child",
			body: PurchaseRequest{
				AccountID: 123,
				Tickets:   []PurchaseTicketLine{{Type: "CHILD", Quantity: 1}},
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "MISSING_ADULT_TICKET",
		},
		{
			name: "should fail when payment collaborator fails",
			body: PurchaseRequest{
				AccountID: 123,
				Tickets:   []PurchaseTicketLine{{Type: "ADULT", Quantity: 2}},
			},
			setupMocks: func() {
				s.payments.On("MakePayment", mock.Anything, int64(123), 40).
					Return(fmt.Errorf("payment gateway unavailable")).Once()
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name: "should complete purchase with valid input",
			body: PurchaseRequest{
				AccountID: 123,
				Tickets: []PurchaseTicketLine{
					{Type: "ADULT", Quantity: 2},
					{Type: "CHILD", Quantity: 1},
					{Type: "INFANT", Quantity: 1},
				},
			},
			setupMocks: func() {
				s.payments.On("MakePayment", mock.Anything, int64(123), 50).Return(nil).Once()
				s.reservations.On("ReserveSeats", mock.Anything, int64(123), 3).Return(nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.payments.AssertExpectations(s.T())
			defer s.reservations.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/purchases", tt.body)
			s.app.CreatePurchaseHandler(w, r)

			s.Equal(tt.wantStatus, w.Code)

			switch {
			case tt.wantStatus == http.StatusCreated:
				var response PurchaseResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				s.Require().NoError(err, "Failed to decode response")

				diff := cmp.Diff(PurchaseResponse{Status: "completed"}, response)
				s.Empty(diff, "Response mismatch (-want +got):\n%s", diff)

			case tt.wantCode != "":
				var errorResp ErrorResponse
				err := json.NewDecoder(w.Body).Decode(&errorResp)
				s.Require().NoError(err, "Failed to decode error response")

				s.Equal(tt.wantCode, errorResp.Code)
				s.NotEmpty(errorResp.Message)

			case tt.wantStatus == http.StatusUnprocessableEntity:
				var validationResp ValidationErrorResponse
				err := json.NewDecoder(w.Body).Decode(&validationResp)
				s.Require().NoError(err, "Failed to decode validation error response")

				found := false
				for _, vErr := range validationResp.ValidationErrors {
					if vErr.Issue == tt.wantErrMessage {
						found = true
					}
				}
				s.True(found, "Expected validation error message %q not found in response", tt.wantErrMessage)

			default:
				var errorResp ErrorResponse
				err := json.NewDecoder(w.Body).Decode(&errorResp)
				s.Require().NoError(err, "Failed to decode error response")

				s.Equal(tt.wantErrMessage, errorResp.Message)
			}

			if tt.wantStatus != http.StatusCreated && tt.wantStatus != http.StatusInternalServerError {
				s.payments.AssertNotCalled(s.T(), "MakePayment", mock.Anything, mock.Anything, mock.Anything)
				s.reservations.AssertNotCalled(s.T(), "ReserveSeats", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func (s *PurchasesTestSuite) TestCreatePurchaseRejectsMalformedBody() {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "broken JSON", body: `{"accountId": 123,`},
		{name: "unknown field", body: `{"accountId": 123, "seats": 2}`},
		{name: "wrong field type", body: `{"accountId": "123"}`},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			w, r := executeRawRequest(s.T(), http.MethodPost, "/purchases", tt.body)
			s.app.CreatePurchaseHandler(w, r)

			s.Equal(http.StatusBadRequest, w.Code)

			s.payments.AssertNotCalled(s.T(), "MakePayment", mock.Anything, mock.Anything, mock.Anything)
			s.reservations.AssertNotCalled(s.T(), "ReserveSeats", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
