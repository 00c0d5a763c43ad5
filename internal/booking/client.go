package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client reserves seats through the external seat booking gateway.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type reservationRequest struct {
	BookingID     string `json:"bookingId"`
	AccountID     int64  `json:"accountId"`
	NumberOfSeats int    `json:"numberOfSeats"`
}

func (c *Client) ReserveSeats(ctx context.Context, accountID int64, totalSeatsToAllocate int) error {
	body := reservationRequest{
		BookingID:     uuid.New().String(),
		AccountID:     accountID,
		NumberOfSeats: totalSeatsToAllocate,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling reservation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/reservations", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building reservation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending reservation request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status code: %d", res.StatusCode)
	}

	return nil
}
