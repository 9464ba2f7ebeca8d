// Package reservationapi is the only code that talks to the remote
// reservation backend. The backend exposes one endpoint; operations are
// selected with an action query parameter (GET) or body field (POST).
package reservationapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"booking-widget/internal/domain/booking"
	"booking-widget/internal/infra"
	"booking-widget/internal/pkg/config"
	"booking-widget/internal/pkg/errs"
)

const (
	ActionRatePlans    = "rateplans"
	ActionAvailability = "availability"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient sets no timeout unless one is configured, so a silent backend
// stalls the caller until its context ends.
func NewClient(cfg config.ReservationAPIConfig, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) FetchRatePlans(ctx context.Context) ([]booking.RatePlan, error) {
	body, err := c.get(ctx, ActionRatePlans, nil)
	if err != nil {
		return nil, err
	}
	return booking.RatePlansFromResponse(body), nil
}

func (c *Client) SearchAvailability(ctx context.Context, query booking.StayQuery) ([]booking.RoomOffer, error) {
	body, err := c.get(ctx, ActionAvailability, []param{
		{"checkin", query.CheckIn},
		{"checkout", query.CheckOut},
		{"adults", query.Adults},
		{"children", query.Children},
		{"plan", query.Plan},
	})
	if err != nil {
		return nil, err
	}

	offers, err := booking.OffersFromResponse(body)
	if err != nil {
		return nil, infra.WrapUpstreamErr(c.logger, infra.KindMalformedResponse, "decode availability", err)
	}
	return offers, nil
}

// SubmitBooking returns the backend's verdict. A rejected booking is a
// result with a falsy ok flag, not an error.
func (c *Client) SubmitBooking(ctx context.Context, req booking.BookingRequest) (*booking.BookingResult, error) {
	if req.Action == "" {
		req.Action = booking.ActionBook
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, errs.Wrap(err, "encode booking request")
	}

	body, err := c.post(ctx, booking.ActionBook, payload)
	if err != nil {
		return nil, err
	}

	var result booking.BookingResult
	if err := json.Unmarshal(body, &result); err != nil {
		// Valid JSON that is not an object (e.g. null) carries no verdict.
		result = booking.BookingResult{}
	}
	return &result, nil
}

func (c *Client) get(ctx context.Context, action string, params []param) ([]byte, error) {
	query := encodeParams(append([]param{{"action", action}}, params...))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(query), nil)
	if err != nil {
		return nil, infra.WrapUpstreamErr(c.logger, infra.KindTransport, "build GET request", err)
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, action)
}

func (c *Client) post(ctx context.Context, action string, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, infra.WrapUpstreamErr(c.logger, infra.KindTransport, "build POST request", err)
	}
	// text/plain keeps browsers from preflighting; the backend expects it.
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("Accept", "application/json")
	return c.do(req, action)
}

func (c *Client) do(req *http.Request, action string) ([]byte, error) {
	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, infra.WrapUpstreamErr(c.logger, infra.KindTransport, req.Method+" "+action+" request failed", err)
	}
	defer res.Body.Close()

	body, readErr := io.ReadAll(res.Body)

	c.logger.Debug("Reservation API call",
		slog.String("method", req.Method),
		slog.String("action", action),
		slog.Int("status", res.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		text := ""
		if readErr == nil {
			text = string(body)
		}
		apiErr := &APIError{Method: req.Method, Status: res.StatusCode, Body: text}
		c.logger.Warn("Reservation API returned error status",
			slog.String("method", req.Method),
			slog.String("action", action),
			slog.Int("status", res.StatusCode),
		)
		return nil, apiErr
	}

	if readErr != nil {
		return nil, infra.WrapUpstreamErr(c.logger, infra.KindTransport, "read "+action+" response", readErr)
	}
	if !json.Valid(body) {
		return nil, infra.WrapUpstreamErr(c.logger, infra.KindMalformedResponse, action+" response is not JSON", ErrMalformedResponse)
	}
	return body, nil
}

func (c *Client) endpoint(query string) string {
	sep := "?"
	if strings.Contains(c.baseURL, "?") {
		sep = "&"
	}
	return c.baseURL + sep + query
}
