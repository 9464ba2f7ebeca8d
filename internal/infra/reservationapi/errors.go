package reservationapi

import (
	"fmt"

	"booking-widget/internal/infra"
	"booking-widget/internal/pkg/errs"
)

var ErrMalformedResponse = errs.New("malformed response")

// APIError is a non-2xx answer from the backend. Body is the raw response text.
type APIError struct {
	Method string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s error: %d %s", e.Method, e.Status, e.Body)
}

// Kind lets callers classify APIError alongside infra.UpstreamError.
func (e *APIError) Kind() infra.UpstreamErrorKind {
	return infra.KindHTTPStatus
}

func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errs.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
