package booking

import "errors"

var ErrDatesRequired = errors.New("check-in and check-out are required")

// StayQuery carries the search form values verbatim. Counts stay strings so
// that an empty field reaches the backend as an empty parameter.
type StayQuery struct {
	CheckIn  string
	CheckOut string
	Adults   string
	Children string
	Plan     string
}

// Validate only requires both dates to be present. The date range itself is
// left to the backend.
func (q StayQuery) Validate() error {
	if q.CheckIn == "" || q.CheckOut == "" {
		return ErrDatesRequired
	}
	return nil
}
