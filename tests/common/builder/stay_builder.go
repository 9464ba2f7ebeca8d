//go:build unit || e2e

package builder

import (
	"booking-widget/internal/domain/booking"
	reqdto "booking-widget/internal/handler/dto/request"
)

type StayBuilder struct {
	CheckIn  string
	CheckOut string
	Adults   string
	Children string
	Plan     string
}

func NewStayBuilder() *StayBuilder {
	return &StayBuilder{
		CheckIn:  "2024-05-01",
		CheckOut: "2024-05-03",
		Adults:   "2",
		Children: "0",
		Plan:     "",
	}
}

func (b *StayBuilder) With(mutate func(*StayBuilder)) *StayBuilder {
	mutate(b)
	return b
}

func (b *StayBuilder) WithDates(checkIn, checkOut string) *StayBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *StayBuilder) WithPlan(plan string) *StayBuilder {
	b.Plan = plan
	return b
}

// Build methods
func (b *StayBuilder) BuildDomain() booking.StayQuery {
	return booking.StayQuery{
		CheckIn:  b.CheckIn,
		CheckOut: b.CheckOut,
		Adults:   b.Adults,
		Children: b.Children,
		Plan:     b.Plan,
	}
}

func (b *StayBuilder) BuildRequestDTO() reqdto.SearchRequest {
	return reqdto.SearchRequest{
		CheckIn:  b.CheckIn,
		CheckOut: b.CheckOut,
		Adults:   b.Adults,
		Children: b.Children,
		Plan:     b.Plan,
	}
}
