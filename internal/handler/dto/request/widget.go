package request

import (
	"booking-widget/internal/domain/booking"
)

// SearchRequest mirrors the search form. Every field is sent to the backend
// as typed, so none of them are bound as required here.
type SearchRequest struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Adults   string `json:"adults"`
	Children string `json:"children"`
	Plan     string `json:"plan"`
}

type SelectRequest struct {
	Index *int `json:"index" binding:"required"`
}

type ConfirmRequest struct {
	GuestName string `json:"guestName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (r *SearchRequest) ToDomain() booking.StayQuery {
	return booking.StayQuery{
		CheckIn:  r.CheckIn,
		CheckOut: r.CheckOut,
		Adults:   r.Adults,
		Children: r.Children,
		Plan:     r.Plan,
	}
}

func (r *ConfirmRequest) ToDomain() booking.GuestDetails {
	return booking.GuestDetails{
		Name:  r.GuestName,
		Email: r.Email,
		Phone: r.Phone,
	}
}
