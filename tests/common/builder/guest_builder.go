//go:build unit || e2e

package builder

import (
	"booking-widget/internal/domain/booking"
	reqdto "booking-widget/internal/handler/dto/request"
)

type GuestBuilder struct {
	Name  string
	Email string
	Phone string
}

func NewGuestBuilder() *GuestBuilder {
	return &GuestBuilder{
		Name:  "Asha Rao",
		Email: "asha@example.com",
		Phone: "+91 98765 43210",
	}
}

func (b *GuestBuilder) With(mutate func(*GuestBuilder)) *GuestBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *GuestBuilder) BuildDomain() booking.GuestDetails {
	return booking.GuestDetails{
		Name:  b.Name,
		Email: b.Email,
		Phone: b.Phone,
	}
}

func (b *GuestBuilder) BuildRequestDTO() reqdto.ConfirmRequest {
	return reqdto.ConfirmRequest{
		GuestName: b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
	}
}
