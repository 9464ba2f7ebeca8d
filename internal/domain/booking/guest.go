package booking

import (
	"errors"
	"strings"
)

var ErrGuestDetailsRequired = errors.New("guest name and email are required")

type GuestDetails struct {
	Name  string
	Email string
	Phone string
}

func (g GuestDetails) Normalize() GuestDetails {
	return GuestDetails{
		Name:  strings.TrimSpace(g.Name),
		Email: strings.TrimSpace(g.Email),
		Phone: strings.TrimSpace(g.Phone),
	}
}

// Validate checks the trimmed name and email. Phone is optional.
func (g GuestDetails) Validate() error {
	n := g.Normalize()
	if n.Name == "" || n.Email == "" {
		return ErrGuestDetailsRequired
	}
	return nil
}
