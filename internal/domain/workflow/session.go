package workflow

import (
	"fmt"
	"sync"

	"booking-widget/internal/domain/booking"

	"github.com/google/uuid"
)

const defaultCurrencySymbol = "₹"

type Option func(*Session)

func WithCurrencySymbol(symbol string) Option {
	return func(s *Session) {
		if symbol != "" {
			s.currency = symbol
		}
	}
}

// Session is the finite-state booking workflow of one widget instance.
// All methods are safe for concurrent use; each call runs to completion
// under the session lock, so transitions are applied one at a time.
type Session struct {
	mu sync.Mutex

	id       uuid.UUID
	currency string

	state      State
	resume     State
	generation Ticket

	offers         []booking.RoomOffer
	offersQuery    booking.StayQuery
	resultsVisible bool

	selected *Selection

	outcome        *Outcome
	outcomeVisible bool
}

func NewSession(id uuid.UUID, opts ...Option) *Session {
	s := &Session{
		id:       id,
		currency: defaultCurrencySymbol,
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Selected() (Selection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return Selection{}, false
	}
	return *s.selected, true
}

// BeginSearch supersedes any search still in flight. A held selection
// survives the search.
func (s *Session) BeginSearch(query booking.StayQuery) (Ticket, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateIdle, StateResultsShown, StateSearchFailed, StateRoomSelected, StateSearching:
	default:
		return 0, s.invalid("search")
	}

	s.generation++
	s.state = StateSearching
	s.resultsVisible = false
	return s.generation, nil
}

func (s *Session) CompleteSearch(ticket Ticket, query booking.StayQuery, offers []booking.RoomOffer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket != s.generation || s.state != StateSearching {
		return ErrStaleTicket
	}

	s.offers = append([]booking.RoomOffer(nil), offers...)
	s.offersQuery = query
	s.resultsVisible = true
	if s.selected != nil {
		s.state = StateRoomSelected
	} else {
		s.state = StateResultsShown
	}
	return nil
}

// FailSearch leaves the last good offers and the selection untouched; the
// session shows an error until a new search succeeds.
func (s *Session) FailSearch(ticket Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket != s.generation || s.state != StateSearching {
		return ErrStaleTicket
	}

	s.state = StateSearchFailed
	s.resultsVisible = false
	return nil
}

func (s *Session) Select(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateResultsShown && s.state != StateRoomSelected {
		return s.invalid("select")
	}
	if index < 0 || index >= len(s.offers) {
		return ErrOfferNotFound
	}

	s.selected = &Selection{
		Index: index,
		Offer: s.offers[index],
		Query: s.offersQuery,
	}
	s.state = StateRoomSelected
	return nil
}

func (s *Session) CancelSelection() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateRoomSelected:
		s.state = StateResultsShown
	case StateSearchFailed:
		if s.selected == nil {
			return s.invalid("cancel")
		}
	default:
		return s.invalid("cancel")
	}
	s.selected = nil
	return nil
}

// BeginConfirm validates locally and, only when everything is in place,
// hands back the request to send. Local failures leave the session as is.
func (s *Session) BeginConfirm(guest booking.GuestDetails) (Ticket, booking.BookingRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == nil {
		return 0, booking.BookingRequest{}, ErrNoRoomSelected
	}
	if s.state != StateRoomSelected {
		return 0, booking.BookingRequest{}, s.invalid("confirm")
	}
	if err := guest.Validate(); err != nil {
		return 0, booking.BookingRequest{}, err
	}

	s.generation++
	s.state = StateSubmitting
	return s.generation, booking.NewBookingRequest(guest, s.selected.Offer, s.selected.Query), nil
}

func (s *Session) CompleteConfirm(ticket Ticket, guest booking.GuestDetails, result booking.BookingResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket != s.generation || s.state != StateSubmitting {
		return ErrStaleTicket
	}

	if result.Succeeded() {
		offer := s.selected.Offer
		bookingID := result.BookingID.String()
		s.showOutcome(&Outcome{
			Kind:      OutcomeConfirmed,
			Title:     TitleConfirmed,
			BookingID: bookingID,
			Lines: []string{
				"Booking ID: " + bookingID,
				"Room: " + offer.Name().String(),
				"Guest: " + guest.Normalize().Name,
				fmt.Sprintf("Total: %s %s", s.currency, offer.Total().String()),
			},
		}, StateResultsShown)
		s.selected = nil
		return nil
	}

	msg := result.FailureMessage()
	s.showOutcome(&Outcome{
		Kind:    OutcomeFailed,
		Title:   TitleFailed,
		Message: msg,
		Lines:   []string{msg},
	}, StateRoomSelected)
	return nil
}

// FailConfirm keeps the selection so the guest can retry without searching again.
func (s *Session) FailConfirm(ticket Ticket, cause error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket != s.generation || s.state != StateSubmitting {
		return ErrStaleTicket
	}

	msg := errorFallbackText
	if cause != nil && cause.Error() != "" {
		msg = cause.Error()
	}
	s.showOutcome(&Outcome{
		Kind:    OutcomeError,
		Title:   TitleError,
		Message: msg,
		Lines:   []string{msg},
	}, StateRoomSelected)
	return nil
}

func (s *Session) DismissOutcome() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateOutcome {
		return s.invalid("dismiss")
	}
	s.outcomeVisible = false
	s.state = s.resume
	return nil
}

func (s *Session) showOutcome(o *Outcome, resume State) {
	s.outcome = o
	s.outcomeVisible = true
	s.resume = resume
	s.state = StateOutcome
}

func (s *Session) invalid(action string) error {
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, action, s.state)
}
