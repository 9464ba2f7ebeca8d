package workflow

import (
	"errors"

	"booking-widget/internal/domain/booking"
)

type State string

const (
	StateIdle         State = "idle"
	StateSearching    State = "searching"
	StateResultsShown State = "results_shown"
	StateSearchFailed State = "search_failed"
	StateRoomSelected State = "room_selected"
	StateSubmitting   State = "submitting"
	StateOutcome      State = "outcome"
)

func (s State) String() string {
	return string(s)
}

type OutcomeKind string

const (
	OutcomeConfirmed OutcomeKind = "confirmed"
	OutcomeFailed    OutcomeKind = "failed"
	OutcomeError     OutcomeKind = "error"
)

const (
	TitleConfirmed = "Booking Confirmed"
	TitleFailed    = "Booking Failed"
	TitleError     = "Booking Error"
)

const (
	NoticeSearching    = "Searching..."
	NoticeNoRooms      = "No rooms available for selected dates."
	NoticeSearchFailed = "Error fetching availability. Check console."
)

const (
	errorFallbackText = "See console for details."
	noPlanMark        = "—"
)

var (
	ErrDatesRequired        = booking.ErrDatesRequired
	ErrGuestDetailsRequired = booking.ErrGuestDetailsRequired
	ErrNoRoomSelected       = errors.New("no room selected")
	ErrOfferNotFound        = errors.New("offer not found")
	ErrInvalidTransition    = errors.New("invalid transition")
	ErrStaleTicket          = errors.New("stale ticket")
)

// Ticket identifies one issued backend request. Only the latest ticket may
// update what the session displays.
type Ticket uint64

// Selection is the single selected-offer slot together with the search that produced it.
type Selection struct {
	Index int
	Offer booking.RoomOffer
	Query booking.StayQuery
}

type Outcome struct {
	Kind      OutcomeKind
	Title     string
	BookingID string
	Message   string
	Lines     []string
}
