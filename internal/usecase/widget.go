package usecase

import (
	"context"
	"errors"
	"log/slog"

	"booking-widget/internal/domain/booking"
	"booking-widget/internal/domain/workflow"
	"booking-widget/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")

	// Local prompts and transition errors surface unchanged from the workflow
	ErrDatesRequired        = workflow.ErrDatesRequired
	ErrGuestDetailsRequired = workflow.ErrGuestDetailsRequired
	ErrNoRoomSelected       = workflow.ErrNoRoomSelected
	ErrOfferNotFound        = workflow.ErrOfferNotFound
	ErrInvalidTransition    = workflow.ErrInvalidTransition
)

// ReservationAPI is the remote reservation backend.
type ReservationAPI interface {
	FetchRatePlans(ctx context.Context) ([]booking.RatePlan, error)
	SearchAvailability(ctx context.Context, query booking.StayQuery) ([]booking.RoomOffer, error)
	SubmitBooking(ctx context.Context, req booking.BookingRequest) (*booking.BookingResult, error)
}

type RatePlanOption struct {
	Value string
	Label string
}

type RatePlanOptions struct {
	Options []RatePlanOption
	Plans   []booking.RatePlan
}

// WidgetUseCase drives one widget session per call. Backend failures during
// search and confirm become session state, not errors; errors are reserved
// for local prompts, invalid transitions and unknown sessions.
type WidgetUseCase interface {
	LoadRatePlans(ctx context.Context) (*RatePlanOptions, error)
	View(ctx context.Context, sessionID uuid.UUID) (workflow.View, error)
	Search(ctx context.Context, sessionID uuid.UUID, query booking.StayQuery) (workflow.View, error)
	Select(ctx context.Context, sessionID uuid.UUID, index int) (workflow.View, error)
	CancelSelection(ctx context.Context, sessionID uuid.UUID) (workflow.View, error)
	Confirm(ctx context.Context, sessionID uuid.UUID, guest booking.GuestDetails) (workflow.View, error)
	DismissOutcome(ctx context.Context, sessionID uuid.UUID) (workflow.View, error)
}

type widgetUseCaseImpl struct {
	api      ReservationAPI
	sessions SessionRepository
	logger   *slog.Logger
}

func NewWidgetUseCase(api ReservationAPI, sessions SessionRepository, logger *slog.Logger) WidgetUseCase {
	return &widgetUseCaseImpl{
		api:      api,
		sessions: sessions,
		logger:   logger,
	}
}

func (u *widgetUseCaseImpl) LoadRatePlans(ctx context.Context) (*RatePlanOptions, error) {
	plans, err := u.api.FetchRatePlans(ctx)
	if err != nil {
		u.logger.Error("loadRatePlans error", "error", err.Error())
		return nil, errs.Wrap(err, "fetch rate plans")
	}
	return buildRatePlanOptions(plans), nil
}

func (u *widgetUseCaseImpl) View(ctx context.Context, sessionID uuid.UUID) (workflow.View, error) {
	session, err := u.session(ctx, sessionID)
	if err != nil {
		return workflow.View{}, err
	}
	return session.Snapshot(), nil
}

func (u *widgetUseCaseImpl) Search(ctx context.Context, sessionID uuid.UUID, query booking.StayQuery) (workflow.View, error) {
	session, err := u.session(ctx, sessionID)
	if err != nil {
		return workflow.View{}, err
	}

	ticket, err := session.BeginSearch(query)
	if err != nil {
		return session.Snapshot(), err
	}

	offers, err := u.api.SearchAvailability(ctx, query)
	if err != nil {
		u.logger.Error("search error", "session_id", sessionID.String(), "error", err.Error())
		u.applied(session.FailSearch(ticket), sessionID, "search")
		return session.Snapshot(), nil
	}

	u.applied(session.CompleteSearch(ticket, query, offers), sessionID, "search")
	return session.Snapshot(), nil
}

func (u *widgetUseCaseImpl) Select(ctx context.Context, sessionID uuid.UUID, index int) (workflow.View, error) {
	return u.transition(ctx, sessionID, func(s *workflow.Session) error {
		return s.Select(index)
	})
}

func (u *widgetUseCaseImpl) CancelSelection(ctx context.Context, sessionID uuid.UUID) (workflow.View, error) {
	return u.transition(ctx, sessionID, (*workflow.Session).CancelSelection)
}

func (u *widgetUseCaseImpl) Confirm(ctx context.Context, sessionID uuid.UUID, guest booking.GuestDetails) (workflow.View, error) {
	session, err := u.session(ctx, sessionID)
	if err != nil {
		return workflow.View{}, err
	}

	ticket, req, err := session.BeginConfirm(guest)
	if err != nil {
		return session.Snapshot(), err
	}

	result, err := u.api.SubmitBooking(ctx, req)
	if err != nil {
		u.logger.Error("booking error", "session_id", sessionID.String(), "error", err.Error())
		u.applied(session.FailConfirm(ticket, err), sessionID, "confirm")
		return session.Snapshot(), nil
	}

	if !result.Succeeded() {
		u.logger.Info("Booking rejected by backend", "session_id", sessionID.String(), "message", result.FailureMessage())
	}
	u.applied(session.CompleteConfirm(ticket, guest, *result), sessionID, "confirm")
	return session.Snapshot(), nil
}

func (u *widgetUseCaseImpl) DismissOutcome(ctx context.Context, sessionID uuid.UUID) (workflow.View, error) {
	return u.transition(ctx, sessionID, (*workflow.Session).DismissOutcome)
}
