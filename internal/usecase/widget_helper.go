package usecase

import (
	"context"
	"errors"

	"booking-widget/internal/domain/booking"
	"booking-widget/internal/domain/workflow"
	"booking-widget/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	allPlansLabel = "All"
	noPlansLabel  = "No plans"
)

func buildRatePlanOptions(plans []booking.RatePlan) *RatePlanOptions {
	opts := []RatePlanOption{{Value: "", Label: allPlansLabel}}
	if len(plans) == 0 {
		opts = append(opts, RatePlanOption{Value: "", Label: noPlansLabel})
		return &RatePlanOptions{Options: opts, Plans: []booking.RatePlan{}}
	}
	for _, p := range plans {
		opts = append(opts, RatePlanOption{Value: p.Name(), Label: p.Name()})
	}
	return &RatePlanOptions{Options: opts, Plans: plans}
}

func (u *widgetUseCaseImpl) session(ctx context.Context, sessionID uuid.UUID) (*workflow.Session, error) {
	session, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrSessionNotFound)
	}
	return session, nil
}

func (u *widgetUseCaseImpl) transition(ctx context.Context, sessionID uuid.UUID, apply func(*workflow.Session) error) (workflow.View, error) {
	session, err := u.session(ctx, sessionID)
	if err != nil {
		return workflow.View{}, err
	}
	if err := apply(session); err != nil {
		return session.Snapshot(), err
	}
	return session.Snapshot(), nil
}

// applied logs completions that lost the race to a newer request.
func (u *widgetUseCaseImpl) applied(err error, sessionID uuid.UUID, action string) {
	if err == nil {
		return
	}
	if errors.Is(err, workflow.ErrStaleTicket) {
		u.logger.Info("Discarded stale response", "session_id", sessionID.String(), "action", action)
		return
	}
	u.logger.Warn("Failed to apply response", "session_id", sessionID.String(), "action", action, "error", err.Error())
}
