package usecase

import (
	"context"
	"log/slog"

	"booking-widget/internal/domain/workflow"
	"booking-widget/internal/pkg/errs"
	"booking-widget/internal/pkg/jwt"

	"github.com/google/uuid"
)

type SessionRepository interface {
	Create(ctx context.Context) (*workflow.Session, error)
	Get(ctx context.Context, id uuid.UUID) (*workflow.Session, error)
}

// SessionHandle identifies the widget session a request belongs to. Token is
// set only when a new session was opened and the cookie must be (re)issued.
type SessionHandle struct {
	ID     uuid.UUID
	Token  string
	Issued bool
}

// SessionUseCase resumes a widget session from its cookie token, or opens a
// fresh one when the token is missing, invalid, expired or unknown.
type SessionUseCase interface {
	Resume(ctx context.Context, token string) (*SessionHandle, error)
}

type sessionUseCaseImpl struct {
	sessions   SessionRepository
	jwtService *jwt.Service
	logger     *slog.Logger
}

func NewSessionUseCase(sessions SessionRepository, jwtService *jwt.Service, logger *slog.Logger) SessionUseCase {
	return &sessionUseCaseImpl{
		sessions:   sessions,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (u *sessionUseCaseImpl) Resume(ctx context.Context, token string) (*SessionHandle, error) {
	if token != "" {
		claims, err := u.jwtService.ValidateToken(token)
		if err == nil {
			if _, getErr := u.sessions.Get(ctx, claims.SessionID); getErr == nil {
				return &SessionHandle{ID: claims.SessionID}, nil
			}
			u.logger.Debug("Session token refers to an unknown session", "session_id", claims.SessionID.String())
		} else {
			u.logger.Debug("Session token rejected", "error", err.Error())
		}
	}

	session, err := u.sessions.Create(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "create session")
	}
	issued, err := u.jwtService.GenerateToken(session.ID())
	if err != nil {
		return nil, errs.Wrap(err, "sign session token")
	}
	return &SessionHandle{ID: session.ID(), Token: issued, Issued: true}, nil
}
