package middleware

import (
	"net/http"
	"time"

	"booking-widget/internal/handler/httperr"
	"booking-widget/internal/pkg/config"
	"booking-widget/internal/pkg/cookie"
	"booking-widget/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SessionMiddleware struct {
	sessions  usecase.SessionUseCase
	cookieCfg config.CookieConfig
	tokenTTL  time.Duration
}

const ctxSessionIDKey = "session_id"

func NewSessionMiddleware(sessions usecase.SessionUseCase, cfg config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		sessions:  sessions,
		cookieCfg: cfg.Cookie,
		tokenTTL:  cfg.Session.Duration,
	}
}

// RequireSession attaches the caller's widget session, opening a new one and
// setting its cookie when the presented one is missing or no longer valid.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		handle, err := m.sessions.Resume(c.Request.Context(), cookie.GetSessionToken(c))
		if err != nil {
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
			return
		}

		if handle.Issued {
			cookie.SetSessionCookie(c, m.cookieCfg, handle.Token, m.tokenTTL)
		}

		c.Set(ctxSessionIDKey, handle.ID)
		c.Next()
	}
}

func GetSessionID(c *gin.Context) (uuid.UUID, bool) {
	sessionID, exists := c.Get(ctxSessionIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := sessionID.(uuid.UUID)
	return id, ok
}
