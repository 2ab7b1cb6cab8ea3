package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/jwt"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/logger"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/models"
)

//go:generate mockgen -source=session.go -destination=mock_session.go -package=middlewares

// SessionCookieName is the cookie carrying the signed session id.
const SessionCookieName = "session"

// SessionCodec signs and verifies session ids.
type SessionCodec interface {
	Generate(ctx context.Context, id uuid.UUID) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionLoader resolves a session id into the session context.
type SessionLoader interface {
	Load(ctx context.Context, sessionID string) (*models.Session, error)
}

type sessionKey struct{}

// SessionMiddleware resolves the session cookie into a models.Session stored
// in the request context. Browsers without a valid cookie get a new session.
func SessionMiddleware(codec SessionCodec, loader SessionLoader, exp time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			sessionID, ok := readSessionCookie(ctx, codec, r)
			if !ok {
				id := uuid.New()
				signed, err := codec.Generate(ctx, id)
				if err != nil {
					logger.Log.Errorw("failed to sign session cookie", "error", err)
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookieName,
					Value:    signed,
					Path:     "/",
					MaxAge:   int(exp.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
				sessionID = id.String()
			}

			sess, err := loader.Load(ctx, sessionID)
			if err != nil {
				logger.Log.Errorw("failed to load session", "session_id", sessionID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(ctx, sess)))
		})
	}
}

func readSessionCookie(ctx context.Context, codec SessionCodec, r *http.Request) (string, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return "", false
	}
	claims, err := codec.GetClaims(ctx, cookie.Value)
	if err != nil {
		logger.Log.Debugw("discarding invalid session cookie", "error", err)
		return "", false
	}
	return claims.UserID.String(), true
}

// WithSession stores the session in the context.
func WithSession(ctx context.Context, sess *models.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// SessionFromContext returns the session stored by SessionMiddleware, or nil.
func SessionFromContext(ctx context.Context) *models.Session {
	sess, _ := ctx.Value(sessionKey{}).(*models.Session)
	return sess
}
