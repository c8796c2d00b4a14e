package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/models"
	"github.com/Sagar0810k/Happy-taxi-full-stack/pkg/utils"
)

type (
	sessionKey       struct{}
	sessionHolderKey struct{}
)

// sessionHolder lets middleware that runs before RequireDriver see who the
// caller turned out to be once the request is done.
type sessionHolder struct {
	userID string
}

// SessionParser turns a bearer token into a session.
type SessionParser interface {
	Parse(token string) (models.Session, error)
}

// RequireDriver rejects requests without a valid driver session and stores the
// session in the request context otherwise.
func RequireDriver(parser SessionParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.Unauthorized(w, "missing authorization header")
				return
			}

			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				utils.Unauthorized(w, "invalid authorization header format")
				return
			}

			session, err := parser.Parse(strings.TrimSpace(token))
			if err != nil {
				log.Printf("session rejected for %s %s: %v", r.Method, r.URL.Path, err)
				utils.Unauthorized(w, "invalid or expired token")
				return
			}

			if !session.IsDriver() {
				utils.Forbidden(w, "driver role required")
				return
			}

			if holder, ok := r.Context().Value(sessionHolderKey{}).(*sessionHolder); ok {
				holder.userID = session.UserID
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

func WithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext returns the session stored by RequireDriver.
func SessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(models.Session)
	return session, ok
}

// attachSessionHolder returns the request carrying a holder, reusing one an
// outer middleware already attached.
func attachSessionHolder(r *http.Request) (*http.Request, *sessionHolder) {
	if holder, ok := r.Context().Value(sessionHolderKey{}).(*sessionHolder); ok {
		return r, holder
	}
	holder := &sessionHolder{}
	return r.WithContext(context.WithValue(r.Context(), sessionHolderKey{}, holder)), holder
}
