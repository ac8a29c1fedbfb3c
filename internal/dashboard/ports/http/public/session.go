package public

import (
	"context"
	"github.com/langowen/fxdash/internal/dashboard/session"
	"net/http"
)

const SessionCookie = "fxdash_session"

type sessionKey struct{}

// withSession attaches the caller's session, creating one and setting the
// cookie when the request carries none or an expired one.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sess *session.Session

		if c, err := r.Cookie(SessionCookie); err == nil {
			sess, _ = s.sessions.Get(c.Value)
		}

		if sess == nil {
			sess = s.sessions.Create(r.Context())
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFrom(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(sessionKey{}).(*session.Session)
	return sess
}
