package middlewares

import (
	"net/http"
)

//go:generate mockgen -source=guard.go -destination=mock_guard.go -package=middlewares

// EntryRoute is where unauthenticated visitors of protected views are sent.
const EntryRoute = "/"

// ViewDropper releases the per-session state of protected views.
type ViewDropper interface {
	Forget(sessionID string)
}

// RouteGuard renders the protected view only for sessions holding a token.
// Token validity is not checked. A session without a token has its view
// state dropped before the redirect; dropper may be nil.
func RouteGuard(dropper ViewDropper) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := SessionFromContext(r.Context())
			if !sess.Authenticated() {
				if sess != nil && dropper != nil {
					dropper.Forget(sess.ID)
				}
				http.Redirect(w, r, EntryRoute, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
