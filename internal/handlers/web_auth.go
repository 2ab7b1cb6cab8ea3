package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-currency-dashboard/internal/facades"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/logger"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/models"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/services"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/views"
)

//go:generate mockgen -source=web_auth.go -destination=mock_web_auth.go -package=handlers

// Messages shown on the sign-in and sign-up pages.
const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgMissingCredentials = "Please enter your email and password."
	MsgSignInFailed       = "Sign in failed. Please try again."
	MsgSignUpFailed       = "Sign up failed. Please try again."
	MsgSignedUp           = "Account created. Please sign in."
)

// SessionAuthenticator manages the token of the browser session.
type SessionAuthenticator interface {
	SignIn(ctx context.Context, sess *models.Session, email, password string) error
	SignUp(ctx context.Context, fullName, email, password string) error
	SignOut(ctx context.Context, sess *models.Session) error
}

// ViewForgetter tears down per-session view state.
type ViewForgetter interface {
	Forget(sessionID string)
}

func render(w http.ResponseWriter, status int, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := views.Render(w, page, data); err != nil {
		logger.Log.Errorw("failed to render page", "page", page, "err", err)
	}
}

// NewIndexHandler redirects the entry route to the sign-in page.
func NewIndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/signin", http.StatusFound)
	}
}

// NewSignInPageHandler renders the sign-in form.
func NewSignInPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := views.AuthData{}
		if r.URL.Query().Get("registered") != "" {
			data.Notice = MsgSignedUp
		}
		render(w, http.StatusOK, views.SignInPage, data)
	}
}

// NewSignInHandler exchanges credentials for a token stored in the session.
func NewSignInHandler(
	sessionGetter func(ctx context.Context) *models.Session,
	auth SessionAuthenticator,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		email := r.PostFormValue("email")
		err := auth.SignIn(ctx, sessionGetter(ctx), email, r.PostFormValue("password"))
		if err != nil {
			data := views.AuthData{Email: email}
			status := http.StatusUnauthorized
			switch {
			case errors.Is(err, facades.ErrInvalidCredentials):
				data.Error = MsgInvalidCredentials
			case errors.Is(err, services.ErrMissingCredentials):
				data.Error = MsgMissingCredentials
				status = http.StatusBadRequest
			default:
				logger.Log.Errorw("sign in failed", "err", err)
				data.Error = MsgSignInFailed
				status = http.StatusBadGateway
			}
			render(w, status, views.SignInPage, data)
			return
		}

		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}

// NewSignUpPageHandler renders the sign-up form.
func NewSignUpPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, http.StatusOK, views.SignUpPage, views.AuthData{})
	}
}

// NewSignUpHandler registers an account and sends the browser to sign in.
func NewSignUpHandler(auth SessionAuthenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fullName := r.PostFormValue("fullName")
		email := r.PostFormValue("email")

		err := auth.SignUp(r.Context(), fullName, email, r.PostFormValue("password"))
		if err != nil {
			data := views.AuthData{Email: email, FullName: fullName}
			status := http.StatusBadRequest
			switch {
			case errors.Is(err, services.ErrMissingCredentials):
				data.Error = MsgMissingCredentials
			case errors.Is(err, facades.ErrSignupRejected):
				data.Error = signUpRejectedMessage(err)
			default:
				logger.Log.Errorw("sign up failed", "err", err)
				data.Error = MsgSignUpFailed
				status = http.StatusBadGateway
			}
			render(w, status, views.SignUpPage, data)
			return
		}

		http.Redirect(w, r, "/signin?registered=1", http.StatusSeeOther)
	}
}

// signUpRejectedMessage surfaces the server's reason when it gave one.
func signUpRejectedMessage(err error) string {
	reason := strings.TrimPrefix(err.Error(), facades.ErrSignupRejected.Error())
	reason = strings.TrimSpace(strings.TrimPrefix(reason, ":"))
	if reason == "" {
		return MsgSignUpFailed
	}
	return reason
}

// NewLogoutHandler destroys the token and the dashboard of the session.
func NewLogoutHandler(
	sessionGetter func(ctx context.Context) *models.Session,
	auth SessionAuthenticator,
	dashboard ViewForgetter,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := sessionGetter(ctx)

		dashboard.Forget(sess.ID)
		if err := auth.SignOut(ctx, sess); err != nil {
			logger.Log.Errorw("failed to delete session token", "session_id", sess.ID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/signin", http.StatusSeeOther)
	}
}
