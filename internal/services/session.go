package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/gw-currency-dashboard/internal/logger"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/models"
)

//go:generate mockgen -source=session.go -destination=mock_session.go -package=services

// ErrMissingCredentials is returned when a sign-in or sign-up form is incomplete.
var ErrMissingCredentials = errors.New("email and password are required")

// TokenStore persists the session token under the well-known key.
type TokenStore interface {
	GetToken(ctx context.Context, sessionID string) (string, error)
	SetToken(ctx context.Context, sessionID, token string) error
	DeleteToken(ctx context.Context, sessionID string) error
}

// AuthClient is the remote API used to obtain tokens.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (string, error)
	Signup(ctx context.Context, fullName, email, password string) error
}

// SessionService is the only component that reads or writes session tokens.
type SessionService struct {
	store  TokenStore
	client AuthClient
}

// NewSessionService creates a new SessionService instance.
func NewSessionService(store TokenStore, client AuthClient) *SessionService {
	return &SessionService{store: store, client: client}
}

// Load returns the session context for the given session id.
func (svc *SessionService) Load(ctx context.Context, sessionID string) (*models.Session, error) {
	token, err := svc.store.GetToken(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &models.Session{ID: sessionID, Token: token}, nil
}

// SignIn obtains a token for the credentials and stores it in the session.
func (svc *SessionService) SignIn(ctx context.Context, sess *models.Session, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return ErrMissingCredentials
	}

	token, err := svc.client.Login(ctx, email, password)
	if err != nil {
		logger.Log.Infow("sign in failed", "session_id", sess.ID, "err", err)
		return err
	}

	if err := svc.store.SetToken(ctx, sess.ID, token); err != nil {
		return err
	}
	sess.Token = token
	return nil
}

// SignUp registers a new account. The session stays signed out.
func (svc *SessionService) SignUp(ctx context.Context, fullName, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return ErrMissingCredentials
	}
	return svc.client.Signup(ctx, strings.TrimSpace(fullName), email, password)
}

// SignOut destroys the session token.
func (svc *SessionService) SignOut(ctx context.Context, sess *models.Session) error {
	if err := svc.store.DeleteToken(ctx, sess.ID); err != nil {
		return err
	}
	sess.Token = ""
	return nil
}
