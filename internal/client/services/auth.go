// Package services contains the application services behind the admin CLI.
// This file defines the authentication service: login against the API,
// logout, account registration and housekeeping of the local session.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/adminclient/internal/client/client"
	"github.com/dmitrijs2005/adminclient/internal/client/models"
	"github.com/dmitrijs2005/adminclient/internal/client/session"
	"github.com/dmitrijs2005/adminclient/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the server and make the result the current session.
//   - Logout: end the current session locally.
//   - Register: create a new account on the server.
//   - IsAuthenticated: report whether a token is held.
//   - Close: release underlying client resources.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	Register(ctx context.Context, user models.NewUser) (*models.User, error)
	IsAuthenticated() bool
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by a remote Client and the
// process-wide session store.
type authService struct {
	client  client.Client
	session *session.Store
	log     logging.Logger
	now     func() time.Time
}

// NewAuthService constructs an AuthService bound to the given API client and session.
func NewAuthService(c client.Client, s *session.Store, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Discard()
	}
	return &authService{client: c, session: s, log: log.With("component", "auth"), now: time.Now}
}

// Login authenticates against the server and stores the returned token and
// user in the session. A failure to persist the token is logged and does not
// fail the login: the session is usable for this run.
func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	res, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := a.session.SetAuth(ctx, res.Token, res.User); err != nil {
		a.log.Warn(ctx, "session will not survive a restart", "error", err)
	}
	return res.User.Clone(), nil
}

// Logout clears the session. The in-memory session is always cleared; the
// error reports a failure to remove the persisted token.
func (a *authService) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}

// Register creates a new account on the server. Joining and update dates are
// stamped with the current time.
func (a *authService) Register(ctx context.Context, user models.NewUser) (*models.User, error) {
	created, err := a.client.Register(ctx, newRegistration(user, a.now()))
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	return created, nil
}

func (a *authService) IsAuthenticated() bool {
	return a.session.IsAuthenticated()
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

// isoTime matches the millisecond UTC timestamps the web UI sends.
const isoTime = "2006-01-02T15:04:05.000Z"

func newRegistration(u models.NewUser, now time.Time) models.Registration {
	stamp := now.UTC().Format(isoTime)
	return models.Registration{
		Name:        u.FullName,
		Email:       u.Email,
		Password:    u.Password,
		Role:        string(u.Role),
		Phone:       u.Phone,
		Category:    u.Category,
		DateOfBirth: u.DateOfBirth,
		JoiningDate: stamp,
		UpdateDate:  stamp,
	}
}
