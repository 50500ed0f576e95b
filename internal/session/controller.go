// Package session drives the client auth lifecycle: login and registration
// against the API, the persisted session user, and the post-auth redirect.
package session

import (
	"context"
	"log/slog"
	"strings"

	"github.com/0xGitteth/Exhibit-sub000/internal/localstate"
	"github.com/0xGitteth/Exhibit-sub000/internal/models"
)

type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticating  State = "authenticating"
	StateAuthenticated   State = "authenticated"
	StateLoggedOut       State = "logged_out"
)

// Landing targets the controller routes to after an auth transition.
const (
	PageLogin      = "/login"
	PageOnboarding = "/onboarding"
	PageHome       = "/home"
)

// Navigator is the redirect sink; the UI supplies the real router.
type Navigator interface {
	NavigateTo(target string)
}

// AuthAPI is the slice of the auth gateway the controller needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Register(ctx context.Context, payload map[string]any) (*models.User, string, error)
	Logout(ctx context.Context) error
}

type Controller struct {
	auth    AuthAPI
	session *localstate.SessionStore
	nav     Navigator
	logger  *slog.Logger
	state   State
}

func NewController(auth AuthAPI, store *localstate.SessionStore, nav Navigator, logger *slog.Logger) *Controller {
	state := StateUnauthenticated
	if _, ok := store.Current(); ok {
		state = StateAuthenticated
	}
	return &Controller{
		auth:    auth,
		session: store,
		nav:     nav,
		logger:  logger,
		state:   state,
	}
}

func (c *Controller) State() State {
	return c.state
}

// Login authenticates against the fixed credential set, persists the session
// user and routes: onboarding when the account has not finished onboarding,
// otherwise the caller-specified landing page or the default home.
func (c *Controller) Login(ctx context.Context, identifier, secret, redirectTo string) (*models.User, error) {
	c.state = StateAuthenticating
	user, _, err := c.auth.Login(ctx, strings.TrimSpace(identifier), secret)
	if err != nil {
		c.state = StateUnauthenticated
		return nil, err
	}
	if err := c.session.Save(user); err != nil {
		c.logger.Warn("failed to persist session user", "error", err)
	}
	c.state = StateAuthenticated

	switch {
	case !user.OnboardingComplete:
		c.nav.NavigateTo(PageOnboarding)
	case redirectTo != "":
		c.nav.NavigateTo(redirectTo)
	default:
		c.nav.NavigateTo(PageHome)
	}
	return user, nil
}

// Register creates an account, which always lands fully onboarded, persists
// it and routes home unless the redirect is suppressed.
func (c *Controller) Register(ctx context.Context, payload map[string]any, suppressRedirect bool) (*models.User, error) {
	c.state = StateAuthenticating
	payload["onboarding_complete"] = true
	user, _, err := c.auth.Register(ctx, payload)
	if err != nil {
		c.state = StateUnauthenticated
		return nil, err
	}
	if err := c.session.Save(user); err != nil {
		c.logger.Warn("failed to persist session user", "error", err)
	}
	c.state = StateAuthenticated
	if !suppressRedirect {
		c.nav.NavigateTo(PageHome)
	}
	return user, nil
}

// Logout clears the local session and routes to the login entry point
// regardless of how the remote logout call fares.
func (c *Controller) Logout(ctx context.Context) {
	if err := c.auth.Logout(ctx); err != nil {
		c.logger.Warn("remote logout failed", "error", err)
	}
	c.session.Clear()
	c.state = StateLoggedOut
	c.nav.NavigateTo(PageLogin)
}
