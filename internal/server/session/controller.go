package session

import (
	"context"

	"github.com/dmitrijs2005/hydrohabit/internal/common"
	"github.com/dmitrijs2005/hydrohabit/internal/server/models"
	"github.com/dmitrijs2005/hydrohabit/internal/server/services"
)

// Controller drives the session state machine. Operations report outcomes
// through error returns only; a failed operation leaves the session usable.
// No operation retries: every failure requires the user to re-initiate.
type Controller struct {
	users *services.UserService
	sips  *services.SipService
}

func NewController(users *services.UserService, sips *services.SipService) *Controller {
	return &Controller{users: users, sips: sips}
}

// Register creates a credential record and returns its login token. Valid
// only from the unauthenticated state; it does not authenticate — the
// registrant must log in afterwards with the returned token.
func (c *Controller) Register(ctx context.Context, s Session, username string) (string, error) {
	if s.Authenticated {
		return "", common.ErrorAlreadyAuthenticated
	}
	if username == "" {
		return "", common.ErrorValidation
	}

	return c.users.Register(ctx, username)
}

// Login validates credentials and, on success, returns an authenticated
// Session bound to them. On mismatch the session is returned unchanged with
// ErrorUnauthorized; a missing username and a wrong token are not
// distinguishable.
func (c *Controller) Login(ctx context.Context, s Session, username, token string) (Session, error) {
	if s.Authenticated {
		return s, common.ErrorAlreadyAuthenticated
	}
	if username == "" || token == "" {
		return s, common.ErrorValidation
	}

	ok, err := c.users.Validate(ctx, username, token)
	if err != nil {
		return s, err
	}
	if !ok {
		return s, common.ErrorUnauthorized
	}

	return Session{Authenticated: true, Username: username, LoginToken: token}, nil
}

// LogSip appends one sip for the bound user.
func (c *Controller) LogSip(ctx context.Context, s Session) error {
	if !s.Authenticated {
		return common.ErrorNotAuthenticated
	}

	return c.sips.LogSip(ctx, s.Username)
}

// Summary recomputes the bound user's daily metrics.
func (c *Controller) Summary(ctx context.Context, s Session) (services.Summary, error) {
	if !s.Authenticated {
		return services.Summary{}, common.ErrorNotAuthenticated
	}

	return c.sips.Summary(ctx, s.Username)
}

// History returns the bound user's per-day totals, newest first.
func (c *Controller) History(ctx context.Context, s Session) ([]models.DayTotal, error) {
	if !s.Authenticated {
		return nil, common.ErrorNotAuthenticated
	}

	return c.sips.History(ctx, s.Username)
}

// Logout clears the session atomically, returning the zero value.
func (c *Controller) Logout(s Session) (Session, error) {
	if !s.Authenticated {
		return s, common.ErrorNotAuthenticated
	}

	return Session{}, nil
}
