package auth

import (
	"context"
	"time"

	"github.com/BruksfildServices01/sales-crm/internal/audit"
	"github.com/BruksfildServices01/sales-crm/internal/auth"
	"github.com/BruksfildServices01/sales-crm/internal/domain/user"
	"github.com/BruksfildServices01/sales-crm/internal/httperr"
	"github.com/BruksfildServices01/sales-crm/internal/metrics"
	"github.com/BruksfildServices01/sales-crm/internal/models"
)

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
}

type Login struct {
	users  user.Repository
	tokens *auth.Tokens
	audit  *audit.Dispatcher
}

func NewLogin(
	users user.Repository,
	tokens *auth.Tokens,
	audit *audit.Dispatcher,
) *Login {
	return &Login{
		users:  users,
		tokens: tokens,
		audit:  audit,
	}
}

// Execute checks the credentials of an active user and issues a token.
// Unknown email, wrong password and inactive account look the same to the
// caller.
func (uc *Login) Execute(
	ctx context.Context,
	email string,
	password string,
) (*LoginResult, error) {

	u, err := uc.users.GetUserByEmail(ctx, user.NormalizeEmail(email))
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			metrics.RecordLogin(metrics.LoginInvalid)
			return nil, httperr.ErrUnauthenticated("invalid_credentials")
		}
		return nil, err
	}

	if !u.Active {
		metrics.RecordLogin(metrics.LoginInactive)
		return nil, httperr.ErrUnauthenticated("invalid_credentials")
	}

	if !auth.CheckPassword(u.PasswordHash, password) {
		metrics.RecordLogin(metrics.LoginInvalid)
		return nil, httperr.ErrUnauthenticated("invalid_credentials")
	}

	token, exp, err := uc.tokens.Issue(u)
	if err != nil {
		return nil, err
	}

	metrics.RecordLogin(metrics.LoginOK)
	uc.audit.Dispatch(audit.Event{
		ActorID:  u.ID,
		Action:   "login_succeeded",
		Entity:   "user",
		EntityID: u.ID,
	})

	return &LoginResult{Token: token, ExpiresAt: exp, User: u}, nil
}
