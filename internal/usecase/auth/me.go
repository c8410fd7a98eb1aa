package auth

import (
	"context"

	"github.com/BruksfildServices01/sales-crm/internal/domain/access"
	"github.com/BruksfildServices01/sales-crm/internal/domain/user"
	"github.com/BruksfildServices01/sales-crm/internal/httperr"
	"github.com/BruksfildServices01/sales-crm/internal/models"
)

type Me struct {
	users user.Repository
}

func NewMe(users user.Repository) *Me {
	return &Me{users: users}
}

// Execute returns the stored account behind the token. A token for a user
// that was since removed or deactivated is rejected.
func (uc *Me) Execute(ctx context.Context, actor access.Actor) (*models.User, error) {
	u, err := uc.users.GetUser(ctx, actor.ID)
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			return nil, httperr.ErrUnauthenticated("invalid_token")
		}
		return nil, err
	}
	if !u.Active {
		return nil, httperr.ErrUnauthenticated("invalid_token")
	}
	return u, nil
}
