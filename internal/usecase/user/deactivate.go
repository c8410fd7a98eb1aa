package user

import (
	"context"

	"github.com/BruksfildServices01/sales-crm/internal/audit"
	"github.com/BruksfildServices01/sales-crm/internal/domain/access"
	domain "github.com/BruksfildServices01/sales-crm/internal/domain/user"
	"github.com/BruksfildServices01/sales-crm/internal/httperr"
)

type DeactivateUser struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeactivateUser(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeactivateUser {
	return &DeactivateUser{
		repo:  repo,
		audit: audit,
	}
}

// Execute soft-deletes the account. Its leads keep their owner.
func (uc *DeactivateUser) Execute(
	ctx context.Context,
	actor access.Actor,
	id string,
) error {

	if id == actor.ID {
		return httperr.ErrBusiness("cannot_deactivate_self")
	}

	u, err := uc.repo.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if err := canManage(actor, access.Role(u.Role)); err != nil {
		return err
	}

	u.Active = false
	if err := uc.repo.SaveUser(ctx, u); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actor.ID,
		Action:   "user_deactivated",
		Entity:   "user",
		EntityID: u.ID,
	})
	return nil
}
