package lead

import (
	"context"

	"github.com/BruksfildServices01/sales-crm/internal/audit"
	"github.com/BruksfildServices01/sales-crm/internal/domain/access"
	domain "github.com/BruksfildServices01/sales-crm/internal/domain/lead"
)

type DeleteLead struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteLead(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteLead {
	return &DeleteLead{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the lead together with its sale, if any.
func (uc *DeleteLead) Execute(
	ctx context.Context,
	actor access.Actor,
	id string,
) error {

	if err := uc.repo.DeleteLead(ctx, id, writeGuard(actor)); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actor.ID,
		Action:   "lead_deleted",
		Entity:   "lead",
		EntityID: id,
	})
	return nil
}
