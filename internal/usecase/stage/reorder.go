package stage

import (
	"context"

	"github.com/BruksfildServices01/sales-crm/internal/audit"
	"github.com/BruksfildServices01/sales-crm/internal/domain/access"
	domain "github.com/BruksfildServices01/sales-crm/internal/domain/stage"
	"github.com/BruksfildServices01/sales-crm/internal/models"
)

type ReorderStages struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewReorderStages(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ReorderStages {
	return &ReorderStages{
		repo:  repo,
		audit: audit,
	}
}

// Execute applies the whole batch atomically and returns the new ordering.
func (uc *ReorderStages) Execute(
	ctx context.Context,
	actor access.Actor,
	batch []domain.Position,
) ([]models.Stage, error) {

	if err := domain.ValidateReorder(batch); err != nil {
		return nil, err
	}
	if err := uc.repo.Reorder(ctx, batch); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actor.ID,
		Action:   "stages_reordered",
		Entity:   "stage",
		Metadata: batch,
	})

	return uc.repo.ListStages(ctx)
}
