package lead

import (
	"context"

	"github.com/BruksfildServices01/sales-crm/internal/audit"
	"github.com/BruksfildServices01/sales-crm/internal/domain/access"
	domain "github.com/BruksfildServices01/sales-crm/internal/domain/lead"
	"github.com/BruksfildServices01/sales-crm/internal/httperr"
	"github.com/BruksfildServices01/sales-crm/internal/metrics"
	"github.com/BruksfildServices01/sales-crm/internal/models"
	"github.com/BruksfildServices01/sales-crm/internal/timezone"
)

type MoveLead struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMoveLead(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *MoveLead {
	return &MoveLead{
		repo:  repo,
		audit: audit,
	}
}

func (uc *MoveLead) Execute(
	ctx context.Context,
	actor access.Actor,
	id string,
	stageID string,
) (*models.Lead, error) {

	if stageID == "" {
		return nil, httperr.ErrValidation("invalid_request", map[string]string{"stage_id": "required"})
	}

	var from string
	now := timezone.Now()

	moved, err := uc.repo.MoveLead(ctx, id, stageID, writeGuard(actor), func(l *models.Lead, target *models.Stage) error {
		from = l.StageID
		domain.Move(l, target, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	closing := moved.Stage != nil && moved.Stage.IsClosed
	metrics.RecordLeadMoved(closing)

	uc.audit.Dispatch(audit.Event{
		ActorID:  actor.ID,
		Action:   "lead_moved",
		Entity:   "lead",
		EntityID: moved.ID,
		Metadata: map[string]any{
			"from_stage_id": from,
			"to_stage_id":   moved.StageID,
			"status":        moved.Status,
		},
	})

	return moved, nil
}
