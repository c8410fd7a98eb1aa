package stage

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/sales-crm/internal/audit"
	"github.com/BruksfildServices01/sales-crm/internal/domain/access"
	"github.com/BruksfildServices01/sales-crm/internal/domain/lead"
	domain "github.com/BruksfildServices01/sales-crm/internal/domain/stage"
	"github.com/BruksfildServices01/sales-crm/internal/models"
	"github.com/BruksfildServices01/sales-crm/internal/timezone"
)

type UpdateStageInput struct {
	Name     *string
	Order    *int
	IsClosed *bool
}

type UpdateStage struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStage(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStage {
	return &UpdateStage{
		repo:  repo,
		audit: audit,
	}
}

// Execute edits a stage. Flipping IsClosed re-derives the status and closedAt
// of every lead in the stage, as if each had just been moved into it.
func (uc *UpdateStage) Execute(
	ctx context.Context,
	actor access.Actor,
	id string,
	in UpdateStageInput,
) (*models.Stage, error) {

	s, err := uc.repo.GetStage(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if err := domain.ValidateName(name); err != nil {
			return nil, err
		}
		s.Name = name
	}
	if in.Order != nil {
		if err := domain.ValidateOrder(*in.Order); err != nil {
			return nil, err
		}
		s.Order = *in.Order
	}

	var rederive func(l *models.Lead)
	if in.IsClosed != nil && *in.IsClosed != s.IsClosed {
		s.IsClosed = *in.IsClosed
		now := timezone.Now()
		rederive = func(l *models.Lead) { lead.Move(l, s, now) }
	}

	if err := uc.repo.UpdateStage(ctx, s, rederive); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actor.ID,
		Action:   "stage_updated",
		Entity:   "stage",
		EntityID: s.ID,
		Metadata: s,
	})

	return s, nil
}
