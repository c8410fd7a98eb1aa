package stage

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/sales-crm/internal/audit"
	"github.com/BruksfildServices01/sales-crm/internal/domain/access"
	domain "github.com/BruksfildServices01/sales-crm/internal/domain/stage"
	"github.com/BruksfildServices01/sales-crm/internal/models"
)

type CreateStageInput struct {
	Name     string
	Order    int
	IsClosed bool
}

type CreateStage struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateStage(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateStage {
	return &CreateStage{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateStage) Execute(
	ctx context.Context,
	actor access.Actor,
	in CreateStageInput,
) (*models.Stage, error) {

	name := strings.TrimSpace(in.Name)
	if err := domain.ValidateName(name); err != nil {
		return nil, err
	}
	if err := domain.ValidateOrder(in.Order); err != nil {
		return nil, err
	}

	s := &models.Stage{
		Name:     name,
		Order:    in.Order,
		IsClosed: in.IsClosed,
	}
	if err := uc.repo.CreateStage(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actor.ID,
		Action:   "stage_created",
		Entity:   "stage",
		EntityID: s.ID,
		Metadata: s,
	})

	return s, nil
}
