package lead

import (
	"context"

	"github.com/BruksfildServices01/sales-crm/internal/domain/access"
	domain "github.com/BruksfildServices01/sales-crm/internal/domain/lead"
	"github.com/BruksfildServices01/sales-crm/internal/models"
)

type GetLead struct {
	repo domain.Repository
}

func NewGetLead(repo domain.Repository) *GetLead {
	return &GetLead{repo: repo}
}

func (uc *GetLead) Execute(
	ctx context.Context,
	actor access.Actor,
	id string,
) (*models.Lead, error) {

	l, err := uc.repo.GetLead(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Check(actor, access.OpRead, l.OwnerID); err != nil {
		return nil, err
	}
	return l, nil
}
