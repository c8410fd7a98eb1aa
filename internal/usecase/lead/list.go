package lead

import (
	"context"

	"github.com/BruksfildServices01/sales-crm/internal/domain/access"
	domain "github.com/BruksfildServices01/sales-crm/internal/domain/lead"
	"github.com/BruksfildServices01/sales-crm/internal/models"
	"github.com/BruksfildServices01/sales-crm/internal/timezone"
)

type ListLeadsInput struct {
	Query   string
	StageID string
	OwnerID string
	From    string
	To      string
}

type ListLeads struct {
	repo domain.Repository
}

func NewListLeads(repo domain.Repository) *ListLeads {
	return &ListLeads{repo: repo}
}

// Execute lists the leads visible to actor, most recently updated first.
func (uc *ListLeads) Execute(
	ctx context.Context,
	actor access.Actor,
	in ListLeadsInput,
) ([]models.Lead, error) {

	created, err := timezone.ParseRange(in.From, in.To)
	if err != nil {
		return nil, err
	}

	return uc.repo.ListLeads(ctx, domain.ListFilter{
		ScopeOwnerID: access.ListOwnerFilter(actor),
		OwnerID:      in.OwnerID,
		StageID:      in.StageID,
		Query:        in.Query,
		Created:      created,
	})
}
