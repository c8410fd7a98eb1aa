package sale

import (
	"context"

	"github.com/BruksfildServices01/sales-crm/internal/domain/access"
	domain "github.com/BruksfildServices01/sales-crm/internal/domain/sale"
	"github.com/BruksfildServices01/sales-crm/internal/httperr"
	"github.com/BruksfildServices01/sales-crm/internal/models"
	"github.com/BruksfildServices01/sales-crm/internal/timezone"
)

type ListSalesInput struct {
	Query    string
	PlanName string
	// Paid is "true", "false" or empty.
	Paid string
	From string
	To   string
}

type ListSales struct {
	repo domain.Repository
}

func NewListSales(repo domain.Repository) *ListSales {
	return &ListSales{repo: repo}
}

// Execute returns sold leads visible to actor with their sale loaded, newest
// sale first. The date range applies to the sale's creation time.
func (uc *ListSales) Execute(
	ctx context.Context,
	actor access.Actor,
	in ListSalesInput,
) ([]models.Lead, error) {

	created, err := timezone.ParseRange(in.From, in.To)
	if err != nil {
		return nil, err
	}

	var paid *bool
	switch in.Paid {
	case "":
	case "true", "false":
		v := in.Paid == "true"
		paid = &v
	default:
		return nil, httperr.ErrValidation("invalid_request", map[string]string{"paid": "boolean"})
	}

	return uc.repo.ListSales(ctx, domain.ListFilter{
		ScopeOwnerID: access.ListOwnerFilter(actor),
		Query:        in.Query,
		PlanName:     in.PlanName,
		Paid:         paid,
		Created:      created,
	})
}
