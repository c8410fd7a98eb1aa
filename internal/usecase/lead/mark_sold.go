package lead

import (
	"context"

	"github.com/BruksfildServices01/sales-crm/internal/audit"
	"github.com/BruksfildServices01/sales-crm/internal/domain/access"
	domain "github.com/BruksfildServices01/sales-crm/internal/domain/lead"
	"github.com/BruksfildServices01/sales-crm/internal/metrics"
	"github.com/BruksfildServices01/sales-crm/internal/models"
	"github.com/BruksfildServices01/sales-crm/internal/timezone"
)

type MarkSoldInput struct {
	AmountCents int64
	PlanName    *string
	PaymentRef  *string
}

type MarkSold struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMarkSold(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *MarkSold {
	return &MarkSold{
		repo:  repo,
		audit: audit,
	}
}

// Execute settles a closed lead. Access is checked first, then an existing
// sale (conflict), then the stage (precondition).
func (uc *MarkSold) Execute(
	ctx context.Context,
	actor access.Actor,
	id string,
	in MarkSoldInput,
) (*models.Lead, *models.Sale, error) {

	settlement := domain.Settlement{
		AmountCents: in.AmountCents,
		PlanName:    domain.CleanOptional(in.PlanName),
		PaymentRef:  domain.CleanOptional(in.PaymentRef),
	}
	now := timezone.Now()

	sold, sale, err := uc.repo.SettleLead(ctx, id, writeGuard(actor), func(l *models.Lead) (*models.Sale, error) {
		return domain.Settle(l, settlement, now)
	})
	if err != nil {
		return nil, nil, err
	}

	metrics.RecordSale(sale.AmountCents)

	uc.audit.Dispatch(audit.Event{
		ActorID:  actor.ID,
		Action:   "lead_sold",
		Entity:   "lead",
		EntityID: sold.ID,
		Metadata: map[string]any{
			"sale_id":      sale.ID,
			"amount_cents": sale.AmountCents,
		},
	})

	return sold, sale, nil
}
