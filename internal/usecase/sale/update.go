package sale

import (
	"context"

	"github.com/BruksfildServices01/sales-crm/internal/audit"
	"github.com/BruksfildServices01/sales-crm/internal/domain/access"
	"github.com/BruksfildServices01/sales-crm/internal/domain/lead"
	domain "github.com/BruksfildServices01/sales-crm/internal/domain/sale"
	"github.com/BruksfildServices01/sales-crm/internal/dto"
	"github.com/BruksfildServices01/sales-crm/internal/httperr"
	"github.com/BruksfildServices01/sales-crm/internal/models"
	"github.com/BruksfildServices01/sales-crm/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type UpdateSaleInput struct {
	AmountCents *int64
	PlanName    dto.Nullable[string]
	PaymentRef  dto.Nullable[string]
	// PaidAt is RFC 3339 or YYYY-MM-DD; null marks the sale unpaid.
	PaidAt dto.Nullable[string]
}

// ======================================================
// USE CASE
// ======================================================

type UpdateSale struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateSale(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateSale {
	return &UpdateSale{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute edits the sale of a lead the actor may write. The lead's status is
// not touched.
func (uc *UpdateSale) Execute(
	ctx context.Context,
	actor access.Actor,
	id string,
	in UpdateSaleInput,
) (*models.Sale, *models.Lead, error) {

	patch, err := toPatch(in)
	if err != nil {
		return nil, nil, err
	}

	s, l, err := uc.repo.UpdateSale(ctx, id,
		func(l *models.Lead) error {
			return access.Check(actor, access.OpWrite, l.OwnerID)
		},
		func(s *models.Sale) error {
			return domain.Apply(s, patch)
		},
	)
	if err != nil {
		return nil, nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actor.ID,
		Action:   "sale_updated",
		Entity:   "sale",
		EntityID: s.ID,
		Metadata: map[string]any{
			"lead_id":      l.ID,
			"amount_cents": s.AmountCents,
			"paid":         s.PaidAt != nil,
		},
	})

	return s, l, nil
}

func toPatch(in UpdateSaleInput) (domain.Patch, error) {
	p := domain.Patch{
		AmountCents:   in.AmountCents,
		PlanNameSet:   in.PlanName.Set,
		PlanName:      lead.CleanOptional(in.PlanName.Value),
		PaymentRefSet: in.PaymentRef.Set,
		PaymentRef:    lead.CleanOptional(in.PaymentRef.Value),
		PaidAtSet:     in.PaidAt.Set,
	}

	if in.PaidAt.Value != nil {
		t, err := timezone.ParseBound(*in.PaidAt.Value)
		if err != nil {
			return domain.Patch{}, httperr.ErrValidation("invalid_request", map[string]string{"paid_at": "datetime"})
		}
		p.PaidAt = &t
	}
	return p, nil
}
