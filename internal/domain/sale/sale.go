package sale

import (
	"time"

	"github.com/BruksfildServices01/sales-crm/internal/httperr"
	"github.com/BruksfildServices01/sales-crm/internal/models"
)

// Patch is a partial sale update. For the nullable fields, Set with a nil
// value clears the column.
type Patch struct {
	AmountCents *int64

	PlanNameSet bool
	PlanName    *string

	PaymentRefSet bool
	PaymentRef    *string

	PaidAtSet bool
	PaidAt    *time.Time
}

func Apply(s *models.Sale, p Patch) error {
	if p.AmountCents != nil {
		if *p.AmountCents < 0 {
			return httperr.ErrValidation("invalid_request", map[string]string{"amount_cents": "min"})
		}
		s.AmountCents = *p.AmountCents
	}
	if p.PlanNameSet {
		s.PlanName = p.PlanName
	}
	if p.PaymentRefSet {
		s.PaymentRef = p.PaymentRef
	}
	if p.PaidAtSet {
		s.PaidAt = p.PaidAt
	}
	return nil
}
