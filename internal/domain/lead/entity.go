package lead

import (
	"time"

	"github.com/BruksfildServices01/sales-crm/internal/httperr"
	"github.com/BruksfildServices01/sales-crm/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Open places a new lead in its first stage. Creating straight into a closing
// stage closes it immediately, same as a move would.
func Open(l *models.Lead, stage *models.Stage, now time.Time) {
	l.StageID = stage.ID
	l.Stage = stage
	l.ClosedAt = nil
	if stage.IsClosed {
		l.ClosedAt = &now
	}
	l.Status = string(DeriveStatus(stage.IsClosed, false))
}

// Move puts the lead in target. closedAt is set the first time the lead
// enters a closing stage and never overwritten while it stays closed; any move
// to a non-closing stage clears it. A sold lead keeps SOLD.
func Move(l *models.Lead, target *models.Stage, now time.Time) {
	l.StageID = target.ID
	l.Stage = target

	if target.IsClosed {
		if l.ClosedAt == nil {
			l.ClosedAt = &now
		}
	} else {
		l.ClosedAt = nil
	}

	l.Status = string(DeriveStatus(target.IsClosed, l.Sale != nil))
}

type Settlement struct {
	AmountCents int64
	PlanName    *string
	PaymentRef  *string
}

// CanSettle checks the settlement preconditions. l.Stage and l.Sale must be
// loaded. An existing sale is reported before the stage check so a repeated
// settlement is always a conflict.
func CanSettle(l *models.Lead) error {
	if l.Sale != nil {
		return httperr.ErrConflict("sale_already_exists")
	}
	if l.Stage == nil || !l.Stage.IsClosed {
		return httperr.ErrBusiness("lead_not_closed")
	}
	return nil
}

// Settle records the sale on l and marks it SOLD. The returned sale is not
// persisted.
func Settle(l *models.Lead, in Settlement, now time.Time) (*models.Sale, error) {
	if in.AmountCents < 0 {
		return nil, httperr.ErrValidation("invalid_request", map[string]string{"amount_cents": "min"})
	}
	if err := CanSettle(l); err != nil {
		return nil, err
	}

	sale := &models.Sale{
		LeadID:      l.ID,
		AmountCents: in.AmountCents,
		PlanName:    in.PlanName,
		PaymentRef:  in.PaymentRef,
		CreatedAt:   now,
	}

	l.Sale = sale
	l.Status = string(StatusSold)
	return sale, nil
}
