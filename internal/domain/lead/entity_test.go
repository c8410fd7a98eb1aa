package lead

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/sales-crm/internal/httperr"
	"github.com/BruksfildServices01/sales-crm/internal/models"
)

var (
	novo     = &models.Stage{ID: "novo", Name: "Novo", Order: 1}
	proposta = &models.Stage{ID: "proposta", Name: "Proposta", Order: 3}
	fechados = &models.Stage{ID: "fechados", Name: "Fechados", Order: 5, IsClosed: true}
	perdidos = &models.Stage{ID: "perdidos", Name: "Perdidos", Order: 6, IsClosed: true}

	t0 = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	t1 = t0.Add(time.Hour)
	t2 = t0.Add(2 * time.Hour)
)

func TestDeriveStatus(t *testing.T) {
	assert.Equal(t, StatusOpen, DeriveStatus(false, false))
	assert.Equal(t, StatusClosed, DeriveStatus(true, false))
	assert.Equal(t, StatusSold, DeriveStatus(true, true))
	assert.Equal(t, StatusSold, DeriveStatus(false, true))
}

func TestOpenInNonClosingStage(t *testing.T) {
	l := &models.Lead{Name: "Ana"}
	Open(l, novo, t0)

	assert.Equal(t, "novo", l.StageID)
	assert.Equal(t, string(StatusOpen), l.Status)
	assert.Nil(t, l.ClosedAt)
}

func TestOpenInClosingStageClosesImmediately(t *testing.T) {
	l := &models.Lead{Name: "Ana"}
	Open(l, fechados, t0)

	assert.Equal(t, string(StatusClosed), l.Status)
	require.NotNil(t, l.ClosedAt)
	assert.Equal(t, t0, *l.ClosedAt)
}

func TestMoveTransitions(t *testing.T) {
	cases := []struct {
		name       string
		from       *models.Stage
		closedAt   *time.Time
		to         *models.Stage
		wantStatus Status
		wantClosed *time.Time
	}{
		{"open to open", novo, nil, proposta, StatusOpen, nil},
		{"open to closing", novo, nil, fechados, StatusClosed, &t1},
		{"closed to open clears closedAt", fechados, &t0, novo, StatusOpen, nil},
		{"closed to closing keeps closedAt", fechados, &t0, perdidos, StatusClosed, &t0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := &models.Lead{StageID: tc.from.ID, Stage: tc.from, ClosedAt: tc.closedAt}
			l.Status = string(DeriveStatus(tc.from.IsClosed, false))

			Move(l, tc.to, t1)

			assert.Equal(t, tc.to.ID, l.StageID)
			assert.Equal(t, string(tc.wantStatus), l.Status)
			if tc.wantClosed == nil {
				assert.Nil(t, l.ClosedAt)
			} else {
				require.NotNil(t, l.ClosedAt)
				assert.Equal(t, *tc.wantClosed, *l.ClosedAt)
			}
		})
	}
}

func TestClosedAtSetOnceClearedOnReopen(t *testing.T) {
	l := &models.Lead{Name: "Ana"}
	Open(l, novo, t0)

	Move(l, fechados, t1)
	require.NotNil(t, l.ClosedAt)
	assert.Equal(t, t1, *l.ClosedAt)

	Move(l, novo, t2)
	assert.Nil(t, l.ClosedAt)
	assert.Equal(t, string(StatusOpen), l.Status)

	Move(l, fechados, t2)
	require.NotNil(t, l.ClosedAt)
	assert.Equal(t, t2, *l.ClosedAt)
}

func TestSettle(t *testing.T) {
	plan := "Premium"
	l := &models.Lead{ID: "lead-1", Name: "Ana"}
	Open(l, novo, t0)
	Move(l, fechados, t1)

	sale, err := Settle(l, Settlement{AmountCents: 15000, PlanName: &plan}, t2)
	require.NoError(t, err)

	assert.Equal(t, "lead-1", sale.LeadID)
	assert.Equal(t, int64(15000), sale.AmountCents)
	assert.Equal(t, &plan, sale.PlanName)
	assert.Equal(t, string(StatusSold), l.Status)
	assert.Same(t, sale, l.Sale)
	assert.Equal(t, t1, *l.ClosedAt)
}

func TestSettleTwiceIsConflict(t *testing.T) {
	l := &models.Lead{ID: "lead-1"}
	Open(l, fechados, t0)

	first, err := Settle(l, Settlement{AmountCents: 15000}, t1)
	require.NoError(t, err)

	_, err = Settle(l, Settlement{AmountCents: 99}, t2)
	assert.True(t, httperr.IsBusiness(err, "sale_already_exists"))
	assert.Same(t, first, l.Sale)
	assert.Equal(t, int64(15000), l.Sale.AmountCents)
}

func TestSettleRequiresClosingStage(t *testing.T) {
	l := &models.Lead{ID: "lead-1"}
	Open(l, novo, t0)

	_, err := Settle(l, Settlement{AmountCents: 100}, t1)
	assert.True(t, httperr.IsKind(err, httperr.KindPrecondition))
	assert.Nil(t, l.Sale)
	assert.Equal(t, string(StatusOpen), l.Status)
}

func TestSettleStageIsAuthoritativeOverCachedStatus(t *testing.T) {
	// status says CLOSED but the stage has since been reopened
	l := &models.Lead{ID: "lead-1", Stage: novo, StageID: novo.ID, Status: string(StatusClosed)}

	_, err := Settle(l, Settlement{AmountCents: 100}, t1)
	assert.True(t, httperr.IsBusiness(err, "lead_not_closed"))
}

func TestSettleRejectsNegativeAmount(t *testing.T) {
	l := &models.Lead{ID: "lead-1"}
	Open(l, fechados, t0)

	_, err := Settle(l, Settlement{AmountCents: -1}, t1)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	assert.Nil(t, l.Sale)
}

func TestMoveAfterSaleKeepsSold(t *testing.T) {
	l := &models.Lead{ID: "lead-1"}
	Open(l, fechados, t0)
	_, err := Settle(l, Settlement{AmountCents: 100}, t1)
	require.NoError(t, err)

	Move(l, novo, t2)
	assert.Equal(t, string(StatusSold), l.Status)
	assert.Nil(t, l.ClosedAt)

	Move(l, fechados, t2)
	assert.Equal(t, string(StatusSold), l.Status)
	assert.Equal(t, t2, *l.ClosedAt)
}
