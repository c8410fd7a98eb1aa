package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/sales-crm/internal/domain/access"
	"github.com/BruksfildServices01/sales-crm/internal/domain/sale"
	"github.com/BruksfildServices01/sales-crm/internal/httperr"
	"github.com/BruksfildServices01/sales-crm/internal/models"
	"github.com/BruksfildServices01/sales-crm/internal/testutil"
)

func TestListSalesFilters(t *testing.T) {
	db := testutil.NewDB(t)
	p := testutil.CreatePipeline(t, db)
	ana := testutil.CreateUser(t, db, "ana@crm.test", access.RoleAgent, access.ScopeOwn)
	bia := testutil.CreateUser(t, db, "bia@crm.test", access.RoleAgent, access.ScopeOwn)

	premium, basic := "Premium", "Basico"
	paidAt := time.Now().UTC()

	l1 := testutil.CreateLead(t, db, "Padaria", p.Fechados, ana)
	l2 := testutil.CreateLead(t, db, "Oficina", p.Fechados, bia)
	testutil.CreateLead(t, db, "Sem venda", p.Fechados, ana)
	require.NoError(t, db.Create(&models.Sale{LeadID: l1.ID, AmountCents: 100, PlanName: &premium, PaidAt: &paidAt}).Error)
	require.NoError(t, db.Create(&models.Sale{LeadID: l2.ID, AmountCents: 200, PlanName: &basic}).Error)

	repo := NewSaleGormRepository(db)
	ctx := context.Background()

	all, err := repo.ListSales(ctx, sale.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, l := range all {
		require.NotNil(t, l.Sale)
		require.NotNil(t, l.Owner)
	}

	own, err := repo.ListSales(ctx, sale.ListFilter{ScopeOwnerID: ana.ID})
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, l1.ID, own[0].ID)

	byPlan, err := repo.ListSales(ctx, sale.ListFilter{PlanName: "prem"})
	require.NoError(t, err)
	require.Len(t, byPlan, 1)
	assert.Equal(t, l1.ID, byPlan[0].ID)

	unpaid := false
	open, err := repo.ListSales(ctx, sale.ListFilter{Paid: &unpaid})
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, l2.ID, open[0].ID)

	byName, err := repo.ListSales(ctx, sale.ListFilter{Query: "ofic"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, l2.ID, byName[0].ID)
}

func TestGetSaleLoadsLead(t *testing.T) {
	db := testutil.NewDB(t)
	p := testutil.CreatePipeline(t, db)
	ana := testutil.CreateUser(t, db, "ana@crm.test", access.RoleAgent, access.ScopeOwn)
	l := testutil.CreateLead(t, db, "Padaria", p.Fechados, ana)
	s := &models.Sale{LeadID: l.ID, AmountCents: 100}
	require.NoError(t, db.Create(s).Error)

	repo := NewSaleGormRepository(db)
	ctx := context.Background()

	got, parent, err := repo.GetSale(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), got.AmountCents)
	assert.Equal(t, ana.ID, parent.OwnerID)

	_, _, err = repo.GetSale(ctx, "missing")
	assert.True(t, httperr.IsBusiness(err, "sale_not_found"))
}

func TestUpdateSale(t *testing.T) {
	db := testutil.NewDB(t)
	p := testutil.CreatePipeline(t, db)
	ana := testutil.CreateUser(t, db, "ana@crm.test", access.RoleAgent, access.ScopeOwn)
	l := testutil.CreateLead(t, db, "Padaria", p.Fechados, ana)
	plan := "Premium"
	s := &models.Sale{LeadID: l.ID, AmountCents: 100, PlanName: &plan}
	require.NoError(t, db.Create(s).Error)

	repo := NewSaleGormRepository(db)
	ctx := context.Background()

	got, parent, err := repo.UpdateSale(ctx, s.ID, allow, func(s *models.Sale) error {
		s.AmountCents = 250
		s.PlanName = nil
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(250), got.AmountCents)
	assert.Nil(t, got.PlanName)
	assert.Equal(t, l.ID, parent.ID)

	var stored models.Sale
	require.NoError(t, db.First(&stored, "id = ?", s.ID).Error)
	assert.Equal(t, int64(250), stored.AmountCents)
	assert.Nil(t, stored.PlanName)
}

func TestUpdateSaleGuardRejectsBeforeWriting(t *testing.T) {
	db := testutil.NewDB(t)
	p := testutil.CreatePipeline(t, db)
	ana := testutil.CreateUser(t, db, "ana@crm.test", access.RoleAgent, access.ScopeOwn)
	l := testutil.CreateLead(t, db, "Padaria", p.Fechados, ana)
	s := &models.Sale{LeadID: l.ID, AmountCents: 100}
	require.NoError(t, db.Create(s).Error)

	repo := NewSaleGormRepository(db)
	applied := false

	_, _, err := repo.UpdateSale(context.Background(), s.ID,
		func(*models.Lead) error { return httperr.ErrForbidden("forbidden") },
		func(s *models.Sale) error {
			applied = true
			s.AmountCents = 999
			return nil
		},
	)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))
	assert.False(t, applied)

	var stored models.Sale
	require.NoError(t, db.First(&stored, "id = ?", s.ID).Error)
	assert.Equal(t, int64(100), stored.AmountCents)
}

func TestUpdateSaleOfDeletedLeadDoesNotResurrect(t *testing.T) {
	db := testutil.NewDB(t)
	p := testutil.CreatePipeline(t, db)
	ana := testutil.CreateUser(t, db, "ana@crm.test", access.RoleAgent, access.ScopeOwn)
	l := testutil.CreateLead(t, db, "Padaria", p.Fechados, ana)
	s := &models.Sale{LeadID: l.ID, AmountCents: 100}
	require.NoError(t, db.Create(s).Error)

	sales := NewSaleGormRepository(db)
	leads := NewLeadGormRepository(db)
	ctx := context.Background()

	// the caller read the sale before the lead went away
	_, _, err := sales.GetSale(ctx, s.ID)
	require.NoError(t, err)
	require.NoError(t, leads.DeleteLead(ctx, l.ID, allow))

	_, _, err = sales.UpdateSale(ctx, s.ID, allow,
		func(s *models.Sale) error {
			s.AmountCents = 999
			return nil
		},
	)
	assert.True(t, httperr.IsBusiness(err, "sale_not_found"))

	var count int64
	require.NoError(t, db.Model(&models.Sale{}).Count(&count).Error)
	assert.Zero(t, count)
}
