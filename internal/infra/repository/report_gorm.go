package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/sales-crm/internal/domain/lead"
	domain "github.com/BruksfildServices01/sales-crm/internal/domain/report"
	"github.com/BruksfildServices01/sales-crm/internal/models"
)

type ReportGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*ReportGormRepository)(nil)

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

func (r *ReportGormRepository) leads(ctx context.Context, f domain.Filter) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Lead{}).
		Scopes(leadScope(f.ScopeOwnerID, f.Created))
}

func (r *ReportGormRepository) sales(ctx context.Context, f domain.Filter) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Sale{}).
		Joins("JOIN leads ON leads.id = sales.lead_id").
		Scopes(leadScope(f.ScopeOwnerID, f.Created))
}

func (r *ReportGormRepository) CountLeadsByStatus(
	ctx context.Context,
	f domain.Filter,
) (map[lead.Status]int64, error) {

	var rows []struct {
		Status string
		Total  int64
	}
	if err := r.leads(ctx, f).
		Select("leads.status AS status, COUNT(*) AS total").
		Group("leads.status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[lead.Status]int64, len(rows))
	for _, row := range rows {
		out[lead.Status(row.Status)] = row.Total
	}
	return out, nil
}

func (r *ReportGormRepository) SaleTotals(
	ctx context.Context,
	f domain.Filter,
) (int64, int64, error) {

	var row struct {
		Revenue   int64
		SaleCount int64
	}
	if err := r.sales(ctx, f).
		Select("CAST(COALESCE(SUM(sales.amount_cents), 0) AS BIGINT) AS revenue, COUNT(sales.id) AS sale_count").
		Scan(&row).Error; err != nil {
		return 0, 0, err
	}
	return row.Revenue, row.SaleCount, nil
}

func (r *ReportGormRepository) CountLeadsByStage(
	ctx context.Context,
	f domain.Filter,
) (map[string]int64, error) {

	var rows []struct {
		StageID string
		Total   int64
	}
	if err := r.leads(ctx, f).
		Select("leads.stage_id AS stage_id, COUNT(*) AS total").
		Group("leads.stage_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.StageID] = row.Total
	}
	return out, nil
}

func (r *ReportGormRepository) ListStages(ctx context.Context) ([]models.Stage, error) {
	return listStages(r.db.WithContext(ctx))
}

func (r *ReportGormRepository) LeadPoints(
	ctx context.Context,
	f domain.Filter,
) ([]domain.LeadPoint, error) {

	var leads []models.Lead
	if err := r.leads(ctx, f).
		Select("leads.created_at", "leads.status").
		Find(&leads).Error; err != nil {
		return nil, err
	}

	out := make([]domain.LeadPoint, len(leads))
	for i, l := range leads {
		out[i] = domain.LeadPoint{CreatedAt: l.CreatedAt, Status: l.Status}
	}
	return out, nil
}

func (r *ReportGormRepository) SalePoints(
	ctx context.Context,
	f domain.Filter,
) ([]domain.SalePoint, error) {

	var sales []models.Sale
	if err := r.sales(ctx, f).
		Select("sales.created_at", "sales.amount_cents").
		Find(&sales).Error; err != nil {
		return nil, err
	}

	out := make([]domain.SalePoint, len(sales))
	for i, s := range sales {
		out[i] = domain.SalePoint{CreatedAt: s.CreatedAt, AmountCents: s.AmountCents}
	}
	return out, nil
}
