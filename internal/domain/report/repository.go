package report

import (
	"context"

	"github.com/BruksfildServices01/sales-crm/internal/domain/lead"
	"github.com/BruksfildServices01/sales-crm/internal/models"
)

type Repository interface {
	CountLeadsByStatus(ctx context.Context, f Filter) (map[lead.Status]int64, error)
	// SaleTotals sums sales whose lead passes f.
	SaleTotals(ctx context.Context, f Filter) (sumCents int64, count int64, err error)
	CountLeadsByStage(ctx context.Context, f Filter) (map[string]int64, error)
	ListStages(ctx context.Context) ([]models.Stage, error)

	LeadPoints(ctx context.Context, f Filter) ([]LeadPoint, error)
	SalePoints(ctx context.Context, f Filter) ([]SalePoint, error)
}
