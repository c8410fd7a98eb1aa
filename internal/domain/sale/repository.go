package sale

import (
	"context"

	"github.com/BruksfildServices01/sales-crm/internal/models"
	"github.com/BruksfildServices01/sales-crm/internal/timezone"
)

type ListFilter struct {
	// ScopeOwnerID narrows to sales whose lead has this owner.
	ScopeOwnerID string

	Query    string
	PlanName string
	// Paid filters on paid_at presence when non-nil.
	Paid    *bool
	Created timezone.Range
}

type Repository interface {
	// ListSales returns sold leads with Sale, Owner and Stage loaded, newest
	// sale first.
	ListSales(ctx context.Context, f ListFilter) ([]models.Lead, error)

	// GetSale returns the sale and its parent lead.
	GetSale(ctx context.Context, id string) (*models.Sale, *models.Lead, error)

	// UpdateSale locks the parent lead, runs guard on it and then apply on
	// the sale, in one transaction. A sale whose lead is gone is not found.
	UpdateSale(
		ctx context.Context,
		id string,
		guard Guard,
		apply func(s *models.Sale) error,
	) (*models.Sale, *models.Lead, error)
}

// Guard runs against the locked parent lead before the sale changes.
type Guard func(l *models.Lead) error
