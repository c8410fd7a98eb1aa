package lead

import (
	"context"

	"github.com/BruksfildServices01/sales-crm/internal/models"
	"github.com/BruksfildServices01/sales-crm/internal/timezone"
)

type ListFilter struct {
	// ScopeOwnerID comes from the access filter and is always applied.
	ScopeOwnerID string

	OwnerID string
	StageID string
	Query   string
	Created timezone.Range
}

// Guard runs against the locked lead before any change is applied.
type Guard func(l *models.Lead) error

type Repository interface {
	// -------- References --------
	GetStage(ctx context.Context, id string) (*models.Stage, error)
	// ActiveUserExists reports whether id names an active user.
	ActiveUserExists(ctx context.Context, id string) (bool, error)

	// -------- Lead CRUD --------
	CreateLead(ctx context.Context, l *models.Lead) error
	GetLead(ctx context.Context, id string) (*models.Lead, error)
	ListLeads(ctx context.Context, f ListFilter) ([]models.Lead, error)

	// UpdateLead applies edits to the locked lead and saves it.
	UpdateLead(ctx context.Context, id string, guard Guard, apply func(l *models.Lead) error) (*models.Lead, error)

	// DeleteLead removes the lead and its sale in one transaction.
	DeleteLead(ctx context.Context, id string, guard Guard) error

	// -------- Lifecycle (transactional, lead row locked) --------
	MoveLead(
		ctx context.Context,
		id string,
		stageID string,
		guard Guard,
		move func(l *models.Lead, target *models.Stage) error,
	) (*models.Lead, error)

	SettleLead(
		ctx context.Context,
		id string,
		guard Guard,
		settle func(l *models.Lead) (*models.Sale, error),
	) (*models.Lead, *models.Sale, error)
}
