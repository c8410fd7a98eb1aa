package stage

import (
	"context"

	"github.com/BruksfildServices01/sales-crm/internal/models"
)

type Repository interface {
	// ListStages returns stages ordered by position ascending.
	ListStages(ctx context.Context) ([]models.Stage, error)
	GetStage(ctx context.Context, id string) (*models.Stage, error)
	CreateStage(ctx context.Context, s *models.Stage) error

	// UpdateStage saves s. When rederive is non-nil it is applied to every
	// lead in the stage and those leads are saved in the same transaction.
	UpdateStage(ctx context.Context, s *models.Stage, rederive func(l *models.Lead)) error

	// Reorder applies the whole batch or nothing.
	Reorder(ctx context.Context, batch []Position) error
}
