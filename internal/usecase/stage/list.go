package stage

import (
	"context"

	domain "github.com/BruksfildServices01/sales-crm/internal/domain/stage"
	"github.com/BruksfildServices01/sales-crm/internal/models"
)

type ListStages struct {
	repo domain.Repository
}

func NewListStages(repo domain.Repository) *ListStages {
	return &ListStages{repo: repo}
}

func (uc *ListStages) Execute(ctx context.Context) ([]models.Stage, error) {
	return uc.repo.ListStages(ctx)
}
