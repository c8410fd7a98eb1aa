package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/sales-crm/internal/domain/stage"
	"github.com/BruksfildServices01/sales-crm/internal/httperr"
	"github.com/BruksfildServices01/sales-crm/internal/models"
)

type StageGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*StageGormRepository)(nil)

func NewStageGormRepository(db *gorm.DB) *StageGormRepository {
	return &StageGormRepository{db: db}
}

func (r *StageGormRepository) ListStages(ctx context.Context) ([]models.Stage, error) {
	return listStages(r.db.WithContext(ctx))
}

func listStages(tx *gorm.DB) ([]models.Stage, error) {
	var stages []models.Stage
	if err := tx.Order("position ASC").Order("created_at ASC").Find(&stages).Error; err != nil {
		return nil, err
	}
	return stages, nil
}

func (r *StageGormRepository) GetStage(ctx context.Context, id string) (*models.Stage, error) {
	var s models.Stage
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "stage_not_found")
	}
	return &s, nil
}

func (r *StageGormRepository) CreateStage(ctx context.Context, s *models.Stage) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *StageGormRepository) UpdateStage(
	ctx context.Context,
	s *models.Stage,
	rederive func(l *models.Lead),
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(s).Error; err != nil {
			return err
		}
		if rederive == nil {
			return nil
		}

		var leads []models.Lead
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("stage_id = ?", s.ID).
			Find(&leads).Error; err != nil {
			return err
		}
		if len(leads) == 0 {
			return nil
		}

		ids := make([]string, len(leads))
		for i := range leads {
			ids[i] = leads[i].ID
		}
		var sales []models.Sale
		if err := tx.Where("lead_id IN ?", ids).Find(&sales).Error; err != nil {
			return err
		}
		saleByLead := make(map[string]*models.Sale, len(sales))
		for i := range sales {
			saleByLead[sales[i].LeadID] = &sales[i]
		}

		for i := range leads {
			l := &leads[i]
			l.Sale = saleByLead[l.ID]
			rederive(l)
			if err := tx.Omit(clause.Associations).Save(l).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *StageGormRepository) Reorder(ctx context.Context, batch []domain.Position) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range batch {
			res := tx.Model(&models.Stage{}).
				Where("id = ?", p.ID).
				Update("position", p.Order)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return httperr.ErrConflict("reorder_unknown_stage")
			}
		}
		return nil
	})
}
