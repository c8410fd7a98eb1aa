package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/sales-crm/internal/domain/lead"
	"github.com/BruksfildServices01/sales-crm/internal/httperr"
	"github.com/BruksfildServices01/sales-crm/internal/models"
)

type LeadGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*LeadGormRepository)(nil)

func NewLeadGormRepository(db *gorm.DB) *LeadGormRepository {
	return &LeadGormRepository{db: db}
}

// --------------------------------------------------
// References
// --------------------------------------------------

func (r *LeadGormRepository) GetStage(
	ctx context.Context,
	id string,
) (*models.Stage, error) {

	var s models.Stage
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "stage_not_found")
	}
	return &s, nil
}

func (r *LeadGormRepository) ActiveUserExists(
	ctx context.Context,
	id string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ? AND active = ?", id, true).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Lead CRUD
// --------------------------------------------------

func (r *LeadGormRepository) CreateLead(
	ctx context.Context,
	l *models.Lead,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(l).Error
}

func (r *LeadGormRepository) GetLead(
	ctx context.Context,
	id string,
) (*models.Lead, error) {
	return getLead(r.db.WithContext(ctx), id)
}

func getLead(tx *gorm.DB, id string) (*models.Lead, error) {
	var l models.Lead
	if err := tx.
		Preload("Stage").
		Preload("Owner").
		Preload("Sale").
		First(&l, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "lead_not_found")
	}
	return &l, nil
}

func (r *LeadGormRepository) ListLeads(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Lead, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Lead{}).
		Scopes(leadScope(f.ScopeOwnerID, f.Created))

	if f.OwnerID != "" {
		q = q.Where("leads.owner_id = ?", f.OwnerID)
	}
	if f.StageID != "" {
		q = q.Where("leads.stage_id = ?", f.StageID)
	}
	if term := strings.TrimSpace(f.Query); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where(
			"(LOWER(leads.name) LIKE ? OR LOWER(leads.email) LIKE ? OR LOWER(leads.phone) LIKE ? OR LOWER(leads.city) LIKE ? OR LOWER(leads.source) LIKE ?)",
			like, like, like, like, like,
		)
	}

	var leads []models.Lead
	if err := q.
		Preload("Stage").
		Preload("Owner").
		Preload("Sale").
		Order("leads.updated_at DESC").
		Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *LeadGormRepository) UpdateLead(
	ctx context.Context,
	id string,
	guard domain.Guard,
	apply func(l *models.Lead) error,
) (*models.Lead, error) {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		l, err := lockLead(tx, id)
		if err != nil {
			return err
		}
		if err := guard(l); err != nil {
			return err
		}
		if err := apply(l); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(l).Error
	})
	if err != nil {
		return nil, err
	}

	return r.GetLead(ctx, id)
}

func (r *LeadGormRepository) DeleteLead(
	ctx context.Context,
	id string,
	guard domain.Guard,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		l, err := lockLead(tx, id)
		if err != nil {
			return err
		}
		if err := guard(l); err != nil {
			return err
		}

		if err := tx.Where("lead_id = ?", l.ID).Delete(&models.Sale{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Lead{}, "id = ?", l.ID).Error
	})
}

// --------------------------------------------------
// Lifecycle
// --------------------------------------------------

func (r *LeadGormRepository) MoveLead(
	ctx context.Context,
	id string,
	stageID string,
	guard domain.Guard,
	move func(l *models.Lead, target *models.Stage) error,
) (*models.Lead, error) {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		l, err := lockLead(tx, id)
		if err != nil {
			return err
		}
		if err := guard(l); err != nil {
			return err
		}

		var target models.Stage
		if err := tx.First(&target, "id = ?", stageID).Error; err != nil {
			return notFound(err, "stage_not_found")
		}
		if l.Sale, err = findSale(tx, l.ID); err != nil {
			return err
		}

		if err := move(l, &target); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(l).Error
	})
	if err != nil {
		return nil, err
	}

	return r.GetLead(ctx, id)
}

func (r *LeadGormRepository) SettleLead(
	ctx context.Context,
	id string,
	guard domain.Guard,
	settle func(l *models.Lead) (*models.Sale, error),
) (*models.Lead, *models.Sale, error) {

	var sale *models.Sale

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		l, err := lockLead(tx, id)
		if err != nil {
			return err
		}
		if err := guard(l); err != nil {
			return err
		}

		var stage models.Stage
		if err := tx.First(&stage, "id = ?", l.StageID).Error; err != nil {
			return notFound(err, "stage_not_found")
		}
		l.Stage = &stage

		if l.Sale, err = findSale(tx, l.ID); err != nil {
			return err
		}

		sale, err = settle(l)
		if err != nil {
			return err
		}

		// lead_id is unique; a concurrent settlement loses here.
		if err := tx.Create(sale).Error; err != nil {
			if isUniqueViolation(err) {
				return httperr.ErrConflict("sale_already_exists")
			}
			return err
		}
		return tx.Omit(clause.Associations).Save(l).Error
	})
	if err != nil {
		return nil, nil, err
	}

	l, err := r.GetLead(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return l, sale, nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func lockLead(tx *gorm.DB, id string) (*models.Lead, error) {
	var l models.Lead
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&l, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "lead_not_found")
	}
	return &l, nil
}

func findSale(tx *gorm.DB, leadID string) (*models.Sale, error) {
	var sales []models.Sale
	if err := tx.Where("lead_id = ?", leadID).Limit(1).Find(&sales).Error; err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return nil, nil
	}
	return &sales[0], nil
}
