package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/sales-crm/internal/domain/sale"
	"github.com/BruksfildServices01/sales-crm/internal/httperr"
	"github.com/BruksfildServices01/sales-crm/internal/models"
)

type SaleGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*SaleGormRepository)(nil)

func NewSaleGormRepository(db *gorm.DB) *SaleGormRepository {
	return &SaleGormRepository{db: db}
}

func (r *SaleGormRepository) ListSales(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Lead, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Lead{}).
		Joins("JOIN sales ON sales.lead_id = leads.id").
		Scopes(createdIn("sales.created_at", f.Created))

	if f.ScopeOwnerID != "" {
		q = q.Where("leads.owner_id = ?", f.ScopeOwnerID)
	}
	if term := strings.TrimSpace(f.Query); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where(
			"(LOWER(leads.name) LIKE ? OR LOWER(leads.email) LIKE ? OR LOWER(leads.phone) LIKE ? OR LOWER(leads.city) LIKE ?)",
			like, like, like, like,
		)
	}
	if plan := strings.TrimSpace(f.PlanName); plan != "" {
		q = q.Where("LOWER(sales.plan_name) LIKE ?", "%"+strings.ToLower(plan)+"%")
	}
	if f.Paid != nil {
		if *f.Paid {
			q = q.Where("sales.paid_at IS NOT NULL")
		} else {
			q = q.Where("sales.paid_at IS NULL")
		}
	}

	var leads []models.Lead
	if err := q.
		Preload("Sale").
		Preload("Owner").
		Preload("Stage").
		Order("sales.created_at DESC").
		Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *SaleGormRepository) GetSale(
	ctx context.Context,
	id string,
) (*models.Sale, *models.Lead, error) {

	db := r.db.WithContext(ctx)

	var s models.Sale
	if err := db.First(&s, "id = ?", id).Error; err != nil {
		return nil, nil, notFound(err, "sale_not_found")
	}

	var l models.Lead
	if err := db.
		Preload("Owner").
		Preload("Stage").
		First(&l, "id = ?", s.LeadID).Error; err != nil {
		return nil, nil, notFound(err, "lead_not_found")
	}
	l.Sale = &s

	return &s, &l, nil
}

func (r *SaleGormRepository) UpdateSale(
	ctx context.Context,
	id string,
	guard domain.Guard,
	apply func(s *models.Sale) error,
) (*models.Sale, *models.Lead, error) {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var s models.Sale
		if err := tx.First(&s, "id = ?", id).Error; err != nil {
			return notFound(err, "sale_not_found")
		}

		// the lead lock serializes against delete, move and settle
		l, err := lockLead(tx, s.LeadID)
		if err != nil {
			if httperr.IsKind(err, httperr.KindNotFound) {
				return httperr.ErrNotFound("sale_not_found")
			}
			return err
		}

		// reload under the lock; a delete may have committed meanwhile
		if err := tx.First(&s, "id = ?", id).Error; err != nil {
			return notFound(err, "sale_not_found")
		}

		if err := guard(l); err != nil {
			return err
		}
		if err := apply(&s); err != nil {
			return err
		}

		res := tx.Model(&s).
			Select("amount_cents", "plan_name", "payment_ref", "paid_at", "updated_at").
			Updates(&s)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrNotFound("sale_not_found")
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return r.GetSale(ctx, id)
}
