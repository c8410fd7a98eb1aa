package db

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/sales-crm/internal/domain/access"
	"github.com/BruksfildServices01/sales-crm/internal/models"
)

type StageSeed struct {
	Name     string
	Order    int
	IsClosed bool
}

// DefaultStages is the pipeline a fresh install starts with.
var DefaultStages = []StageSeed{
	{Name: "Novo", Order: 1},
	{Name: "Contato", Order: 2},
	{Name: "Proposta", Order: 3},
	{Name: "Negociação", Order: 4},
	{Name: "Fechados", Order: 5, IsClosed: true},
}

type AdminSeed struct {
	Name     string
	Email    string
	Password string
}

// Seed creates missing default stages (matched by name) and the admin user
// (matched by email). Running it twice changes nothing.
func Seed(ctx context.Context, db *gorm.DB, stages []StageSeed, admin *AdminSeed) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, s := range stages {
			var count int64
			if err := tx.Model(&models.Stage{}).Where("name = ?", s.Name).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			stage := models.Stage{Name: s.Name, Order: s.Order, IsClosed: s.IsClosed}
			if err := tx.Create(&stage).Error; err != nil {
				return fmt.Errorf("seed stage %q: %w", s.Name, err)
			}
		}

		if admin == nil || admin.Email == "" {
			return nil
		}

		var existing models.User
		err := tx.Where("email = ?", admin.Email).First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := models.User{
			Name:         admin.Name,
			Email:        admin.Email,
			PasswordHash: string(hash),
			Role:         string(access.RoleAdmin),
			LeadScope:    string(access.ScopeAll),
			Active:       true,
		}
		return tx.Create(&user).Error
	})
}
