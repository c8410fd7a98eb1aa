package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale is the settlement of a lead. The unique index on lead_id is what keeps
// two concurrent settlements from both committing.
type Sale struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	LeadID string `gorm:"size:36;not null;uniqueIndex" json:"lead_id"`

	AmountCents int64      `gorm:"not null" json:"amount_cents"`
	PlanName    *string    `gorm:"size:100" json:"plan_name"`
	PaymentRef  *string    `gorm:"size:100" json:"payment_ref"`
	PaidAt      *time.Time `json:"paid_at"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
