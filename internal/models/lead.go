package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Lead struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name   string  `gorm:"size:150;not null" json:"name"`
	Phone  *string `gorm:"size:40" json:"phone"`
	Email  *string `gorm:"size:191" json:"email"`
	City   *string `gorm:"size:100" json:"city"`
	Source *string `gorm:"size:100" json:"source"`
	Notes  *string `gorm:"type:text" json:"notes"`

	ValueCents int64 `gorm:"not null" json:"value_cents"`

	// Cache of the lifecycle state: OPEN, CLOSED or SOLD.
	Status string `gorm:"size:10;not null;index" json:"status"`

	StageID string `gorm:"size:36;not null;index" json:"stage_id"`
	Stage   *Stage `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"stage,omitempty"`

	OwnerID string `gorm:"size:36;not null;index" json:"owner_id"`
	Owner   *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"owner,omitempty"`

	Sale *Sale `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE;" json:"sale,omitempty"`

	ClosedAt  *time.Time `json:"closed_at"`
	CreatedAt time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
