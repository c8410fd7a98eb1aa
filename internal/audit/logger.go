package audit

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/sales-crm/internal/models"
	"github.com/BruksfildServices01/sales-crm/internal/timezone"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		ActorID:  optional(ev.ActorID),
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: optional(ev.EntityID),
		Metadata: metaJSON,
	}

	return l.db.Create(&entry).Error
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type Query struct {
	Action  string
	Entity  string
	ActorID string
	Created timezone.Range

	Page  int
	Limit int
}

// Normalize clamps paging to sane values.
func (q *Query) Normalize() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > MaxLimit {
		q.Limit = DefaultLimit
	}
}

func (l *Logger) List(ctx context.Context, q Query) ([]models.AuditLog, int64, error) {
	q.Normalize()

	base := l.db.WithContext(ctx).Model(&models.AuditLog{})
	if q.Action != "" {
		base = base.Where("action = ?", q.Action)
	}
	if q.Entity != "" {
		base = base.Where("entity = ?", q.Entity)
	}
	if q.ActorID != "" {
		base = base.Where("actor_id = ?", q.ActorID)
	}
	if q.Created.From != nil {
		base = base.Where("created_at >= ?", *q.Created.From)
	}
	if q.Created.To != nil {
		base = base.Where("created_at < ?", *q.Created.To)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := base.
		Order("created_at DESC").
		Order("id DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
