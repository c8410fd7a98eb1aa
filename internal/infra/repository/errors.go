package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/sales-crm/internal/httperr"
	"github.com/BruksfildServices01/sales-crm/internal/timezone"
)

const pgUniqueViolation = "23505"

// notFound maps a missing row to a NotFound business error with code.
func notFound(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(code)
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// leadScope narrows a query that has the leads table in scope to one owner
// and a created_at window. Column names are qualified so the scope also works
// on joins with sales.
func leadScope(ownerID string, created timezone.Range) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if ownerID != "" {
			db = db.Where("leads.owner_id = ?", ownerID)
		}
		return createdIn("leads.created_at", created)(db)
	}
}

func createdIn(column string, created timezone.Range) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if created.From != nil {
			db = db.Where(column+" >= ?", *created.From)
		}
		if created.To != nil {
			db = db.Where(column+" < ?", *created.To)
		}
		return db
	}
}
