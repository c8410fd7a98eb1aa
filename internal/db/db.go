package db

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/sales-crm/internal/config"
	"github.com/BruksfildServices01/sales-crm/internal/models"
)

const sqlitePrefix = "sqlite:"

// NewDB opens and migrates the database or exits; it is the server's entry
// point into the store.
func NewDB(cfg *config.Config) *gorm.DB {
	db, err := Open(cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Open connects to Postgres, or to SQLite when url starts with "sqlite:"
// (local development and tests).
func Open(url string) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}

	var dialector gorm.Dialector
	if strings.HasPrefix(url, sqlitePrefix) {
		dialector = sqlite.Open(sqliteDSN(strings.TrimPrefix(url, sqlitePrefix)))
		gcfg.DisableForeignKeyConstraintWhenMigrating = true
		gcfg.Logger = logger.Default.LogMode(logger.Silent)
	} else {
		dialector = postgres.Open(url)
	}

	db, err := gorm.Open(dialector, gcfg)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

// sqliteDSN makes every transaction take the write lock on BEGIN and wait for
// it. Deferred transactions that read and then write (lock lead, insert sale)
// otherwise fail with SQLITE_BUSY instead of queueing behind each other.
func sqliteDSN(dsn string) string {
	var params []string
	if !strings.Contains(dsn, "_txlock=") {
		params = append(params, "_txlock=immediate")
	}
	if !strings.Contains(dsn, "busy_timeout") {
		params = append(params, "_pragma=busy_timeout(5000)")
	}
	if len(params) == 0 {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Stage{},
		&models.Lead{},
		&models.Sale{},
		&models.AuditLog{},
	)
}
