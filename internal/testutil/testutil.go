// Package testutil provides a migrated SQLite database and record factories
// for package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/sales-crm/internal/db"
	"github.com/BruksfildServices01/sales-crm/internal/domain/access"
	"github.com/BruksfildServices01/sales-crm/internal/models"
)

const Password = "secret123"

// NewDB returns a migrated database in a file under t.TempDir.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "crm.db")
	db, err := dbpkg.Open("sqlite:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// Pipeline is the default stage set as created by CreatePipeline.
type Pipeline struct {
	Novo     *models.Stage
	Contato  *models.Stage
	Fechados *models.Stage
}

func CreatePipeline(t testing.TB, db *gorm.DB) Pipeline {
	t.Helper()
	return Pipeline{
		Novo:     CreateStage(t, db, "Novo", 1, false),
		Contato:  CreateStage(t, db, "Contato", 2, false),
		Fechados: CreateStage(t, db, "Fechados", 5, true),
	}
}

func CreateStage(t testing.TB, db *gorm.DB, name string, order int, closed bool) *models.Stage {
	t.Helper()
	s := &models.Stage{Name: name, Order: order, IsClosed: closed}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("create stage: %v", err)
	}
	return s
}

// CreateUser stores an active user whose password is Password.
func CreateUser(t testing.TB, db *gorm.DB, email string, role access.Role, scope access.Scope) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := &models.User{
		Name:         email,
		Email:        email,
		PasswordHash: string(hash),
		Role:         string(role),
		LeadScope:    string(scope),
		Active:       true,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func Actor(u *models.User) access.Actor {
	return access.Actor{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      access.Role(u.Role),
		LeadScope: access.Scope(u.LeadScope),
	}
}

// CreateLead stores an OPEN lead directly, bypassing the use cases.
func CreateLead(t testing.TB, db *gorm.DB, name string, stage *models.Stage, owner *models.User) *models.Lead {
	t.Helper()
	status := "OPEN"
	if stage.IsClosed {
		status = "CLOSED"
	}
	l := &models.Lead{
		Name:    name,
		Status:  status,
		StageID: stage.ID,
		OwnerID: owner.ID,
	}
	if err := db.Omit("Stage", "Owner", "Sale").Create(l).Error; err != nil {
		t.Fatalf("create lead: %v", err)
	}
	return l
}
