// Command seed creates the default pipeline stages and an admin account.
// It is safe to run more than once.
package main

import (
	"context"
	"log"

	"github.com/spf13/pflag"

	"github.com/BruksfildServices01/sales-crm/internal/config"
	dbpkg "github.com/BruksfildServices01/sales-crm/internal/db"
)

func main() {
	var (
		email    = pflag.String("admin-email", "admin@crm.local", "admin login email")
		password = pflag.String("admin-password", "admin123", "admin password")
		name     = pflag.String("admin-name", "Administrador", "admin display name")
		noAdmin  = pflag.Bool("no-admin", false, "seed stages only")
	)
	pflag.Parse()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var admin *dbpkg.AdminSeed
	if !*noAdmin {
		admin = &dbpkg.AdminSeed{Name: *name, Email: *email, Password: *password}
	}

	if err := dbpkg.Seed(context.Background(), db, dbpkg.DefaultStages, admin); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	log.Printf("seeded %d stages", len(dbpkg.DefaultStages))
	if admin != nil {
		log.Printf("admin: %s", admin.Email)
	}
}
