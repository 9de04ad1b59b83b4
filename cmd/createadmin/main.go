// Command createadmin seeds the initial admin account. It is a no-op when
// an admin already exists, so it is safe to run on every deploy.
package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/portfolio/internal/server/config"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/portfolio/internal/server/services"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminEmail    = "admin@example.com"
	defaultAdminPassword = "Admin@123"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	db, err := repomanager.OpenDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer db.Close()

	if err := repomanager.RunMigrations(ctx, db); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	userService := services.NewUserService(db, m, cfg)

	user, err := userService.EnsureAdmin(ctx, defaultAdminUsername, defaultAdminEmail, defaultAdminPassword)
	if err != nil {
		log.Fatalf("seed error: %v", err)
	}

	if user == nil {
		log.Println("admin account already exists, nothing to do")
		return
	}

	log.Printf("admin account created: %s (change the password after first login)", user.Email)
}
