// Command createuser provisions a login account. Run it once after deploy to
// create the initial admin; it is safe to re-run.
package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	gmysql "gorm.io/driver/mysql"

	"jobboard_backend/internal/feature/auth/adapters"
	"jobboard_backend/internal/feature/auth/domain/entity"
	"jobboard_backend/internal/feature/auth/usecase"
	"jobboard_backend/internal/platform/config"
	"jobboard_backend/internal/platform/db"
)

func main() {
	username := flag.String("username", "admin", "login name for the new user")
	password := flag.String("password", "admin123", "password for the new user")
	admin := flag.Bool("admin", true, "grant admin rights")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	connector := db.NewConnector(gmysql.Open(cfg.DatabaseDSN))
	gormDB, err := connector.Connect()
	if err != nil {
		log.Fatalf("DB connect failed: %v", err)
	}
	defer func() {
		if err := connector.Close(); err != nil {
			log.Println("[ERROR] Failed to close database:", err)
		}
	}()

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	ctx := context.Background()
	repo := adapters.NewUserMySQL(gormDB)

	if _, err := repo.FindByUsername(ctx, *username); err == nil {
		log.Println("User already exists")
		return
	} else if !errors.Is(err, usecase.ErrUserNotFound) {
		log.Fatalf("failed to look up user: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	user := &entity.User{
		Username: *username,
		Password: string(hash),
		IsAdmin:  *admin,
	}
	if err := repo.Create(ctx, user); err != nil {
		log.Fatalf("failed to create user: %v", err)
	}

	log.Println("User created successfully")
}
