package main

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	usersvc "github.com/mercie-ux/mkulima-cooperative/internal/users"
	"github.com/mercie-ux/mkulima-cooperative/pkg/config"
	"github.com/mercie-ux/mkulima-cooperative/pkg/db"
	"github.com/mercie-ux/mkulima-cooperative/pkg/enums"
	"github.com/mercie-ux/mkulima-cooperative/pkg/logger"
	"github.com/mercie-ux/mkulima-cooperative/pkg/security"
)

// Seeds the first admin account. Safe to run repeatedly: an existing
// account with the configured email is left untouched.
func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed-admin"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed-admin",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	name := strings.TrimSpace(os.Getenv("MKULIMA_SEED_ADMIN_NAME"))
	email := strings.ToLower(strings.TrimSpace(os.Getenv("MKULIMA_SEED_ADMIN_EMAIL")))
	password := os.Getenv("MKULIMA_SEED_ADMIN_PASSWORD")
	if name == "" || email == "" || password == "" {
		logg.Error(ctx, "seed admin requires MKULIMA_SEED_ADMIN_NAME, MKULIMA_SEED_ADMIN_EMAIL and MKULIMA_SEED_ADMIN_PASSWORD", nil)
		os.Exit(1)
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	repo := usersvc.NewRepository(dbClient.DB())

	existing, err := repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logg.Error(ctx, "failed to look up admin account", err)
		os.Exit(1)
	}
	if existing != nil {
		ctx = logg.WithFields(ctx, map[string]any{"email": email})
		logg.Info(ctx, "admin account already present, nothing to do")
		return
	}

	hash, err := security.HashPassword(password, cfg.Password)
	if err != nil {
		logg.Error(ctx, "failed to hash admin password", err)
		os.Exit(1)
	}

	user, err := repo.Create(ctx, usersvc.CreateUserDTO{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         enums.UserRoleAdmin,
	})
	if err != nil {
		logg.Error(ctx, "failed to create admin account", err)
		os.Exit(1)
	}

	ctx = logg.WithFields(ctx, map[string]any{"email": email, "user_id": user.ID.String()})
	logg.Info(ctx, "admin account created")
}
