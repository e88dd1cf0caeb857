package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/iliyamo/game-rental-store/internal/cli"
	"github.com/iliyamo/game-rental-store/internal/config"
	"github.com/iliyamo/game-rental-store/internal/database"
	"github.com/iliyamo/game-rental-store/internal/repository"
	"github.com/iliyamo/game-rental-store/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	log.Printf("connecting to database %s@%s:%s/%s (env=%s)",
		cfg.DBUser, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.Env)
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("unable to connect to database: %v", err)
	}
	defer db.Close()

	users := repository.NewUserRepo(db)
	catalog := repository.NewCatalogRepo(db)
	orders := repository.NewOrderRepo(db)
	tracking := repository.NewTrackingRepo(db)

	app := cli.New(cfg,
		service.NewAuthService(users, cfg.JWTSecret, cfg.SessionTTLMin, cfg.BcryptCost),
		service.NewCatalogService(catalog),
		service.NewOrderService(db, catalog, orders, tracking, cfg.RentalPeriodDays),
		service.NewTrackingService(users, tracking),
		service.NewAdminService(users, catalog, cfg.BcryptCost),
		service.NewVisibilityService(users, orders, tracking),
		service.NewProfileService(users, cfg.BcryptCost),
		os.Stdin, os.Stdout,
	)
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
