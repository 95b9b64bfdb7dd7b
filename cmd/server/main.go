package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/Djiento/ActionnaireInscrit/internal/app/routes"
	"github.com/Djiento/ActionnaireInscrit/internal/domain/models"
	"github.com/Djiento/ActionnaireInscrit/internal/domain/services"
	"github.com/Djiento/ActionnaireInscrit/internal/infrastructure/config"
	"github.com/Djiento/ActionnaireInscrit/internal/infrastructure/database"
	Logger "github.com/Djiento/ActionnaireInscrit/pkg/logger"
)

func main() {
	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("setup logger: %v\n", err)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		// Environment variables may be set another way; keep going.
		Logger.Warning("no .env file loaded: %v", err)
	} else {
		Logger.Info(".env file loaded")
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		Logger.Error("connect database: %v", err)
		os.Exit(1)
	}
	db := pool.GetDB()

	if cfg.DBMigrationMode == "drop" {
		Logger.Warning("running in drop mode, all tables will be recreated")
		if err := dropAndRecreateTables(db); err != nil {
			Logger.Error("recreate tables: %v", err)
			os.Exit(1)
		}
	} else {
		if err := autoMigrate(db); err != nil {
			Logger.Error("migrate: %v", err)
			os.Exit(1)
		}
	}

	if err := seedDefaultAdmin(db, cfg); err != nil {
		Logger.Error("seed default admin: %v", err)
		os.Exit(1)
	}

	r, err := routes.SetupRouter(db, cfg, pool)
	if err != nil {
		Logger.Error("setup router: %v", err)
		os.Exit(1)
	}

	Logger.Info("server listening on http://0.0.0.0:%s", cfg.ServerPort)
	if err := r.Run("0.0.0.0:" + cfg.ServerPort); err != nil {
		Logger.Error("start server: %v", err)
		os.Exit(1)
	}
}

// autoMigrate adds missing tables and columns; it never drops anything.
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.Investor{},
		&models.Settings{},
	)
}

// dropAndRecreateTables rebuilds the schema from scratch.
func dropAndRecreateTables(db *gorm.DB) error {
	if err := db.Migrator().DropTable(
		&models.Admin{},
		&models.Investor{},
		&models.Settings{},
	); err != nil {
		return err
	}
	return autoMigrate(db)
}

// seedDefaultAdmin runs the idempotent bootstrap: exactly one admin is
// guaranteed to exist after initial setup.
func seedDefaultAdmin(db *gorm.DB, cfg *config.Config) error {
	adminService := services.NewAdminService(db, cfg)
	return adminService.EnsureDefaultAdmin()
}
