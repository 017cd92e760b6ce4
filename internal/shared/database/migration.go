package database

import (
	"fmt"
	"log/slog"

	"github.com/pmadriaga/studorg/go-api-server/internal/config"
	"github.com/pmadriaga/studorg/go-api-server/internal/model"

	"gorm.io/gorm"
)

// Migrate executes database migration based on configuration
func Migrate(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.IsAutoMigrate {
		slog.Info("database migration disabled",
			"auto_migrate", false, "env", cfg.App.Env,
		)
		return nil
	}

	slog.Warn("database migration starting, all tables will be dropped and recreated",
		"auto_migrate", true, "env", cfg.App.Env,
	)

	// Safety check: prevent accidental data loss in production
	if cfg.App.Env == "prod" || cfg.App.Env == "production" {
		return fmt.Errorf("DB_AUTO_MIGRATE=true is not allowed in production")
	}

	// Drop in reverse dependency order so FK constraints don't block the drop
	dropOrder := []interface{}{
		&model.Fee{},
		&model.Membership{},
		&model.Account{},
		&model.Member{},
		&model.Organization{},
	}

	for _, m := range dropOrder {
		if db.Migrator().HasTable(m) {
			if err := db.Migrator().DropTable(m); err != nil {
				slog.Debug("drop table failed", "model", fmt.Sprintf("%T", m), "error", err)
			} else {
				slog.Debug("table dropped", "model", fmt.Sprintf("%T", m))
			}
		}
	}

	if err := runAutoMigrate(db); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}

	slog.Info("database migration complete")
	return nil
}

// runAutoMigrate creates tables based on model definitions
func runAutoMigrate(db *gorm.DB) error {
	// Independent tables first, FK-bearing tables after
	models := []interface{}{
		&model.Member{},
		&model.Organization{},
		&model.Membership{},
		&model.Fee{},
		&model.Account{},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
		slog.Debug("table created", "model", fmt.Sprintf("%T", m))
	}

	return nil
}
