package main

import (
	"conectezap-dashboard/internal/config"
	"conectezap-dashboard/internal/database"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Copies lead field configurations and profiles from the local SQLite file
// (DB_PATH) into the PostgreSQL database described by DB_HOST and friends.
func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg := config.LoadConfig()

	sqliteDB, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		logger.Fatal("connect sqlite", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	logger.Info("connected to sqlite", zap.String("path", cfg.DBPath))

	pgCfg := *cfg
	pgCfg.DBDriver = "postgres"
	pgDB, err := database.Open(&pgCfg, logger)
	if err != nil {
		logger.Fatal("connect postgres", zap.Error(err))
	}

	logger.Info("starting data migration")
	summary, err := database.Transfer(sqliteDB, pgDB, logger)
	if err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
	logger.Info("migration completed",
		zap.Int("lead_field_configs", summary.LeadFieldConfigs),
		zap.Int("profiles", summary.Profiles),
		zap.Int("cleared_numbers", summary.ClearedNumbers),
	)
}
