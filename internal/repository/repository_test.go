package repository

import (
	"context"
	"errors"
	"testing"

	"conectezap-dashboard/internal/database"
	"conectezap-dashboard/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// every pooled connection would get its own empty in-memory database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func ptr(s string) *string { return &s }

func TestLeadFieldRepository_FetchMissing(t *testing.T) {
	repo := NewLeadFieldRepository(openTestDB(t))
	_, err := repo.FetchConfiguration(context.Background(), "0b7f5d1e-0000-4000-8000-000000000001")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v", err)
	}
}

func TestLeadFieldRepository_WriteThenOverwrite(t *testing.T) {
	ctx := context.Background()
	repo := NewLeadFieldRepository(openTestDB(t))
	id := "0b7f5d1e-0000-4000-8000-000000000002"

	if err := repo.WriteConfiguration(ctx, &models.LeadFieldConfig{AccountID: id, LeadField01: ptr("Origem"), LeadField20: ptr("Plano")}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := repo.WriteConfiguration(ctx, &models.LeadFieldConfig{AccountID: id, LeadField02: ptr("Cidade")}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, err := repo.FetchConfiguration(ctx, id)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got.LeadField01 != nil || got.LeadField20 != nil {
		t.Fatalf("stale slots survived: 01=%v 20=%v", got.LeadField01, got.LeadField20)
	}
	if got.LeadField02 == nil || *got.LeadField02 != "Cidade" {
		t.Fatalf("02=%v", got.LeadField02)
	}
}

func TestLeadFieldConfig_FieldsOrder(t *testing.T) {
	var rec models.LeadFieldConfig
	fields := rec.Fields()
	*fields[6] = ptr("seven")
	if rec.LeadField07 == nil || *rec.LeadField07 != "seven" {
		t.Fatalf("07=%v", rec.LeadField07)
	}
}

func TestProfileRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(openTestDB(t))
	id := "0b7f5d1e-0000-4000-8000-000000000003"

	if _, err := repo.FetchProfile(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v", err)
	}
	if err := repo.WriteProfile(ctx, &models.Profile{AccountID: id, FullName: "Ana", WhatsApp: "5511987654321"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := repo.WriteProfile(ctx, &models.Profile{AccountID: id, FullName: "Ana Souza", CompanyName: "Loja"}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := repo.FetchProfile(ctx, id)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got.FullName != "Ana Souza" || got.CompanyName != "Loja" || got.WhatsApp != "" {
		t.Fatalf("profile=%+v", got)
	}
}
