// Package repository is the GORM-backed storage collaborator for lead field
// configurations and profiles.
package repository

import (
	"context"
	"errors"
	"fmt"

	"conectezap-dashboard/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("record not found")

type LeadFieldRepository struct {
	db *gorm.DB
}

func NewLeadFieldRepository(db *gorm.DB) *LeadFieldRepository {
	return &LeadFieldRepository{db: db}
}

// FetchConfiguration returns ErrNotFound when the account has never saved
// its labels.
func (r *LeadFieldRepository) FetchConfiguration(ctx context.Context, accountID string) (*models.LeadFieldConfig, error) {
	var rec models.LeadFieldConfig
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lead fields %s: %w", accountID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// WriteConfiguration upserts all 20 columns in one statement.
func (r *LeadFieldRepository) WriteConfiguration(ctx context.Context, rec *models.LeadFieldConfig) error {
	columns := make([]string, 0, 21)
	for i := 1; i <= 20; i++ {
		columns = append(columns, fmt.Sprintf("lead_field_%02d", i))
	}
	columns = append(columns, "updated_at")

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(rec).Error
}

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) FetchProfile(ctx context.Context, accountID string) (*models.Profile, error) {
	var p models.Profile
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("profile %s: %w", accountID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) WriteProfile(ctx context.Context, p *models.Profile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"full_name", "company_name", "whatsapp", "updated_at"}),
	}).Create(p).Error
}
