package database

import (
	"fmt"

	"conectezap-dashboard/internal/models"
	"conectezap-dashboard/internal/phone"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TransferSummary struct {
	LeadFieldConfigs int
	Profiles         int
	ClearedNumbers   int
}

// Transfer copies every lead field configuration and profile from src into
// dst inside one destination transaction. Rows already present in dst are
// overwritten. Stored WhatsApp numbers that no longer validate are cleared.
func Transfer(src, dst *gorm.DB, log *zap.Logger) (TransferSummary, error) {
	var summary TransferSummary

	var configs []models.LeadFieldConfig
	if err := src.Find(&configs).Error; err != nil {
		return summary, fmt.Errorf("read lead_field_configs: %w", err)
	}
	var profiles []models.Profile
	if err := src.Find(&profiles).Error; err != nil {
		return summary, fmt.Errorf("read profiles: %w", err)
	}

	for i := range profiles {
		if profiles[i].WhatsApp == "" {
			continue
		}
		n, err := phone.Validate(profiles[i].WhatsApp)
		if err != nil {
			log.Warn("clearing invalid whatsapp number",
				zap.String("account_id", profiles[i].AccountID), zap.Error(err))
			profiles[i].WhatsApp = ""
			summary.ClearedNumbers++
			continue
		}
		profiles[i].WhatsApp = n
	}

	err := dst.Transaction(func(tx *gorm.DB) error {
		if len(configs) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&configs).Error; err != nil {
				return fmt.Errorf("write lead_field_configs: %w", err)
			}
		}
		if len(profiles) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&profiles).Error; err != nil {
				return fmt.Errorf("write profiles: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return TransferSummary{}, err
	}

	summary.LeadFieldConfigs = len(configs)
	summary.Profiles = len(profiles)
	return summary, nil
}
