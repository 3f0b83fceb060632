package models

import (
	"time"
)

// LeadFieldConfig is the persisted shape of an account's custom lead field
// labels. Each column holds one slot; NULL means the slot was never set.
type LeadFieldConfig struct {
	AccountID   string    `gorm:"primaryKey;type:varchar(36)" json:"account_id"`
	LeadField01 *string   `gorm:"column:lead_field_01;type:varchar(255)" json:"lead_field_01"`
	LeadField02 *string   `gorm:"column:lead_field_02;type:varchar(255)" json:"lead_field_02"`
	LeadField03 *string   `gorm:"column:lead_field_03;type:varchar(255)" json:"lead_field_03"`
	LeadField04 *string   `gorm:"column:lead_field_04;type:varchar(255)" json:"lead_field_04"`
	LeadField05 *string   `gorm:"column:lead_field_05;type:varchar(255)" json:"lead_field_05"`
	LeadField06 *string   `gorm:"column:lead_field_06;type:varchar(255)" json:"lead_field_06"`
	LeadField07 *string   `gorm:"column:lead_field_07;type:varchar(255)" json:"lead_field_07"`
	LeadField08 *string   `gorm:"column:lead_field_08;type:varchar(255)" json:"lead_field_08"`
	LeadField09 *string   `gorm:"column:lead_field_09;type:varchar(255)" json:"lead_field_09"`
	LeadField10 *string   `gorm:"column:lead_field_10;type:varchar(255)" json:"lead_field_10"`
	LeadField11 *string   `gorm:"column:lead_field_11;type:varchar(255)" json:"lead_field_11"`
	LeadField12 *string   `gorm:"column:lead_field_12;type:varchar(255)" json:"lead_field_12"`
	LeadField13 *string   `gorm:"column:lead_field_13;type:varchar(255)" json:"lead_field_13"`
	LeadField14 *string   `gorm:"column:lead_field_14;type:varchar(255)" json:"lead_field_14"`
	LeadField15 *string   `gorm:"column:lead_field_15;type:varchar(255)" json:"lead_field_15"`
	LeadField16 *string   `gorm:"column:lead_field_16;type:varchar(255)" json:"lead_field_16"`
	LeadField17 *string   `gorm:"column:lead_field_17;type:varchar(255)" json:"lead_field_17"`
	LeadField18 *string   `gorm:"column:lead_field_18;type:varchar(255)" json:"lead_field_18"`
	LeadField19 *string   `gorm:"column:lead_field_19;type:varchar(255)" json:"lead_field_19"`
	LeadField20 *string   `gorm:"column:lead_field_20;type:varchar(255)" json:"lead_field_20"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LeadFieldConfig) TableName() string {
	return "lead_field_configs"
}

// Fields returns pointers to the 20 label columns in slot order, so callers
// can read and write them by index.
func (c *LeadFieldConfig) Fields() [20]**string {
	return [20]**string{
		&c.LeadField01, &c.LeadField02, &c.LeadField03, &c.LeadField04, &c.LeadField05,
		&c.LeadField06, &c.LeadField07, &c.LeadField08, &c.LeadField09, &c.LeadField10,
		&c.LeadField11, &c.LeadField12, &c.LeadField13, &c.LeadField14, &c.LeadField15,
		&c.LeadField16, &c.LeadField17, &c.LeadField18, &c.LeadField19, &c.LeadField20,
	}
}

// Profile is the account profile edited on the settings page.
type Profile struct {
	AccountID   string    `gorm:"primaryKey;type:varchar(36)" json:"account_id"`
	FullName    string    `gorm:"type:varchar(255)" json:"full_name"`
	CompanyName string    `gorm:"type:varchar(255)" json:"company_name"`
	WhatsApp    string    `gorm:"column:whatsapp;type:varchar(13)" json:"whatsapp"` // normalized, digits only
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
