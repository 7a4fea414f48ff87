package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// BusinessProfile is the single-row business identity printed on invoices and
// estimates. Defaults here feed new documents; the documents themselves keep
// their own copy once created.
type BusinessProfile struct {
	ID           snowflake.ID `json:"id" gorm:"primaryKey"`
	BusinessName string       `json:"business_name" gorm:"type:text"`
	OwnerName    string       `json:"owner_name" gorm:"type:text"`
	Email        string       `json:"email" gorm:"type:text"`
	Phone        string       `json:"phone,omitempty" gorm:"type:text"`
	Address      string       `json:"address,omitempty" gorm:"type:text"`
	LogoURL      string       `json:"logo_url,omitempty" gorm:"type:text"`
	Currency     string       `json:"currency" gorm:"type:text;not null;default:'USD'"`
	TaxRate      float64      `json:"tax_rate"`
	AccentColor  string       `json:"accent_color,omitempty" gorm:"type:text"`
	FontFamily   string       `json:"font_family,omitempty" gorm:"type:text"`
	CreatedAt    time.Time    `json:"created_at" gorm:"not null"`
	UpdatedAt    time.Time    `json:"updated_at" gorm:"not null"`
}

// TableName sets the database table name.
func (BusinessProfile) TableName() string { return "business_profiles" }
