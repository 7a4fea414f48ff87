package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Category buckets an expense for reporting.
type Category string

const (
	CategoryTravel    Category = "travel"
	CategoryMeals     Category = "meals"
	CategorySupplies  Category = "supplies"
	CategorySoftware  Category = "software"
	CategoryEquipment Category = "equipment"
	CategoryOther     Category = "other"
)

// Expense is money spent by the business, tracked alongside invoicing for
// the dashboard and reports.
type Expense struct {
	ID         snowflake.ID      `json:"id" gorm:"primaryKey"`
	Category   Category          `json:"category" gorm:"type:text;not null"`
	Vendor     string            `json:"vendor" gorm:"type:text"`
	Amount     float64           `json:"amount" gorm:"not null"`
	Currency   string            `json:"currency" gorm:"type:text"`
	Date       time.Time         `json:"date" gorm:"not null;index"`
	Notes      string            `json:"notes,omitempty" gorm:"type:text"`
	HasReceipt bool              `json:"has_receipt" gorm:"not null;default:false"`
	Metadata   datatypes.JSONMap `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt  time.Time         `json:"created_at" gorm:"not null"`
	UpdatedAt  time.Time         `json:"updated_at" gorm:"not null"`
}

// TableName sets the database table name.
func (Expense) TableName() string { return "expenses" }
