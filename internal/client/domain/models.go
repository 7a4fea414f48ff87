package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Client is a billable customer record.
type Client struct {
	ID        snowflake.ID `json:"id" gorm:"primaryKey"`
	Name      string       `json:"name" gorm:"type:text;not null"`
	Email     string       `json:"email" gorm:"type:text;not null;index"`
	Phone     string       `json:"phone,omitempty" gorm:"type:text"`
	Company   string       `json:"company,omitempty" gorm:"type:text"`
	Address   string       `json:"address,omitempty" gorm:"type:text"`
	Notes     string       `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time    `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time    `json:"updated_at" gorm:"not null"`
}

// TableName sets the database table name.
func (Client) TableName() string { return "clients" }
