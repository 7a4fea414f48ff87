// Package migration keeps the sqlite schema in step with the domain models.
package migration

import (
	clientdomain "github.com/smallbiznis/billfold/internal/client/domain"
	estimatedomain "github.com/smallbiznis/billfold/internal/estimate/domain"
	expensedomain "github.com/smallbiznis/billfold/internal/expense/domain"
	invoicedomain "github.com/smallbiznis/billfold/internal/invoice/domain"
	notificationdomain "github.com/smallbiznis/billfold/internal/notification/domain"
	paymentdomain "github.com/smallbiznis/billfold/internal/payment/domain"
	settingsdomain "github.com/smallbiznis/billfold/internal/settings/domain"
	"gorm.io/gorm"
)

// Run migrates every table the application owns.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&clientdomain.Client{},
		&invoicedomain.Invoice{},
		&estimatedomain.Estimate{},
		&paymentdomain.Payment{},
		&expensedomain.Expense{},
		&settingsdomain.BusinessProfile{},
		&notificationdomain.Notification{},
	)
}
