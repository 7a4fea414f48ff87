package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	clientdomain "github.com/smallbiznis/billfold/internal/client/domain"
	"github.com/smallbiznis/billfold/internal/config"
	estimatedomain "github.com/smallbiznis/billfold/internal/estimate/domain"
	expensedomain "github.com/smallbiznis/billfold/internal/expense/domain"
	"github.com/smallbiznis/billfold/internal/finance"
	invoicedomain "github.com/smallbiznis/billfold/internal/invoice/domain"
	paymentdomain "github.com/smallbiznis/billfold/internal/payment/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Demo populates an empty store with a small working dataset so a fresh
// install has something to show. It is a no-op unless cfg.SeedDemoData is set
// and the invoices table is empty.
func Demo(db *gorm.DB, cfg config.Config, log *zap.Logger, node *snowflake.Node) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}
	if !cfg.SeedDemoData {
		return nil
	}

	ctx := context.Background()
	var count int64
	if err := db.WithContext(ctx).Model(&invoicedomain.Invoice{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Info("seeding demo data")
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		clients := demoClients(node)
		for i := range clients {
			if err := tx.Create(&clients[i]).Error; err != nil {
				return err
			}
		}
		invoices := demoInvoices(clients)
		for i := range invoices {
			if err := tx.Create(&invoices[i]).Error; err != nil {
				return err
			}
		}
		payments := demoPayments()
		for i := range payments {
			if err := tx.Create(&payments[i]).Error; err != nil {
				return err
			}
		}
		estimates := demoEstimates(clients)
		for i := range estimates {
			if err := tx.Create(&estimates[i]).Error; err != nil {
				return err
			}
		}
		expenses := demoExpenses(node)
		for i := range expenses {
			if err := tx.Create(&expenses[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}

func demoClients(node *snowflake.Node) []clientdomain.Client {
	names := []struct {
		name, email, company string
		created              time.Time
	}{
		{"Acme Corporation", "billing@acme.example", "Acme Corporation", at(2025, time.September, 10, 9, 0)},
		{"TechStart Inc.", "accounts@techstart.example", "TechStart Inc.", at(2025, time.October, 2, 11, 30)},
		{"Bloom & Co.", "finance@bloom.example", "Bloom & Co.", at(2025, time.October, 18, 15, 0)},
		{"Skyline Media", "hello@skyline.example", "Skyline Media", at(2025, time.November, 1, 0, 0)},
		{"Harbor Design", "studio@harbor.example", "Harbor Design", at(2025, time.December, 3, 10, 0)},
	}
	clients := make([]clientdomain.Client, 0, len(names))
	for _, n := range names {
		clients = append(clients, clientdomain.Client{
			ID:        node.Generate(),
			Name:      n.name,
			Email:     n.email,
			Company:   n.company,
			CreatedAt: n.created,
			UpdatedAt: n.created,
		})
	}
	return clients
}

func lines(items ...finance.LineItem) []finance.LineItem { return items }

func invoice(id, number string, client clientdomain.Client, issued time.Time, items []finance.LineItem, taxRate, discount float64) invoicedomain.Invoice {
	subtotal := finance.Subtotal(items)
	tax := finance.Tax(subtotal, taxRate)
	total := finance.Total(subtotal, tax, discount)
	return invoicedomain.Invoice{
		ID:          id,
		Number:      number,
		ClientID:    client.ID.String(),
		ClientName:  client.Name,
		ClientEmail: client.Email,
		IssueDate:   issued,
		LineItems:   items,
		Subtotal:    subtotal,
		TaxAmount:   tax,
		Discount:    discount,
		Total:       total,
		AmountDue:   total,
		Currency:    "USD",
		CreatedAt:   issued,
		UpdatedAt:   issued,
	}
}

func demoInvoices(clients []clientdomain.Client) []invoicedomain.Invoice {
	acme, techstart, bloom, skyline := clients[0], clients[1], clients[2], clients[3]

	paid := invoice("inv-001", "INV-2026-0001", acme, day(2026, time.January, 5),
		lines(finance.NewLineItem("li-001", "Brand identity package", 1, 6500)), 8.5, 0)
	sentAt := at(2026, time.January, 6, 9, 0)
	paidAt := at(2026, time.February, 1, 14, 30)
	paid.SentAt = &sentAt
	paid.LastSentVia = invoicedomain.SendChannelEmail
	paid.AmountPaid = paid.Total
	paid.AmountDue = 0
	paid.PaidAt = &paidAt

	sent := invoice("inv-002", "INV-2026-0002", techstart, day(2026, time.January, 25),
		lines(
			finance.NewLineItem("li-002", "Platform development", 110, 160),
			finance.NewLineItem("li-003", "Deployment support", 10, 143),
		), 0, 0)
	sent2At := at(2026, time.January, 28, 9, 0)
	sent.SentAt = &sent2At
	sent.LastSentVia = invoicedomain.SendChannelEmail

	overdue := invoice("inv-003", "INV-2026-0003", skyline, day(2025, time.December, 1),
		lines(finance.NewLineItem("li-004", "Campaign retainer", 1, 4300)), 8.5, 0)
	overdueSent := at(2025, time.December, 2, 10, 0)
	overdueDue := day(2025, time.December, 31)
	overdue.SentAt = &overdueSent
	overdue.LastSentVia = invoicedomain.SendChannelLink
	overdue.DueDate = &overdueDue

	draft := invoice("inv-004", "INV-2026-0004", skyline, day(2026, time.February, 5),
		lines(finance.NewLineItem("li-005", "Social media assets", 28, 108.50)), 0, 0)

	partial := invoice("inv-005", "INV-2026-0005", bloom, day(2026, time.January, 15),
		lines(finance.NewLineItem("li-006", "Storefront redesign", 1, 16000)), 0, 0)
	partialSent := at(2026, time.January, 16, 8, 0)
	partial.SentAt = &partialSent
	partial.LastSentVia = invoicedomain.SendChannelEmail
	partial.AmountPaid = 8000
	partial.AmountDue = finance.AmountDue(partial.Total, partial.AmountPaid)

	paid2 := invoice("inv-006", "INV-2026-0006", acme, day(2025, time.December, 1),
		lines(finance.NewLineItem("li-007", "Print collateral", 1, 3000)), 8.5, 0)
	paid2Sent := at(2025, time.December, 1, 12, 0)
	paid2At := at(2025, time.December, 15, 10, 0)
	paid2.SentAt = &paid2Sent
	paid2.LastSentVia = invoicedomain.SendChannelEmail
	paid2.AmountPaid = paid2.Total
	paid2.AmountDue = 0
	paid2.PaidAt = &paid2At

	return []invoicedomain.Invoice{paid, sent, overdue, draft, partial, paid2}
}

func demoPayments() []paymentdomain.Payment {
	return []paymentdomain.Payment{
		{
			ID:            "pay-001",
			InvoiceID:     "inv-001",
			InvoiceNumber: "INV-2026-0001",
			ClientName:    "Acme Corporation",
			Amount:        7052.50,
			Method:        paymentdomain.MethodBankTransfer,
			Date:          day(2026, time.February, 1),
			Notes:         "Full payment received",
			Currency:      "USD",
			CreatedAt:     at(2026, time.February, 1, 14, 30),
		},
		{
			ID:            "pay-002",
			InvoiceID:     "inv-005",
			InvoiceNumber: "INV-2026-0005",
			ClientName:    "Bloom & Co.",
			Amount:        8000,
			Method:        paymentdomain.MethodCard,
			Date:          day(2026, time.January, 20),
			Notes:         "50% upfront payment",
			Currency:      "USD",
			CreatedAt:     at(2026, time.January, 20, 16, 0),
		},
		{
			ID:            "pay-003",
			InvoiceID:     "inv-006",
			InvoiceNumber: "INV-2026-0006",
			ClientName:    "Acme Corporation",
			Amount:        3255,
			Method:        paymentdomain.MethodBankTransfer,
			Date:          day(2025, time.December, 15),
			Currency:      "USD",
			CreatedAt:     at(2025, time.December, 15, 10, 0),
		},
	}
}

func demoEstimates(clients []clientdomain.Client) []estimatedomain.Estimate {
	harbor, techstart := clients[4], clients[1]

	items := lines(finance.NewLineItem("li-101", "Website refresh", 1, 9500))
	subtotal := finance.Subtotal(items)
	tax := finance.Tax(subtotal, 8.5)
	expiry := day(2026, time.March, 15)
	created := at(2026, time.February, 10, 9, 0)
	sentAt := at(2026, time.February, 11, 9, 0)

	items2 := lines(finance.NewLineItem("li-102", "Quarterly maintenance", 3, 1200))
	subtotal2 := finance.Subtotal(items2)
	created2 := at(2026, time.February, 20, 13, 0)

	return []estimatedomain.Estimate{
		{
			ID:          "est-001",
			Number:      "EST-2026-0001",
			Status:      estimatedomain.StatusSent,
			ClientID:    harbor.ID.String(),
			ClientName:  harbor.Name,
			ClientEmail: harbor.Email,
			IssueDate:   day(2026, time.February, 10),
			ExpiryDate:  &expiry,
			LineItems:   items,
			Subtotal:    subtotal,
			TaxAmount:   tax,
			Total:       finance.Total(subtotal, tax, 0),
			Currency:    "USD",
			CreatedAt:   created,
			UpdatedAt:   sentAt,
		},
		{
			ID:          "est-002",
			Number:      "EST-2026-0002",
			Status:      estimatedomain.StatusDraft,
			ClientID:    techstart.ID.String(),
			ClientName:  techstart.Name,
			ClientEmail: techstart.Email,
			IssueDate:   day(2026, time.February, 20),
			LineItems:   items2,
			Subtotal:    subtotal2,
			Total:       finance.Total(subtotal2, 0, 0),
			Currency:    "USD",
			CreatedAt:   created2,
			UpdatedAt:   created2,
		},
	}
}

func demoExpenses(node *snowflake.Node) []expensedomain.Expense {
	rows := []struct {
		category expensedomain.Category
		vendor   string
		amount   float64
		date     time.Time
		receipt  bool
	}{
		{expensedomain.CategorySoftware, "Figma", 45, day(2026, time.January, 3), true},
		{expensedomain.CategoryTravel, "Delta Airlines", 412.80, day(2026, time.January, 14), true},
		{expensedomain.CategoryMeals, "Client lunch", 86.25, day(2026, time.February, 2), false},
	}
	expenses := make([]expensedomain.Expense, 0, len(rows))
	for _, r := range rows {
		expenses = append(expenses, expensedomain.Expense{
			ID:         node.Generate(),
			Category:   r.category,
			Vendor:     r.vendor,
			Amount:     r.amount,
			Currency:   "USD",
			Date:       r.date,
			HasReceipt: r.receipt,
			CreatedAt:  r.date,
			UpdatedAt:  r.date,
		})
	}
	return expenses
}
