package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/billfold/internal/cache"
	clientdomain "github.com/smallbiznis/billfold/internal/client/domain"
	"github.com/smallbiznis/billfold/internal/clock"
	dashboarddomain "github.com/smallbiznis/billfold/internal/dashboard/domain"
	invoicedomain "github.com/smallbiznis/billfold/internal/invoice/domain"
	paymentdomain "github.com/smallbiznis/billfold/internal/payment/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const statsTTL = 30 * time.Second

type Service struct {
	log   *zap.Logger
	clock clock.Clock

	invoiceSvc invoicedomain.Service
	clientSvc  clientdomain.Service
	paymentSvc paymentdomain.Service

	statsCache *cache.TTLCache[string, dashboarddomain.Stats]
}

type ServiceParam struct {
	fx.In

	Log        *zap.Logger
	Clock      clock.Clock
	InvoiceSvc invoicedomain.Service
	ClientSvc  clientdomain.Service
	PaymentSvc paymentdomain.Service
}

func NewService(p ServiceParam) dashboarddomain.Service {
	return &Service{
		log:        p.Log.Named("dashboard.service"),
		clock:      p.Clock,
		invoiceSvc: p.InvoiceSvc,
		clientSvc:  p.ClientSvc,
		paymentSvc: p.PaymentSvc,
		statsCache: cache.New[string, dashboarddomain.Stats](),
	}
}

func (s *Service) Stats(ctx context.Context) (dashboarddomain.Stats, error) {
	now := s.clock.Now()
	if cached, ok := s.statsCache.Get("stats", now); ok {
		return cached, nil
	}

	invoices, err := s.invoiceSvc.List(ctx, invoicedomain.Filter{})
	if err != nil {
		return dashboarddomain.Stats{}, err
	}
	clients, err := s.clientSvc.List(ctx, "")
	if err != nil {
		return dashboarddomain.Stats{}, err
	}

	// Money sums run through decimal so a long list of invoices does not
	// accumulate float drift.
	revenue := decimal.Zero
	outstanding := decimal.Zero
	overdue := decimal.Zero
	stats := dashboarddomain.Stats{
		InvoiceCount: len(invoices.Invoices),
		ClientCount:  len(clients.Clients),
	}
	for _, inv := range invoices.Invoices {
		switch inv.Status {
		case invoicedomain.StatusPaid:
			stats.PaidCount++
			revenue = revenue.Add(decimal.NewFromFloat(inv.AmountPaid))
		case invoicedomain.StatusSent, invoicedomain.StatusPartial:
			stats.PendingCount++
			outstanding = outstanding.Add(decimal.NewFromFloat(inv.AmountDue))
		case invoicedomain.StatusOverdue:
			stats.OverdueCount++
			overdue = overdue.Add(decimal.NewFromFloat(inv.Total))
		}
	}
	stats.TotalRevenue = revenue.Round(2).InexactFloat64()
	stats.TotalOutstanding = outstanding.Round(2).InexactFloat64()
	stats.TotalOverdue = overdue.Round(2).InexactFloat64()

	s.statsCache.Set("stats", stats, statsTTL, now)
	return stats, nil
}

func (s *Service) RecentActivity(ctx context.Context, limit int) (dashboarddomain.ActivityResponse, error) {
	if limit <= 0 {
		limit = 10
	}

	invoices, err := s.invoiceSvc.List(ctx, invoicedomain.Filter{})
	if err != nil {
		return dashboarddomain.ActivityResponse{}, err
	}
	clients, err := s.clientSvc.List(ctx, "")
	if err != nil {
		return dashboarddomain.ActivityResponse{}, err
	}
	payments, err := s.paymentSvc.List(ctx)
	if err != nil {
		return dashboarddomain.ActivityResponse{}, err
	}

	byID := make(map[string]invoicedomain.InvoiceView, len(invoices.Invoices))
	activities := make([]dashboarddomain.Activity, 0, 3*len(invoices.Invoices))
	for _, inv := range invoices.Invoices {
		byID[inv.ID] = inv
		total := inv.Total
		activities = append(activities, dashboarddomain.Activity{
			ID:          "inv-created-" + inv.ID,
			Type:        dashboarddomain.ActivityInvoiceCreated,
			Title:       "Invoice Created",
			Description: fmt.Sprintf("%s for %s", inv.Number, inv.ClientName),
			Amount:      &total,
			Timestamp:   inv.CreatedAt,
		})
		switch inv.Status {
		case invoicedomain.StatusSent, invoicedomain.StatusPartial, invoicedomain.StatusPaid:
			activities = append(activities, dashboarddomain.Activity{
				ID:          "inv-sent-" + inv.ID,
				Type:        dashboarddomain.ActivityInvoiceSent,
				Title:       "Invoice Sent",
				Description: fmt.Sprintf("%s sent to %s", inv.Number, inv.ClientName),
				Amount:      &total,
				Timestamp:   inv.UpdatedAt,
			})
		}
		if inv.Status == invoicedomain.StatusPaid {
			activities = append(activities, dashboarddomain.Activity{
				ID:          "inv-paid-" + inv.ID,
				Type:        dashboarddomain.ActivityInvoicePaid,
				Title:       "Invoice Paid",
				Description: fmt.Sprintf("%s fully paid by %s", inv.Number, inv.ClientName),
				Amount:      &total,
				Timestamp:   inv.UpdatedAt,
			})
		}
	}

	for _, payment := range payments.Payments {
		inv, ok := byID[payment.InvoiceID]
		if !ok {
			continue
		}
		amount := payment.Amount
		activities = append(activities, dashboarddomain.Activity{
			ID:          "payment-" + payment.ID,
			Type:        dashboarddomain.ActivityPaymentReceived,
			Title:       "Payment Received",
			Description: "Payment from " + inv.ClientName,
			Amount:      &amount,
			Timestamp:   payment.Date,
		})
	}

	for _, client := range clients.Clients {
		activities = append(activities, dashboarddomain.Activity{
			ID:          "client-" + client.ID.String(),
			Type:        dashboarddomain.ActivityClientAdded,
			Title:       "New Client",
			Description: client.Name + " added",
			Timestamp:   client.CreatedAt,
		})
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})
	if len(activities) > limit {
		activities = activities[:limit]
	}
	return dashboarddomain.ActivityResponse{Activity: activities}, nil
}
