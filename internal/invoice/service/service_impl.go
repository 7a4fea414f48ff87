package service

import (
	"context"
	"strings"
	"time"

	"github.com/smallbiznis/billfold/internal/clock"
	"github.com/smallbiznis/billfold/internal/finance"
	invoicedomain "github.com/smallbiznis/billfold/internal/invoice/domain"
	notificationdomain "github.com/smallbiznis/billfold/internal/notification/domain"
	"github.com/smallbiznis/billfold/internal/numbering"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock

	repo     invoicedomain.Repository
	notifier notificationdomain.Service
}

type ServiceParam struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Clock    clock.Clock
	Repo     invoicedomain.Repository
	Notifier notificationdomain.Service `optional:"true"`
}

func NewService(p ServiceParam) invoicedomain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("invoice.service"),
		clock:    p.Clock,
		repo:     p.Repo,
		notifier: p.Notifier,
	}
}

func (s *Service) Create(ctx context.Context, req invoicedomain.CreateInvoiceRequest) (invoicedomain.InvoiceView, error) {
	if strings.TrimSpace(req.ClientName) == "" {
		return invoicedomain.InvoiceView{}, invoicedomain.ErrInvalidClient
	}
	issueDate, err := time.Parse("2006-01-02", req.IssueDate)
	if err != nil {
		return invoicedomain.InvoiceView{}, invoicedomain.ErrInvalidIssueDate
	}
	for _, line := range req.LineItems {
		if line.Quantity < 0 || line.UnitPrice < 0 {
			return invoicedomain.InvoiceView{}, invoicedomain.ErrInvalidLineItem
		}
	}

	now := s.clock.Now()
	items := invoicedomain.BuildLineItems(req.LineItems, func() string {
		return numbering.UniqueID("li")
	})
	subtotal := finance.Subtotal(items)
	tax := finance.Tax(subtotal, req.TaxRate)
	total := finance.Total(subtotal, tax, req.Discount)

	inv := invoicedomain.Invoice{
		ID:          numbering.UniqueID("inv"),
		ClientID:    req.ClientID,
		ClientName:  strings.TrimSpace(req.ClientName),
		ClientEmail: strings.TrimSpace(req.ClientEmail),
		IssueDate:   issueDate,
		DueDate:     invoicedomain.DueDate(issueDate, req.NetTerm),
		LineItems:   items,
		Subtotal:    subtotal,
		TaxAmount:   tax,
		Discount:    req.Discount,
		Total:       total,
		AmountPaid:  0,
		AmountDue:   finance.AmountDue(total, 0),
		Notes:       req.Notes,
		Terms:       req.Terms,
		Currency:    req.Currency,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		numbers, err := s.repo.ListNumbers(ctx, tx)
		if err != nil {
			return err
		}
		inv.Number = numbering.Next("INV", numbers, now.Year())
		return s.repo.Insert(ctx, tx, &inv)
	})
	if err != nil {
		return invoicedomain.InvoiceView{}, err
	}

	s.log.Info("invoice created",
		zap.String("invoice_id", inv.ID),
		zap.String("number", inv.Number),
		zap.Float64("total", inv.Total),
	)
	return s.view(inv), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (invoicedomain.InvoiceView, error) {
	inv, err := s.load(ctx, s.db, id)
	if err != nil {
		return invoicedomain.InvoiceView{}, err
	}
	return s.view(*inv), nil
}

func (s *Service) List(ctx context.Context, filter invoicedomain.Filter) (invoicedomain.ListInvoiceResponse, error) {
	invoices, err := s.repo.List(ctx, s.db, filter)
	if err != nil {
		return invoicedomain.ListInvoiceResponse{}, err
	}

	now := s.clock.Now()
	views := make([]invoicedomain.InvoiceView, 0, len(invoices))
	for _, inv := range invoices {
		view := invoicedomain.InvoiceView{Invoice: inv, Status: invoicedomain.DeriveStatus(inv, now)}
		// Status is derived, so the filter applies here rather than in SQL.
		if filter.Status != "" && view.Status != filter.Status {
			continue
		}
		views = append(views, view)
	}
	return invoicedomain.ListInvoiceResponse{Invoices: views}, nil
}

func (s *Service) Update(ctx context.Context, id string, req invoicedomain.UpdateInvoiceRequest) (invoicedomain.InvoiceView, error) {
	inv, err := s.load(ctx, s.db, id)
	if err != nil {
		return invoicedomain.InvoiceView{}, err
	}

	if req.ClientName != nil {
		inv.ClientName = strings.TrimSpace(*req.ClientName)
	}
	if req.ClientEmail != nil {
		inv.ClientEmail = strings.TrimSpace(*req.ClientEmail)
	}
	if req.Notes != nil {
		inv.Notes = *req.Notes
	}
	if req.Terms != nil {
		inv.Terms = *req.Terms
	}
	if req.Discount != nil {
		inv.Discount = *req.Discount
	}
	if req.LineItems != nil {
		for _, line := range req.LineItems {
			if line.Quantity < 0 || line.UnitPrice < 0 {
				return invoicedomain.InvoiceView{}, invoicedomain.ErrInvalidLineItem
			}
		}
		inv.LineItems = invoicedomain.BuildLineItems(req.LineItems, func() string {
			return numbering.UniqueID("li")
		})
	}

	taxRate := impliedTaxRate(*inv)
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}
	inv.Subtotal = finance.Subtotal(inv.LineItems)
	inv.TaxAmount = finance.Tax(inv.Subtotal, taxRate)
	inv.Total = finance.Total(inv.Subtotal, inv.TaxAmount, inv.Discount)
	inv.AmountDue = finance.AmountDue(inv.Total, inv.AmountPaid)
	inv.UpdatedAt = s.clock.Now()

	if err := s.repo.Replace(ctx, s.db, inv); err != nil {
		return invoicedomain.InvoiceView{}, err
	}
	return s.view(*inv), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	inv, err := s.load(ctx, s.db, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, s.db, inv.ID); err != nil {
		return err
	}
	s.log.Info("invoice deleted", zap.String("invoice_id", inv.ID), zap.String("number", inv.Number))
	return nil
}

func (s *Service) Send(ctx context.Context, id string, channel invoicedomain.SendChannel) (invoicedomain.InvoiceView, error) {
	switch channel {
	case invoicedomain.SendChannelEmail, invoicedomain.SendChannelLink, invoicedomain.SendChannelPDF:
	default:
		return invoicedomain.InvoiceView{}, invoicedomain.ErrInvalidChannel
	}

	inv, err := s.load(ctx, s.db, id)
	if err != nil {
		return invoicedomain.InvoiceView{}, err
	}

	updated := invoicedomain.MarkSent(*inv, channel, s.clock.Now())
	if err := s.repo.Replace(ctx, s.db, &updated); err != nil {
		return invoicedomain.InvoiceView{}, err
	}
	s.log.Info("invoice sent",
		zap.String("invoice_id", updated.ID),
		zap.String("channel", string(channel)),
	)
	return s.view(updated), nil
}

func (s *Service) ApplyPayment(ctx context.Context, db *gorm.DB, id string, amount float64) (invoicedomain.InvoiceView, error) {
	inv, err := s.load(ctx, db, id)
	if err != nil {
		return invoicedomain.InvoiceView{}, err
	}

	updated := invoicedomain.RecordPayment(*inv, amount, s.clock.Now())
	if amount > 0 {
		if err := s.repo.Replace(ctx, db, &updated); err != nil {
			return invoicedomain.InvoiceView{}, err
		}
	}
	return s.view(updated), nil
}

func (s *Service) MarkViewed(ctx context.Context, id string) (invoicedomain.InvoiceView, error) {
	inv, err := s.load(ctx, s.db, id)
	if err != nil {
		return invoicedomain.InvoiceView{}, err
	}

	updated := invoicedomain.MarkViewed(*inv, s.clock.Now())
	if inv.ViewedAt == nil {
		if err := s.repo.Replace(ctx, s.db, &updated); err != nil {
			return invoicedomain.InvoiceView{}, err
		}
		if s.notifier != nil {
			_, err := s.notifier.Push(ctx, notificationdomain.PushRequest{
				Type:      notificationdomain.TypeInvoiceViewed,
				Title:     "Invoice Viewed",
				Message:   updated.Number + " viewed by " + updated.ClientName,
				RelatedID: updated.ID,
			})
			if err != nil {
				s.log.Warn("viewed notification failed", zap.Error(err))
			}
		}
	}
	return s.view(updated), nil
}

func (s *Service) load(ctx context.Context, db *gorm.DB, id string) (*invoicedomain.Invoice, error) {
	if strings.TrimSpace(id) == "" {
		return nil, invoicedomain.ErrInvalidInvoiceID
	}
	inv, err := s.repo.FindByID(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, invoicedomain.ErrInvoiceNotFound
	}
	return inv, nil
}

func (s *Service) view(inv invoicedomain.Invoice) invoicedomain.InvoiceView {
	return invoicedomain.InvoiceView{Invoice: inv, Status: invoicedomain.DeriveStatus(inv, s.clock.Now())}
}

// impliedTaxRate recovers the rate from stored figures when an update does
// not supply one. Zero subtotal implies a zero rate.
func impliedTaxRate(inv invoicedomain.Invoice) float64 {
	if inv.Subtotal == 0 {
		return 0
	}
	return inv.TaxAmount / inv.Subtotal * 100
}
