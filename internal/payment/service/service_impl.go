package service

import (
	"context"
	"strings"
	"time"

	"github.com/smallbiznis/billfold/internal/clock"
	"github.com/smallbiznis/billfold/internal/currency"
	invoicedomain "github.com/smallbiznis/billfold/internal/invoice/domain"
	notificationdomain "github.com/smallbiznis/billfold/internal/notification/domain"
	"github.com/smallbiznis/billfold/internal/numbering"
	paymentdomain "github.com/smallbiznis/billfold/internal/payment/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock

	repo       paymentdomain.Repository
	invoiceSvc invoicedomain.Service
	notifier   notificationdomain.Service
}

type ServiceParam struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	Clock      clock.Clock
	Repo       paymentdomain.Repository
	InvoiceSvc invoicedomain.Service
	Notifier   notificationdomain.Service `optional:"true"`
}

func NewService(p ServiceParam) paymentdomain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("payment.service"),
		clock:      p.Clock,
		repo:       p.Repo,
		invoiceSvc: p.InvoiceSvc,
		notifier:   p.Notifier,
	}
}

// Record stores the payment and applies it to the invoice. The invoice side
// clamps at the open balance; the payment row keeps the full received amount.
func (s *Service) Record(ctx context.Context, req paymentdomain.RecordPaymentRequest) (paymentdomain.RecordPaymentResponse, error) {
	if strings.TrimSpace(req.InvoiceID) == "" {
		return paymentdomain.RecordPaymentResponse{}, paymentdomain.ErrInvalidInvoiceID
	}
	if req.Amount <= 0 {
		return paymentdomain.RecordPaymentResponse{}, paymentdomain.ErrInvalidAmount
	}
	switch req.Method {
	case paymentdomain.MethodCash, paymentdomain.MethodBankTransfer, paymentdomain.MethodCard, paymentdomain.MethodOther:
	default:
		return paymentdomain.RecordPaymentResponse{}, paymentdomain.ErrInvalidMethod
	}

	date := s.clock.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return paymentdomain.RecordPaymentResponse{}, paymentdomain.ErrInvalidDate
		}
		date = parsed
	}

	// The invoice update and the payment row commit together; a failed insert
	// rolls the invoice back.
	var (
		view    invoicedomain.InvoiceView
		payment paymentdomain.Payment
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		applied, err := s.invoiceSvc.ApplyPayment(ctx, tx, req.InvoiceID, req.Amount)
		if err != nil {
			return err
		}
		view = applied

		payment = paymentdomain.Payment{
			ID:            numbering.UniqueID("pay"),
			InvoiceID:     view.ID,
			InvoiceNumber: view.Number,
			ClientName:    view.ClientName,
			Amount:        req.Amount,
			Method:        req.Method,
			Date:          date,
			Notes:         req.Notes,
			Currency:      view.Currency,
			CreatedAt:     s.clock.Now(),
		}
		return s.repo.Insert(ctx, tx, &payment)
	})
	if err != nil {
		return paymentdomain.RecordPaymentResponse{}, err
	}

	s.log.Info("payment recorded",
		zap.String("payment_id", payment.ID),
		zap.String("invoice_id", payment.InvoiceID),
		zap.Float64("amount", payment.Amount),
		zap.String("status", string(view.Status)),
	)
	s.notify(ctx, payment, view)
	return paymentdomain.RecordPaymentResponse{Payment: payment, Invoice: view}, nil
}

// notify pushes feed entries for the payment. A lost notification never fails
// the payment itself.
func (s *Service) notify(ctx context.Context, payment paymentdomain.Payment, view invoicedomain.InvoiceView) {
	if s.notifier == nil {
		return
	}

	_, err := s.notifier.Push(ctx, notificationdomain.PushRequest{
		Type:      notificationdomain.TypePaymentReceived,
		Title:     "Payment Received",
		Message:   currency.Format(payment.Amount, payment.Currency) + " from " + payment.ClientName,
		RelatedID: payment.InvoiceID,
	})
	if err != nil {
		s.log.Warn("payment notification failed", zap.Error(err))
	}

	if view.Status == invoicedomain.StatusPaid {
		_, err = s.notifier.Push(ctx, notificationdomain.PushRequest{
			Type:      notificationdomain.TypeInvoicePaid,
			Title:     "Invoice Paid",
			Message:   view.Number + " fully paid by " + view.ClientName,
			RelatedID: view.ID,
		})
		if err != nil {
			s.log.Warn("invoice paid notification failed", zap.Error(err))
		}
	}
}

func (s *Service) List(ctx context.Context) (paymentdomain.ListPaymentResponse, error) {
	payments, err := s.repo.List(ctx, s.db)
	if err != nil {
		return paymentdomain.ListPaymentResponse{}, err
	}
	return paymentdomain.ListPaymentResponse{Payments: payments}, nil
}

func (s *Service) ListByInvoice(ctx context.Context, invoiceID string) (paymentdomain.ListPaymentResponse, error) {
	if strings.TrimSpace(invoiceID) == "" {
		return paymentdomain.ListPaymentResponse{}, paymentdomain.ErrInvalidInvoiceID
	}
	payments, err := s.repo.ListByInvoice(ctx, s.db, invoiceID)
	if err != nil {
		return paymentdomain.ListPaymentResponse{}, err
	}
	return paymentdomain.ListPaymentResponse{Payments: payments}, nil
}
