package service

import (
	"context"
	"strings"
	"time"

	"github.com/smallbiznis/billfold/internal/clock"
	estimatedomain "github.com/smallbiznis/billfold/internal/estimate/domain"
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

	repo     estimatedomain.Repository
	notifier notificationdomain.Service
}

type ServiceParam struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Clock    clock.Clock
	Repo     estimatedomain.Repository
	Notifier notificationdomain.Service `optional:"true"`
}

func NewService(p ServiceParam) estimatedomain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("estimate.service"),
		clock:    p.Clock,
		repo:     p.Repo,
		notifier: p.Notifier,
	}
}

func (s *Service) Create(ctx context.Context, req estimatedomain.CreateEstimateRequest) (estimatedomain.Estimate, error) {
	if strings.TrimSpace(req.ClientName) == "" {
		return estimatedomain.Estimate{}, estimatedomain.ErrInvalidClient
	}
	issueDate, err := time.Parse("2006-01-02", req.IssueDate)
	if err != nil {
		return estimatedomain.Estimate{}, estimatedomain.ErrInvalidIssueDate
	}
	var expiryDate *time.Time
	if req.ExpiryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return estimatedomain.Estimate{}, estimatedomain.ErrInvalidExpiryDate
		}
		expiryDate = &parsed
	}
	for _, line := range req.LineItems {
		if line.Quantity < 0 || line.UnitPrice < 0 {
			return estimatedomain.Estimate{}, estimatedomain.ErrInvalidLineItem
		}
	}

	now := s.clock.Now()
	items := invoicedomain.BuildLineItems(req.LineItems, func() string {
		return numbering.UniqueID("li")
	})
	subtotal := finance.Subtotal(items)
	tax := finance.Tax(subtotal, req.TaxRate)
	total := finance.Total(subtotal, tax, req.Discount)

	est := estimatedomain.Estimate{
		ID:          numbering.UniqueID("est"),
		Status:      estimatedomain.StatusDraft,
		ClientID:    req.ClientID,
		ClientName:  strings.TrimSpace(req.ClientName),
		ClientEmail: strings.TrimSpace(req.ClientEmail),
		IssueDate:   issueDate,
		ExpiryDate:  expiryDate,
		LineItems:   items,
		Subtotal:    subtotal,
		TaxAmount:   tax,
		Discount:    req.Discount,
		Total:       total,
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
		est.Number = numbering.Next("EST", numbers, now.Year())
		return s.repo.Insert(ctx, tx, &est)
	})
	if err != nil {
		return estimatedomain.Estimate{}, err
	}

	s.log.Info("estimate created",
		zap.String("estimate_id", est.ID),
		zap.String("number", est.Number),
	)
	return est, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (estimatedomain.Estimate, error) {
	est, err := s.load(ctx, id)
	if err != nil {
		return estimatedomain.Estimate{}, err
	}
	return *est, nil
}

func (s *Service) List(ctx context.Context, filter estimatedomain.Filter) (estimatedomain.ListEstimateResponse, error) {
	estimates, err := s.repo.List(ctx, s.db, filter)
	if err != nil {
		return estimatedomain.ListEstimateResponse{}, err
	}
	return estimatedomain.ListEstimateResponse{Estimates: estimates}, nil
}

func (s *Service) Update(ctx context.Context, id string, req estimatedomain.UpdateEstimateRequest) (estimatedomain.Estimate, error) {
	est, err := s.load(ctx, id)
	if err != nil {
		return estimatedomain.Estimate{}, err
	}

	if req.ClientName != nil {
		est.ClientName = strings.TrimSpace(*req.ClientName)
	}
	if req.ClientEmail != nil {
		est.ClientEmail = strings.TrimSpace(*req.ClientEmail)
	}
	if req.ExpiryDate != nil {
		if *req.ExpiryDate == "" {
			est.ExpiryDate = nil
		} else {
			parsed, err := time.Parse("2006-01-02", *req.ExpiryDate)
			if err != nil {
				return estimatedomain.Estimate{}, estimatedomain.ErrInvalidExpiryDate
			}
			est.ExpiryDate = &parsed
		}
	}
	if req.Notes != nil {
		est.Notes = *req.Notes
	}
	if req.Terms != nil {
		est.Terms = *req.Terms
	}
	if req.Discount != nil {
		est.Discount = *req.Discount
	}
	if req.LineItems != nil {
		for _, line := range req.LineItems {
			if line.Quantity < 0 || line.UnitPrice < 0 {
				return estimatedomain.Estimate{}, estimatedomain.ErrInvalidLineItem
			}
		}
		est.LineItems = invoicedomain.BuildLineItems(req.LineItems, func() string {
			return numbering.UniqueID("li")
		})
	}

	taxRate := impliedTaxRate(*est)
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}
	est.Subtotal = finance.Subtotal(est.LineItems)
	est.TaxAmount = finance.Tax(est.Subtotal, taxRate)
	est.Total = finance.Total(est.Subtotal, est.TaxAmount, est.Discount)
	est.UpdatedAt = s.clock.Now()

	if err := s.repo.Replace(ctx, s.db, est); err != nil {
		return estimatedomain.Estimate{}, err
	}
	return *est, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	est, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, est.ID)
}

func (s *Service) Send(ctx context.Context, id string) (estimatedomain.Estimate, error) {
	return s.transition(ctx, id, estimatedomain.StatusSent)
}

func (s *Service) Accept(ctx context.Context, id string) (estimatedomain.Estimate, error) {
	return s.transition(ctx, id, estimatedomain.StatusAccepted)
}

func (s *Service) Reject(ctx context.Context, id string) (estimatedomain.Estimate, error) {
	return s.transition(ctx, id, estimatedomain.StatusRejected)
}

func (s *Service) MarkExpired(ctx context.Context, id string) (estimatedomain.Estimate, error) {
	return s.transition(ctx, id, estimatedomain.StatusExpired)
}

func (s *Service) transition(ctx context.Context, id string, next estimatedomain.Status) (estimatedomain.Estimate, error) {
	est, err := s.load(ctx, id)
	if err != nil {
		return estimatedomain.Estimate{}, err
	}

	updated, err := estimatedomain.Transition(*est, next, s.clock.Now())
	if err != nil {
		return estimatedomain.Estimate{}, err
	}
	if err := s.repo.Replace(ctx, s.db, &updated); err != nil {
		return estimatedomain.Estimate{}, err
	}

	s.log.Info("estimate status changed",
		zap.String("estimate_id", updated.ID),
		zap.String("status", string(next)),
	)
	s.notify(ctx, updated, next)
	return updated, nil
}

func (s *Service) notify(ctx context.Context, est estimatedomain.Estimate, next estimatedomain.Status) {
	if s.notifier == nil {
		return
	}

	var req notificationdomain.PushRequest
	switch next {
	case estimatedomain.StatusAccepted:
		req = notificationdomain.PushRequest{
			Type:    notificationdomain.TypeEstimateAccepted,
			Title:   "Estimate Accepted",
			Message: est.Number + " accepted by " + est.ClientName,
		}
	case estimatedomain.StatusRejected:
		req = notificationdomain.PushRequest{
			Type:    notificationdomain.TypeEstimateRejected,
			Title:   "Estimate Rejected",
			Message: est.Number + " rejected by " + est.ClientName,
		}
	default:
		return
	}
	req.RelatedID = est.ID

	if _, err := s.notifier.Push(ctx, req); err != nil {
		s.log.Warn("estimate notification failed", zap.Error(err))
	}
}

// impliedTaxRate recovers the rate from stored figures when an update does
// not supply one. Zero subtotal implies a zero rate.
func impliedTaxRate(est estimatedomain.Estimate) float64 {
	if est.Subtotal == 0 {
		return 0
	}
	return est.TaxAmount / est.Subtotal * 100
}

func (s *Service) load(ctx context.Context, id string) (*estimatedomain.Estimate, error) {
	if strings.TrimSpace(id) == "" {
		return nil, estimatedomain.ErrInvalidEstimateID
	}
	est, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, estimatedomain.ErrEstimateNotFound
	}
	return est, nil
}
