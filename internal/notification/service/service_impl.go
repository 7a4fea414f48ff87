package service

import (
	"context"
	"strings"

	"github.com/smallbiznis/billfold/internal/clock"
	notificationdomain "github.com/smallbiznis/billfold/internal/notification/domain"
	"github.com/smallbiznis/billfold/internal/numbering"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var knownTypes = map[notificationdomain.Type]bool{
	notificationdomain.TypeInvoicePaid:      true,
	notificationdomain.TypeInvoiceViewed:    true,
	notificationdomain.TypeInvoiceOverdue:   true,
	notificationdomain.TypePaymentReceived:  true,
	notificationdomain.TypeEstimateAccepted: true,
	notificationdomain.TypeEstimateRejected: true,
	notificationdomain.TypeReminder:         true,
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock
	repo  notificationdomain.Repository
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
	Repo  notificationdomain.Repository
}

func NewService(p ServiceParam) notificationdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("notification.service"),
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Push(ctx context.Context, req notificationdomain.PushRequest) (notificationdomain.Notification, error) {
	if !knownTypes[req.Type] {
		return notificationdomain.Notification{}, notificationdomain.ErrInvalidType
	}

	n := notificationdomain.Notification{
		ID:        numbering.UniqueID("ntf"),
		Type:      req.Type,
		Title:     strings.TrimSpace(req.Title),
		Message:   strings.TrimSpace(req.Message),
		RelatedID: req.RelatedID,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.Insert(ctx, s.db, &n); err != nil {
		return notificationdomain.Notification{}, err
	}
	return n, nil
}

func (s *Service) List(ctx context.Context) (notificationdomain.ListNotificationResponse, error) {
	notifications, err := s.repo.List(ctx, s.db)
	if err != nil {
		return notificationdomain.ListNotificationResponse{}, err
	}

	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}
	return notificationdomain.ListNotificationResponse{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

func (s *Service) MarkRead(ctx context.Context, id string) error {
	found, err := s.repo.SetRead(ctx, s.db, id)
	if err != nil {
		return err
	}
	if !found {
		return notificationdomain.ErrNotificationNotFound
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context) error {
	return s.repo.SetAllRead(ctx, s.db)
}
