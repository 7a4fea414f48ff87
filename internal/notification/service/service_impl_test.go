package service

import (
	"context"
	"testing"
	"time"

	"github.com/smallbiznis/billfold/internal/clock"
	notificationdomain "github.com/smallbiznis/billfold/internal/notification/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

type stubRepository struct {
	rows []notificationdomain.Notification
}

func (r *stubRepository) Insert(ctx context.Context, db *gorm.DB, n *notificationdomain.Notification) error {
	r.rows = append([]notificationdomain.Notification{*n}, r.rows...)
	return nil
}

func (r *stubRepository) List(ctx context.Context, db *gorm.DB) ([]notificationdomain.Notification, error) {
	return r.rows, nil
}

func (r *stubRepository) SetRead(ctx context.Context, db *gorm.DB, id string) (bool, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows[i].Read = true
			return true, nil
		}
	}
	return false, nil
}

func (r *stubRepository) SetAllRead(ctx context.Context, db *gorm.DB) error {
	for i := range r.rows {
		r.rows[i].Read = true
	}
	return nil
}

func newTestService(repo *stubRepository) notificationdomain.Service {
	return &Service{
		log:   zap.NewNop(),
		clock: clock.At(testNow),
		repo:  repo,
	}
}

func TestPushStampsIDAndTime(t *testing.T) {
	repo := &stubRepository{}
	svc := newTestService(repo)

	n, err := svc.Push(context.Background(), notificationdomain.PushRequest{
		Type:      notificationdomain.TypePaymentReceived,
		Title:     "  Payment Received  ",
		Message:   "$100.00 from Acme Corporation",
		RelatedID: "inv-001",
	})
	if err != nil {
		t.Fatalf("Push: %v", err)
	}
	if n.ID == "" {
		t.Error("pushed notification has no ID")
	}
	if !n.CreatedAt.Equal(testNow) {
		t.Errorf("CreatedAt = %v, want %v", n.CreatedAt, testNow)
	}
	if n.Title != "Payment Received" {
		t.Errorf("Title = %q, want trimmed title", n.Title)
	}
	if n.Read {
		t.Error("new notification should start unread")
	}
}

func TestPushRejectsUnknownType(t *testing.T) {
	svc := newTestService(&stubRepository{})

	_, err := svc.Push(context.Background(), notificationdomain.PushRequest{Type: "carrier_pigeon"})
	if err != notificationdomain.ErrInvalidType {
		t.Fatalf("err = %v, want ErrInvalidType", err)
	}
}

func TestListCountsUnread(t *testing.T) {
	repo := &stubRepository{rows: []notificationdomain.Notification{
		{ID: "ntf-1", Read: true},
		{ID: "ntf-2"},
		{ID: "ntf-3"},
	}}
	svc := newTestService(repo)

	resp, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if resp.UnreadCount != 2 {
		t.Errorf("UnreadCount = %d, want 2", resp.UnreadCount)
	}
	if len(resp.Notifications) != 3 {
		t.Errorf("len(Notifications) = %d, want 3", len(resp.Notifications))
	}
}

func TestMarkReadUnknownID(t *testing.T) {
	svc := newTestService(&stubRepository{})

	err := svc.MarkRead(context.Background(), "ntf-missing")
	if err != notificationdomain.ErrNotificationNotFound {
		t.Fatalf("err = %v, want ErrNotificationNotFound", err)
	}
}

func TestMarkAllRead(t *testing.T) {
	repo := &stubRepository{rows: []notificationdomain.Notification{
		{ID: "ntf-1"},
		{ID: "ntf-2"},
	}}
	svc := newTestService(repo)

	if err := svc.MarkAllRead(context.Background()); err != nil {
		t.Fatalf("MarkAllRead: %v", err)
	}
	resp, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if resp.UnreadCount != 0 {
		t.Errorf("UnreadCount = %d, want 0", resp.UnreadCount)
	}
}
