package domain

import (
	"context"
	"errors"
)

// PushRequest describes a new feed entry.
type PushRequest struct {
	Type      Type
	Title     string
	Message   string
	RelatedID string
}

// ListNotificationResponse is the listing result.
type ListNotificationResponse struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
}

// Service maintains the in-app notification feed. Push failures are logged
// and swallowed inside the callers; a lost notification never fails the
// operation that produced it.
type Service interface {
	Push(ctx context.Context, req PushRequest) (Notification, error)
	List(ctx context.Context) (ListNotificationResponse, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
}

var (
	ErrInvalidType          = errors.New("invalid_type")
	ErrNotificationNotFound = errors.New("notification_not_found")
)
