package domain

import (
	"context"
	"errors"
)

// CreateClientRequest is the input for a new client.
type CreateClientRequest struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Address string
	Notes   string
}

// UpdateClientRequest patches a client. Nil fields are untouched.
type UpdateClientRequest struct {
	Name    *string
	Email   *string
	Phone   *string
	Company *string
	Address *string
	Notes   *string
}

// ListClientResponse is the listing result.
type ListClientResponse struct {
	Clients []Client `json:"clients"`
}

// Service is the client application surface.
type Service interface {
	Create(ctx context.Context, req CreateClientRequest) (Client, error)
	GetByID(ctx context.Context, id string) (Client, error)
	List(ctx context.Context, search string) (ListClientResponse, error)
	Update(ctx context.Context, id string, req UpdateClientRequest) (Client, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidClientID = errors.New("invalid_client_id")
	ErrClientNotFound  = errors.New("client_not_found")
	ErrInvalidName     = errors.New("invalid_name")
	ErrInvalidEmail    = errors.New("invalid_email")
	ErrInvalidPhone    = errors.New("invalid_phone")
)
