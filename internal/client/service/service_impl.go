package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	clientdomain "github.com/smallbiznis/billfold/internal/client/domain"
	"github.com/smallbiznis/billfold/internal/clock"
	"github.com/smallbiznis/billfold/internal/validate"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock
	genID *snowflake.Node
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
	GenID *snowflake.Node
}

func NewService(p ServiceParam) clientdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("client.service"),
		clock: p.Clock,
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req clientdomain.CreateClientRequest) (clientdomain.Client, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" {
		return clientdomain.Client{}, clientdomain.ErrInvalidName
	}
	if !validate.Email(email) {
		return clientdomain.Client{}, clientdomain.ErrInvalidEmail
	}
	if req.Phone != "" && !validate.Phone(req.Phone) {
		return clientdomain.Client{}, clientdomain.ErrInvalidPhone
	}

	now := s.clock.Now()
	client := clientdomain.Client{
		ID:        s.genID.Generate(),
		Name:      name,
		Email:     email,
		Phone:     strings.TrimSpace(req.Phone),
		Company:   strings.TrimSpace(req.Company),
		Address:   strings.TrimSpace(req.Address),
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.WithContext(ctx).Create(&client).Error; err != nil {
		return clientdomain.Client{}, err
	}

	s.log.Info("client created", zap.String("client_id", client.ID.String()))
	return client, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (clientdomain.Client, error) {
	client, err := s.load(ctx, id)
	if err != nil {
		return clientdomain.Client{}, err
	}
	return *client, nil
}

func (s *Service) List(ctx context.Context, search string) (clientdomain.ListClientResponse, error) {
	query := s.db.WithContext(ctx).Model(&clientdomain.Client{})
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR company LIKE ?", like, like, like)
	}

	var clients []clientdomain.Client
	if err := query.Order("name ASC").Find(&clients).Error; err != nil {
		return clientdomain.ListClientResponse{}, err
	}
	return clientdomain.ListClientResponse{Clients: clients}, nil
}

func (s *Service) Update(ctx context.Context, id string, req clientdomain.UpdateClientRequest) (clientdomain.Client, error) {
	client, err := s.load(ctx, id)
	if err != nil {
		return clientdomain.Client{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return clientdomain.Client{}, clientdomain.ErrInvalidName
		}
		client.Name = name
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if !validate.Email(email) {
			return clientdomain.Client{}, clientdomain.ErrInvalidEmail
		}
		client.Email = email
	}
	if req.Phone != nil {
		if *req.Phone != "" && !validate.Phone(*req.Phone) {
			return clientdomain.Client{}, clientdomain.ErrInvalidPhone
		}
		client.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Company != nil {
		client.Company = strings.TrimSpace(*req.Company)
	}
	if req.Address != nil {
		client.Address = strings.TrimSpace(*req.Address)
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}
	client.UpdatedAt = s.clock.Now()

	if err := s.db.WithContext(ctx).Save(client).Error; err != nil {
		return clientdomain.Client{}, err
	}
	return *client, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	client, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&clientdomain.Client{}, "id = ?", client.ID).Error
}

func (s *Service) load(ctx context.Context, id string) (*clientdomain.Client, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil || parsed == 0 {
		return nil, clientdomain.ErrInvalidClientID
	}

	var client clientdomain.Client
	err = s.db.WithContext(ctx).First(&client, "id = ?", parsed).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, clientdomain.ErrClientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}
