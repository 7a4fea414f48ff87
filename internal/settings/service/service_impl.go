package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/billfold/internal/clock"
	settingsdomain "github.com/smallbiznis/billfold/internal/settings/domain"
	"github.com/smallbiznis/billfold/internal/validate"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultCurrency    = "USD"
	defaultAccentColor = "#111827"
	defaultFontFamily  = "Space Grotesk"
)

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock
	repo  settingsdomain.Repository
	genID *snowflake.Node
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
	Repo  settingsdomain.Repository
	GenID *snowflake.Node
}

func NewService(p ServiceParam) settingsdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("settings.service"),
		clock: p.Clock,
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) Get(ctx context.Context) (settingsdomain.BusinessProfile, error) {
	profile, err := s.repo.Find(ctx, s.db)
	if err != nil {
		return settingsdomain.BusinessProfile{}, err
	}
	if profile != nil {
		return *profile, nil
	}

	now := s.clock.Now()
	created := settingsdomain.BusinessProfile{
		ID:          s.genID.Generate(),
		Currency:    defaultCurrency,
		AccentColor: defaultAccentColor,
		FontFamily:  defaultFontFamily,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(ctx, s.db, &created); err != nil {
		return settingsdomain.BusinessProfile{}, err
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, req settingsdomain.UpdateProfileRequest) (settingsdomain.BusinessProfile, error) {
	profile, err := s.Get(ctx)
	if err != nil {
		return settingsdomain.BusinessProfile{}, err
	}

	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email != "" && !validate.Email(email) {
			return settingsdomain.BusinessProfile{}, settingsdomain.ErrInvalidEmail
		}
		profile.Email = email
	}
	if req.Currency != nil {
		code := strings.ToUpper(strings.TrimSpace(*req.Currency))
		if len(code) != 3 {
			return settingsdomain.BusinessProfile{}, settingsdomain.ErrInvalidCurrency
		}
		profile.Currency = code
	}
	if req.TaxRate != nil {
		if *req.TaxRate < 0 || *req.TaxRate > 100 {
			return settingsdomain.BusinessProfile{}, settingsdomain.ErrInvalidTaxRate
		}
		profile.TaxRate = *req.TaxRate
	}
	if req.BusinessName != nil {
		profile.BusinessName = strings.TrimSpace(*req.BusinessName)
	}
	if req.OwnerName != nil {
		profile.OwnerName = strings.TrimSpace(*req.OwnerName)
	}
	if req.Phone != nil {
		profile.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		profile.Address = strings.TrimSpace(*req.Address)
	}
	if req.LogoURL != nil {
		profile.LogoURL = strings.TrimSpace(*req.LogoURL)
	}
	if req.AccentColor != nil {
		profile.AccentColor = strings.TrimSpace(*req.AccentColor)
	}
	if req.FontFamily != nil {
		profile.FontFamily = strings.TrimSpace(*req.FontFamily)
	}

	profile.UpdatedAt = s.clock.Now()
	if err := s.repo.Replace(ctx, s.db, &profile); err != nil {
		return settingsdomain.BusinessProfile{}, err
	}

	s.log.Info("business profile updated")
	return profile, nil
}
