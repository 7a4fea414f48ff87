package repository

import (
	"context"
	"errors"

	"github.com/smallbiznis/billfold/internal/settings/domain"
	"gorm.io/gorm"
)

type gormRepository struct{}

// Provide returns the gorm-backed settings repository.
func Provide() domain.Repository {
	return gormRepository{}
}

func (gormRepository) Find(ctx context.Context, db *gorm.DB) (*domain.BusinessProfile, error) {
	var profile domain.BusinessProfile
	err := db.WithContext(ctx).Order("id ASC").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (gormRepository) Insert(ctx context.Context, db *gorm.DB, profile *domain.BusinessProfile) error {
	return db.WithContext(ctx).Create(profile).Error
}

func (gormRepository) Replace(ctx context.Context, db *gorm.DB, profile *domain.BusinessProfile) error {
	return db.WithContext(ctx).Save(profile).Error
}
