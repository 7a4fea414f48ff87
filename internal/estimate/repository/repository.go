package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/smallbiznis/billfold/internal/estimate/domain"
	"gorm.io/gorm"
)

type gormRepository struct{}

// Provide returns the gorm-backed estimate repository.
func Provide() domain.Repository {
	return gormRepository{}
}

func (gormRepository) Insert(ctx context.Context, db *gorm.DB, est *domain.Estimate) error {
	return db.WithContext(ctx).Create(est).Error
}

func (gormRepository) Replace(ctx context.Context, db *gorm.DB, est *domain.Estimate) error {
	return db.WithContext(ctx).Save(est).Error
}

func (gormRepository) Delete(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Delete(&domain.Estimate{}, "id = ?", id).Error
}

func (gormRepository) FindByID(ctx context.Context, db *gorm.DB, id string) (*domain.Estimate, error) {
	var est domain.Estimate
	err := db.WithContext(ctx).First(&est, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &est, nil
}

func (gormRepository) List(ctx context.Context, db *gorm.DB, filter domain.Filter) ([]domain.Estimate, error) {
	query := db.WithContext(ctx).Model(&domain.Estimate{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("client_name LIKE ? OR number LIKE ?", like, like)
	}

	var estimates []domain.Estimate
	if err := query.Order("created_at DESC").Find(&estimates).Error; err != nil {
		return nil, err
	}
	return estimates, nil
}

func (gormRepository) ListNumbers(ctx context.Context, db *gorm.DB) ([]string, error) {
	var numbers []string
	err := db.WithContext(ctx).
		Model(&domain.Estimate{}).
		Pluck("number", &numbers).Error
	if err != nil {
		return nil, err
	}
	return numbers, nil
}
