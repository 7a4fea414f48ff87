package repository

import (
	"context"

	"github.com/smallbiznis/billfold/internal/notification/domain"
	"gorm.io/gorm"
)

type gormRepository struct{}

// Provide returns the gorm-backed notification repository.
func Provide() domain.Repository {
	return gormRepository{}
}

func (gormRepository) Insert(ctx context.Context, db *gorm.DB, n *domain.Notification) error {
	return db.WithContext(ctx).Create(n).Error
}

func (gormRepository) List(ctx context.Context, db *gorm.DB) ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := db.WithContext(ctx).
		Model(&domain.Notification{}).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (gormRepository) SetRead(ctx context.Context, db *gorm.DB, id string) (bool, error) {
	result := db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("id = ?", id).
		Update("read", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (gormRepository) SetAllRead(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("read = ?", false).
		Update("read", true).Error
}
