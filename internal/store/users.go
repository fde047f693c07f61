package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/mjtaylor123/sunlessCoding/internal/models"
	"gorm.io/gorm"
)

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)

	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User

	err := s.db.WithContext(ctx).First(&user, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}

	return &user, nil
}

func (s *Store) UpdateUser(ctx context.Context, id uint, username, email, password string) error {
	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("user_id = ?", id).
		Updates(map[string]interface{}{
			"username": username,
			"email":    email,
			"password": password,
		}).Error

	if err != nil {
		return fmt.Errorf("failed to update user %d: %w", id, err)
	}

	return nil
}

func (s *Store) IncrementPostCount(ctx context.Context, userID uint) error {
	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("user_id = ?", userID).
		UpdateColumn("post_count", gorm.Expr("post_count + ?", 1)).Error

	if err != nil {
		return fmt.Errorf("failed to increment post count for user %d: %w", userID, err)
	}

	return nil
}
