package store

import (
	"context"
	"fmt"

	"github.com/mjtaylor123/sunlessCoding/internal/models"
)

func (s *Store) CreatePost(ctx context.Context, post *models.Post) error {
	if err := s.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (s *Store) ListPostsByUser(ctx context.Context, userID uint) ([]models.Post, error) {
	posts := make([]models.Post, 0)

	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts for user %d: %w", userID, err)
	}

	return posts, nil
}

func (s *Store) DeletePostsByUser(ctx context.Context, userID uint) error {
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Post{}).Error

	if err != nil {
		return fmt.Errorf("failed to delete posts for user %d: %w", userID, err)
	}

	return nil
}
