// Package store is the persistence gateway: every operation runs a single
// statement against the shared pooled connection and maps missing rows to
// ErrNotFound.
package store

import (
	"context"
	"errors"

	"github.com/mjtaylor123/sunlessCoding/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup by id yields no row.
var ErrNotFound = errors.New("record not found")

// UserStore covers all user-related persistence operations.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	UpdateUser(ctx context.Context, id uint, username, email, password string) error
	IncrementPostCount(ctx context.Context, userID uint) error
}

// PostStore covers all post-related persistence operations.
type PostStore interface {
	CreatePost(ctx context.Context, post *models.Post) error
	ListPostsByUser(ctx context.Context, userID uint) ([]models.Post, error)
	DeletePostsByUser(ctx context.Context, userID uint) error
}

// Store implements UserStore and PostStore over a *gorm.DB.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Ping verifies the underlying database connection is reachable.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()

	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}
