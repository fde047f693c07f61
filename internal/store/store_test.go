package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/mjtaylor123/sunlessCoding/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestStore(t *testing.T) *Store {
	// Named shared-cache DSN so every pooled connection sees the same
	// in-memory database.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}))

	return New(db)
}

func createTestUser(t *testing.T, s *Store) *models.User {
	user := &models.User{Username: "ada", Email: "ada@x.com"}
	require.NoError(t, s.CreateUser(context.Background(), user))
	require.NotZero(t, user.ID)
	return user
}

func TestStore_CreateAndGetUser(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	user := createTestUser(t, s)

	fetched, err := s.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada", fetched.Username)
	assert.Equal(t, "ada@x.com", fetched.Email)
	assert.Equal(t, 0, fetched.PostCount)
}

func TestStore_GetUser_NotFound(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.GetUser(context.Background(), 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ListUsers(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	for i := 0; i < 3; i++ {
		user := &models.User{
			Username: fmt.Sprintf("user%d", i),
			Email:    fmt.Sprintf("user%d@x.com", i),
		}
		require.NoError(t, s.CreateUser(ctx, user))
	}

	users, err = s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestStore_UpdateUser(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	user := createTestUser(t, s)

	require.NoError(t, s.UpdateUser(ctx, user.ID, "lovelace", "lovelace@x.com", "hunter2"))

	fetched, err := s.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "lovelace", fetched.Username)
	assert.Equal(t, "lovelace@x.com", fetched.Email)
	assert.Equal(t, "hunter2", fetched.Password)
}

func TestStore_IncrementPostCount(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	user := createTestUser(t, s)

	require.NoError(t, s.IncrementPostCount(ctx, user.ID))
	require.NoError(t, s.IncrementPostCount(ctx, user.ID))

	fetched, err := s.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, fetched.PostCount)
}

func TestStore_CreateAndListPosts(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	user := createTestUser(t, s)

	post := &models.Post{UserID: user.ID, Title: "hi", Content: "world"}
	require.NoError(t, s.CreatePost(ctx, post))
	require.NotZero(t, post.ID)

	other := &models.User{Username: "grace", Email: "grace@x.com"}
	require.NoError(t, s.CreateUser(ctx, other))
	require.NoError(t, s.CreatePost(ctx, &models.Post{UserID: other.ID, Title: "other", Content: "post"}))

	posts, err := s.ListPostsByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, post.ID, posts[0].ID)
	assert.Equal(t, "hi", posts[0].Title)
	assert.Equal(t, "world", posts[0].Content)
}

func TestStore_DeletePostsByUser(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	user := createTestUser(t, s)

	for i := 0; i < 2; i++ {
		require.NoError(t, s.CreatePost(ctx, &models.Post{UserID: user.ID, Title: "t", Content: "c"}))
	}

	require.NoError(t, s.DeletePostsByUser(ctx, user.ID))

	posts, err := s.ListPostsByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, posts)

	// Deleting again is a no-op, not an error
	require.NoError(t, s.DeletePostsByUser(ctx, user.ID))
}

func TestStore_Ping(t *testing.T) {
	s := setupTestStore(t)

	assert.NoError(t, s.Ping(context.Background()))
}
