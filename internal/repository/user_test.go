package repository

import (
	"context"
	"testing"

	"inkspot/internal/cache"
	"inkspot/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryCRUD(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	created := mustCreateUser(t, db, "crud@example.com")

	t.Run("GetByID", func(t *testing.T) {
		user, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "crud@example.com", user.Email)
	})

	t.Run("GetByID not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		require.Error(t, err)
		assert.Equal(t, 404, models.StatusForError(err))
	})

	t.Run("GetByEmail miss returns nil without error", func(t *testing.T) {
		user, err := repo.GetByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("GetByUsername", func(t *testing.T) {
		user, err := repo.GetByUsername(ctx, created.Username)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, created.ID, user.ID)
	})

	t.Run("Duplicate email rejected", func(t *testing.T) {
		err := repo.Create(ctx, &models.User{
			Email:    "crud@example.com",
			Password: "hashed",
		})
		require.Error(t, err)
		assert.Equal(t, 400, models.StatusForError(err))
	})

	t.Run("Duplicate username rejected by constraint", func(t *testing.T) {
		err := repo.Create(ctx, &models.User{
			Email:    "rival@example.com",
			Username: created.Username,
			Password: "hashed",
		})
		require.Error(t, err)
		assert.Equal(t, 400, models.StatusForError(err))
	})

	t.Run("Empty usernames do not collide", func(t *testing.T) {
		for _, email := range []string{"blank1@example.com", "blank2@example.com"} {
			require.NoError(t, repo.Create(ctx, &models.User{
				Email:    email,
				Password: "hashed",
			}))
		}
	})

	t.Run("Update", func(t *testing.T) {
		created.Name = "Renamed"
		require.NoError(t, repo.Update(ctx, created))

		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, created.ID))
		_, err := repo.GetByID(ctx, created.ID)
		assert.Error(t, err)
	})
}

func TestUserRepositoryCachedGetKeepsPassword(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })

	created := mustCreateUser(t, db, "hot@example.com")

	// First read warms the cache, second is served from it. Both must
	// carry the stored password hash despite it being hidden from API JSON.
	first, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "hashed", first.Password)

	require.True(t, mr.Exists(cache.UserKey(created.ID)))

	second, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "hashed", second.Password)
	assert.Equal(t, created.Email, second.Email)
}

func TestUserRepositoryDefaults(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Email: "defaults@example.com", Password: "hashed"}
	require.NoError(t, repo.Create(ctx, user))

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, models.UserTypeClient, stored.UserType)
	assert.True(t, stored.NotificationEnabled)
}
