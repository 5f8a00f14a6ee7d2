package server

import (
	"net/http"
	"testing"

	"inkspot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUpdateUser(t *testing.T) {
	t.Parallel()

	s := setupTestServer(t)
	app := newTestApp(s)
	user := createTestUser(t, s, "me@example.com", "Secret123!")
	createTestUser(t, s, "taken@example.com", "Secret123!")
	token := tokenFor(t, s, user)

	t.Run("Sparse patch leaves other fields alone", func(t *testing.T) {
		resp, decoded := doJSON(t, app, http.MethodPut, "/api/user",
			map[string]string{"name": "New Name"}, token)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		u := decoded["user"].(map[string]any)
		assert.Equal(t, "New Name", u["name"])
		assert.Equal(t, "me@example.com", u["email"])
	})

	t.Run("Email taken by another user", func(t *testing.T) {
		resp, decoded := doJSON(t, app, http.MethodPut, "/api/user",
			map[string]string{"email": "taken@example.com"}, token)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Email already in use", decoded["error"])
	})

	t.Run("Invalid email", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPut, "/api/user",
			map[string]string{"email": "nope"}, token)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Password change is rehashed", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPut, "/api/user",
			map[string]string{"password": "NewSecret456!"}, token)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var stored models.User
		require.NoError(t, s.db.First(&stored, user.ID).Error)
		assert.NoError(t, bcrypt.CompareHashAndPassword(
			[]byte(stored.Password), []byte("NewSecret456!")))
	})
}

func TestUpdateUserWithWarmCacheKeepsPassword(t *testing.T) {
	s := setupTestServer(t)
	app := newTestApp(s)
	withTestRedis(t)

	user := createTestUser(t, s, "cached@example.com", "Secret123!")
	token := tokenFor(t, s, user)

	// Warm the user cache, then patch a single field. The record flowing
	// from the cache into Save must still carry the password hash.
	resp, _ := doJSON(t, app, http.MethodGet, "/api/user", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPut, "/api/user",
		map[string]string{"name": "New Name"}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stored models.User
	require.NoError(t, s.db.First(&stored, user.ID).Error)
	assert.Equal(t, "New Name", stored.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.Password), []byte("Secret123!")))

	resp, decoded := doJSON(t, app, http.MethodPost, "/api/login",
		map[string]string{"email": "cached@example.com", "password": "Secret123!"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, decoded["token"])
}

func TestUpdateUserFieldPresence(t *testing.T) {
	t.Parallel()

	s := setupTestServer(t)
	app := newTestApp(s)
	user := createTestUser(t, s, "presence@example.com", "Secret123!")
	token := tokenFor(t, s, user)

	t.Run("Omitted fields unchanged", func(t *testing.T) {
		resp, decoded := doJSON(t, app, http.MethodPut, "/api/user",
			map[string]string{}, token)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		u := decoded["user"].(map[string]any)
		assert.Equal(t, "Test User", u["name"])
	})

	t.Run("Empty name clears the field", func(t *testing.T) {
		resp, decoded := doJSON(t, app, http.MethodPut, "/api/user",
			map[string]string{"name": ""}, token)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		u := decoded["user"].(map[string]any)
		assert.Equal(t, "", u["name"])

		var stored models.User
		require.NoError(t, s.db.First(&stored, user.ID).Error)
		assert.Equal(t, "", stored.Name)
	})

	t.Run("Empty password rejected", func(t *testing.T) {
		resp, decoded := doJSON(t, app, http.MethodPut, "/api/user",
			map[string]string{"password": ""}, token)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Password cannot be empty", decoded["error"])
	})
}

func TestDeleteUser(t *testing.T) {
	t.Parallel()

	s := setupTestServer(t)
	app := newTestApp(s)
	user := createTestUser(t, s, "gone@example.com", "Secret123!")
	token := tokenFor(t, s, user)

	resp, decoded := doJSON(t, app, http.MethodDelete, "/api/user", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "User deleted", decoded["message"])

	var count int64
	s.db.Model(&models.User{}).Where("id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	// The token's subject no longer exists.
	resp, _ = doJSON(t, app, http.MethodGet, "/api/user", nil, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
