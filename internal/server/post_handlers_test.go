package server

import (
	"fmt"
	"net/http"
	"testing"

	"inkspot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost(t *testing.T) {
	t.Parallel()

	s := setupTestServer(t)
	app := newTestApp(s)
	user := createTestUser(t, s, "poster@example.com", "Secret123!")
	token := tokenFor(t, s, user)

	t.Run("Unauthenticated", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/posts",
			map[string]string{"image": "img.jpg", "description": "new ink"}, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Missing description", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/posts",
			map[string]string{"image": "img.jpg"}, token)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Success", func(t *testing.T) {
		resp, post := doJSON(t, app, http.MethodPost, "/api/posts",
			map[string]string{"image": "img.jpg", "description": "new ink"}, token)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		assert.Equal(t, float64(user.ID), post["user_id"])
		assert.Equal(t, float64(0), post["likes"])
	})
}

func TestPostOwnership(t *testing.T) {
	t.Parallel()

	s := setupTestServer(t)
	app := newTestApp(s)
	owner := createTestUser(t, s, "owner@example.com", "Secret123!")
	other := createTestUser(t, s, "other@example.com", "Secret123!")

	post := &models.Post{Image: "a.jpg", Description: "mine", UserID: owner.ID}
	require.NoError(t, s.db.Create(post).Error)

	update := map[string]string{"image": "b.jpg", "description": "edited"}

	t.Run("Non-owner update forbidden", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPut,
			fmt.Sprintf("/api/posts/%d", post.ID), update, tokenFor(t, s, other))
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Non-owner delete forbidden", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodDelete,
			fmt.Sprintf("/api/posts/%d", post.ID), nil, tokenFor(t, s, other))
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Owner update succeeds", func(t *testing.T) {
		resp, updated := doJSON(t, app, http.MethodPut,
			fmt.Sprintf("/api/posts/%d", post.ID), update, tokenFor(t, s, owner))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "edited", updated["description"])
	})

	t.Run("Owner delete succeeds", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodDelete,
			fmt.Sprintf("/api/posts/%d", post.ID), nil, tokenFor(t, s, owner))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var count int64
		s.db.Model(&models.Post{}).Where("id = ?", post.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("Update missing post", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPut, "/api/posts/9999", update, tokenFor(t, s, owner))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Invalid post id", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/posts/abc", nil, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetTopLikedPosts(t *testing.T) {
	t.Parallel()

	s := setupTestServer(t)
	app := newTestApp(s)
	user := createTestUser(t, s, "top@example.com", "Secret123!")

	for _, likes := range []int{5, 3, 9, 1, 7, 2} {
		post := &models.Post{
			Image:       "img.jpg",
			Description: fmt.Sprintf("post with %d likes", likes),
			Likes:       likes,
			UserID:      user.ID,
		}
		require.NoError(t, s.db.Create(post).Error)
	}

	resp, decoded := doJSON(t, app, http.MethodGet, "/api/posts/top-likes", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := decoded["list"].([]any)
	require.Len(t, list, 5)

	want := []float64{9, 7, 5, 3, 2}
	for i, item := range list {
		post := item.(map[string]any)
		assert.Equal(t, want[i], post["likes"])
	}
}

func TestGetPosts(t *testing.T) {
	t.Parallel()

	s := setupTestServer(t)
	app := newTestApp(s)

	t.Run("Empty list", func(t *testing.T) {
		resp, decoded := doJSON(t, app, http.MethodGet, "/api/posts", nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, decoded["list"])
	})

	user := createTestUser(t, s, "lister@example.com", "Secret123!")
	for i := 0; i < 3; i++ {
		require.NoError(t, s.db.Create(&models.Post{
			Image: "img.jpg", Description: fmt.Sprintf("post %d", i), UserID: user.ID,
		}).Error)
	}

	t.Run("Lists all", func(t *testing.T) {
		resp, decoded := doJSON(t, app, http.MethodGet, "/api/posts", nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, decoded["list"], 3)
	})
}
