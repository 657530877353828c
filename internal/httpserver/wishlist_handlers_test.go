package httpserver

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"mixmodas-api/internal/models"
)

func TestWishlistRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodPost, "/api/wishlist", map[string]interface{}{
		"email":      "maria@example.com",
		"product_id": 7,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var addResp struct {
		Success bool                 `json:"success"`
		Entry   models.WishlistEntry `json:"entry"`
	}
	decodeBody(t, rec.Body, &addResp)
	require.True(t, addResp.Success)
	require.NotZero(t, addResp.Entry.ID)
	require.Equal(t, "maria@example.com", addResp.Entry.UserEmail)
	require.EqualValues(t, 7, addResp.Entry.ProductID)

	rec = env.doGet("/api/wishlist?email=maria@example.com")
	require.Equal(t, http.StatusOK, rec.Code)
	var items []models.WishlistEntry
	decodeBody(t, rec.Body, &items)
	require.Len(t, items, 1)

	rec = env.do(httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/wishlist/%d", addResp.Entry.ID), nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.doGet("/api/wishlist?email=maria@example.com")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec.Body, &items)
	require.Len(t, items, 0)
}

func TestWishlistAddMissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodPost, "/api/wishlist", map[string]interface{}{
		"product_id": 7,
	})
	requireError(t, rec, http.StatusBadRequest, "email and product_id are required")

	rec = env.doJSON(http.MethodPost, "/api/wishlist", map[string]interface{}{
		"email": "maria@example.com",
	})
	requireError(t, rec, http.StatusBadRequest, "email and product_id are required")
}

func TestWishlistRemoveNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(http.MethodDelete, "/api/wishlist/42", nil))
	requireError(t, rec, http.StatusNotFound, "wishlist entry not found")
}

func TestWishlistRemoveBadID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(http.MethodDelete, "/api/wishlist/abc", nil))
	requireError(t, rec, http.StatusBadRequest, "id must be a positive integer")
}

func TestWishlistStoreUnavailable(t *testing.T) {
	env := newDegradedEnv(t)

	rec := env.doGet("/api/wishlist?email=maria@example.com")
	requireError(t, rec, http.StatusInternalServerError, "database unavailable")
}
