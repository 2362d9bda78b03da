package history_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/handlers"
	handler "github.com/soportesistemas80-alt/historial-clima-tiendas/internal/handlers/history"
	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/models"
	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/repository"
)

func setup(t *testing.T) (*gin.Engine, *repository.MemoryHistoryRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryHistoryRepository()
	h := handler.NewHandler(repo)

	router := gin.New()
	router.GET("/api/history", h.GetHistory)
	router.DELETE("/api/history", h.ClearHistory)
	return router, repo
}

func do(router *gin.Engine, method, sessionID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/history", nil)
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetHistory_RequiresSession(t *testing.T) {
	router, _ := setup(t)

	w := do(router, http.MethodGet, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetHistory(t *testing.T) {
	router, repo := setup(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "s1", models.HistoryEntry{Query: "Templo 5", Year: 2023}))
	require.NoError(t, repo.Append(ctx, "s1", models.HistoryEntry{Query: "Shopping 2", Year: 2024}))

	w := do(router, http.MethodGet, "s1")
	require.Equal(t, http.StatusOK, w.Code)

	var entries []models.HistoryEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "Shopping 2", entries[0].Query)
	assert.Equal(t, "Templo 5", entries[1].Query)
}

func TestGetHistory_SessionCookieFallback(t *testing.T) {
	router, repo := setup(t)

	require.NoError(t, repo.Append(context.Background(), "s1", models.HistoryEntry{Query: "Templo 5", Year: 2023}))

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	req.AddCookie(&http.Cookie{Name: handlers.SessionCookie, Value: "s1"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var entries []models.HistoryEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	assert.Len(t, entries, 1)
}

func TestClearHistory(t *testing.T) {
	router, repo := setup(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "s1", models.HistoryEntry{Query: "Templo 5", Year: 2023}))

	w := do(router, http.MethodDelete, "s1")
	assert.Equal(t, http.StatusNoContent, w.Code)

	entries, err := repo.List(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestClearHistory_RequiresSession(t *testing.T) {
	router, _ := setup(t)

	w := do(router, http.MethodDelete, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
