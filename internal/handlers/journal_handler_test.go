package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stwalsh4118/cadastre/internal/middleware"
	"github.com/stwalsh4118/cadastre/internal/models"
)

// MockJournalRepository is a mock implementation of repository.JournalRepository for testing
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) EnsureSchema(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockJournalRepository) Append(ctx context.Context, entry models.JournalEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockJournalRepository) Recent(ctx context.Context, limit int) ([]models.JournalEntry, error) {
	args := m.Called(ctx, limit)
	entries, _ := args.Get(0).([]models.JournalEntry)
	return entries, args.Error(1)
}

func setupJournalTestRouter(repo *MockJournalRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	RegisterJournalRoutes(router.Group("/api/v1"), NewJournalHandler(repo))
	return router
}

func TestJournalRecent(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		repo := new(MockJournalRepository)
		router := setupJournalTestRouter(repo)
		entries := []models.JournalEntry{{Operation: "object_by_id", LookupKey: "1", Outcome: "ok"}}
		repo.On("Recent", mock.Anything, 0).Return(entries, nil)

		w := doGet(router, "/api/v1/journal")

		assert.Equal(t, http.StatusOK, w.Code)
		var response JournalResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 1, response.Count)
		assert.Equal(t, "object_by_id", response.Entries[0].Operation)
	})

	t.Run("limit out of range", func(t *testing.T) {
		repo := new(MockJournalRepository)
		router := setupJournalTestRouter(repo)

		w := doGet(router, "/api/v1/journal?limit=1000")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "Recent", mock.Anything, mock.Anything)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := new(MockJournalRepository)
		router := setupJournalTestRouter(repo)
		repo.On("Recent", mock.Anything, 5).Return(nil, errors.New("db down"))

		w := doGet(router, "/api/v1/journal?limit=5")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
