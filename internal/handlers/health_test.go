package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockPinger is a mock dependency for readiness checks.
type MockPinger struct {
	pingErr error
	calls   int
}

func (m *MockPinger) Ping(ctx context.Context) error {
	m.calls++
	return m.pingErr
}

// setupTestRouter creates a test Gin router.
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestHealthHandler_Health(t *testing.T) {
	// Create handler with no checks (health check doesn't use them)
	handler := NewHealthHandler(nil, "test", "http://registry.test/api/online")

	router := setupTestRouter()
	router.GET("/health", handler.Health)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response HealthResponse
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)
	assert.Equal(t, HealthResponse{Status: "healthy"}, response)
}

func TestHealthHandler_Ready(t *testing.T) {
	tests := []struct {
		name           string
		checks         map[string]Pinger
		expectedStatus int
		expectedBody   ReadyResponse
	}{
		{
			name:           "ready without dependencies",
			checks:         nil,
			expectedStatus: http.StatusOK,
			expectedBody:   ReadyResponse{Status: "ready", Checks: map[string]string{}},
		},
		{
			name:           "ready when journal database is connected",
			checks:         map[string]Pinger{"journal": &MockPinger{}},
			expectedStatus: http.StatusOK,
			expectedBody:   ReadyResponse{Status: "ready", Checks: map[string]string{"journal": "connected"}},
		},
		{
			name: "not ready when any check fails",
			checks: map[string]Pinger{
				"journal": &MockPinger{pingErr: errors.New("connection refused")},
				"other":   &MockPinger{},
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody: ReadyResponse{
				Status: "not_ready",
				Checks: map[string]string{"journal": "disconnected", "other": "connected"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(tt.checks, "test", "")

			router := setupTestRouter()
			router.GET("/health/ready", handler.Ready)

			req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response ReadyResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
			assert.Equal(t, tt.expectedBody, response)
		})
	}
}

func TestHealthHandler_Info(t *testing.T) {
	tests := []struct {
		name        string
		env         string
		startTime   time.Time
		checkUptime bool
	}{
		{
			name:        "returns API info with development environment",
			env:         "development",
			startTime:   time.Now().Add(-2 * time.Hour),
			checkUptime: true,
		},
		{
			name:        "returns API info with production environment",
			env:         "production",
			startTime:   time.Now().Add(-24 * time.Hour),
			checkUptime: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(nil, tt.env, "http://registry.test/api/online")
			handler.startTime = tt.startTime

			router := setupTestRouter()
			router.GET("/api/v1/info", handler.Info)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/info", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			var response InfoResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
			assert.Equal(t, APIVersion, response.Version)
			assert.Equal(t, tt.env, response.Environment)
			assert.Equal(t, "http://registry.test/api/online", response.Registry)
			if tt.checkUptime {
				assert.NotEmpty(t, response.Uptime)
			}
		})
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{
			name:     "formats seconds only",
			duration: 45 * time.Second,
			expected: "0h 0m 45s",
		},
		{
			name:     "formats minutes and seconds",
			duration: 5*time.Minute + 30*time.Second,
			expected: "0h 5m 30s",
		},
		{
			name:     "formats hours, minutes and seconds",
			duration: 2*time.Hour + 15*time.Minute + 45*time.Second,
			expected: "2h 15m 45s",
		},
		{
			name:     "formats days, hours, minutes and seconds",
			duration: 3*24*time.Hour + 5*time.Hour + 30*time.Minute + 15*time.Second,
			expected: "3d 5h 30m 15s",
		},
		{
			name:     "formats zero duration",
			duration: 0,
			expected: "0h 0m 0s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatUptime(tt.duration))
		})
	}
}

func TestReadyResponse_JSON(t *testing.T) {
	response := ReadyResponse{
		Status: "ready",
		Checks: map[string]string{"journal": "connected"},
	}

	data, err := json.Marshal(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ready","checks":{"journal":"connected"}}`, string(data))
}

// Benchmark tests
func BenchmarkHealthHandler_Health(b *testing.B) {
	handler := NewHealthHandler(nil, "test", "")

	router := setupTestRouter()
	router.GET("/health", handler.Health)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}
}

// Example of how the handler would be used
func ExampleHealthHandler_Health() {
	handler := NewHealthHandler(nil, "development", "http://rosreestr.ru/api/online")

	router := gin.New()
	router.GET("/health", handler.Health)

	fmt.Println("Health endpoint registered at /health")
	// Output: Health endpoint registered at /health
}
