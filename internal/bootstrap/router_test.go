package bootstrap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HariharanSuthan-A/ideation-ai-launchpad/config"
	catalogdomain "github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/catalog/domain"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.Admin.APIKey = "test-admin-key"
	cfg.Payment.UPIID = "payee@bank"
	cfg.Payment.PayeeName = "Test Payee"
	cfg.Payment.Amount = "99"
	cfg.App.Version = "test"

	ideas := map[string][]catalogdomain.ProjectIdea{
		"cse": {{
			ID: "cse-001", Title: "Test Idea", Category: "web-development", Department: "cse",
			Difficulty: catalogdomain.DifficultyBeginner,
			DevelopmentGuide: "guide text", MvpPlan: "mvp text",
		}},
	}

	return BuildRouter(RouterDeps{
		ServiceName: "test",
		Config:      cfg,
		Ideas:       ideas,
		Redis:       client,
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestHealthEndpoint(t *testing.T) {
	r := setupTestRouter(t)
	w, body := doJSON(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "up", body["redis"])
}

func TestCatalogEndpoints(t *testing.T) {
	r := setupTestRouter(t)

	t.Run("list by department", func(t *testing.T) {
		w, body := doJSON(t, r, http.MethodGet, "/api/v1/ideas?department=cse", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, body["ideas"], 1)
	})

	t.Run("random falls back over unknown category", func(t *testing.T) {
		w, body := doJSON(t, r, http.MethodGet, "/api/v1/ideas/random?department=cse&category=nonexistent", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotNil(t, body["idea"])
	})

	t.Run("by id", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodGet, "/api/v1/ideas/cse-001", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w, _ = doJSON(t, r, http.MethodGet, "/api/v1/ideas/cse-404", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("department required", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodGet, "/api/v1/ideas", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestVisitorUpgradeFlow(t *testing.T) {
	r := setupTestRouter(t)
	admin := map[string]string{"X-Admin-Key": "test-admin-key"}

	// Start a session.
	w, body := doJSON(t, r, http.MethodPost, "/api/v1/sessions", `{"email":"s1@test.edu"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	sessionID, _ := body["session_id"].(string)
	require.NotEmpty(t, sessionID)
	session := map[string]string{"X-Session-Id": sessionID}

	// Three free guides pass, the fourth is denied.
	for i := 0; i < 3; i++ {
		w, _ = doJSON(t, r, http.MethodPost, "/api/v1/guides", `{"idea_id":"cse-001"}`, session)
		require.Equal(t, http.StatusOK, w.Code, "free guide %d", i+1)
	}
	w, body = doJSON(t, r, http.MethodPost, "/api/v1/guides", `{"idea_id":"cse-001"}`, session)
	require.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Equal(t, "upgrade_required", body["reason"])

	// MVP plan is pro-only while unpaid.
	w, body = doJSON(t, r, http.MethodPost, "/api/v1/mvp-plans", `{"idea_id":"cse-001"}`, session)
	require.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Equal(t, "pro_only", body["reason"])

	// Submit a payment claim.
	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/payments", `{"email":"s1@test.edu","transaction_id":"UPI123"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// Admin endpoints demand the key.
	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/admin/payments/s1@test.edu/verify", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Verify, then the live session may generate an MVP plan.
	w, body = doJSON(t, r, http.MethodPost, "/api/v1/admin/payments/s1@test.edu/verify", "", admin)
	require.Equal(t, http.StatusOK, w.Code)
	result := body["result"].(map[string]any)
	assert.Equal(t, true, result["session_patched"])

	w, body = doJSON(t, r, http.MethodPost, "/api/v1/mvp-plans", `{"idea_id":"cse-001"}`, session)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "mvp text", body["mvp_plan"])

	// Dashboard stats reflect the verified claim.
	w, body = doJSON(t, r, http.MethodGet, "/api/v1/admin/payments/stats", "", admin)
	require.Equal(t, http.StatusOK, w.Code)
	stats := body["stats"].(map[string]any)
	assert.Equal(t, float64(1), stats["verified"])
	assert.Equal(t, float64(0), stats["pending"])

	// Verifying an unknown email fails cleanly.
	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/admin/payments/ghost@test.edu/verify", "", admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaymentIntentEndpoint(t *testing.T) {
	r := setupTestRouter(t)
	w, body := doJSON(t, r, http.MethodGet, "/api/v1/payments/intent", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	intent := body["intent"].(map[string]any)
	assert.Equal(t, "payee@bank", intent["upi_id"])
	assert.Contains(t, intent["upi_link"], "upi://pay?")
}
