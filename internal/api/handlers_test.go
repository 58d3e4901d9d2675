package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sipwell/hydrokit-backend/internal/api"
	"github.com/sipwell/hydrokit-backend/internal/router"
	"github.com/sipwell/hydrokit-backend/internal/service"
	"github.com/sipwell/hydrokit-backend/internal/testhelpers"
)

type testApp struct {
	router *gin.Engine
	db     *gorm.DB
	auth   *service.AuthService
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)

	authService := service.NewAuthService(db, "test-secret")
	profileService := service.NewProfileService(db)
	eventService := service.NewEventService(db)
	hydrationService := service.NewHydrationService(profileService, eventService, nil)
	kitService := service.NewKitService(db)
	require.NoError(t, kitService.SeedCatalog(context.Background()))
	orderService := service.NewOrderService(db, kitService)
	coachService := service.NewCoachService("", "", nil)

	h := router.Handlers{
		Auth:      api.NewAuthHandler(authService),
		Profile:   api.NewProfileHandler(profileService),
		Events:    api.NewEventHandler(eventService, hydrationService),
		Hydration: api.NewHydrationHandler(hydrationService, coachService),
		Kits:      api.NewKitHandler(kitService, nil),
		Orders:    api.NewOrderHandler(orderService),
	}

	return &testApp{
		router: router.SetupRouter(h, authService, nil, nil),
		db:     db,
		auth:   authService,
	}
}

func (app *testApp) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

// registerUser creates an account through the API and returns its token.
func (app *testApp) registerUser(t *testing.T, email, username string) string {
	t.Helper()
	w := app.request(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":      "Test User",
		"email":     email,
		"password":  "password123",
		"username":  username,
		"weight_kg": 70,
		"sex":       "male",
		"body_type": "athletic",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])
	return resp["token"]
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealthEndpoint(t *testing.T) {
	app := setupTestApp(t)

	w := app.request(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterAndLogin(t *testing.T) {
	app := setupTestApp(t)

	app.registerUser(t, "alice@example.com", "alice")

	// duplicate email conflicts
	w := app.request(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name": "Alice Again", "email": "alice@example.com",
		"password": "password123", "username": "alice2",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = app.request(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "alice@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = app.request(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "alice@example.com", "password": "wrongpass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	app := setupTestApp(t)

	// password below minimum length
	w := app.request(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name": "Bob", "email": "bob@example.com",
		"password": "short", "username": "bob",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileRequiresAuth(t *testing.T) {
	app := setupTestApp(t)

	w := app.request(t, http.MethodGet, "/api/v1/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.request(t, http.MethodGet, "/api/v1/profile", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileRoundTrip(t *testing.T) {
	app := setupTestApp(t)
	token := app.registerUser(t, "alice@example.com", "alice")

	w := app.request(t, http.MethodGet, "/api/v1/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile := decodeJSON(t, w)
	assert.Equal(t, 70.0, profile["weight_kg"])
	assert.Equal(t, "athletic", profile["body_type"])

	w = app.request(t, http.MethodPut, "/api/v1/profile", token, gin.H{
		"weight_kg": 75.5,
	})
	require.Equal(t, http.StatusOK, w.Code)
	profile = decodeJSON(t, w)
	assert.Equal(t, 75.5, profile["weight_kg"])
}

func TestLogEventAndGap(t *testing.T) {
	app := setupTestApp(t)
	token := app.registerUser(t, "alice@example.com", "alice")

	w := app.request(t, http.MethodPost, "/api/v1/events", token, gin.H{
		"type": "water", "amount": 500,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = app.request(t, http.MethodGet, "/api/v1/events/today", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var events []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	assert.Len(t, events, 1)

	w = app.request(t, http.MethodGet, "/api/v1/hydration/gap", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	gap := decodeJSON(t, w)
	// 70kg male athletic on a desk day with 500ml logged
	assert.Equal(t, 59.5, gap["lean_body_mass"])
	assert.Equal(t, 1285.0, gap["hydration_gap_ml"])
	assert.Equal(t, "severe", gap["context"])
}

func TestLogEventHalfWeightPair(t *testing.T) {
	app := setupTestApp(t)
	token := app.registerUser(t, "alice@example.com", "alice")

	w := app.request(t, http.MethodPost, "/api/v1/events", token, gin.H{
		"type": "workout", "activity": "run", "pre_weight": 70.5,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommendationEndpoints(t *testing.T) {
	app := setupTestApp(t)
	token := app.registerUser(t, "alice@example.com", "alice")

	w := app.request(t, http.MethodGet, "/api/v1/hydration/recommendation?activity=hiit", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	rec := decodeJSON(t, w)
	assert.Equal(t, "post_sweat_cool", rec["archetype"])

	w = app.request(t, http.MethodGet, "/api/v1/hydration/recommendation/best", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	best := decodeJSON(t, w)
	assert.Contains(t, best, "best")
	assert.Contains(t, best, "scores")
}

func TestRecommendationWithoutProfile(t *testing.T) {
	app := setupTestApp(t)

	// token for a user with no profile row
	token, err := app.auth.GenerateToken(uuid.New(), "ghost", false)
	require.NoError(t, err)

	w := app.request(t, http.MethodGet, "/api/v1/hydration/gap", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCoachMessageFallback(t *testing.T) {
	app := setupTestApp(t)
	token := app.registerUser(t, "alice@example.com", "alice")

	w := app.request(t, http.MethodPost, "/api/v1/coach/message", token, gin.H{
		"question": "Should I drink more before my run?",
	})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeJSON(t, w)
	assert.NotEmpty(t, resp["message"])
}

func TestKitCatalogPublic(t *testing.T) {
	app := setupTestApp(t)

	w := app.request(t, http.MethodGet, "/api/v1/kits", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var kits []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &kits))
	assert.Len(t, kits, 11)

	w = app.request(t, http.MethodGet, "/api/v1/kits/Sky%20Salt", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	kit := decodeJSON(t, w)
	assert.Equal(t, "Sky Salt", kit["name"])

	w = app.request(t, http.MethodGet, "/api/v1/kits/Nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.request(t, http.MethodGet, "/api/v1/kits/Sky%20Salt/similar?limit=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &kits))
	assert.Len(t, kits, 2)
}

func TestOrderFlow(t *testing.T) {
	app := setupTestApp(t)
	token := app.registerUser(t, "alice@example.com", "alice")

	w := app.request(t, http.MethodPost, "/api/v1/orders", token, gin.H{
		"kit_name": "White Ember", "archetype": "post_sweat_cool",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decodeJSON(t, w)
	assert.Equal(t, "pending", order["status"])

	w = app.request(t, http.MethodPost, "/api/v1/orders", token, gin.H{
		"kit_name": "Nope",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.request(t, http.MethodGet, "/api/v1/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Len(t, orders, 1)
}

func TestStaffRoutesRequireStaff(t *testing.T) {
	app := setupTestApp(t)
	token := app.registerUser(t, "alice@example.com", "alice")

	w := app.request(t, http.MethodGet, "/api/v1/staff/orders", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestStaffOrderStatusFlow(t *testing.T) {
	app := setupTestApp(t)
	token := app.registerUser(t, "alice@example.com", "alice")

	w := app.request(t, http.MethodPost, "/api/v1/orders", token, gin.H{
		"kit_name": "Iron Drift",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := decodeJSON(t, w)["id"].(string)

	staffToken, err := app.auth.GenerateToken(uuid.New(), "staffer", true)
	require.NoError(t, err)

	w = app.request(t, http.MethodGet, "/api/v1/staff/orders?status=pending", staffToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Len(t, orders, 1)

	path := fmt.Sprintf("/api/v1/staff/orders/%s/status", orderID)
	w = app.request(t, http.MethodPut, path, staffToken, gin.H{"status": "in_progress"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// backwards transition is rejected
	w = app.request(t, http.MethodPut, path, staffToken, gin.H{"status": "pending"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestStaffArtworkUploadUnconfigured(t *testing.T) {
	app := setupTestApp(t)

	staffToken, err := app.auth.GenerateToken(uuid.New(), "staffer", true)
	require.NoError(t, err)

	// no S3 configured in tests: upload degrades to 503
	w := app.request(t, http.MethodPost, "/api/v1/staff/kits/Sky%20Salt/artwork", staffToken, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
