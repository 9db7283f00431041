package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/marketplace-service/internal/api/http/handlers"
	"github.com/spec-kit/marketplace-service/internal/auth"
	"github.com/spec-kit/marketplace-service/internal/config"
	"github.com/spec-kit/marketplace-service/internal/domain"
	"github.com/spec-kit/marketplace-service/internal/events"
	"github.com/spec-kit/marketplace-service/internal/observability"
	"github.com/spec-kit/marketplace-service/internal/persistence"
	"github.com/spec-kit/marketplace-service/internal/repository"
	"github.com/spec-kit/marketplace-service/internal/service"
	apperrors "github.com/spec-kit/marketplace-service/pkg/util"
)

type memoryUserRepository struct {
	byID map[string]*domain.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{byID: map[string]*domain.User{}}
}

func (r *memoryUserRepository) Create(_ context.Context, user *domain.User) error {
	for _, existing := range r.byID {
		if existing.Phone == user.Phone {
			return apperrors.NewConflict("phone number already registered", nil)
		}
	}
	if user.ID == "" {
		user.ID = repository.NewUserID()
	}
	clone := *user
	r.byID[user.ID] = &clone
	return nil
}

func (r *memoryUserRepository) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.byID[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *user
	r.byID[user.ID] = &clone
	return nil
}

func (r *memoryUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *memoryUserRepository) GetByPhone(_ context.Context, phone string) (*domain.User, error) {
	for _, user := range r.byID {
		if user.Phone == phone {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func newTestApp(t *testing.T) (*fiber.App, *observability.Metrics) {
	t.Helper()

	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:          "test-secret",
			AccessTokenTTLHour: 168,
			BcryptCost:         bcrypt.MinCost,
		},
	}

	logger := zap.NewNop()
	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	authService := service.NewAuthService(cfg, newMemoryUserRepository(), dispatcher)

	app := fiber.New()
	RegisterMiddlewares(app, logger, metrics, 0)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("test", "dev", &persistence.Postgres{}, &persistence.Redis{}),
		Users:          handlers.NewUsersHandler(authService),
		Shops:          handlers.NewShopsHandler(nil),
		Deliveries:     handlers.NewDeliveriesHandler(nil),
		Workers:        handlers.NewWorkersHandler(nil),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager(), logger),
	})
	return app, metrics
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload any) (*http.Response, map[string]any) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp, decoded
}

func dataField(t *testing.T, body map[string]any, key string) map[string]any {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "missing data envelope")
	field, ok := data[key].(map[string]any)
	require.True(t, ok, "missing data.%s", key)
	return field
}

func errCode(t *testing.T, body map[string]any) string {
	t.Helper()
	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok, "missing error envelope")
	code, _ := errObj["code"].(string)
	return code
}

func TestRegisterLoginProfileFlow(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/users", "", map[string]any{
		"name":     "A",
		"lastName": "B",
		"phone":    "9911",
		"password": "Abcdef1!",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	user := dataField(t, body, "user")
	assert.Equal(t, "user", user["role"])
	assert.Equal(t, "9911", user["phone"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "passwordHash")

	resp, body = doJSON(t, app, http.MethodPost, "/login", "", map[string]any{
		"phone":    "9911",
		"password": "Abcdef1!",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	authData := dataField(t, body, "auth")
	token, _ := authData["token"].(string)
	require.NotEmpty(t, token)

	resp, body = doJSON(t, app, http.MethodGet, "/users/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	me := dataField(t, body, "user")
	assert.Equal(t, "9911", me["phone"])

	resp, body = doJSON(t, app, http.MethodGet, "/users/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "ACCESS_DENIED", errCode(t, body))
}

func TestRegister_DuplicatePhone(t *testing.T) {
	app, _ := newTestApp(t)

	payload := map[string]any{
		"name":     "A",
		"lastName": "B",
		"phone":    "9911",
		"password": "Abcdef1!",
	}

	resp, _ := doJSON(t, app, http.MethodPost, "/users", "", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/users", "", payload)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "CONFLICT", errCode(t, body))
}

func TestRegister_WeakPassword(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/users", "", map[string]any{
		"name":     "A",
		"lastName": "B",
		"phone":    "9911",
		"password": "alllowercase1!",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "WEAK_PASSWORD", errCode(t, body))
}

func TestLogin_WrongPassword(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/users", "", map[string]any{
		"name":     "A",
		"lastName": "B",
		"phone":    "9911",
		"password": "Abcdef1!",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/login", "", map[string]any{
		"phone":    "9911",
		"password": "Wrongpw1!",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_CREDENTIALS", errCode(t, body))
}

func TestLogin_UnknownPhone(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/login", "", map[string]any{
		"phone":    "0000",
		"password": "Abcdef1!",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errCode(t, body))
}

func TestRequestMetrics_RecordMappedErrorStatus(t *testing.T) {
	app, metrics := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/users/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "ACCESS_DENIED", errCode(t, body))

	counts := metrics.RequestCounts()
	assert.Equal(t, int64(1), counts["/users/me|GET|401"])
	assert.NotContains(t, counts, "/users/me|GET|200")
}

func TestUpdateProfile(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/users", "", map[string]any{
		"name":     "A",
		"lastName": "B",
		"phone":    "9911",
		"password": "Abcdef1!",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/login", "", map[string]any{
		"phone":    "9911",
		"password": "Abcdef1!",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := dataField(t, body, "auth")["token"].(string)
	require.NotEmpty(t, token)

	resp, body = doJSON(t, app, http.MethodPut, "/users/me", token, map[string]any{
		"name":  "Anna",
		"email": "anna@example.com",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := dataField(t, body, "user")
	assert.Equal(t, "Anna", user["name"])
	assert.Equal(t, "B", user["lastName"])
	assert.Equal(t, "anna@example.com", user["email"])
}
