package auth

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/marketplace-service/internal/domain"
	apperrors "github.com/spec-kit/marketplace-service/pkg/util"
)

// newProtectedApp mounts the middleware in front of a handler that
// echoes the attached claims, with the same error envelope the real
// transport layer produces.
func newProtectedApp(tm *TokenManager) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}
		domainErr := apperrors.ToDomainError(err)
		return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{
			"success": false,
			"error":   fiber.Map{"code": domainErr.Code, "message": domainErr.Message},
		})
	})

	mw := NewAuthMiddleware(tm, nil)
	app.Get("/protected", mw.Handle, func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			return apperrors.NewAccessDenied("authentication required")
		}
		return c.JSON(fiber.Map{"id": claims.UserID, "phone": claims.Phone})
	})
	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func errorCode(t *testing.T, body map[string]any) string {
	t.Helper()
	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok)
	code, _ := errObj["code"].(string)
	return code
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	app := newProtectedApp(NewTokenManager("secret", 1))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "ACCESS_DENIED", errorCode(t, decodeBody(t, resp)))
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	app := newProtectedApp(NewTokenManager("secret", 1))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "ACCESS_DENIED", errorCode(t, decodeBody(t, resp)))
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	app := newProtectedApp(NewTokenManager("secret", 1))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, decodeBody(t, resp)))
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tm := NewTokenManager("secret", 1)
	app := newProtectedApp(tm)

	token, _, err := tm.GenerateToken(&domain.User{ID: "u-1", Phone: "9911", Name: "Alice", Role: domain.RoleUser})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "u-1", body["id"])
	assert.Equal(t, "9911", body["phone"])
}

func TestRequireRole(t *testing.T) {
	tm := NewTokenManager("secret", 1)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}
		domainErr := apperrors.ToDomainError(err)
		return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{
			"success": false,
			"error":   fiber.Map{"code": domainErr.Code, "message": domainErr.Message},
		})
	})
	mw := NewAuthMiddleware(tm, nil)
	app.Get("/admin", mw.Handle, RequireRole(domain.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	userToken, _, err := tm.GenerateToken(&domain.User{ID: "u-1", Role: domain.RoleUser})
	require.NoError(t, err)
	adminToken, _, err := tm.GenerateToken(&domain.User{ID: "a-1", Role: domain.RoleAdmin})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
