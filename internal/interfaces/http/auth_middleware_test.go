package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glanzwerk/rechnung-api/internal/domain/entity"
	apphttp "github.com/glanzwerk/rechnung-api/internal/interfaces/http"
	pkgjwt "github.com/glanzwerk/rechnung-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "rechnung-api-test"
	testExpMin    = 60
)

// buildTestApp builds a minimal Fiber app with a protected route and an
// admin-only route behind AuthMiddleware.
func buildTestApp() *fiber.App {
	app := fiber.New()
	protected := app.Group("/", apphttp.AuthMiddleware(testJWTSecret))
	protected.Get("/protected", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})
	protected.Get("/admin", apphttp.RequireRole(entity.RoleAdmin), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_ValidTokenPopulatesLocals(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, "/protected", tokenForRole(t, entity.RoleStaff))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var got map[string]string
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, testUserID, got["user_id"])
	assert.Equal(t, entity.RoleStaff, got["role"])
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	app := buildTestApp()

	for _, header := range []string{"Token abc", "Bearer", "Bearer "} {
		resp := doRequest(t, app, "/protected", header)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	app := buildTestApp()

	tok, err := pkgjwt.Generate("another-secret", testUserID, entity.RoleStaff, testIssuer, testExpMin)
	require.NoError(t, err)
	resp := doRequest(t, app, "/protected", "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	app := buildTestApp()

	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.RoleStaff, testIssuer, -1)
	require.NoError(t, err)
	resp := doRequest(t, app, "/protected", "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole_StaffBlockedFromAdminRoute(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, "/admin", tokenForRole(t, entity.RoleStaff))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_AdminAllowed(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, "/admin", tokenForRole(t, entity.RoleAdmin))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
