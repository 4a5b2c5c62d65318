package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/turf-booking/internal/utils"
)

func runWithMiddleware(t *testing.T, mw echo.MiddlewareFunc, setup func(c echo.Context)) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if setup != nil {
		setup(c)
	}
	h := mw(func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	require.NoError(t, h(c))
	return rec
}

func TestJWTAuthValidToken(t *testing.T) {
	const secret = "mw-secret"
	tok, err := utils.NewAccessToken(secret, 9, "admin", 15)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := JWTAuth(secret)(func(c echo.Context) error {
		require.Equal(t, float64(9), c.Get("user_id"))
		require.Equal(t, "admin", c.Get("role"))
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, h(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuthRejectsMissingAndBadTokens(t *testing.T) {
	rec := runWithMiddleware(t, JWTAuth("mw-secret"), nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = runWithMiddleware(t, JWTAuth("mw-secret"), func(c echo.Context) {
		c.Request().Header.Set("Authorization", "Bearer not-a-jwt")
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	other, err := utils.NewAccessToken("other-secret", 9, "user", 15)
	require.NoError(t, err)
	rec = runWithMiddleware(t, JWTAuth("mw-secret"), func(c echo.Context) {
		c.Request().Header.Set("Authorization", "Bearer "+other.Token)
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	admin := RequireRole("admin")

	rec := runWithMiddleware(t, admin, func(c echo.Context) { c.Set("role", "admin") })
	require.Equal(t, http.StatusOK, rec.Code)

	rec = runWithMiddleware(t, admin, func(c echo.Context) { c.Set("role", "user") })
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = runWithMiddleware(t, admin, nil) // no role at all
	require.Equal(t, http.StatusForbidden, rec.Code)
}
