package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sweetshop/internal/middleware"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// =====================
// レスポンス確認用
// =====================

type mwErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type mwOKResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// =====================
// helper
// =====================

func mustMakeJWT(t *testing.T, secret string, claims jwt.MapClaims, signingMethod jwt.SigningMethod) string {
	t.Helper()

	if _, ok := claims["exp"]; !ok {
		claims["exp"] = 9999999999
	}
	s, err := jwt.NewWithClaims(signingMethod, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

// AuthJWTの後ろでctxの中身を返すだけのecho
func newProtectedEcho(extra ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	mws := append([]echo.MiddlewareFunc{middleware.AuthJWT(testSecret)}, extra...)
	e.GET("/protected", func(c echo.Context) error {
		id, _ := middleware.UserIDFromContext(c)
		role, _ := middleware.RoleFromContext(c)
		return c.JSON(http.StatusOK, mwOKResponse{UserID: id, Role: role})
	}, mws...)
	return e
}

func runRequest(t *testing.T, e *echo.Echo, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeMWError(t *testing.T, rec *httptest.ResponseRecorder) mwErrorResponse {
	t.Helper()
	var r mwErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&r))
	return r
}

func decodeMWOK(t *testing.T, rec *httptest.ResponseRecorder) mwOKResponse {
	t.Helper()
	var r mwOKResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&r))
	return r
}

// =====================
// AuthJWT
// =====================

func TestMiddleware_AuthJWT_Unauthorized(t *testing.T) {
	expired := mustMakeJWT(t, testSecret, jwt.MapClaims{"sub": "u1", "exp": 1}, jwt.SigningMethodHS256)
	badSig := mustMakeJWT(t, "wrong-secret", jwt.MapClaims{"sub": "u1"}, jwt.SigningMethodHS256)
	wrongAlg := mustMakeJWT(t, testSecret, jwt.MapClaims{"sub": "u1"}, jwt.SigningMethodHS512)
	noSub := mustMakeJWT(t, testSecret, jwt.MapClaims{"role": "admin"}, jwt.SigningMethodHS256)
	badRole := mustMakeJWT(t, testSecret, jwt.MapClaims{"sub": "u1", "role": 1}, jwt.SigningMethodHS256)

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"bad scheme", "Token abc.def.ghi"},
		{"empty token", "Bearer   "},
		{"garbage", "Bearer abc.def.ghi"},
		{"expired", "Bearer " + expired},
		{"bad signature", "Bearer " + badSig},
		{"wrong alg", "Bearer " + wrongAlg},
		{"missing sub", "Bearer " + noSub},
		{"role not string", "Bearer " + badRole},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := runRequest(t, newProtectedEcho(), tc.header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			body := decodeMWError(t, rec)
			assert.Equal(t, "unauthorized", body.Error)
			assert.Equal(t, "UNAUTHORIZED", body.Code)
		})
	}
}

// 正常：ctxに値が入る（roleは小文字にそろえる）
func TestMiddleware_AuthJWT_Success_SetsContext(t *testing.T) {
	raw := mustMakeJWT(t, testSecret, jwt.MapClaims{"sub": "user-123", "role": "ADMIN"}, jwt.SigningMethodHS256)

	rec := runRequest(t, newProtectedEcho(), "bearer "+raw)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeMWOK(t, rec)
	assert.Equal(t, "user-123", body.UserID)
	assert.Equal(t, middleware.RoleAdmin, body.Role)
}

// subがなければid、roleがなければuser
func TestMiddleware_AuthJWT_Success_Fallbacks(t *testing.T) {
	raw := mustMakeJWT(t, testSecret, jwt.MapClaims{"id": 42}, jwt.SigningMethodHS256)

	rec := runRequest(t, newProtectedEcho(), "Bearer "+raw)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeMWOK(t, rec)
	assert.Equal(t, "42", body.UserID)
	assert.Equal(t, middleware.RoleUser, body.Role)
}

// =====================
// AdminRoleGuard
// =====================

func TestMiddleware_AdminRoleGuard(t *testing.T) {
	user := mustMakeJWT(t, testSecret, jwt.MapClaims{"sub": "u1", "role": "user"}, jwt.SigningMethodHS256)
	admin := mustMakeJWT(t, testSecret, jwt.MapClaims{"sub": "a1", "role": "admin"}, jwt.SigningMethodHS256)

	e := newProtectedEcho(middleware.AdminRoleGuard())

	rec := runRequest(t, e, "Bearer "+user)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeMWError(t, rec)
	assert.Equal(t, "admin only", body.Error)
	assert.Equal(t, "FORBIDDEN", body.Code)

	rec = runRequest(t, e, "Bearer "+admin)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// AuthJWTを通っていなければ401
func TestMiddleware_AdminRoleGuard_WithoutAuth(t *testing.T) {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, middleware.AdminRoleGuard())

	rec := runRequest(t, e, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
