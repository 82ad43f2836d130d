package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studyshare_backend/internal/config"
	"studyshare_backend/internal/model"
	"studyshare_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/protected", AuthMiddleware(cfg), func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})

	router.GET("/optional", TryAuthMiddleware(cfg), func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})

	router.GET("/admin-only", AuthMiddleware(cfg), RoleMiddleware(model.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router
}

func testToken(t *testing.T, secret string, role model.UserRole, ttl time.Duration) string {
	t.Helper()
	user := &model.User{
		UUIDBase: model.UUIDBase{ID: "user-1"},
		Email:    "user@example.edu",
		Role:     role,
	}
	token, err := util.GenerateJWT(user, secret, ttl)
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret"}}
	router := testRouter(cfg)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"malformed token", "Bearer garbage", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + testToken(t, "other-secret", model.RoleStudent, time.Hour), http.StatusUnauthorized},
		{"expired token", "Bearer " + testToken(t, "test-secret", model.RoleStudent, -time.Minute), http.StatusUnauthorized},
		{"valid token", "Bearer " + testToken(t, "test-secret", model.RoleStudent, time.Hour), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestTryAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret"}}
	router := testRouter(cfg)

	t.Run("anonymous passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/optional", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "anonymous")
	})

	t.Run("valid token resolves claims", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/optional", nil)
		req.Header.Set("Authorization", "Bearer "+testToken(t, "test-secret", model.RoleStudent, time.Hour))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "user-1")
	})

	t.Run("bad token treated as anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/optional", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "anonymous")
	})
}

func TestRoleMiddleware(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret"}}
	router := testRouter(cfg)

	t.Run("student forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+testToken(t, "test-secret", model.RoleStudent, time.Hour))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+testToken(t, "test-secret", model.RoleAdmin, time.Hour))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
