//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"wedding-analytics/internal/domain/user"
	"wedding-analytics/internal/handler/middleware"
	"wedding-analytics/internal/pkg/config"
	"wedding-analytics/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubValidator struct {
	userID uuid.UUID
	role   user.Role
	err    error
}

func (s stubValidator) ValidateToken(string) (uuid.UUID, user.Role, error) {
	return s.userID, s.role, s.err
}

func newGatedRouter(v stubValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := middleware.NewAuthMiddleware(v)
	r.GET("/admin", auth.RequireAuth(), auth.RequireRoleAtLeast(user.RoleAdmin), func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		c.String(http.StatusOK, id.String())
	})
	return r
}

func TestRequireAdmin(t *testing.T) {
	adminID := uuid.New()

	tests := []struct {
		name       string
		validator  stubValidator
		header     string
		expectCode int
	}{
		{
			name:       "success: admin bearer token",
			validator:  stubValidator{userID: adminID, role: user.RoleAdmin},
			header:     "Bearer token",
			expectCode: http.StatusOK,
		},
		{
			name:       "error: missing header",
			validator:  stubValidator{userID: adminID, role: user.RoleAdmin},
			expectCode: http.StatusUnauthorized,
		},
		{
			name:       "error: non-bearer scheme",
			validator:  stubValidator{userID: adminID, role: user.RoleAdmin},
			header:     "Basic dXNlcjpwYXNz",
			expectCode: http.StatusUnauthorized,
		},
		{
			name:       "error: invalid token",
			validator:  stubValidator{err: errs.New("signature is invalid")},
			header:     "Bearer token",
			expectCode: http.StatusUnauthorized,
		},
		{
			name:       "error: vendor below admin",
			validator:  stubValidator{userID: uuid.New(), role: user.RoleVendor},
			header:     "Bearer token",
			expectCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newGatedRouter(tt.validator)
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectCode, w.Code)
			if tt.expectCode == http.StatusOK {
				assert.Equal(t, adminID.String(), w.Body.String())
			}
		})
	}
}

func TestNewCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: wildcard origin never allows credentials", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.NewCORSMiddleware(config.CORSConfig{
			AllowOrigins:     []string{"*"},
			AllowMethods:     []string{"GET", "OPTIONS"},
			AllowHeaders:     []string{"Origin"},
			AllowCredentials: true,
		}))
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "https://dashboard.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("success: listed origin is echoed", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.NewCORSMiddleware(config.CORSConfig{
			AllowOrigins: []string{"https://dashboard.example.com"},
			AllowMethods: []string{"GET", "OPTIONS"},
		}))
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "https://dashboard.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "https://dashboard.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
