package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-bed-booking/internal/models"
	"hospital-bed-booking/pkg/utils"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(issuer *utils.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(issuer), func(c *gin.Context) {
		c.String(http.StatusOK, "%v", c.GetUint(ContextUserID))
	})
	r.GET("/staff", AuthMiddleware(issuer), RequireRole(models.RoleHospital, models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	issuer := utils.NewTokenIssuer("secret", time.Hour, time.Hour)
	r := newAuthRouter(issuer)

	patientToken, _ := issuer.GenerateAccessToken(7, string(models.RolePatient))
	staffToken, _ := issuer.GenerateAccessToken(8, string(models.RoleHospital))

	tests := []struct {
		name   string
		path   string
		header string
		cookie string
		want   int
	}{
		{"no_credentials", "/me", "", "", http.StatusUnauthorized},
		{"bearer", "/me", "Bearer " + patientToken, "", http.StatusOK},
		{"session_cookie", "/me", "", patientToken, http.StatusOK},
		{"malformed_header", "/me", "Token " + patientToken, "", http.StatusUnauthorized},
		{"garbage_token", "/me", "Bearer abc.def.ghi", "", http.StatusUnauthorized},
		{"role_forbidden", "/staff", "Bearer " + patientToken, "", http.StatusForbidden},
		{"role_allowed", "/staff", "", staffToken, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d (%s)", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}
