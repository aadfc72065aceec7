//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"petcare-booking/internal/handler/middleware"
	"petcare-booking/internal/pkg/config"
	commonhttp "petcare-booking/tests/common/httptest"
)

func corsRouter(cfg config.CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.NewCORSMiddleware(cfg))
	router.GET("/bookings", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestCORSMiddleware(t *testing.T) {
	cfg := config.CORSConfig{
		AllowOrigins:     []string{"http://app.local"},
		AllowMethods:     []string{"GET", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router := corsRouter(cfg)

	t.Run("allowed origin gets CORS headers", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
		req.Header.Set("Origin", "http://app.local")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		commonhttp.AssertHeaders(t, w, map[string]string{
			"Access-Control-Allow-Origin":      "http://app.local",
			"Access-Control-Allow-Credentials": "true",
		})
	})

	t.Run("preflight reflects configured methods", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/bookings", nil)
		req.Header.Set("Origin", "http://app.local")
		req.Header.Set("Access-Control-Request-Method", "PATCH")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		commonhttp.AssertHeaders(t, w, map[string]string{
			"Access-Control-Allow-Methods": "GET,PATCH",
			"Access-Control-Max-Age":       "43200",
		})
	})

	t.Run("disallowed origin is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
		req.Header.Set("Origin", "http://evil.example")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
