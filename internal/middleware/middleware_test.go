package middleware

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func readBodyHandler(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": "Entity too large",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": fmt.Sprintf("Failed to read body: %s", err.Error()),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "bytes": len(body)})
}

func sendBody(engine *gin.Engine, endpoint string, size int) *httptest.ResponseRecorder {
	body := bytes.Repeat([]byte("a"), size)
	req, _ := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestSizeLimit_UnderLimit(t *testing.T) {
	engine := gin.New()
	engine.POST("/submit", SizeLimit(1<<20), readBodyHandler)

	rec := sendBody(engine, "/submit", 512)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestSizeLimit_AtLimit(t *testing.T) {
	engine := gin.New()
	engine.POST("/submit", SizeLimit(1<<10), readBodyHandler)

	rec := sendBody(engine, "/submit", 1<<10)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestSizeLimit_ExceedLimit(t *testing.T) {
	engine := gin.New()
	engine.POST("/submit", SizeLimit(1<<10), readBodyHandler)

	rec := sendBody(engine, "/submit", (1<<10)+1)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "Entity too large")
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	engine := gin.New()
	engine.GET("/ping", RateLimiterMiddleware(100), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	engine := gin.New()
	engine.GET("/ping", RateLimiterMiddleware(2), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	var last *httptest.ResponseRecorder
	for i := 0; i < 5; i++ {
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		last = httptest.NewRecorder()
		engine.ServeHTTP(last, req)
	}

	assert.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.Contains(t, last.Body.String(), "Too many requests")
}

func TestEnvRateLimit_InvalidEnvFallsBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_REQUESTS_PER_SECOND", "not-a-number")

	engine := gin.New()
	engine.GET("/ping", EnvRateLimitMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "true"))
}
