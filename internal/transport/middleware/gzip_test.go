package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGzipRouter(body string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Gzip(1000))
	router.GET("/body", func(c *gin.Context) {
		c.String(http.StatusOK, body)
	})
	router.GET("/empty", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestGzipThreshold(t *testing.T) {
	tests := []struct {
		name           string
		size           int
		acceptEncoding string
		wantGzip       bool
	}{
		{name: "below threshold", size: 999, acceptEncoding: "gzip", wantGzip: false},
		{name: "at threshold", size: 1000, acceptEncoding: "gzip", wantGzip: true},
		{name: "large body", size: 5000, acceptEncoding: "deflate, gzip;q=0.8", wantGzip: true},
		{name: "client without gzip", size: 5000, acceptEncoding: "", wantGzip: false},
		{name: "client with other encoding", size: 5000, acceptEncoding: "br", wantGzip: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := strings.Repeat("a", tt.size)
			router := newGzipRouter(body)

			req := httptest.NewRequest(http.MethodGet, "/body", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			require.Equal(t, http.StatusOK, w.Code)

			if !tt.wantGzip {
				assert.Empty(t, w.Header().Get("Content-Encoding"))
				assert.Equal(t, body, w.Body.String())
				return
			}

			assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
			assert.Equal(t, "Accept-Encoding", w.Header().Get("Vary"))
			zr, err := gzip.NewReader(w.Body)
			require.NoError(t, err)
			plain, err := io.ReadAll(zr)
			require.NoError(t, err)
			assert.Equal(t, body, string(plain))
		})
	}
}

func TestGzipKeepsStatusWithoutBody(t *testing.T) {
	router := newGzipRouter("")

	req := httptest.NewRequest(http.MethodGet, "/empty", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Zero(t, w.Body.Len())
}
