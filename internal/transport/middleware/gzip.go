package middleware

import (
	"bytes"
	"compress/gzip"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var gzipWriters = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

// bufferedWriter holds the whole body so its size is known before anything is sent.
type bufferedWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bufferedWriter) Write(data []byte) (int, error) {
	return w.body.Write(data)
}

func (w *bufferedWriter) WriteString(s string) (int, error) {
	return w.body.WriteString(s)
}

// headers go out together with the body once the handler chain returns
func (w *bufferedWriter) WriteHeaderNow() {}

func (w *bufferedWriter) Written() bool {
	return w.body.Len() > 0 || w.ResponseWriter.Written()
}

// Gzip compresses responses of at least minLength bytes for clients that accept gzip.
// Smaller responses are sent as is.
func Gzip(minLength int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !acceptsGzip(c.Request) {
			c.Next()
			return
		}

		original := c.Writer
		buffered := &bufferedWriter{ResponseWriter: original}
		c.Writer = buffered
		defer func() { c.Writer = original }()

		c.Next()

		body := buffered.body.Bytes()
		header := original.Header()
		if len(body) < minLength || len(body) == 0 || header.Get("Content-Encoding") != "" {
			if len(body) == 0 {
				original.WriteHeaderNow()
				return
			}
			if _, err := original.Write(body); err != nil {
				logrus.WithError(err).Warn("writing response body")
			}
			return
		}

		header.Set("Content-Encoding", "gzip")
		header.Add("Vary", "Accept-Encoding")
		header.Del("Content-Length")
		original.WriteHeaderNow()

		gz := gzipWriters.Get().(*gzip.Writer)
		defer gzipWriters.Put(gz)
		gz.Reset(original)
		if _, err := gz.Write(body); err != nil {
			logrus.WithError(err).Warn("writing gzip response body")
			return
		}
		if err := gz.Close(); err != nil {
			logrus.WithError(err).Warn("closing gzip response body")
		}
	}
}

func acceptsGzip(r *http.Request) bool {
	if r.Method == http.MethodHead {
		return false
	}
	for _, enc := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		name, _, _ := strings.Cut(strings.TrimSpace(enc), ";")
		if strings.EqualFold(name, "gzip") {
			return true
		}
	}
	return false
}
