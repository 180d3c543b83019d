package middleware

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const maxLogBodySize = 1 << 12 // 4 KB

// RequestLogGin logs every API request. Media uploads dominate this
// service's traffic and can run to tens of megabytes, so multipart bodies
// are never buffered; only their declared size is recorded.
func RequestLogGin(logger *zap.Logger, mCounter *prometheus.CounterVec) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := c.Request.URL.Path
		if c.Request.Method == http.MethodOptions ||
			p == "/favicon.ico" ||
			strings.HasSuffix(p, "/metrics") ||
			strings.HasSuffix(p, "/healthz") {
			c.Next()
			return
		}

		start := time.Now()

		var body string
		if c.Request.Body != nil {
			if strings.HasPrefix(c.GetHeader("Content-Type"), "multipart/form-data") {
				body = "<multipart omitted>"
			} else {
				var buf bytes.Buffer
				_, _ = io.Copy(&buf, io.LimitReader(c.Request.Body, maxLogBodySize))
				body = buf.String()
				c.Request.Body.Close()
				c.Request.Body = io.NopCloser(bytes.NewBuffer(buf.Bytes()))
			}
		}

		c.Next()

		if mCounter != nil {
			mCounter.WithLabelValues("app_requests_total").Inc()
		}

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("url", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Int64("request_bytes", c.Request.ContentLength),
			zap.Duration("duration", time.Since(start)),
			zap.String("body", body),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		}
		// the auth middleware sets the agent id for gated routes
		if agentID := c.GetString(CtxAgentID); agentID != "" {
			fields = append(fields, zap.String("agent_id", agentID))
		}
		logger.Info("HTTP request", fields...)
	}
}
