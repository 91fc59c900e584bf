package observability

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// GetRealClientIP prefers the CloudFront viewer header ("IP:port") over gin's ClientIP.
func GetRealClientIP(c *gin.Context) string {
	viewerAddr := c.GetHeader("CloudFront-Viewer-Address")
	if viewerAddr == "" {
		return c.ClientIP()
	}
	if i := strings.LastIndex(viewerAddr, ":"); i > 0 {
		return viewerAddr[:i]
	}
	return viewerAddr
}

// Middleware tags the request context, recovers panics and logs one line per request.
func Middleware(l *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = "req-" + uuid.NewString()
			c.Request.Header.Set(requestIDHeader, requestID)
		}
		c.Header(requestIDHeader, requestID)

		ctx := WithFields(c.Request.Context(),
			Field{"request_id", requestID},
			Field{"path", c.Request.URL.Path},
			Field{"method", c.Request.Method},
			Field{"client_ip", GetRealClientIP(c)},
			Field{"user_agent", c.Request.UserAgent()},
		)
		if shop := c.GetHeader("X-Shopify-Shop-Domain"); shop != "" {
			ctx = WithFields(ctx, Field{"webhook_shop", shop})
		}
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				l.Error(c.Request.Context(), "Recovered from panic", fmt.Errorf("panic: %v", r))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error":   "An internal error occurred. Please try again later.",
				})
			}
			if c.Request.URL.Path == "/health" {
				return
			}

			latency := time.Since(start)
			status := c.Writer.Status()
			// c.Request.Context() includes the shop once TenantMiddleware ran
			l.Info(WithFields(c.Request.Context(),
				Field{"latency_ms", latency.Milliseconds()},
				Field{"status", status},
			), "Request processed")
			l.Metrics(c.Request.Context(),
				MetricField{"route", c.FullPath()},
				MetricField{"status", status},
				MetricField{"latency", latency},
			)
		}()
		c.Next()
	}
}
